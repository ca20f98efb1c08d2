// Package verse assembles whole accented verses: it pulls the svara markers
// out of raw ITRANS, partitions them across whitespace tokens by cumulative
// vowel count, transliterates each token, and reinjects the accents into both
// target scripts.
package verse

import (
	"strings"

	"github.com/samber/lo"

	"github.com/veda-tools/vedadiff/internal/accent"
)

// Pada delimiters substituted for the source `|` / `||` separators.
const (
	devaDanda = "।"
	iastDanda = "|"
)

// Transliterator is the accent-free base conversion the builder delegates
// to. It must preserve token structure: one source vowel, one target vowel.
type Transliterator interface {
	ToDevanagari(token string) string
	ToIAST(token string) string
}

// RenderedToken is one word of a verse in both target scripts, accents
// included. Index is the token's position in the verse.
type RenderedToken struct {
	Index      int    `json:"idx"`
	Devanagari string `json:"devanagari"`
	IAST       string `json:"iast"`
}

// Verse is the assembled result for one labeled verse.
type Verse struct {
	Label      string          `json:"number"`
	Devanagari string          `json:"devanagari"`
	IAST       string          `json:"iast"`
	Tokens     []RenderedToken `json:"tokens"`
}

// Diagnostics surfaces the data-quality anomalies a verse produced. The
// builder never logs or fails on them; callers decide what to report.
type Diagnostics struct {
	VowelCount        int                 // vowels in the clean verse text
	MarkerCount       int                 // markers that resolved to a vowel
	MarkersByType     map[accent.Type]int // resolved markers per accent type
	UnanchoredMarkers int                 // markers with no preceding vowel, dropped
	DroppedDevanagari int                 // markers lost to a Devanagari vowel-count mismatch
	DroppedIAST       int                 // markers lost to an IAST vowel-count mismatch
}

type Builder struct {
	tr Transliterator
}

func NewBuilder(tr Transliterator) *Builder {
	return &Builder{tr: tr}
}

// token is a whitespace-delimited word of the clean text plus the index of
// the pada (quarter-verse) it belongs to.
type token struct {
	text string
	pada int
}

// splitTokens breaks clean ITRANS into word tokens. A bare `|` or `||` is a
// pada separator: it bumps the pada index and is not itself a token.
func splitTokens(clean string) []token {
	var tokens []token
	pada := 0
	for _, part := range strings.Fields(clean) {
		if part == "|" || part == "||" {
			pada++
			continue
		}
		tokens = append(tokens, token{text: part, pada: pada})
	}
	return tokens
}

// Build converts one raw ITRANS verse into its accented renderings.
//
// Markers are numbered against the whole clean text; each token claims the
// slice of markers falling inside its cumulative vowel range and renumbers
// them to its own vowel space. The running offset is threaded through the
// loop rather than shared, so per-verse work stays independent.
func (b *Builder) Build(label, raw string) (Verse, Diagnostics) {
	clean, markers, unanchored := accent.Extract(raw)
	tokens := splitTokens(clean)

	diag := Diagnostics{
		VowelCount:        accent.Count(clean, accent.ITRANSVowels),
		MarkerCount:       len(markers),
		MarkersByType:     map[accent.Type]int{},
		UnanchoredMarkers: unanchored,
	}
	for _, m := range markers {
		diag.MarkersByType[m.Type]++
	}

	rendered := make([]RenderedToken, 0, len(tokens))
	cum := 0
	for i, tok := range tokens {
		nv := accent.Count(tok.text, accent.ITRANSVowels)

		var local []accent.Marker
		for _, m := range markers {
			if m.VowelIndex >= cum && m.VowelIndex < cum+nv {
				local = append(local, accent.Marker{VowelIndex: m.VowelIndex - cum, Type: m.Type})
			}
		}
		cum += nv

		deva, devaApplied := accent.InjectDevanagari(b.tr.ToDevanagari(tok.text), local)
		iast, iastApplied := accent.InjectIAST(b.tr.ToIAST(tok.text), local)
		diag.DroppedDevanagari += len(local) - devaApplied
		diag.DroppedIAST += len(local) - iastApplied

		rendered = append(rendered, RenderedToken{Index: i, Devanagari: deva, IAST: iast})
	}

	// Whole-verse lines: single-space joined, with the script's danda
	// inserted each time the pada index steps up.
	devaParts := make([]string, 0, len(rendered))
	iastParts := make([]string, 0, len(rendered))
	lastPada := 0
	for i, tok := range tokens {
		if tok.pada > lastPada {
			devaParts = append(devaParts, devaDanda)
			iastParts = append(iastParts, iastDanda)
			lastPada = tok.pada
		}
		devaParts = append(devaParts, rendered[i].Devanagari)
		iastParts = append(iastParts, rendered[i].IAST)
	}

	return Verse{
		Label:      label,
		Devanagari: strings.Join(devaParts, " "),
		IAST:       strings.Join(iastParts, " "),
		Tokens:     rendered,
	}, diag
}

// VowelTotal sums the source-scheme vowel counts of the given words. It
// exists for conservation checks: the total always equals the vowel count
// of the clean verse text the words came from.
func VowelTotal(words []string) int {
	return lo.SumBy(words, func(w string) int {
		return accent.Count(w, accent.ITRANSVowels)
	})
}
