package accent

import (
	"strings"
	"unicode/utf8"
)

// Span is a half-open [Start, End) byte range covering one vowel nucleus.
// Spans for a string are strictly increasing and non-overlapping; a vowel's
// position in the scan output is its 0-based index within that string.
type Span struct {
	Start int
	End   int
}

// Table lists the vowel patterns of one romanization scheme, longest
// sequence first so digraphs win over their component letters.
type Table struct {
	Patterns []string
	FoldCase bool
}

// ITRANSVowels covers the ITRANS source scheme.
var ITRANSVowels = Table{
	Patterns: []string{
		"R^I", "R^i", "L^I", "L^i",
		"ai", "au", "AA", "II", "UU", "ee", "oo",
		"A", "I", "U", "a", "i", "u", "e", "o",
	},
}

// IASTVowels covers the IAST target scheme. The vocalic ḷ shares its letter
// with the retroflex consonant ḷ; the scan cannot tell them apart, which is
// the vowel-count mismatch case injection tolerates.
var IASTVowels = Table{
	Patterns: []string{
		"ai", "au",
		"ā", "ī", "ū", "ṛ", "ṝ", "ḷ", "ḹ",
		"a", "i", "u", "e", "o",
	},
	FoldCase: true,
}

// Scan returns the ordered vowel spans of text. At each position the first
// pattern that matches exactly there consumes a span; otherwise the cursor
// advances one rune.
func Scan(text string, tab Table) []Span {
	var spans []Span
	pos := 0
	for pos < len(text) {
		if n := tab.matchAt(text, pos); n > 0 {
			spans = append(spans, Span{Start: pos, End: pos + n})
			pos += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	return spans
}

// Count is Scan without the allocation.
func Count(text string, tab Table) int {
	n := 0
	pos := 0
	for pos < len(text) {
		if w := tab.matchAt(text, pos); w > 0 {
			n++
			pos += w
			continue
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	return n
}

// matchAt reports the byte length of the first pattern anchored at pos,
// or 0 if none matches. Case folding only pairs letters of equal byte
// length in these tables, so a fixed-width comparison is safe.
func (tab Table) matchAt(text string, pos int) int {
	for _, p := range tab.Patterns {
		end := pos + len(p)
		if end > len(text) {
			continue
		}
		if text[pos:end] == p || (tab.FoldCase && strings.EqualFold(text[pos:end], p)) {
			return len(p)
		}
	}
	return 0
}
