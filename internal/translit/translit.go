// Package translit converts ITRANS-romanized Sanskrit to composed Devanagari
// and to IAST. The conversion is accent-free and structure-preserving: every
// ITRANS vowel comes out as exactly one vowel on each side, which is what
// accent reinjection relies on.
package translit

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const virama = '्'

type vowel struct {
	deva  string // independent letter
	matra string // dependent sign, empty for the inherent a
	iast  string
}

type mapping struct {
	deva string
	iast string
}

var vowels = map[string]vowel{
	"a":   {deva: "अ", matra: "", iast: "a"},
	"A":   {deva: "आ", matra: "ा", iast: "ā"},
	"AA":  {deva: "आ", matra: "ा", iast: "ā"},
	"i":   {deva: "इ", matra: "ि", iast: "i"},
	"I":   {deva: "ई", matra: "ी", iast: "ī"},
	"II":  {deva: "ई", matra: "ी", iast: "ī"},
	"u":   {deva: "उ", matra: "ु", iast: "u"},
	"U":   {deva: "ऊ", matra: "ू", iast: "ū"},
	"UU":  {deva: "ऊ", matra: "ू", iast: "ū"},
	"R^i": {deva: "ऋ", matra: "ृ", iast: "ṛ"},
	"R^I": {deva: "ॠ", matra: "ॄ", iast: "ṝ"},
	"L^i": {deva: "ऌ", matra: "ॢ", iast: "ḷ"},
	"L^I": {deva: "ॡ", matra: "ॣ", iast: "ḹ"},
	"e":   {deva: "ए", matra: "े", iast: "e"},
	"ee":  {deva: "ए", matra: "े", iast: "e"},
	"ai":  {deva: "ऐ", matra: "ै", iast: "ai"},
	"o":   {deva: "ओ", matra: "ो", iast: "o"},
	"oo":  {deva: "ओ", matra: "ो", iast: "o"},
	"au":  {deva: "औ", matra: "ौ", iast: "au"},
}

var consonants = map[string]mapping{
	"k": {"क", "k"}, "kh": {"ख", "kh"}, "g": {"ग", "g"}, "gh": {"घ", "gh"}, "~N": {"ङ", "ṅ"},
	"ch": {"च", "c"}, "Ch": {"छ", "ch"}, "j": {"ज", "j"}, "jh": {"झ", "jh"}, "~n": {"ञ", "ñ"},
	"T": {"ट", "ṭ"}, "Th": {"ठ", "ṭh"}, "D": {"ड", "ḍ"}, "Dh": {"ढ", "ḍh"}, "N": {"ण", "ṇ"},
	"t": {"त", "t"}, "th": {"थ", "th"}, "d": {"द", "d"}, "dh": {"ध", "dh"}, "n": {"न", "n"},
	"p": {"प", "p"}, "ph": {"फ", "ph"}, "b": {"ब", "b"}, "bh": {"भ", "bh"}, "m": {"म", "m"},
	"y": {"य", "y"}, "r": {"र", "r"}, "l": {"ल", "l"}, "v": {"व", "v"}, "w": {"व", "v"},
	"sh": {"श", "ś"}, "Sh": {"ष", "ṣ"}, "shh": {"ष", "ṣ"}, "s": {"स", "s"}, "h": {"ह", "h"},
	"L": {"ळ", "ḷ"}, "kSh": {"क्ष", "kṣ"}, "x": {"क्ष", "kṣ"}, "j~n": {"ज्ञ", "jñ"},
}

// Signs attach to the preceding syllable and carry no vowel of their own.
var signs = map[string]mapping{
	"M":  {"ं", "ṃ"},
	"H":  {"ः", "ḥ"},
	".a": {"ऽ", "'"},
	".m": {"ं", "ṃ"},
}

// itransTokens is every recognized token, longest first, so digraphs and
// trigraphs win over their prefixes.
var itransTokens []string

func init() {
	for k := range vowels {
		itransTokens = append(itransTokens, k)
	}
	for k := range consonants {
		itransTokens = append(itransTokens, k)
	}
	for k := range signs {
		itransTokens = append(itransTokens, k)
	}
	// longest first; ties don't matter for anchored exact match
	sort.Slice(itransTokens, func(i, j int) bool {
		if len(itransTokens[i]) != len(itransTokens[j]) {
			return len(itransTokens[i]) > len(itransTokens[j])
		}
		return itransTokens[i] < itransTokens[j]
	})
}

// nextToken returns the token anchored at pos and its byte length, or ("", 0).
func nextToken(s string, pos int) (string, int) {
	for _, tok := range itransTokens {
		end := pos + len(tok)
		if end <= len(s) && s[pos:end] == tok {
			return tok, len(tok)
		}
	}
	return "", 0
}

// ToDevanagari renders an ITRANS token as composed Devanagari. Consonants
// carry an inherent a unless followed by an explicit vowel (matra) or
// another consonant (virama); a trailing consonant is killed too.
// Unrecognized runes pass through verbatim.
func ToDevanagari(itrans string) string {
	var b strings.Builder
	b.Grow(len(itrans) * 3)
	pending := false // an emitted consonant still awaiting its vowel

	flush := func() {
		if pending {
			b.WriteRune(virama)
			pending = false
		}
	}

	pos := 0
	for pos < len(itrans) {
		tok, n := nextToken(itrans, pos)
		if n == 0 {
			flush()
			r, size := utf8.DecodeRuneInString(itrans[pos:])
			b.WriteRune(r)
			pos += size
			continue
		}
		switch {
		case vowelToken(tok):
			v := vowels[tok]
			if pending {
				b.WriteString(v.matra)
				pending = false
			} else {
				b.WriteString(v.deva)
			}
		case consonantToken(tok):
			flush()
			b.WriteString(consonants[tok].deva)
			pending = true
		default:
			flush()
			b.WriteString(signs[tok].deva)
		}
		pos += n
	}
	flush()
	return b.String()
}

// ToIAST renders an ITRANS token as IAST. No join logic is needed: IAST is
// alphabetic, so consonants and vowels concatenate directly.
func ToIAST(itrans string) string {
	var b strings.Builder
	b.Grow(len(itrans) * 2)
	pos := 0
	for pos < len(itrans) {
		tok, n := nextToken(itrans, pos)
		if n == 0 {
			r, size := utf8.DecodeRuneInString(itrans[pos:])
			b.WriteRune(r)
			pos += size
			continue
		}
		switch {
		case vowelToken(tok):
			b.WriteString(vowels[tok].iast)
		case consonantToken(tok):
			b.WriteString(consonants[tok].iast)
		default:
			b.WriteString(signs[tok].iast)
		}
		pos += n
	}
	return b.String()
}

func vowelToken(tok string) bool {
	_, ok := vowels[tok]
	return ok
}

func consonantToken(tok string) bool {
	_, ok := consonants[tok]
	return ok
}

// Sanskrit bundles both target scripts behind a single value so verse
// assembly can take the transliteration step as a collaborator.
type Sanskrit struct{}

func (Sanskrit) ToDevanagari(token string) string { return ToDevanagari(token) }
func (Sanskrit) ToIAST(token string) string       { return ToIAST(token) }
