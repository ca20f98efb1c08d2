package accent

import "strings"

// InjectDevanagari inserts combining svara marks into composed Devanagari
// text. Marker indices refer to the text's own vowel numbering (see
// DevanagariVowelPoints). Indices at or past the vowel count are skipped:
// base transliteration can legitimately disagree with the source scheme on
// vowel count for degenerate input, and a missing accent beats a misplaced
// one. applied reports how many markers landed. When two markers name the
// same vowel the last one wins.
func InjectDevanagari(text string, markers []Marker) (out string, applied int) {
	if len(markers) == 0 {
		return text, 0
	}
	points := DevanagariVowelPoints(text)

	inserts := make(map[int]rune, len(markers))
	for _, m := range markers {
		if m.VowelIndex >= 0 && m.VowelIndex < len(points) {
			inserts[points[m.VowelIndex]] = m.Type.Mark()
		}
	}

	var b strings.Builder
	b.Grow(len(text) + 3*len(inserts))
	for off, r := range text {
		if mark, ok := inserts[off]; ok {
			b.WriteRune(mark)
		}
		b.WriteRune(r)
	}
	if mark, ok := inserts[len(text)]; ok {
		b.WriteRune(mark)
	}
	return b.String(), len(inserts)
}

// InjectIAST appends combining svara marks after the marked vowel spans of
// IAST text. Same tolerance and last-wins rules as InjectDevanagari.
func InjectIAST(text string, markers []Marker) (out string, applied int) {
	if len(markers) == 0 {
		return text, 0
	}
	spans := Scan(text, IASTVowels)

	byVowel := make(map[int]rune, len(markers))
	for _, m := range markers {
		if m.VowelIndex >= 0 && m.VowelIndex < len(spans) {
			byVowel[m.VowelIndex] = m.Type.Mark()
		}
	}

	var b strings.Builder
	b.Grow(len(text) + 3*len(byVowel))
	prev := 0
	for vi, sp := range spans {
		mark, ok := byVowel[vi]
		if !ok {
			continue
		}
		b.WriteString(text[prev:sp.End])
		b.WriteRune(mark)
		prev = sp.End
	}
	b.WriteString(text[prev:])
	return b.String(), len(byVowel)
}
