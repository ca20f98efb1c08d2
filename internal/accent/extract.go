package accent

import (
	"sort"
	"strings"
)

const escapeChar = '\\'

// discriminator character of an accent escape -> accent type
var escapeTypes = map[byte]Type{
	'`':  Anudatta,
	'\'': Svarita,
	'"':  IndependentSvarita,
}

// Extract strips the postfix accent escapes from raw ITRANS text and resolves
// each to the vowel it marks. An escape is the two bytes `\` + one of
// `` ` `` `'` `"`; anything else after a backslash is ordinary text and is
// kept. The returned markers are ordered by vowel index. unanchored counts
// markers that preceded every vowel and were dropped.
//
// Postfix convention: a marker at clean-text offset X modifies the last vowel
// whose span starts before X, which lets the marker trail syllable-final
// consonants (sa\` and sah\` both mark the a).
func Extract(raw string) (clean string, markers []Marker, unanchored int) {
	var b strings.Builder
	b.Grow(len(raw))

	// (clean-text byte offset, type) in source order
	type rawMarker struct {
		offset int
		typ    Type
	}
	var found []rawMarker

	for i := 0; i < len(raw); {
		if raw[i] == escapeChar && i+1 < len(raw) {
			if typ, ok := escapeTypes[raw[i+1]]; ok {
				found = append(found, rawMarker{offset: b.Len(), typ: typ})
				i += 2
				continue
			}
		}
		b.WriteByte(raw[i])
		i++
	}
	clean = b.String()

	if len(found) == 0 {
		return clean, nil, 0
	}

	spans := Scan(clean, ITRANSVowels)
	starts := make([]int, len(spans))
	for i, sp := range spans {
		starts[i] = sp.Start
	}

	for _, m := range found {
		// rightmost vowel start strictly below the marker offset
		vi := sort.SearchInts(starts, m.offset) - 1
		if vi < 0 {
			unanchored++
			continue
		}
		markers = append(markers, Marker{VowelIndex: vi, Type: m.typ})
	}
	return clean, markers, unanchored
}
