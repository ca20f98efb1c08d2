// Package accent aligns Vedic svara markers across the three encodings of a
// verse: the ITRANS source (where accents ride as postfix escapes), composed
// Devanagari, and IAST romanization. Unmarked syllables carry the default
// (udatta) register and are never materialized.
package accent

// Type is one of the three written pitch accents.
type Type string

const (
	Anudatta           Type = "anudatta"
	Svarita            Type = "svarita"
	IndependentSvarita Type = "ind_svarita"
)

// Combining svara marks.
const (
	markAnudatta   = '॒' // horizontal bar below
	markSvarita    = '॑' // vertical stroke above
	markIndSvarita = '᳚' // double vertical stroke above
)

// Mark returns the combining character that renders this accent.
func (t Type) Mark() rune {
	switch t {
	case Anudatta:
		return markAnudatta
	case IndependentSvarita:
		return markIndSvarita
	default:
		return markSvarita
	}
}

// Marker attaches an accent to the n-th vowel (0-based) of some string.
// The index space is defined by the vowel scan of that string; Extract
// produces verse-global indices, verse assembly renumbers them per token.
type Marker struct {
	VowelIndex int
	Type       Type
}
