package accent

import "testing"

func TestInjectDevanagari(t *testing.T) {
	markers := []Marker{
		{VowelIndex: 0, Type: Anudatta},
		{VowelIndex: 2, Type: Svarita},
		{VowelIndex: 4, Type: Anudatta},
	}
	out, applied := InjectDevanagari("सहस्रशीर्षा", markers)
	if out != "स॒हस्र॑शीर्षा॒" {
		t.Errorf("out = %q, want %q", out, "स॒हस्र॑शीर्षा॒")
	}
	if applied != 3 {
		t.Errorf("applied = %d, want 3", applied)
	}

	out, applied = InjectDevanagari("पुरुषः", []Marker{{VowelIndex: 1, Type: Svarita}})
	if out != "पुरु॑षः" {
		t.Errorf("out = %q, want %q", out, "पुरु॑षः")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
}

func TestInjectDevanagariNoMarkers(t *testing.T) {
	in := "सहस्रशीर्षा"
	out, applied := InjectDevanagari(in, nil)
	if out != in || applied != 0 {
		t.Errorf("InjectDevanagari(%q, nil) = (%q, %d), want identity", in, out, applied)
	}
}

func TestInjectDevanagariOutOfRange(t *testing.T) {
	out, applied := InjectDevanagari("पुरुषः", []Marker{
		{VowelIndex: 1, Type: Svarita},
		{VowelIndex: 10, Type: Anudatta},
		{VowelIndex: -1, Type: Anudatta},
	})
	if out != "पुरु॑षः" {
		t.Errorf("out = %q, want in-range marker only", out)
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
}

func TestInjectDevanagariDuplicateVowel(t *testing.T) {
	out, applied := InjectDevanagari("पुरुषः", []Marker{
		{VowelIndex: 1, Type: Anudatta},
		{VowelIndex: 1, Type: Svarita},
	})
	if out != "पुरु॑षः" {
		t.Errorf("out = %q, want last marker to win", out)
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
}

func TestInjectIAST(t *testing.T) {
	markers := []Marker{
		{VowelIndex: 0, Type: Anudatta},
		{VowelIndex: 2, Type: Svarita},
		{VowelIndex: 4, Type: Anudatta},
	}
	out, applied := InjectIAST("sahasraśīrṣā", markers)
	if out != "sa॒hasra॑śīrṣā॒" {
		t.Errorf("out = %q, want %q", out, "sa॒hasra॑śīrṣā॒")
	}
	if applied != 3 {
		t.Errorf("applied = %d, want 3", applied)
	}

	out, applied = InjectIAST("puruṣaḥ", []Marker{{VowelIndex: 1, Type: Svarita}})
	if out != "puru॑ṣaḥ" {
		t.Errorf("out = %q, want %q", out, "puru॑ṣaḥ")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
}

func TestInjectIASTNoMarkers(t *testing.T) {
	in := "sahasraśīrṣā"
	out, applied := InjectIAST(in, nil)
	if out != in || applied != 0 {
		t.Errorf("InjectIAST(%q, nil) = (%q, %d), want identity", in, out, applied)
	}
}

func TestInjectIASTOutOfRange(t *testing.T) {
	out, applied := InjectIAST("puruṣaḥ", []Marker{{VowelIndex: 7, Type: Anudatta}})
	if out != "puruṣaḥ" {
		t.Errorf("out = %q, want input unchanged", out)
	}
	if applied != 0 {
		t.Errorf("applied = %d, want 0", applied)
	}
}

func TestMarkRunes(t *testing.T) {
	tests := []struct {
		typ  Type
		mark rune
	}{
		{Anudatta, '॒'},
		{Svarita, '॑'},
		{IndependentSvarita, '᳚'},
	}
	for _, tt := range tests {
		if got := tt.typ.Mark(); got != tt.mark {
			t.Errorf("%s.Mark() = %U, want %U", tt.typ, got, tt.mark)
		}
	}
}
