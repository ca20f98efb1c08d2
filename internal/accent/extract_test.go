package accent

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		input   string
		clean   string
		markers []Marker
	}{
		{
			input: "sa\\`hasra\\'shIrShA\\`",
			clean: "sahasrashIrShA",
			markers: []Marker{
				{VowelIndex: 0, Type: Anudatta},
				{VowelIndex: 2, Type: Svarita},
				{VowelIndex: 4, Type: Anudatta},
			},
		},
		{
			input:   "puru\\'ShaH",
			clean:   "puruShaH",
			markers: []Marker{{VowelIndex: 1, Type: Svarita}},
		},
		{
			input:   "pAdo\\\"sya",
			clean:   "pAdosya",
			markers: []Marker{{VowelIndex: 1, Type: IndependentSvarita}},
		},
		{
			// marker trailing a syllable-final consonant still lands on
			// the syllable's vowel
			input:   "tat.h\\`",
			clean:   "tat.h",
			markers: []Marker{{VowelIndex: 0, Type: Anudatta}},
		},
	}
	for _, tt := range tests {
		clean, markers, unanchored := Extract(tt.input)
		if clean != tt.clean {
			t.Errorf("Extract(%q) clean = %q, want %q", tt.input, clean, tt.clean)
		}
		if !reflect.DeepEqual(markers, tt.markers) {
			t.Errorf("Extract(%q) markers = %v, want %v", tt.input, markers, tt.markers)
		}
		if unanchored != 0 {
			t.Errorf("Extract(%q) unanchored = %d, want 0", tt.input, unanchored)
		}
	}
}

func TestExtractNoEscapes(t *testing.T) {
	for _, s := range []string{"", "agnimILe purohitam", "a | b || c"} {
		clean, markers, unanchored := Extract(s)
		if clean != s || markers != nil || unanchored != 0 {
			t.Errorf("Extract(%q) = (%q, %v, %d), want passthrough", s, clean, markers, unanchored)
		}
	}
}

func TestExtractMalformedEscape(t *testing.T) {
	// backslash before an unrecognized discriminator is ordinary text
	clean, markers, _ := Extract("pa\\xda")
	if clean != "pa\\xda" {
		t.Errorf("clean = %q, want escape kept", clean)
	}
	if len(markers) != 0 {
		t.Errorf("markers = %v, want none", markers)
	}
}

func TestExtractUnanchored(t *testing.T) {
	clean, markers, unanchored := Extract("\\`kra")
	if clean != "kra" {
		t.Errorf("clean = %q, want %q", clean, "kra")
	}
	if len(markers) != 0 {
		t.Errorf("markers = %v, want none", markers)
	}
	if unanchored != 1 {
		t.Errorf("unanchored = %d, want 1", unanchored)
	}
}

func TestExtractCleanNeverLonger(t *testing.T) {
	inputs := []string{
		"sa\\`hasra\\'shIrShA\\` puru\\'ShaH",
		"\\`\\'\\\"",
		"plain text",
	}
	for _, s := range inputs {
		clean, _, _ := Extract(s)
		if len(clean) > len(s) {
			t.Errorf("Extract(%q): clean longer than input", s)
		}
		for _, d := range []string{"\\`", "\\'", "\\\""} {
			if strings.Contains(clean, d) {
				t.Errorf("Extract(%q): clean still contains %q", s, d)
			}
		}
	}
}

func TestExtractMarkersNonDecreasing(t *testing.T) {
	_, markers, _ := Extract("sa\\`hasra\\'shIrShA\\` puru\\'ShaH")
	want := []Marker{
		{VowelIndex: 0, Type: Anudatta},
		{VowelIndex: 2, Type: Svarita},
		{VowelIndex: 4, Type: Anudatta},
		{VowelIndex: 6, Type: Svarita},
	}
	if !reflect.DeepEqual(markers, want) {
		t.Fatalf("markers = %v, want %v", markers, want)
	}
}
