package accent

// Devanagari code points relevant to locating syllable nuclei.
const devaVirama = '्'

func isDevaIndependentVowel(r rune) bool {
	return r >= 0x0904 && r <= 0x0914
}

func isDevaConsonant(r rune) bool {
	return (r >= 0x0915 && r <= 0x0939) || (r >= 0x0958 && r <= 0x095F)
}

func isDevaMatra(r rune) bool {
	return (r >= 0x093E && r <= 0x094C) || r == 0x0962 || r == 0x0963
}

// DevanagariVowelPoints walks composed Devanagari text and returns, for each
// logical vowel in reading order, the byte offset at which a combining svara
// mark belongs. Vowels are written three ways: as independent letters, as
// matras on a consonant, or not at all (the consonant's inherent a). A
// consonant killed by virama contributes no vowel; anything else (spaces,
// punctuation, existing combining marks) is skipped.
func DevanagariVowelPoints(text string) []int {
	type unit struct {
		off int
		r   rune
	}
	var units []unit
	for off, r := range text {
		units = append(units, unit{off: off, r: r})
	}
	end := func(i int) int {
		if i+1 < len(units) {
			return units[i+1].off
		}
		return len(text)
	}

	var points []int
	for i := 0; i < len(units); {
		r := units[i].r
		switch {
		case isDevaIndependentVowel(r):
			points = append(points, end(i))
			i++
		case isDevaConsonant(r):
			switch {
			case i+1 < len(units) && units[i+1].r == devaVirama:
				i += 2
			case i+1 < len(units) && isDevaMatra(units[i+1].r):
				points = append(points, end(i+1))
				i += 2
			default:
				points = append(points, end(i))
				i++
			}
		default:
			i++
		}
	}
	return points
}
