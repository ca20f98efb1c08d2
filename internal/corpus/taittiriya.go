package corpus

import (
	"io"
	"regexp"
	"strconv"
	"strings"
)

// The Taittiriya Aranyaka recension of the Purusha Sukta spans sections
// 33–41 of prapathaka 3, anuvakas 12–13. Its verse divisions do not line up
// with the section divisions: some sub-verses borrow their closing padas
// from the head of the next section. padaSpan remaps (section, pada range)
// slices onto sub-verse labels; duplicate labels merge in order, and a
// negative range takes the whole section.
type padaSpan struct {
	section    int
	start, end int // inclusive pada indices, -1 for whole section
	label      string
}

var taPadaMap = []padaSpan{
	{33, 0, 3, "3.12.33a"},
	{33, 4, 7, "3.12.33b"},
	{33, 8, 9, "3.12.33c"},
	{34, 0, 1, "3.12.33c"},
	{34, 2, 5, "3.12.34a"},
	{34, 6, 9, "3.12.34b"},
	{35, 0, 3, "3.12.35a"},
	{35, 4, 7, "3.12.35b"},
	{35, 8, 9, "3.12.35c"},
	{36, 0, 1, "3.12.35c"},
	{36, 2, 5, "3.12.36a"},
	{36, 6, 9, "3.12.36b"},
	{37, 0, 3, "3.12.37a"},
	{37, 4, 7, "3.12.37b"},
	{37, 8, 9, "3.12.37c"},
	{38, 0, 1, "3.12.37c"},
	{38, 2, 5, "3.12.38a"},
	{38, 6, 9, "3.12.38b"},
	{39, 0, 7, "3.12.39a"},
	{39, 8, 11, "3.12.39b"},
	{40, -1, -1, "3.13.40"},
	{41, -1, -1, "3.13.41"},
}

const (
	taFirstSection = 33
	taLastSection  = 41
)

var (
	// `|| 0| 3| 12| 34||`: the section-end marker names prapathaka 3 and
	// anuvaka 12/13, so it only matches inside the passage we want.
	taEndRe   = regexp.MustCompile(`\|\|\s*0\|\s*3\|\s*1[23]\|\s*(\d+)\s*\|\|`)
	taStartRe = regexp.MustCompile(`^(\d+)\s+`)

	braceMRe  = regexp.MustCompile(`\{\\m\+\}`)
	parenRe   = regexp.MustCompile(`\([^)]*\)`)
	endMarkRe = regexp.MustCompile(`\|\|[^|]*\|\|`)
)

// ParseTaittiriya extracts TA 3.12.33–3.13.41 and reassembles the sub-verses
// per taPadaMap. Section numbers restart in every anuvaka, so a section is
// only committed when its unambiguous end marker arrives; a numbered line
// seen before that discards whatever stray content had accumulated.
func ParseTaittiriya(r io.Reader) ([]RawVerse, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	raw := map[int]string{}
	cur := -1
	var parts []string

	commit := func() {
		if cur >= 0 {
			raw[cur] = strings.Join(parts, " ")
		}
		cur = -1
		parts = nil
	}

	for _, line := range lines {
		if sm := taStartRe.FindStringSubmatch(line); sm != nil {
			if n, err := strconv.Atoi(sm[1]); err == nil && n >= taFirstSection && n <= taLastSection {
				cur = n
				parts = parts[:0]
				if rest := strings.TrimSpace(line[len(sm[0]):]); rest != "" {
					parts = append(parts, rest)
				}
				continue
			}
		}
		if cur < 0 {
			continue
		}
		if em := taEndRe.FindStringIndex(line); em != nil {
			if before := strings.TrimSpace(line[:em[0]]); before != "" {
				parts = append(parts, before)
			}
			commit()
			continue
		}
		if s := strings.TrimSpace(line); s != "" {
			parts = append(parts, s)
		}
	}
	commit()

	// Clean up ITX artifacts and split each section into padas.
	padas := map[int][]string{}
	for n, txt := range raw {
		txt = braceMRe.ReplaceAllString(txt, "M")
		txt = parenRe.ReplaceAllString(txt, "")
		txt = endMarkRe.ReplaceAllString(txt, "")
		var ps []string
		for _, p := range strings.Split(txt, "|") {
			if p = strings.TrimSpace(p); p != "" {
				ps = append(ps, p)
			}
		}
		padas[n] = ps
	}

	// Reassemble sub-verses, merging split labels in map order.
	merged := map[string][]string{}
	var order []string
	for _, span := range taPadaMap {
		ps, ok := padas[span.section]
		if !ok {
			continue
		}
		sel := ps
		if span.start >= 0 {
			if span.start >= len(ps) {
				continue
			}
			end := span.end + 1
			if end > len(ps) {
				end = len(ps)
			}
			sel = ps[span.start:end]
		}
		if _, seen := merged[span.label]; !seen {
			order = append(order, span.label)
		}
		merged[span.label] = append(merged[span.label], sel...)
	}

	verses := make([]RawVerse, 0, len(order))
	for _, label := range order {
		verses = append(verses, RawVerse{Label: label, Text: strings.Join(merged[label], " | ")})
	}
	return verses, nil
}
