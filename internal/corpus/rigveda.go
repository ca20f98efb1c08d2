package corpus

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ParseRigveda pulls the verses of one hymn out of an ITX Rigveda file.
// Verse text runs across lines and ends at a `|| M\.HHH\.NN` marker (the
// dots are backslash-escaped in the source). The opening lines of the first
// verse precede its marker, so once the first marker is found the scan backs
// up over the lines that belong to it, stopping at the previous hymn's
// territory.
func ParseRigveda(r io.Reader, mandala, hymn int) ([]RawVerse, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	markerRe := regexp.MustCompile(fmt.Sprintf(`\|\|\s*%d\\\.%03d\\\.(\d+)`, mandala, hymn))
	prevRe := regexp.MustCompile(fmt.Sprintf(`\|\|\s*%d\\\.%03d`, mandala, hymn-1))
	nextRe := regexp.MustCompile(fmt.Sprintf(`\|\|\s*%d\\\.%03d`, mandala, hymn+1))

	start := -1
	for i, line := range lines {
		if !markerRe.MatchString(line) {
			continue
		}
		start = i
		for j := i - 1; j >= 0 && j > i-5; j-- {
			s := strings.TrimSpace(lines[j])
			if s == "" || markerRe.MatchString(lines[j]) || prevRe.MatchString(lines[j]) {
				break
			}
			start = j
		}
		break
	}
	if start < 0 {
		return nil, nil
	}

	var verses []RawVerse
	var buf []string
	for _, line := range lines[start:] {
		if loc := markerRe.FindStringSubmatchIndex(line); loc != nil {
			if before := strings.TrimSpace(line[:loc[0]]); before != "" {
				buf = append(buf, before)
			}
			n, _ := strconv.Atoi(line[loc[2]:loc[3]])
			if text := strings.TrimSpace(strings.Join(buf, " ")); text != "" {
				verses = append(verses, RawVerse{
					Label: fmt.Sprintf("%d.%d.%d", mandala, hymn, n),
					Text:  text,
				})
			}
			buf = buf[:0]
			continue
		}
		if s := strings.TrimSpace(line); s != "" {
			if nextRe.MatchString(line) {
				break
			}
			buf = append(buf, s)
		}
	}
	return verses, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return lines, nil
}
