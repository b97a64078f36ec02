package ocr

import (
	"regexp"
	"strconv"
	"strings"
)

// Candidate is one line of recognized text split into an item name and a
// quantity, awaiting catalog matching.
type Candidate struct {
	Text     string
	Quantity int
}

// lineRE captures "Bandage x5", "Bandage 5" or a bare "Bandage". The name
// group is lazy so a trailing quantity is not swallowed into it.
var lineRE = regexp.MustCompile(`^(.+?)\s*x?(\d+)?\s*$`)

// Segment splits raw recognized text into candidates. Lines are separated
// by newlines or commas; blank lines and lines without a usable name are
// dropped silently. Input order is preserved.
func Segment(raw string) []Candidate {
	lines := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})

	var candidates []Candidate

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}

		quantity := 1

		if m[2] != "" {
			if n, err := strconv.Atoi(m[2]); err == nil && n > 0 {
				quantity = n
			}
		}

		candidates = append(candidates, Candidate{Text: name, Quantity: quantity})
	}

	return candidates
}
