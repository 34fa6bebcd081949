package variants

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Set holds the country spellings treated as the United Kingdom. Keys are
// case-folded; lookups trim surrounding whitespace before folding. The set
// is built once at load time and never mutated afterwards.
type Set map[string]struct{}

// New builds a Set from raw variant lines. Variants that are equal after
// case-folding collapse to a single entry. No normalization beyond folding
// is applied: internal whitespace and diacritics are significant.
func New(lines []string) Set {
	s := make(Set, len(lines))
	for _, line := range lines {
		s[strings.ToLower(line)] = struct{}{}
	}
	return s
}

// Contains reports whether value, trimmed and case-folded, is a known UK
// variant. Empty values are never members.
func (s Set) Contains(value string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

// Load reads a line-delimited variant list. Lines are trimmed and blank
// lines skipped before the set is built.
func Load(path string) (Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open variants file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read variants file: %w", err)
	}

	return New(lines), nil
}
