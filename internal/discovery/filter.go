package discovery

import (
	"path/filepath"
	"strings"
)

// Filter narrows test names by pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test names by pattern using wildcard matching
// Supports patterns like "*login*" or "smoke_?.py"
func (f *Filter) FilterByName(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	var filtered []string

	for _, name := range names {
		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			filtered = append(filtered, name)
			continue
		}

		// If the pattern contains wildcards but filepath.Match didn't match,
		// fall back to checking that every literal part appears in order-free
		// substring fashion, so "*login*form*" style patterns stay forgiving
		if strings.Contains(pattern, "*") {
			if literalPartsMatch(name, pattern) {
				filtered = append(filtered, name)
			}
			continue
		}

		// If no wildcards, do a simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(name, pattern) {
			filtered = append(filtered, name)
		}
	}

	return filtered
}

func literalPartsMatch(name, pattern string) bool {
	hasLiteral := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		hasLiteral = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasLiteral
}
