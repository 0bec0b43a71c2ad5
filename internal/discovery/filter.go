package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters spec files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters spec files by name pattern using wildcard matching.
// Supports patterns like "*login.spec.ts" or "*checkout*".
func (f *Filter) FilterByName(specs []string, pattern string) []string {
	if pattern == "" {
		return specs
	}

	var filtered []string

	for _, spec := range specs {
		name := filepath.Base(spec)

		// filepath.Match covers * and ? wildcards
		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			filtered = append(filtered, spec)
			continue
		}

		// Patterns like "*checkout*" fall back to substring matching on the
		// non-wildcard parts.
		if strings.Contains(pattern, "*") {
			if matchesAllParts(name, pattern) {
				filtered = append(filtered, spec)
			}
			continue
		}

		// No wildcards at all: plain contains check
		if !strings.Contains(pattern, "?") && strings.Contains(name, pattern) {
			filtered = append(filtered, spec)
		}
	}

	return filtered
}

func matchesAllParts(name, pattern string) bool {
	parts := strings.Split(pattern, "*")
	hasNonEmpty := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmpty = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasNonEmpty
}
