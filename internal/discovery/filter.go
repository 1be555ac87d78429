package discovery

import (
	"path/filepath"
	"strings"
)

// NameFilter narrows a path list by a basename pattern before balancing
type NameFilter struct{}

// NewNameFilter creates a new NameFilter
func NewNameFilter() *NameFilter {
	return &NameFilter{}
}

// FilterByName keeps paths whose basename matches pattern.
// Supports globs like "*.jpg" or "cat_*", "*part*" substring globs
// and plain substrings. An empty pattern keeps everything.
func (f *NameFilter) FilterByName(paths []string, pattern string) []string {
	if pattern == "" {
		return paths
	}

	parts := nonEmptyParts(pattern)
	hasGlob := strings.ContainsAny(pattern, "*?")

	var filtered []string
	for _, p := range paths {
		name := filepath.Base(p)

		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, p)
			continue
		}

		if !hasGlob {
			if strings.Contains(name, pattern) {
				filtered = append(filtered, p)
			}
			continue
		}

		// "*a*b*" style patterns fall back to order-agnostic substring checks
		if strings.Contains(pattern, "*") && len(parts) > 0 && containsAll(name, parts) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

func nonEmptyParts(pattern string) []string {
	var parts []string
	for _, part := range strings.Split(pattern, "*") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func containsAll(name string, parts []string) bool {
	for _, part := range parts {
		if !strings.Contains(name, part) {
			return false
		}
	}
	return true
}
