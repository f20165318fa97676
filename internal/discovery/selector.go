package discovery

import (
	"path"
	"strings"
)

// Selector selects registered case names by pattern
type Selector struct{}

// NewSelector creates a new Selector
func NewSelector() *Selector {
	return &Selector{}
}

// Filter selects case names matching the pattern, preserving input order.
//
// An empty pattern selects everything. An exact name wins outright. A
// pattern ending in "/" selects the whole group sharing that prefix
// ("strings/" selects "strings/reverse"). Otherwise "*" and "?" wildcards
// are applied via path.Match, with a substring fallback for patterns like
// "*fib*", and a wildcard-free pattern selects by substring.
func (s *Selector) Filter(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	// Exact name match selects exactly that case.
	for _, name := range names {
		if name == pattern {
			return []string{name}
		}
	}

	// Trailing slash selects a whole group by prefix.
	if strings.HasSuffix(pattern, "/") {
		var filtered []string
		for _, name := range names {
			if strings.HasPrefix(name, pattern) {
				filtered = append(filtered, name)
			}
		}
		return filtered
	}

	var filtered []string
	for _, name := range names {
		if matchName(name, pattern) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// matchName applies wildcard then substring matching. path.Match does not
// let "*" cross "/", so multi-wildcard patterns fall back to checking
// that every literal part appears in the name.
func matchName(name, pattern string) bool {
	if matched, err := path.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.ContainsAny(pattern, "*?") {
		parts := strings.Split(pattern, "*")
		hasLiteral := false
		for _, part := range parts {
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

	return strings.Contains(name, pattern)
}
