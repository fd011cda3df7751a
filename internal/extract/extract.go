// Package extract turns free-text AI responses into structured lists.
//
// Providers are not contractually bound to a fixed output format, so
// every extraction is a tiered heuristic cascade: the most specific,
// highest-confidence pattern runs first and looser patterns only run
// when stricter ones yield nothing. When every tier fails the result is
// an empty slice, never a guess; callers must offer manual entry in
// that case instead of treating it as an error.
package extract

import "strings"

// Matcher inspects a raw response and returns the entries its pattern
// recognizes, or an empty slice when the pattern does not apply.
type Matcher func(response string) []string

// runCascade applies matchers in order and returns the first non-empty
// result.
func runCascade(response string, matchers []Matcher) []string {
	for _, match := range matchers {
		if entries := match(response); len(entries) > 0 {
			return entries
		}
	}
	return []string{}
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
