// Package glob matches slash-segmented ref names against fixed-arity
// glob patterns. A pattern segment of "*" matches exactly one whole ref
// segment; every other segment must match byte-for-byte. A pattern never
// matches a ref with a different segment count, so "fedora/36/*/silverblue"
// selects "fedora/36/x86_64/silverblue" but not
// "fedora/36/x86_64/testing/silverblue".
package glob

import "strings"

// Wildcard is the pattern segment that matches any single ref segment.
const Wildcard = "*"

// Match returns the refs that match pattern, preserving input order.
// Duplicate refs in the input are preserved in the result. Matching is
// pure: no I/O, no failure modes.
func Match(refs []string, pattern string) []string {
	want := strings.Split(pattern, "/")

	var matched []string
	for _, ref := range refs {
		if matchSegments(ref, want) {
			matched = append(matched, ref)
		}
	}
	return matched
}

func matchSegments(ref string, want []string) bool {
	got := strings.Split(ref, "/")
	if len(got) != len(want) {
		return false
	}

	for i, seg := range want {
		if seg != Wildcard && seg != got[i] {
			return false
		}
	}

	return true
}
