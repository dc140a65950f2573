// SPDX-License-Identifier: MIT

package dfs

import "strings"

// indexOf returns the first index of val in s, or -1.
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// reverse returns a reversed copy of s.
func reverse(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// compare orders two equal-length slices lexicographically.
func compare(a, b []string) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}

// minRotation returns the lexicographically smallest rotation of s.
// Cycles in index networks are short, so the quadratic scan is enough.
func minRotation(s []string) []string {
	n := len(s)
	best := append([]string(nil), s...)
	rot := make([]string, n)
	for k := 1; k < n; k++ {
		for i := range rot {
			rot[i] = s[(k+i)%n]
		}
		if compare(rot, best) < 0 {
			copy(best, rot)
		}
	}

	return best
}

func joinSig(c []string) string { return strings.Join(c, ",") }
