package strmatch

import "errors"

// ErrInvalidPattern is returned by Search and KMPSearch for an empty pattern.
var ErrInvalidPattern = errors.New("strmatch: pattern must be non-empty")

// FailureFunction builds the KMP prefix table for pattern.
// An empty pattern yields an empty table.
//
// Complexity: O(m).
func FailureFunction[T comparable](pattern []T) []int {
	lps := make([]int, len(pattern))
	length := 0
	for i := 1; i < len(pattern); {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length != 0:
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}

	return lps
}

// Search returns the start offset of every occurrence of pattern in text,
// in ascending order.
// Returns ErrInvalidPattern if pattern is empty.
//
// Complexity: O(n+m) time, O(m) space for the prefix table.
func Search[T comparable](text, pattern []T) ([]int, error) {
	m := len(pattern)
	if m == 0 {
		return nil, ErrInvalidPattern
	}
	if m > len(text) {
		return nil, nil
	}

	lps := FailureFunction(pattern)
	var matches []int
	i, j := 0, 0
	for i < len(text) {
		if text[i] == pattern[j] {
			i++
			j++
			if j == m {
				matches = append(matches, i-j)
				j = lps[j-1]
			}
			continue
		}
		if j != 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}

	return matches, nil
}

// KMPSearch is Search over the bytes of text and pattern.
func KMPSearch(text, pattern string) ([]int, error) {
	return Search([]byte(text), []byte(pattern))
}
