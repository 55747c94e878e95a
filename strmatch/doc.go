// Package strmatch provides substring search (Knuth–Morris–Pratt) and
// longest-common-subsequence alignment.
//
// Both algorithms are generic over slices of comparable elements; the string
// entry points (KMPSearch, LongestCommonSubsequence) operate on bytes.
//
// KMP
//
//	FailureFunction(p)[i] is the length of the longest proper prefix of
//	p[0..i] that is also a suffix of it. Search scans the text once and, on a
//	mismatch or a full match, falls back through that table instead of
//	restarting. Every match start is reported in ascending order, overlapping
//	matches included. O(n+m).
//
//	Empty patterns are rejected with ErrInvalidPattern. An empty text, or a
//	pattern longer than the text, yields an empty (nil) result.
//
// LCS
//
//	An (|a|+1)×(|b|+1) table is filled with the classic recurrence
//	(match → diagonal+1, otherwise max(up, left)). One subsequence is then
//	rebuilt from the bottom-right corner: on a match take the element and
//	move diagonally; otherwise move up only when the upper cell is strictly
//	larger, and left on ties. The tie rule fixes which of several
//	maximum-length answers is returned. O(|a|·|b|) time and space.
package strmatch
