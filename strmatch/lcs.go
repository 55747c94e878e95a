package strmatch

// lengthTable fills the (len(a)+1)×(len(b)+1) LCS length table.
func lengthTable[T comparable](a, b []T) [][]int {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	return dp
}

// LCS returns one longest common subsequence of a and b.
// On ties during the backward walk it moves left (decreasing b's index),
// so the result is deterministic. Empty inputs yield an empty result.
//
// Complexity: O(|a|·|b|) time and space.
func LCS[T comparable](a, b []T) []T {
	dp := lengthTable(a, b)
	i, j := len(a), len(b)
	out := make([]T, dp[i][j])
	k := len(out)
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			k--
			out[k] = a[i-1]
			i--
			j--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}

	return out
}

// LCSLength returns the length of a longest common subsequence of a and b.
//
// Complexity: O(|a|·|b|) time, O(|b|) space.
func LCSLength[T comparable](a, b []T) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// LongestCommonSubsequence is LCS over the bytes of a and b.
func LongestCommonSubsequence(a, b string) string {
	return string(LCS([]byte(a), []byte(b)))
}
