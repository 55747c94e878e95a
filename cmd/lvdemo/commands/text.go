package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlkit/strmatch"
)

const (
	defaultText     = "ABABDABACDABABCABAB"
	defaultPattern  = "ABABCABAB"
	defaultLCSLeft  = "ABCDGH"
	defaultLCSRight = "AEDFHR"
)

func (c *CLI) newKMPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kmp",
		Short: "Find every occurrence of a pattern with Knuth-Morris-Pratt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, _ := cmd.Flags().GetString("text")
			pattern, _ := cmd.Flags().GetString("pattern")
			return c.showKMP(cmd.OutOrStdout(), text, pattern)
		},
	}

	cmd.Flags().String("text", defaultText, "Text to search")
	cmd.Flags().StringP("pattern", "p", defaultPattern, "Pattern to find")

	return cmd
}

func (c *CLI) showKMP(w io.Writer, text, pattern string) error {
	matches, err := strmatch.KMPSearch(text, pattern)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "kmp search failed"), "pattern", pattern)
	}
	c.logger.Debug("kmp", zap.Int("text_len", len(text)), zap.Ints("failure", strmatch.FailureFunction([]byte(pattern))))

	_, err = fmt.Fprintf(w, "KMP Matches at indices: %s\n", joinInts(matches))
	return err
}

func (c *CLI) newLCSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lcs [a b]",
		Short: "Print a longest common subsequence of two strings",
		Args:  cobra.MatchAll(cobra.MaximumNArgs(2), notOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := defaultLCSLeft, defaultLCSRight
			if len(args) == 2 {
				a, b = args[0], args[1]
			}
			return c.showLCS(cmd.OutOrStdout(), a, b)
		},
	}
}

func notOneArg(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return zerr.New("lcs takes zero or two arguments")
	}
	return nil
}

func (c *CLI) showLCS(w io.Writer, a, b string) error {
	lcs := strmatch.LongestCommonSubsequence(a, b)
	c.logger.Debug("lcs", zap.String("a", a), zap.String("b", b), zap.Int("length", len(lcs)))

	_, err := fmt.Fprintf(w, "LCS of '%s' and '%s': %s\n", a, b, lcs)
	return err
}
