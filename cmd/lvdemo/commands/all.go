package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every demonstration with its sample input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(w, "=== lvlkit containers and algorithms ==="); err != nil {
				return err
			}

			steps := []func() error{
				func() error { return c.showVector(w, defaultVectorCount) },
				func() error { return c.showHandle(w, defaultHandleValue) },
				func() error { return c.showGraph(cmd.Context(), w, 0, 4) },
				func() error { return c.showSort(w, "merge", append([]int(nil), defaultSortInput...)) },
				func() error { return c.showKMP(w, defaultText, defaultPattern) },
				func() error { return c.showLCS(w, defaultLCSLeft, defaultLCSRight) },
			}
			for _, step := range steps {
				if err := step(); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
