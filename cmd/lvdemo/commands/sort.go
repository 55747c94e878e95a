package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlkit/sorting"
)

// ErrUnknownAlgorithm is returned when --algo names no known sort.
var ErrUnknownAlgorithm = zerr.New("unknown sort algorithm")

var defaultSortInput = []int{64, 34, 25, 12, 22, 11, 90}

func (c *CLI) newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [ints...]",
		Short: "Sort integers with merge sort or quicksort",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := append([]int(nil), defaultSortInput...)
			if len(args) > 0 {
				parsed, err := parseInts(args)
				if err != nil {
					return err
				}
				values = parsed
			}
			algo, _ := cmd.Flags().GetString("algo")
			return c.showSort(cmd.OutOrStdout(), algo, values)
		},
	}

	cmd.Flags().StringP("algo", "a", "merge", "Sort algorithm: merge or quick")

	return cmd
}

func (c *CLI) showSort(w io.Writer, algo string, values []int) error {
	var label string
	switch algo {
	case "merge":
		label = "Merge"
		sorting.MergeSort(values)
	case "quick":
		label = "Quick"
		sorting.QuickSort(values, func(a, b int) bool { return a < b })
	default:
		return zerr.With(ErrUnknownAlgorithm, "algo", algo)
	}
	c.logger.Debug("sorted", zap.String("algo", algo), zap.Int("n", len(values)), zap.Bool("ordered", sorting.IsSorted(values)))

	_, err := fmt.Fprintf(w, "%s Sorted: %s\n", label, joinInts(values))
	return err
}
