package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlkit/handle"
	"github.com/katalvlaran/lvlkit/vector"
)

const (
	defaultVectorCount = 10
	defaultHandleValue = 42
)

func (c *CLI) newVectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vector [count]",
		Short: "Append count even numbers to a growable array and print it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := defaultVectorCount
			if len(args) == 1 {
				parsed, err := parseInts(args)
				if err != nil {
					return err
				}
				n = parsed[0]
			}
			return c.showVector(cmd.OutOrStdout(), n)
		},
	}
}

func (c *CLI) showVector(w io.Writer, n int) error {
	if n < 0 {
		return zerr.With(zerr.New("count must be non-negative"), "count", strconv.Itoa(n))
	}

	v := vector.New[int]()
	for i := 0; i < n; i++ {
		v.Append(i * 2)
		c.logger.Debug("append", zap.Int("value", i*2), zap.Int("len", v.Len()), zap.Int("cap", v.Cap()))
	}

	_, err := fmt.Fprintf(w, "Custom Vector: %s\n", joinInts(v.Values()))
	return err
}

func (c *CLI) newHandleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "handle [value]",
		Short: "Share one value between two handles and release both",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := defaultHandleValue
			if len(args) == 1 {
				parsed, err := parseInts(args)
				if err != nil {
					return err
				}
				value = parsed[0]
			}
			return c.showHandle(cmd.OutOrStdout(), value)
		},
	}
}

func (c *CLI) showHandle(w io.Writer, value int) error {
	v := value
	first := handle.New(&v, handle.WithReleaser(func(p *int) {
		c.logger.Debug("resource released", zap.Int("value", *p))
	}))
	second, err := first.Clone()
	if err != nil {
		return zerr.Wrap(err, "failed to clone handle")
	}

	got, err := first.Get()
	if err != nil {
		return zerr.Wrap(err, "failed to read handle")
	}
	if _, err = fmt.Fprintf(w, "Smart Pointer value: %d\n", got); err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "Owners: %d\n", second.Count()); err != nil {
		return err
	}

	if err = first.Release(); err != nil {
		return zerr.Wrap(err, "failed to release handle")
	}
	c.logger.Debug("handle released", zap.Int64("remaining", second.Count()))
	if err = second.Release(); err != nil {
		return zerr.Wrap(err, "failed to release handle")
	}
	return nil
}
