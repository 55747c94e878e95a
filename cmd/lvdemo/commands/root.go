// Package commands implements the CLI commands for the lvdemo driver.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLI represents the command line interface for lvdemo.
type CLI struct {
	rootCmd *cobra.Command
	logger  *zap.Logger
}

// New creates a new CLI instance. Logging is a no-op until --verbose is set.
func New() *CLI {
	rootCmd := &cobra.Command{
		Use:           "lvdemo",
		Short:         "Demonstrates the lvlkit containers and algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log each step to stderr")

	c := &CLI{
		rootCmd: rootCmd,
		logger:  zap.NewNop(),
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		if verbose {
			c.logger = newDevelopmentLogger(cmd.ErrOrStderr())
		}
		return nil
	}

	rootCmd.AddCommand(c.newVectorCmd())
	rootCmd.AddCommand(c.newHandleCmd())
	rootCmd.AddCommand(c.newGraphCmd())
	rootCmd.AddCommand(c.newSortCmd())
	rootCmd.AddCommand(c.newKMPCmd())
	rootCmd.AddCommand(c.newLCSCmd())
	rootCmd.AddCommand(c.newAllCmd())

	return c
}

// newDevelopmentLogger mirrors zap.NewDevelopment but writes to w.
func newDevelopmentLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core, zap.Development())
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	defer func() { _ = c.logger.Sync() }()
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
