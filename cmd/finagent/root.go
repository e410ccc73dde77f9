package main

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// wireFunc builds the in-process application on first use so that commands
// such as version never touch configuration.
type wireFunc func(ctx context.Context, opts wireOptions) (*app, error)

type wireOptions struct {
	LogLevel string
}

func newRootCmd(wire wireFunc) *cobra.Command {
	var (
		noColor bool
		opts    wireOptions
	)

	rootCmd := &cobra.Command{
		Use:           "finagent",
		Short:         "Ask financial research questions from the terminal",
		Long:          "finagent runs the financial research agent in-process: it extracts tickers from your question, fetches live market data and asks the configured language model for an answer.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "error", "log level for pipeline diagnostics")

	lazy := func(ctx context.Context) (*app, error) {
		return wire(ctx, opts)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAskCmd(lazy),
		newDataCmd(lazy),
	)
	return rootCmd
}
