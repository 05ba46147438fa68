// Command fitchcheck is a Fitch-style natural-deduction proof checker.
//
// It reads a proof written in the plain-text format documented by the
// parser package, verifies every inference line against the rules
// package, and reports either "correct" or every violated line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	noColor bool
	logger  *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "fitchcheck",
	Short: "Check Fitch-style natural-deduction proofs",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l.Sugar()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(checkCmd, fixCmd, replCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
