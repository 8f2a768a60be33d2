// Package cmd wires the core (internal/cst, internal/diag) into a
// cobra command tree, replacing the teacher's flag-based entrypoint
// (see SPEC_FULL AMBIENT STACK, "CLI").
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "bordsql",
		Short:        "bordsql",
		SilenceUsage: true,
		Long:         "bordsql parses SQLite-dialect SQL into a lossless concrete syntax tree.",
	}

	verbose bool
)

// Execute runs the command tree selected by os.Args.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return rootCmd.Execute()
}

func logger() *logrus.Logger {
	l := logrus.StandardLogger()
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func init() {
}
