// Package cli implements the taskenginedemo command-line interface using Cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskenginedemo",
	Short: "Drive the task engine from the command line",
	Long: `taskenginedemo submits tasks to a taskengine executor and reports
on their outcome. It exists to exercise the library interactively; it is
not part of the library's public surface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
