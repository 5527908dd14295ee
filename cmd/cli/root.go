// Package cli implements the veilscan command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "veilscan",
	Short:   "Digital-footprint risk assessment toolkit",
	Long:    `veilscan evaluates breach, social-exposure and behavioral evidence into a risk score with remediation recommendations.`,
	Version: version,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
