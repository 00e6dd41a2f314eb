package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bitctl",
	Short: "bitctl - bit-field and byte-order toolbox",
	Long: `bitctl exposes the bit-range engine and the byte-order codec on
hex-encoded values. The value's width (8, 16, 32 or 64 bits) is inferred
from the number of hex digits.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
