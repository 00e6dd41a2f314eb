package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gregLibert/bit-manip/pkg/flagfield"
)

// flagsCmd represents the flags command
var flagsCmd = &cobra.Command{
	Use:   "flags <tlv-hex>...",
	Short: "Decode an Application Interchange Profile from TLV data",
	Long: `Decode the EMV Application Interchange Profile (tag 82) from
hex-encoded BER-TLV data and report which flags are set. The tag may sit
inside a constructed template.

Example:
  bitctl flags "77 0A 82 02 1980 94 04 08010100"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clean := strings.ReplaceAll(strings.Join(args, ""), " ", "")
		data, err := hex.DecodeString(clean)
		if err != nil {
			return fmt.Errorf("invalid TLV hex: %w", err)
		}

		reg, err := flagfield.Parse(flagfield.AIP(), data)
		if err != nil {
			return err
		}

		fmt.Println(reg.Describe())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(flagsCmd)
}
