package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregLibert/bit-manip/pkg/bits"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear <hex> <begin> <count>",
	Short: "Clear a bit range of a value",
	Long: `Clear count bits starting at bit begin. A count covering the
whole width clears the entire value.

Example:
  bitctl clear 12345678 0 8`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := parseHexValue(args[0])
		if err != nil {
			return err
		}
		begin, err := parseOffset(args[1])
		if err != nil {
			return err
		}
		count, err := parseOffset(args[2])
		if err != nil {
			return err
		}

		var result uint64
		switch h.width {
		case 8:
			result = uint64(bits.ClearBits(uint8(h.v), begin, count))
		case 16:
			result = uint64(bits.ClearBits(uint16(h.v), begin, count))
		case 32:
			result = uint64(bits.ClearBits(uint32(h.v), begin, count))
		default:
			result = bits.ClearBits(h.v, begin, count)
		}

		fmt.Println(h.format(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
