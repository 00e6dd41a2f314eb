package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregLibert/bit-manip/pkg/bits"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <hex> <begin> <count>",
	Short: "Extract a bit range from a value",
	Long: `Extract count bits starting at bit begin (counted from the
least-significant bit), right-aligned in the result.

Example:
  bitctl get 12345678 8 16`,
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
			result = uint64(bits.GetBits(uint8(h.v), begin, count))
		case 16:
			result = uint64(bits.GetBits(uint16(h.v), begin, count))
		case 32:
			result = uint64(bits.GetBits(uint32(h.v), begin, count))
		default:
			result = bits.GetBits(h.v, begin, count)
		}

		fmt.Println(h.format(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
