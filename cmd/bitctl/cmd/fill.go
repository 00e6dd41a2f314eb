package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregLibert/bit-manip/pkg/bits"
)

// fillCmd represents the fill command
var fillCmd = &cobra.Command{
	Use:   "fill <hex> <begin> <count>",
	Short: "Fill a bit range of a value with ones",
	Long: `Set every bit of the range [begin, begin+count) to one. Ranges
crossing the width boundary are clamped.

Example:
  bitctl fill 12345678 24 8`,
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
			result = uint64(bits.FillBits(uint8(h.v), begin, count))
		case 16:
			result = uint64(bits.FillBits(uint16(h.v), begin, count))
		case 32:
			result = uint64(bits.FillBits(uint32(h.v), begin, count))
		default:
			result = bits.FillBits(h.v, begin, count)
		}

		fmt.Println(h.format(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)
}
