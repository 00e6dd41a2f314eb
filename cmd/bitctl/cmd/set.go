package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregLibert/bit-manip/pkg/bits"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <hex> <bits-hex> <begin> <count>",
	Short: "Overwrite a bit range of a value",
	Long: `Overwrite count bits starting at bit begin with the low count
bits of the second value. Ranges crossing the width boundary are clamped.

Example:
  bitctl set 12345678 FFFF 0 16`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := parseHexValue(args[0])
		if err != nil {
			return err
		}
		src, err := parseHexValue(args[1])
		if err != nil {
			return err
		}
		begin, err := parseOffset(args[2])
		if err != nil {
			return err
		}
		count, err := parseOffset(args[3])
		if err != nil {
			return err
		}

		var result uint64
		switch h.width {
		case 8:
			result = uint64(bits.SetBits(uint8(h.v), src.v, begin, count))
		case 16:
			result = uint64(bits.SetBits(uint16(h.v), src.v, begin, count))
		case 32:
			result = uint64(bits.SetBits(uint32(h.v), src.v, begin, count))
		default:
			result = bits.SetBits(h.v, src.v, begin, count)
		}

		fmt.Println(h.format(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
