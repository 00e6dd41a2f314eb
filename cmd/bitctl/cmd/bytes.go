package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregLibert/bit-manip/pkg/endian"
)

var (
	bytesOrder string
	bytesSize  int
)

// bytesCmd represents the bytes command
var bytesCmd = &cobra.Command{
	Use:   "bytes <hex>",
	Short: "Serialize a value into a byte buffer",
	Long: `Serialize a value into a buffer of --size bytes using the
requested byte order. An undersized buffer receives the value's
least-significant bytes and the command reports the truncation.

Example:
  bitctl bytes 12345678 --order swapped --size 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := parseHexValue(args[0])
		if err != nil {
			return err
		}
		order, err := parseOrder(bytesOrder)
		if err != nil {
			return err
		}

		size := bytesSize
		if size < 0 {
			return fmt.Errorf("invalid buffer size %d", size)
		}
		if size == 0 {
			size = int(h.width / 8)
		}

		buf := make([]byte, size)
		var complete bool
		switch h.width {
		case 8:
			complete = endian.WriteBytes(uint8(h.v), buf, order)
		case 16:
			complete = endian.WriteBytes(uint16(h.v), buf, order)
		case 32:
			complete = endian.WriteBytes(uint32(h.v), buf, order)
		default:
			complete = endian.WriteBytes(h.v, buf, order)
		}

		fmt.Printf("% X\n", buf)
		if !complete {
			fmt.Printf("(truncated: value needs %d bytes, buffer holds %d)\n", h.width/8, size)
		}
		return nil
	},
}

func parseOrder(s string) (endian.Order, error) {
	switch s {
	case "native":
		return endian.Native, nil
	case "swapped":
		return endian.Swapped, nil
	default:
		return endian.Native, fmt.Errorf("unknown byte order %q (use native or swapped)", s)
	}
}

func init() {
	bytesCmd.Flags().StringVar(&bytesOrder, "order", "native", "Byte order: native or swapped")
	bytesCmd.Flags().IntVar(&bytesSize, "size", 0, "Buffer size in bytes (default: the value's own size)")
	rootCmd.AddCommand(bytesCmd)
}
