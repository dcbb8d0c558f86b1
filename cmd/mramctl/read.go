package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mramflash/flash"
	"github.com/joshuapare/mramflash/internal/buf"
)

var (
	readOffset uint32
	readLength uint32
	readOut    string
)

func init() {
	cmd := newReadCmd()
	cmd.Flags().Uint32VarP(&readOffset, "offset", "o", 0, "Offset from the start of the area")
	cmd.Flags().Uint32VarP(&readLength, "length", "n", 256, "Number of bytes to read")
	cmd.Flags().StringVar(&readOut, "out", "", "Write the raw bytes to this file instead of dumping them")
	rootCmd.AddCommand(cmd)
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <area>",
		Short: "Read bytes from an area",
		Long: `The read command copies a byte range out of an area and prints a hex dump.

Example:
  mramctl read primary --offset 0x20 --length 64
  mramctl read 2 --length 0x10000 --out secondary.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(args)
		},
	}
}

func runRead(args []string) error {
	b, f, _, err := openBackend()
	if err != nil {
		return err
	}
	defer f.Close()

	a, err := openArea(b, args[0])
	if err != nil {
		return err
	}
	defer b.Close(a)

	if !buf.Within(a.Size(), readOffset, readLength) {
		return fmt.Errorf("failed to read %s: %w: 0x%X+0x%X past size 0x%X",
			a.ID(), flash.ErrOutOfRange, readOffset, readLength, a.Size())
	}

	data := make([]byte, readLength)
	if err := b.Read(a, readOffset, data); err != nil {
		return fmt.Errorf("failed to read %s: %w", a.ID(), err)
	}

	if readOut != "" {
		if err := os.WriteFile(readOut, data, 0o644); err != nil {
			return err
		}
		printInfo("Wrote %d bytes from %s+0x%X to %s\n", len(data), a.ID(), readOffset, readOut)
		return nil
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"area":   a.ID().String(),
			"offset": readOffset,
			"length": readLength,
			"data":   hex.EncodeToString(data),
		})
	}

	printVerbose("%s at 0x%08X\n", a.ID(), a.Off()+readOffset)
	printInfo("%s", hex.Dump(data))
	return nil
}
