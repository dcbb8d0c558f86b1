package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	writeOffset uint32
	writeFile   string
	writeHex    string
)

func init() {
	cmd := newWriteCmd()
	cmd.Flags().Uint32VarP(&writeOffset, "offset", "o", 0, "Offset from the start of the area")
	cmd.Flags().StringVar(&writeFile, "file", "", "File whose contents are written")
	cmd.Flags().StringVar(&writeHex, "hex", "", "Hex string to write (e.g. deadbeef)")
	rootCmd.AddCommand(cmd)
}

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <area>",
		Short: "Write bytes into an area",
		Long: `The write command programs data at any offset of an area. Partial blocks
are read, patched and reprogrammed so surrounding bytes are preserved.

Example:
  mramctl write secondary --file app.signed.bin
  mramctl write primary --offset 0x13 --hex cafe`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(args)
		},
	}
}

func writePayload() ([]byte, error) {
	switch {
	case writeFile != "" && writeHex != "":
		return nil, errors.New("--file and --hex are mutually exclusive")
	case writeFile != "":
		return os.ReadFile(writeFile)
	case writeHex != "":
		return hex.DecodeString(strings.TrimPrefix(writeHex, "0x"))
	default:
		return nil, errors.New("nothing to write: pass --file or --hex")
	}
}

func runWrite(args []string) error {
	data, err := writePayload()
	if err != nil {
		return err
	}

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

	if err := b.Write(a, writeOffset, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.ID(), err)
	}
	if err := f.Flush(context.Background()); err != nil {
		return fmt.Errorf("failed to flush image: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"area":   a.ID().String(),
			"offset": writeOffset,
			"length": len(data),
		})
	}
	printInfo("Wrote %d bytes to %s+0x%X\n", len(data), a.ID(), writeOffset)
	return nil
}
