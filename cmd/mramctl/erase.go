package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	eraseOffset uint32
	eraseLength uint32
	eraseAll    bool
)

func init() {
	cmd := newEraseCmd()
	cmd.Flags().Uint32VarP(&eraseOffset, "offset", "o", 0, "Offset from the start of the area (16-byte aligned)")
	cmd.Flags().Uint32VarP(&eraseLength, "length", "n", 0, "Number of bytes to erase (multiple of 16)")
	cmd.Flags().BoolVar(&eraseAll, "all", false, "Erase the whole area")
	rootCmd.AddCommand(cmd)
}

func newEraseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "erase <area>",
		Short: "Erase a block-aligned range of an area",
		Long: `The erase command sets a range to the erased value (0x00). Offset and length
must both be multiples of the 16-byte write block; misaligned requests are
rejected without touching the image.

Example:
  mramctl erase scratch --all
  mramctl erase secondary --offset 0x400 --length 0x400`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runErase(args)
		},
	}
}

func runErase(args []string) error {
	if !eraseAll && eraseLength == 0 {
		return errors.New("nothing to erase: pass --length or --all")
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

	off, length := eraseOffset, eraseLength
	if eraseAll {
		off, length = 0, a.Size()
	}

	if err := b.Erase(a, off, length); err != nil {
		return fmt.Errorf("failed to erase %s: %w", a.ID(), err)
	}
	if err := f.Flush(context.Background()); err != nil {
		return fmt.Errorf("failed to flush image: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"area":   a.ID().String(),
			"offset": off,
			"length": length,
		})
	}
	printInfo("Erased %s+0x%X..0x%X\n", a.ID(), off, off+length)
	return nil
}
