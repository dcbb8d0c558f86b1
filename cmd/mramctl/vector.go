package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/mramflash/flash/area"
	"github.com/joshuapare/mramflash/flash/boot"
)

var (
	vectorHeaderSize uint32
	vectorHeaderSet  bool
)

func init() {
	cmd := newVectorCmd()
	cmd.Flags().Uint32Var(&vectorHeaderSize, "header-size", 0, "Image header size (defaults to image.header_size)")
	rootCmd.AddCommand(cmd)
}

func newVectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vector <area>",
		Short: "Show the hand-off address and vector table of an image",
		Long: `The vector command reads the initial stack pointer and reset handler that
follow the image header, i.e. where the bootloader would jump.

Example:
  mramctl vector primary --header-size 0x400`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vectorHeaderSet = cmd.Flags().Changed("header-size")
			return runVector(args)
		},
	}
}

func runVector(args []string) error {
	b, f, cfg, err := openBackend()
	if err != nil {
		return err
	}
	defer f.Close()

	id, err := area.ParseID(args[0])
	if err != nil {
		return err
	}
	hdr := cfg.Image.Header()
	if vectorHeaderSet {
		hdr = vectorHeaderSize
	}

	target, err := boot.Load(b, id, hdr)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(target)
	}
	printHeading("%s image at 0x%08X\n", id, target.ImageAddress)
	printInfo("  msp:   0x%08X\n", target.Vectors.MSP)
	printInfo("  reset: 0x%08X\n", target.Vectors.Reset)
	return nil
}
