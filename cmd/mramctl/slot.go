package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mramflash/flash/area"
)

func init() {
	rootCmd.AddCommand(newSlotCmd())
}

func newSlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slot <image> <slot>",
		Short: "Resolve an image slot to an area identifier",
		Long: `The slot command maps an image index and slot number (0 primary,
1 secondary, 2 scratch) to the area that backs it.

Example:
  mramctl slot 0 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlot(args)
		},
	}
}

func runSlot(args []string) error {
	image, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	slot, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}

	id, err := area.IDFromMultiImageSlot(image, slot)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"image": image,
			"slot":  slot,
			"id":    id,
			"name":  id.String(),
		})
	}
	printInfo("image %d slot %d -> area %d (%s)\n", image, slot, id, id)
	return nil
}
