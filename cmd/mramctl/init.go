package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/mramflash/flash/mram"
)

var initForce bool

func init() {
	cmd := newInitCmd()
	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing image")
	rootCmd.AddCommand(cmd)
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an erased MRAM image",
		Long: `The init command creates an image file the size of the configured device
with every byte set to the erased value.

Example:
  mramctl init --image mram.bin
  mramctl init --config board.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}
}

func runInit() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.Image.Path

	if _, statErr := os.Stat(path); statErr == nil && !initForce {
		return fmt.Errorf("image %s already exists (use --force to overwrite)", path)
	} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return statErr
	}

	if err := mram.CreateFile(path, cfg.Device.Size); err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"image": path,
			"size":  cfg.Device.Size,
		})
	}
	printInfo("Created %s (%s erased)\n", path, humanize.IBytes(uint64(cfg.Device.Size)))
	return nil
}
