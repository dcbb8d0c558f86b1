package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mramflash/flash/area"
)

func init() {
	rootCmd.AddCommand(newSectorsCmd())
	rootCmd.AddCommand(newSectorCmd())
}

func newSectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sectors <area>",
		Short: "List the nominal sectors of an area",
		Long: `The sectors command enumerates an area in 1 KiB sectors. The last sector is
reported at full size even when the area ends inside it.

Example:
  mramctl sectors scratch
  mramctl sectors primary --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSectors(args)
		},
	}
}

func newSectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sector <area> <offset>",
		Short: "Show the sector containing an area offset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSector(args)
		},
	}
}

func runSectors(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := cfg.Map()
	if err != nil {
		return err
	}
	id, err := area.ParseID(args[0])
	if err != nil {
		return err
	}

	sectors, err := m.SectorList(id)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(sectors)
	}
	printHeading("%s: %d sectors\n", id, len(sectors))
	for i, s := range sectors {
		printInfo("  %4d  0x%06X  %d\n", i, s.Off, s.Size)
	}
	return nil
}

func runSector(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := cfg.Map()
	if err != nil {
		return err
	}
	id, err := area.ParseID(args[0])
	if err != nil {
		return err
	}
	a, err := m.Open(id)
	if err != nil {
		return err
	}
	off, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		return err
	}

	s := area.SectorOf(a, uint32(off))
	if jsonOut {
		return printJSON(s)
	}
	printInfo("%s+0x%X is in sector 0x%X (%d bytes)\n", id, off, s.Off, s.Size)
	return nil
}
