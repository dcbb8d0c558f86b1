package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/mramflash/flash/area"
)

func init() {
	rootCmd.AddCommand(newLayoutCmd())
}

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "List the areas of the configured MRAM layout",
		Long: `The layout command prints every area of the registry in address order.
It does not need an image file.

Example:
  mramctl layout
  mramctl layout --config board.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout()
		},
	}
}

type areaInfo struct {
	ID     area.ID `json:"id"`
	Name   string  `json:"name"`
	Device uint8   `json:"device"`
	Off    uint32  `json:"off"`
	Size   uint32  `json:"size"`
	Align  uint32  `json:"align"`
	Erased uint8   `json:"erased_value"`
}

func runLayout() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := cfg.Map()
	if err != nil {
		return err
	}

	areas := m.Areas()
	infos := make([]areaInfo, 0, len(areas))
	for _, a := range areas {
		infos = append(infos, areaInfo{
			ID:     a.ID(),
			Name:   a.ID().String(),
			Device: a.DeviceID(),
			Off:    a.Off(),
			Size:   a.Size(),
			Align:  area.Align(a),
			Erased: area.ErasedVal(a),
		})
	}

	if jsonOut {
		return printJSON(infos)
	}

	l := m.Layout()
	printHeading("MRAM 0x%08X, %s\n", l.DeviceBase, humanize.IBytes(uint64(l.DeviceSize)))
	printInfo("  %-3s %-11s %-6s %-10s %-10s %s\n", "ID", "NAME", "DEV", "START", "END", "SIZE")
	for _, a := range areas {
		printInfo("  %-3d %-11s %-6d %-10s %-10s %s\n",
			a.ID(), a.ID(), a.DeviceID(),
			fmt.Sprintf("0x%08X", a.Off()), fmt.Sprintf("0x%08X", a.End()),
			humanize.IBytes(uint64(a.Size())))
	}
	printVerbose("  used %s of %s\n", humanize.IBytes(l.Used()), humanize.IBytes(uint64(l.DeviceSize)))
	return nil
}
