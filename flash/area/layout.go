package area

import (
	"fmt"
	"math"

	"github.com/joshuapare/mramflash/internal/format"
)

// Layout is the build-time description of the MRAM map. The four sizes plus
// the device base fully determine the registry.
type Layout struct {
	DeviceBase      uint32 // Physical address of MRAM
	DeviceSize      uint32 // MRAM capacity in bytes
	BootloaderStart uint32 // Offset of the bootloader area from DeviceBase
	BootloaderSize  uint32
	PrimarySize     uint32
	SecondarySize   uint32
	ScratchSize     uint32

	// SwapUsingScratch exposes the scratch area in the registry.
	SwapUsingScratch bool

	// GetSectors enables whole-area sector enumeration.
	GetSectors bool
}

// DefaultLayout returns the stock single-image layout.
func DefaultLayout() Layout {
	return Layout{
		DeviceBase:       format.DefaultDeviceBase,
		DeviceSize:       format.DefaultDeviceSize,
		BootloaderStart:  format.DefaultBootloaderStart,
		BootloaderSize:   format.DefaultBootloaderSize,
		PrimarySize:      format.DefaultPrimarySize,
		SecondarySize:    format.DefaultSecondarySize,
		ScratchSize:      format.DefaultScratchSize,
		SwapUsingScratch: true,
		GetSectors:       true,
	}
}

// Used returns the number of device bytes consumed by the layout, counted
// from DeviceBase and including BootloaderStart.
func (l Layout) Used() uint64 {
	used := uint64(l.BootloaderStart) + uint64(l.BootloaderSize) +
		uint64(l.PrimarySize) + uint64(l.SecondarySize)
	if l.SwapUsingScratch {
		used += uint64(l.ScratchSize)
	}
	return used
}

// Validate checks that the layout fits the device and that every area
// starts on a write-block boundary.
func (l Layout) Validate() error {
	if l.DeviceSize == 0 {
		return fmt.Errorf("%w: device size is zero", ErrInvalidLayout)
	}
	if uint64(l.DeviceBase)+uint64(l.DeviceSize) > math.MaxUint32+1 {
		return fmt.Errorf("%w: device 0x%X+0x%X exceeds 32-bit address space",
			ErrInvalidLayout, l.DeviceBase, l.DeviceSize)
	}

	sizes := []struct {
		name string
		v    uint32
		used bool
	}{
		{"bootloader", l.BootloaderSize, true},
		{"primary", l.PrimarySize, true},
		{"secondary", l.SecondarySize, true},
		{"scratch", l.ScratchSize, l.SwapUsingScratch},
	}
	for _, s := range sizes {
		if !s.used {
			continue
		}
		if s.v == 0 {
			return fmt.Errorf("%w: %s size is zero", ErrInvalidLayout, s.name)
		}
		if !format.IsAligned(s.v) {
			return fmt.Errorf("%w: %s size 0x%X is not a multiple of %d",
				ErrInvalidLayout, s.name, s.v, format.WriteSize)
		}
	}

	if !format.IsAligned(l.DeviceBase) || !format.IsAligned(l.BootloaderStart) {
		return fmt.Errorf("%w: bootloader start 0x%X+0x%X is not %d-byte aligned",
			ErrInvalidLayout, l.DeviceBase, l.BootloaderStart, format.WriteSize)
	}

	if used := l.Used(); used > uint64(l.DeviceSize) {
		return fmt.Errorf("%w: areas need 0x%X bytes, device has 0x%X",
			ErrInvalidLayout, used, l.DeviceSize)
	}
	return nil
}
