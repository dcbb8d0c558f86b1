// Package boot resolves where control goes once a slot has been chosen.
//
// The image header is parsed elsewhere; this package only needs its size to
// find the Cortex-M vector table that follows it.
package boot

import (
	"fmt"

	"github.com/joshuapare/mramflash/flash"
	"github.com/joshuapare/mramflash/flash/area"
	"github.com/joshuapare/mramflash/internal/buf"
)

// vectorTableSize covers the initial stack pointer and the reset handler.
const vectorTableSize = 8

// VectorTable is the head of an ARMv7-M/ARMv8-M vector table.
type VectorTable struct {
	MSP   uint32 `json:"msp"`   // Initial main stack pointer
	Reset uint32 `json:"reset"` // Reset handler address
}

// Target is the hand-off point for a booted image.
type Target struct {
	Area         area.ID     `json:"area"`
	ImageAddress uint32      `json:"image_address"` // Absolute address of the vector table
	Vectors      VectorTable `json:"vectors"`
}

// Load reads the vector table of the image in area id, which starts hdrSize
// bytes into the area.
func Load(s flash.Storage, id area.ID, hdrSize uint32) (Target, error) {
	a, err := s.Open(id)
	if err != nil {
		return Target{}, err
	}
	defer s.Close(a)

	raw := make([]byte, vectorTableSize)
	if err := s.Read(a, hdrSize, raw); err != nil {
		return Target{}, fmt.Errorf("boot: vector table of %s: %w", id, err)
	}

	return Target{
		Area:         id,
		ImageAddress: a.Off() + hdrSize,
		Vectors: VectorTable{
			MSP:   buf.U32LE(raw[0:4]),
			Reset: buf.U32LE(raw[4:8]),
		},
	}, nil
}
