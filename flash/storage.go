package flash

import (
	"iter"

	"github.com/joshuapare/mramflash/flash/area"
)

// Storage is the contract consumed by image verification and swap logic.
type Storage interface {
	Open(id area.ID) (*area.Area, error)
	Close(a *area.Area)
	Read(a *area.Area, off uint32, dst []byte) error
	Write(a *area.Area, off uint32, src []byte) error
	Erase(a *area.Area, off, length uint32) error
	Align(a *area.Area) uint32
	ErasedVal(a *area.Area) uint8
	Sector(a *area.Area, off uint32) area.Sector
	Sectors(id area.ID) (iter.Seq[area.Sector], error)
	IDFromMultiImageSlot(image, slot int) (area.ID, error)
	IDFromSlot(slot int) (area.ID, error)
}

var _ Storage = (*Backend)(nil)
