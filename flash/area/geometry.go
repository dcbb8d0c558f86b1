package area

import "github.com/joshuapare/mramflash/internal/format"

// Align returns the write block size of a. It is the same for every area.
func Align(*Area) uint32 {
	return format.WriteSize
}

// ErasedVal returns the value read back from an erased byte of a.
// MRAM reads 0x00 after erase, not the 0xFF common to NOR flash.
func ErasedVal(*Area) uint8 {
	return format.EraseValue
}

// SectorOf returns the sector containing the area-relative offset off.
// The offset is floored to a sector boundary and is not clamped to the area.
func SectorOf(_ *Area, off uint32) Sector {
	return Sector{Off: format.SectorFloor(off), Size: format.SectorSize}
}
