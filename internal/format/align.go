package format

// Alignment utilities for MRAM physical addresses.
// Writes must be block aligned; geometry is reported in whole sectors.

// AlignDown returns addr rounded down to the start of its write block.
//
// Example:
//
//	AlignDown(0x10003) = 0x10000
//	AlignDown(0x10010) = 0x10010
func AlignDown(addr uint32) uint32 {
	return addr & AddrAlignMask
}

// AlignUp returns n aligned up to the next write block boundary.
//
// Example:
//
//	AlignUp(1)  = 16
//	AlignUp(16) = 16
//	AlignUp(17) = 32
func AlignUp(n uint32) uint32 {
	return (n + WriteAlignmentMask) & AddrAlignMask
}

// BlockOffset returns the position of addr inside its write block.
func BlockOffset(addr uint32) uint32 {
	return addr & WriteAlignmentMask
}

// IsAligned reports whether n is a multiple of the write block size.
func IsAligned(n uint32) bool {
	return n%WriteSize == 0
}

// SectorFloor returns off rounded down to a multiple of SectorSize.
// The result is not clipped to any region boundary.
func SectorFloor(off uint32) uint32 {
	return (off / SectorSize) * SectorSize
}

// SectorCount returns how many nominal sectors are needed to cover size bytes.
func SectorCount(size uint32) uint32 {
	n := size / SectorSize
	if size%SectorSize != 0 {
		n++
	}
	return n
}
