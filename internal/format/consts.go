// Package format houses the physical constants of the MRAM device and the
// address arithmetic derived from them. The goal is to keep every magic
// number of the storage layer in one place so higher-level packages never
// hard-code a block or sector size.
package format

const (
	// WriteSize is the size in bytes of one physically atomic MRAM write.
	// Every program operation covers exactly one block of this size and must
	// start on an address aligned to it.
	WriteSize = 16

	// WriteAlignmentMask is the bitmask used for aligning to write blocks (WriteSize - 1).
	WriteAlignmentMask = WriteSize - 1

	// AddrAlignMask clears the in-block bits of a 32-bit physical address.
	AddrAlignMask uint32 = 0xFFFFFFF0

	// SectorSize is the nominal erase-granularity unit reported by geometry
	// queries. It is independent of region boundaries.
	SectorSize = 1024

	// EraseValue is the byte read back from an erased MRAM location.
	// MRAM has no native erase, so erase is emulated by programming this value.
	EraseValue = 0x00

	// WordSize is the width of a single store issued when programming a block.
	// A block is written as two consecutive 64-bit stores.
	WordSize = 8

	// WordsPerBlock is the number of stores per block write.
	WordsPerBlock = WriteSize / WordSize
)

const (
	// DefaultDeviceBase is the physical address where MRAM is mapped.
	DefaultDeviceBase uint32 = 0x80000000

	// DefaultDeviceSize is the MRAM capacity in bytes.
	DefaultDeviceSize uint32 = 0x580000

	// DefaultBootloaderStart is the offset of the bootloader area from the device base.
	DefaultBootloaderStart uint32 = 0x0

	// DefaultBootloaderSize is the size of the bootloader area.
	DefaultBootloaderSize uint32 = 0x10000

	// DefaultPrimarySize is the size of the primary image slot.
	DefaultPrimarySize uint32 = 0x10000

	// DefaultSecondarySize is the size of the secondary image slot.
	DefaultSecondarySize uint32 = 0x10000

	// DefaultScratchSize is the size of the scratch area used by swap-using-scratch.
	DefaultScratchSize uint32 = 0x1000
)
