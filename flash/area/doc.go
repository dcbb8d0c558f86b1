// Package area is the registry of logical MRAM regions used by the bootloader.
//
// # Overview
//
// MRAM is carved into a fixed sequence of contiguous, disjoint areas:
//
//	[bootloader] [primary slot] [secondary slot] [scratch (optional)]
//
// The table is fully determined by a Layout resolved once at initialization
// and is never mutated afterwards. Lookups are linear over at most four
// entries and have no side effects.
//
// # Identifiers
//
//   - Bootloader (0): the bootloader itself
//   - Image0Primary (1): the running image for image index 0
//   - Image0Secondary (2): the upgrade candidate for image index 0
//   - ImageScratch (3): swap scratch, present only with SwapUsingScratch
//
// # Geometry
//
// Areas report a fixed 16-byte write alignment, an erased value of 0x00 and
// nominal 1 KiB sectors. Sector boundaries are computed by integer division
// and are not clipped to the end of an area: the last sector of an area whose
// size is not a sector multiple is still reported with the full nominal size.
package area
