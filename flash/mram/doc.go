// Package mram implements the physical block I/O capability for MRAM and the
// aligned write engine built on top of it.
//
// # Device Contract
//
// MRAM is byte-addressable for reads but only accepts writes of whole 16-byte
// blocks starting on a 16-byte boundary. It has no erase operation; erase is
// emulated by programming the erased value (0x00). The Device interface is the
// only place physical memory is touched:
//
//   - ReadAt(p, addr): copy len(p) bytes starting at any physical address
//   - WriteBlock(addr, b): program one aligned block
//
// Two devices are provided: Memory (a byte slice at a base address) and File
// (a read/write memory mapping of an image file with dirty page tracking).
//
// # Engine
//
// Engine turns area-relative, arbitrarily aligned requests into block
// programs:
//
//	[head: read-modify-write] [full blocks: direct program] [tail: read-modify-write]
//
// Bytes outside the requested range are preserved bit-for-bit because every
// partial block is read back before it is reprogrammed.
//
// # Usage
//
//	dev := mram.NewMemory(0x80000000, 0x580000)
//	eng := mram.NewEngine(dev)
//
//	a, _ := area.Default.Open(area.Image0Secondary)
//	if err := eng.Write(a, 3, payload); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Engines and devices are not thread-safe. The storage layer runs before any
// scheduler exists; callers serialize access to a device themselves.
package mram
