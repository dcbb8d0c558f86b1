package mram

import (
	"fmt"

	"github.com/joshuapare/mramflash/flash/dirty"
	"github.com/joshuapare/mramflash/internal/buf"
	"github.com/joshuapare/mramflash/internal/format"
)

// Memory is a Device backed by a byte slice mapped at a physical base address.
type Memory struct {
	base  uint32
	data  []byte
	dirty dirty.DirtyTracker
}

// NewMemory returns an erased device of size bytes mapped at base.
func NewMemory(base, size uint32) *Memory {
	data := make([]byte, size)
	if format.EraseValue != 0 {
		for i := range data {
			data[i] = format.EraseValue
		}
	}
	return &Memory{base: base, data: data}
}

// NewMemoryFrom wraps data as a device mapped at base. Writes modify data.
// Each programmed block is reported to tracker when it is non-nil.
func NewMemoryFrom(base uint32, data []byte, tracker dirty.DirtyTracker) (*Memory, error) {
	if uint64(len(data)) > uint64(^uint32(0))-uint64(base)+1 {
		return nil, fmt.Errorf("mram: %d bytes at 0x%08X exceed the 32-bit address space", len(data), base)
	}
	return &Memory{base: base, data: data, dirty: tracker}, nil
}

// Base returns the physical address of the first byte of the device.
func (m *Memory) Base() uint32 { return m.base }

// Size returns the device capacity in bytes.
func (m *Memory) Size() uint32 { return uint32(len(m.data)) }

// Bytes exposes the raw contents.
func (m *Memory) Bytes() []byte { return m.data }

// window translates a physical range into a slice of the backing store.
func (m *Memory) window(addr uint32, n int) ([]byte, error) {
	if addr < m.base {
		return nil, fmt.Errorf("%w: 0x%08X below base 0x%08X", ErrAddress, addr, m.base)
	}
	off := int(addr - m.base)
	p, ok := buf.Slice(m.data, off, n)
	if !ok {
		return nil, fmt.Errorf("%w: 0x%08X+%d past end 0x%08X",
			ErrAddress, addr, n, uint64(m.base)+uint64(len(m.data)))
	}
	return p, nil
}

// ReadAt copies len(p) bytes starting at addr. Reads have no alignment constraint.
func (m *Memory) ReadAt(p []byte, addr uint32) error {
	src, err := m.window(addr, len(p))
	if err != nil {
		return err
	}
	copy(p, src)
	return nil
}

// WriteBlock programs b at addr as two consecutive 64-bit stores.
func (m *Memory) WriteBlock(addr uint32, b *Block) error {
	if !format.IsAligned(addr) {
		return fmt.Errorf("%w: 0x%08X", ErrUnaligned, addr)
	}
	dst, err := m.window(addr, format.WriteSize)
	if err != nil {
		return err
	}
	for w := 0; w < format.WordsPerBlock; w++ {
		at := w * format.WordSize
		buf.PutU64LE(dst[at:], buf.U64LE(b[at:]))
	}
	if m.dirty != nil {
		m.dirty.Add(int(addr-m.base), format.WriteSize)
	}
	return nil
}
