package mram

import "github.com/joshuapare/mramflash/internal/format"

// Block is one physically atomic MRAM write unit.
type Block [format.WriteSize]byte

// Fill sets every byte of the block to v.
func (b *Block) Fill(v byte) {
	for i := range b {
		b[i] = v
	}
}

// Device is the narrow physical I/O capability the engine is written against.
type Device interface {
	// ReadAt copies len(p) bytes starting at physical address addr.
	ReadAt(p []byte, addr uint32) error

	// WriteBlock programs b at physical address addr, which must be block aligned.
	WriteBlock(addr uint32, b *Block) error
}
