package mram

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/joshuapare/mramflash/flash/area"
	"github.com/joshuapare/mramflash/internal/buf"
	"github.com/joshuapare/mramflash/internal/format"
)

// Engine performs area-relative reads, writes and erases on a Device,
// honoring the 16-byte write block contract.
type Engine struct {
	dev Device
	log *slog.Logger
}

// NewEngine creates an engine over dev.
func NewEngine(dev Device, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{dev: dev, log: cfg.logger}
}

// Device returns the device the engine programs.
func (e *Engine) Device() Device { return e.dev }

// checkRange validates [off, off+n) against the area and returns the
// absolute start address.
func checkRange(a *area.Area, off uint32, n int) (uint32, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: length %d", ErrOutOfRange, n)
	}
	if _, err := buf.CheckRange(a.Size(), off, uint32(n)); err != nil {
		return 0, fmt.Errorf("%w: area %s: %v", ErrOutOfRange, a.ID(), err)
	}
	return a.Off() + off, nil
}

// Read copies len(dst) bytes starting at area offset off into dst.
func (e *Engine) Read(a *area.Area, off uint32, dst []byte) error {
	addr, err := checkRange(a, off, len(dst))
	if err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}
	if err := e.dev.ReadAt(dst, addr); err != nil {
		return fmt.Errorf("mram: read 0x%08X+%d: %w", addr, len(dst), err)
	}
	return nil
}

// Write programs src at area offset off.
//
// A leading partial block and a trailing partial block are read, patched and
// reprogrammed; every block in between is programmed directly from src. Each
// physical write is exactly one aligned block.
func (e *Engine) Write(a *area.Area, off uint32, src []byte) error {
	addr, err := checkRange(a, off, len(src))
	if err != nil {
		return err
	}

	data := src
	if inBlock := format.BlockOffset(addr); inBlock != 0 && len(data) > 0 {
		n := min(int(format.WriteSize-inBlock), len(data))
		if err := e.patch(format.AlignDown(addr), int(inBlock), data[:n]); err != nil {
			return err
		}
		data = data[n:]
		addr += uint32(n)
	}

	var blk Block
	for len(data) >= format.WriteSize {
		// src may sit at any alignment; stage it in a block-sized buffer.
		copy(blk[:], data[:format.WriteSize])
		if err := e.program(addr, &blk); err != nil {
			return err
		}
		data = data[format.WriteSize:]
		addr += format.WriteSize
	}

	if len(data) > 0 {
		return e.patch(addr, 0, data)
	}
	return nil
}

// Erase programs the erased value over [off, off+length) of the area.
// Both off and length must be block aligned; otherwise nothing is written.
func (e *Engine) Erase(a *area.Area, off, length uint32) error {
	if !format.IsAligned(a.Off()+off) || !format.IsAligned(length) {
		return fmt.Errorf("%w: area %s off 0x%X len 0x%X", ErrInvalidAlignment, a.ID(), off, length)
	}
	addr, err := checkRange(a, off, int(length))
	if err != nil {
		return err
	}

	e.log.Debug("erase", "area", a.ID().String(), "addr", hex(addr), "len", length)

	var erased Block
	erased.Fill(format.EraseValue)
	for i := uint32(0); i < length; i += format.WriteSize {
		if err := e.program(addr+i, &erased); err != nil {
			return err
		}
	}
	return nil
}

// patch reads the block at blockAddr, overwrites data at inBlock and programs it back.
func (e *Engine) patch(blockAddr uint32, inBlock int, data []byte) error {
	var blk Block
	if err := e.dev.ReadAt(blk[:], blockAddr); err != nil {
		return fmt.Errorf("mram: read block 0x%08X: %w", blockAddr, err)
	}
	copy(blk[inBlock:], data)

	e.log.Debug("read-modify-write", "addr", hex(blockAddr), "at", inBlock, "len", len(data))
	return e.program(blockAddr, &blk)
}

func (e *Engine) program(addr uint32, blk *Block) error {
	if err := e.dev.WriteBlock(addr, blk); err != nil {
		return fmt.Errorf("mram: program block 0x%08X: %w", addr, err)
	}
	return nil
}

func hex(addr uint32) string {
	return fmt.Sprintf("0x%08X", addr)
}
