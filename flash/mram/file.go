package mram

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joshuapare/mramflash/flash/dirty"
	"github.com/joshuapare/mramflash/internal/format"
	"github.com/joshuapare/mramflash/internal/mmfile"
)

// File is a Device backed by an MRAM image file mapped read/write.
// Programmed blocks are tracked and written back by Flush.
type File struct {
	*Memory
	m     *mmfile.File
	dirty *dirty.Tracker
}

// CreateFile creates (or truncates) an erased image of size bytes at path.
func CreateFile(path string, size uint32) error {
	if size == 0 {
		return errors.New("mram: image size is zero")
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if format.EraseValue == 0 {
		err = f.Truncate(int64(size))
	} else {
		erased := make([]byte, size)
		for i := range erased {
			erased[i] = format.EraseValue
		}
		_, err = f.Write(erased)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("mram: create image %s: %w", path, err)
	}
	return f.Close()
}

// OpenFile maps the image at path as a device whose first byte lives at base.
func OpenFile(path string, base uint32) (*File, error) {
	m, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	tracker := dirty.NewTracker(mmfile.PageSize())
	mem, err := NewMemoryFrom(base, m.Bytes(), tracker)
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	return &File{Memory: mem, m: m, dirty: tracker}, nil
}

// Base returns the physical address of the first byte of the device.
func (f *File) Base() uint32 {
	if f.m == nil {
		return 0
	}
	return f.Memory.Base()
}

// Size returns the device capacity in bytes, or 0 once closed.
func (f *File) Size() uint32 {
	if f.m == nil {
		return 0
	}
	return f.Memory.Size()
}

// Bytes exposes the mapped contents, or nil once closed.
func (f *File) Bytes() []byte {
	if f.m == nil {
		return nil
	}
	return f.Memory.Bytes()
}

// ReadAt copies len(p) bytes starting at addr.
func (f *File) ReadAt(p []byte, addr uint32) error {
	if f.m == nil {
		return fmt.Errorf("mram: read 0x%08X: %w", addr, ErrClosed)
	}
	return f.Memory.ReadAt(p, addr)
}

// WriteBlock programs b at addr and marks the block dirty.
func (f *File) WriteBlock(addr uint32, b *Block) error {
	if f.m == nil {
		return fmt.Errorf("mram: program block 0x%08X: %w", addr, ErrClosed)
	}
	return f.Memory.WriteBlock(addr, b)
}

// Dirty returns the page ranges programmed since the last flush.
func (f *File) Dirty() []dirty.Range {
	return f.dirty.Ranges()
}

// Flush writes every programmed page back to the image file and syncs it.
func (f *File) Flush(ctx context.Context) error {
	if f.m == nil {
		return ErrClosed
	}
	return f.dirty.Flush(ctx, f.m, dirty.FlushFull)
}

// Close flushes pending writes and unmaps the image.
func (f *File) Close() error {
	if f.m == nil {
		return nil
	}
	flushErr := f.dirty.Flush(context.Background(), f.m, dirty.FlushFull)
	closeErr := f.m.Close()
	f.m = nil
	f.Memory = nil
	if flushErr != nil {
		return fmt.Errorf("mram: flush on close: %w", flushErr)
	}
	return closeErr
}
