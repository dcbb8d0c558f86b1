//go:build !unix

package mmfile

import (
	"fmt"
	"io"
	"os"
)

// Map loads the whole image into memory when mmap is not available.
// Sync writes modified ranges back to the file.
func Map(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.Size() == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: empty image file: %s", path)
	}
	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		_ = f.Close()
		return nil, err
	}
	return &File{f: f, data: data}, nil
}

// PageSize returns the granularity Sync ranges should be aligned to.
func PageSize() int { return 4096 }

// Sync writes [off, off+n) of the in-memory copy back to the file.
func (m *File) Sync(off, n int) error {
	if m.data == nil {
		return ErrClosed
	}
	if off < 0 || n <= 0 || off >= len(m.data) {
		return nil
	}
	if off+n > len(m.data) {
		n = len(m.data) - off
	}
	_, err := m.f.WriteAt(m.data[off:off+n], int64(off))
	return err
}

// Datasync flushes file data to stable storage.
func (m *File) Datasync() error {
	if m.f == nil {
		return ErrClosed
	}
	return m.f.Sync()
}

// Close releases the copy and closes the file. Calling Close twice is a no-op.
func (m *File) Close() error {
	m.data = nil
	if m.f == nil {
		return nil
	}
	err := m.f.Close()
	m.f = nil
	return err
}
