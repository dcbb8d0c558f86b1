//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path read/write so writes land in the image in place.
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
	size := info.Size()
	if size == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: empty image file: %s", path)
	}
	if size > int64(^uint(0)>>1) {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: mmap failed: %w", err)
	}
	return &File{f: f, data: data}, nil
}

// PageSize returns the granularity Sync ranges should be aligned to.
func PageSize() int { return unix.Getpagesize() }

// Sync writes [off, off+n) of the mapping back to the file. off must be
// page aligned.
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
	return msyncRange(m.data, off, n)
}

// Datasync flushes file data held by the kernel to stable storage.
func (m *File) Datasync() error {
	if m.f == nil {
		return ErrClosed
	}
	return fdatasync(int(m.f.Fd()))
}

// Close unmaps the image and closes the file. Calling Close twice is a no-op.
func (m *File) Close() error {
	var err error
	if m.data != nil {
		if unmapErr := unix.Munmap(m.data); unmapErr != nil && !errors.Is(unmapErr, unix.EINVAL) {
			err = unmapErr
		}
		m.data = nil
	}
	if m.f != nil {
		if closeErr := m.f.Close(); err == nil {
			err = closeErr
		}
		m.f = nil
	}
	return err
}
