//go:build unix && !darwin

package mmfile

import "golang.org/x/sys/unix"

// msyncRange flushes a page-aligned sub-range of the mapping.
func msyncRange(data []byte, off, n int) error {
	return unix.Msync(data[off:off+n], unix.MS_SYNC)
}

func fdatasync(fd int) error {
	return unix.Fsync(fd)
}
