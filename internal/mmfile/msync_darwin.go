//go:build darwin

package mmfile

import "golang.org/x/sys/unix"

// msyncRange syncs the whole mapping.
//
// On macOS, msync() requires the address to match the original mmap() address,
// so sub-slices cannot be passed. The kernel only writes pages that are dirty.
func msyncRange(data []byte, _, _ int) error {
	return unix.Msync(data, unix.MS_SYNC)
}

// fdatasync uses F_FULLFSYNC so data reaches the physical disk, not just the drive cache.
func fdatasync(fd int) error {
	_, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0)
	return err
}
