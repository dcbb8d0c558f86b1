// Package flash provides the storage-access contract a bootloader uses to
// read, write and erase firmware images held in MRAM.
//
// # Overview
//
// Backend binds the area registry (package area) to the aligned write engine
// (package mram). Callers open an area by identifier and issue reads, writes,
// erases and geometry queries against it using area-relative offsets; all
// physical addressing happens inside.
//
//	b := flash.New(area.Default, mram.NewMemory(0x80000000, 0x580000))
//
//	a, err := b.Open(area.Image0Secondary)
//	if err != nil {
//	    return err
//	}
//	defer b.Close(a)
//
//	if err := b.Erase(a, 0, a.Size()); err != nil {
//	    return err
//	}
//	if err := b.Write(a, 0, image); err != nil {
//	    return err
//	}
//
// # Errors
//
// Every failure is returned synchronously and never retried. Use errors.Is
// with the sentinels re-exported here:
//
//   - ErrNotFound: unknown area identifier
//   - ErrInvalidSlot: unsupported image/slot pair
//   - ErrInvalidAlignment: erase range not block aligned
//   - ErrWrongDevice: geometry query against a non-MRAM area
//   - ErrOutOfRange: request extends past the end of the area
//
// # Thread Safety
//
// A Backend is not thread-safe. Concurrent opens of one area return the same
// handle; serializing writes to it is the caller's job.
package flash
