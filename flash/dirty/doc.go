// Package dirty provides page-level dirty tracking for MRAM image files.
//
// # Overview
//
// A file-backed MRAM device is a shared memory mapping of an image file.
// Block writes land in the mapping immediately, but nothing guarantees they
// reach the file until the mapping is synced. This package records which
// byte ranges were programmed and flushes only those, rounded to whole pages.
//
// # Usage
//
//	tracker := dirty.NewTracker(mmfile.PageSize())
//
//	// After programming the 16-byte block at image offset 0x10010
//	tracker.Add(0x10010, 16)
//
//	// Persist every dirty page, then fdatasync
//	err := tracker.Flush(ctx, mapping, dirty.FlushFull)
//
// # Page-Level Granularity
//
// Ranges are coalesced at flush time:
//
//   - starts are rounded down and ends rounded up to page boundaries
//
//   - overlapping or adjacent pages are merged
//
//     Dirty pages: [0, 1, 2, 5, 6] → Ranges: [0x0-0x3000, 0x5000-0x7000]
//
// # Thread Safety
//
// Tracker instances are not thread-safe. The storage layer is single-threaded
// by construction, so callers never share a tracker across goroutines.
package dirty
