package dirty

import (
	"cmp"
	"context"
	"slices"
)

const (
	// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
	defaultRangeCapacity = 64

	// standardPageSize is used when the caller passes a non-positive page size.
	standardPageSize = 4096
)

// FlushMode controls durability guarantees for Flush.
type FlushMode int

const (
	// FlushDataOnly only syncs dirty pages of the mapping.
	// The caller is responsible for a later Datasync.
	FlushDataOnly FlushMode = iota

	// FlushFull syncs dirty pages and then the file descriptor.
	// Use this before handing an image to anything that reads the file directly.
	FlushFull
)

// Range represents a dirty byte range (absolute image offsets).
type Range struct {
	Off int64 // Absolute offset in image
	Len int64 // Length in bytes
}

// End returns the first offset past the range.
func (r Range) End() int64 { return r.Off + r.Len }

// Tracker accumulates dirty ranges and flushes them page by page.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	ranges   []Range // Dirty ranges (coalesced at flush time)
	pageSize int64
}

// NewTracker creates a dirty tracker that coalesces to pageSize boundaries.
func NewTracker(pageSize int) *Tracker {
	if pageSize <= 0 {
		pageSize = standardPageSize
	}
	return &Tracker{
		ranges:   make([]Range, 0, defaultRangeCapacity),
		pageSize: int64(pageSize),
	}
}

// Add records a dirty range. Zero or negative lengths are ignored.
func (t *Tracker) Add(off, length int) {
	if length <= 0 || off < 0 {
		return
	}
	t.ranges = append(t.ranges, Range{
		Off: int64(off),
		Len: int64(length),
	})
}

// Pending returns the number of raw ranges recorded since the last flush.
func (t *Tracker) Pending() int {
	return len(t.ranges)
}

// Ranges returns the coalesced, page-aligned ranges that Flush would sync.
func (t *Tracker) Ranges() []Range {
	return t.coalesce()
}

// Reset clears all tracked ranges without flushing them.
func (t *Tracker) Reset() {
	t.ranges = t.ranges[:0]
}

// Flush syncs every dirty page through s and clears the tracker.
//
// With FlushFull the file descriptor is synced after the pages. If ctx is
// cancelled part way through, some ranges may have been synced while others
// have not; the tracker keeps all ranges so a retry covers them again.
func (t *Tracker) Flush(ctx context.Context, s Syncer, mode FlushMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, r := range t.coalesce() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Sync(int(r.Off), int(r.Len)); err != nil {
			return err
		}
	}

	if mode == FlushFull {
		if err := s.Datasync(); err != nil {
			return err
		}
	}

	t.ranges = t.ranges[:0]
	return nil
}

// coalesce page-aligns all ranges, sorts them, and merges overlapping/adjacent ranges.
func (t *Tracker) coalesce() []Range {
	if len(t.ranges) == 0 {
		return nil
	}

	aligned := make([]Range, len(t.ranges))
	for i, r := range t.ranges {
		start := (r.Off / t.pageSize) * t.pageSize

		end := r.End()
		if end%t.pageSize != 0 {
			end = ((end / t.pageSize) + 1) * t.pageSize
		}

		aligned[i] = Range{Off: start, Len: end - start}
	}

	slices.SortFunc(aligned, func(a, b Range) int {
		return cmp.Compare(a.Off, b.Off)
	})

	merged := make([]Range, 0, len(aligned))
	current := aligned[0]
	for _, next := range aligned[1:] {
		if next.Off <= current.End() {
			if next.End() > current.End() {
				current.Len = next.End() - current.Off
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
