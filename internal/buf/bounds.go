package buf

import (
	"fmt"
	"math"
)

// AddU32 adds a and b, returning ok = false when the result would overflow uint32.
// Physical MRAM addresses are 32-bit, so every base+offset sum goes through here.
func AddU32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

// Within reports whether [off, off+n) fits inside a window of size bytes.
func Within(size, off, n uint32) bool {
	end, ok := AddU32(off, n)
	return ok && end <= size
}

// CheckRange validates that n bytes starting at off fit in a window of size
// bytes. Returns the end offset if valid, or an error describing the failure
// (overflow or out of bounds).
//
//	end, err := buf.CheckRange(area.Size, off, uint32(len(p)))
//	if err != nil {
//	    return fmt.Errorf("read: %w", err)
//	}
func CheckRange(size, off, n uint32) (uint32, error) {
	end, ok := AddU32(off, n)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + len=%d", off, n)
	}
	if end > size {
		return 0, fmt.Errorf("bounds: end=%d > size=%d", end, size)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	if n > math.MaxInt-off {
		return nil, false
	}
	end := off + n
	if end > len(b) {
		return nil, false
	}
	return b[off:end], true
}
