// Package mmfile provides platform-specific helpers for mapping MRAM image
// files read/write.
package mmfile

import (
	"errors"
	"os"
)

// ErrClosed is returned by operations on a closed mapping.
var ErrClosed = errors.New("mmfile: mapping closed")

// File is a writable view of an image file. On unix the view is a shared
// memory mapping; elsewhere it is an in-memory copy written back on Sync.
type File struct {
	f    *os.File
	data []byte
}

// Bytes returns the mapped contents. Writes to the slice modify the image.
func (m *File) Bytes() []byte { return m.data }

// Size returns the mapped length in bytes.
func (m *File) Size() int { return len(m.data) }
