// Package testutil builds throwaway MRAM backends for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/joshuapare/mramflash/flash"
	"github.com/joshuapare/mramflash/flash/area"
	"github.com/joshuapare/mramflash/flash/mram"
)

// ImageName is the file name used for temporary images.
const ImageName = "mram.bin"

// SetupMemory returns a backend over an erased in-memory device laid out
// with the stock layout.
//
// Example:
//
//	b := testutil.SetupMemory(t)
//	a, _ := b.Open(area.Image0Primary)
func SetupMemory(t testing.TB, opts ...mram.Option) *flash.Backend {
	t.Helper()
	l := area.DefaultLayout()
	return flash.New(area.Default, mram.NewMemory(l.DeviceBase, l.DeviceSize), opts...)
}

// SetupImage creates an erased image file in a temporary directory and maps
// it with the stock layout. The file is closed when the test ends.
// Returns the backend, the mapped file and the image path.
func SetupImage(t testing.TB, opts ...mram.Option) (*flash.Backend, *mram.File, string) {
	t.Helper()
	return SetupImageFrom(t, area.Default, opts...)
}

// SetupImageFrom is like SetupImage but uses the supplied registry.
func SetupImageFrom(t testing.TB, m *area.Map, opts ...mram.Option) (*flash.Backend, *mram.File, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), ImageName)
	if err := mram.CreateFile(path, m.Layout().DeviceSize); err != nil {
		t.Fatalf("Failed to create image: %v", err)
	}

	b, f, err := flash.OpenImage(path, m, opts...)
	if err != nil {
		t.Fatalf("Failed to open image: %v", err)
	}
	t.Cleanup(func() {
		if err := f.Close(); err != nil {
			t.Errorf("Failed to close image: %v", err)
		}
	})
	return b, f, path
}
