package flash

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mramflash/flash/area"
	"github.com/joshuapare/mramflash/flash/mram"
)

func newBackend(t *testing.T) *Backend {
	t.Helper()
	l := area.DefaultLayout()
	return New(area.Default, mram.NewMemory(l.DeviceBase, l.DeviceSize))
}

func TestBackendGeometryIsUniform(t *testing.T) {
	b := newBackend(t)
	for _, id := range []area.ID{area.Bootloader, area.Image0Primary, area.Image0Secondary, area.ImageScratch} {
		a, err := b.Open(id)
		require.NoError(t, err)
		assert.Equal(t, uint32(16), b.Align(a))
		assert.Equal(t, uint8(0), b.ErasedVal(a))
		assert.Equal(t, area.Sector{Off: 0x400, Size: 0x400}, b.Sector(a, 0x7FF))
		b.Close(a)
	}
}

func TestBackendImageUpgradeFlow(t *testing.T) {
	b := newBackend(t)

	id, err := b.IDFromSlot(1)
	require.NoError(t, err)
	secondary, err := b.Open(id)
	require.NoError(t, err)

	image := bytes.Repeat([]byte("MCUB"), 1000) // not a block multiple at the tail
	image = append(image, 0x01, 0x02, 0x03)

	require.NoError(t, b.Erase(secondary, 0, secondary.Size()))
	require.NoError(t, b.Write(secondary, 0, image))

	got := make([]byte, len(image))
	require.NoError(t, b.Read(secondary, 0, got))
	assert.Equal(t, image, got)

	// The byte after the image is still erased.
	next := make([]byte, 1)
	require.NoError(t, b.Read(secondary, uint32(len(image)), next))
	assert.Equal(t, []byte{b.ErasedVal(secondary)}, next)

	// Primary is untouched.
	primary, err := b.Open(area.Image0Primary)
	require.NoError(t, err)
	head := make([]byte, 16)
	require.NoError(t, b.Read(primary, 0, head))
	assert.Equal(t, make([]byte, 16), head)
}

func TestBackendErrors(t *testing.T) {
	b := newBackend(t)

	_, err := b.Open(42)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = b.IDFromMultiImageSlot(1, 0)
	require.ErrorIs(t, err, ErrInvalidSlot)

	a, err := b.Open(area.Image0Primary)
	require.NoError(t, err)
	require.ErrorIs(t, b.Erase(a, 1, 16), ErrInvalidAlignment)
	require.ErrorIs(t, b.Write(a, a.Size(), []byte{1}), ErrOutOfRange)
}

func TestBackendSectors(t *testing.T) {
	b := newBackend(t)

	seq, err := b.Sectors(area.ImageScratch)
	require.NoError(t, err)
	n := 0
	for s := range seq {
		assert.Equal(t, uint32(n*1024), s.Off)
		n++
	}
	assert.Equal(t, 4, n)

	list, err := b.SectorList(area.Image0Primary)
	require.NoError(t, err)
	assert.Len(t, list, 64)
}

func TestOpenImageTooSmall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.bin")
	require.NoError(t, mram.CreateFile(path, 0x1000))

	b, f, err := OpenImage(path, area.Default)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holds 0x1000 bytes")
	assert.Nil(t, b)
	assert.Nil(t, f)
}
