package mram

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mramflash/flash/area"
)

func TestWriteReadRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		off    uint32
		length int
	}{
		{"aligned single block", 0x20, 16},
		{"aligned many blocks", 0x100, 16 * 9},
		{"leading unaligned only", 0x13, 13},
		{"leading unaligned then full blocks", 0x13, 13 + 32},
		{"trailing partial only", 0x40, 5},
		{"full blocks then trailing partial", 0x40, 48 + 7},
		{"both unaligned", 0x7, 61},
		{"inside one block", 0x22, 4},
		{"one byte", 0xFF, 1},
		{"last byte of area", 0xFFFF, 1},
		{"whole area", 0, 0x10000},
		{"empty", 0x33, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, rec, m, _ := newTestEngine(t, 0x5A)
			a, err := m.Open(area.Image0Primary)
			require.NoError(t, err)

			want := pattern(tt.length)
			require.NoError(t, eng.Write(a, tt.off, want))

			for _, w := range rec.writes() {
				assert.Zero(t, w.addr%16, "write at 0x%X not block aligned", w.addr)
				assert.Equal(t, 16, w.n)
			}

			got := make([]byte, tt.length)
			require.NoError(t, eng.Read(a, tt.off, got))
			assert.Equal(t, want, got)
		})
	}
}

func TestWritePreservesSurroundingBytes(t *testing.T) {
	const sentinel = 0xC3
	eng, _, m, mem := newTestEngine(t, sentinel)
	a, err := m.Open(area.Image0Secondary)
	require.NoError(t, err)

	off, length := uint32(0x405), 27
	require.NoError(t, eng.Write(a, off, bytes.Repeat([]byte{0x11}, length)))

	image := mem.Bytes()
	start := int(a.Off() + off)
	for i, b := range image {
		inside := i >= start && i < start+length
		if inside {
			require.Equal(t, byte(0x11), b, "byte 0x%X inside write", i)
			continue
		}
		require.Equal(t, byte(sentinel), b, "byte 0x%X outside write changed", i)
	}
}

func TestWriteExampleScenario(t *testing.T) {
	eng, rec, m, mem := newTestEngine(t, 0x00)
	a, err := m.Open(area.Image0Primary)
	require.NoError(t, err)
	require.Equal(t, uint32(0x10000), a.Off())

	prior := []byte{0x01, 0x02, 0x03}
	copy(mem.Bytes()[0x10000:], prior)
	copy(mem.Bytes()[0x10017:], []byte{0x77, 0x78})

	require.NoError(t, eng.Write(a, 3, bytes.Repeat([]byte{0xAA}, 20)))

	// 13 bytes fill the first block (RMW), the remaining 7 land in the next
	// block as a trailing partial (RMW).
	assert.Equal(t, []op{
		{kind: "read", addr: 0x10000, n: 16},
		{kind: "write", addr: 0x10000, n: 16},
		{kind: "read", addr: 0x10010, n: 16},
		{kind: "write", addr: 0x10010, n: 16},
	}, rec.ops)

	got := make([]byte, 20)
	require.NoError(t, eng.Read(a, 3, got))
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, 20), got)

	head := make([]byte, 3)
	require.NoError(t, eng.Read(a, 0, head))
	assert.Equal(t, prior, head)

	tail := make([]byte, 2)
	require.NoError(t, eng.Read(a, 23, tail))
	assert.Equal(t, []byte{0x77, 0x78}, tail)
}

func TestWriteFullBlocksSkipRead(t *testing.T) {
	eng, rec, m, _ := newTestEngine(t, 0x00)
	a, err := m.Open(area.Image0Primary)
	require.NoError(t, err)

	require.NoError(t, eng.Write(a, 0x40, pattern(64)))
	require.Len(t, rec.ops, 4)
	for i, o := range rec.ops {
		assert.Equal(t, "write", o.kind)
		assert.Equal(t, uint32(0x10040+16*i), o.addr)
	}
}

func TestWriteFromUnalignedSource(t *testing.T) {
	eng, _, m, _ := newTestEngine(t, 0x00)
	a, err := m.Open(area.Image0Primary)
	require.NoError(t, err)

	backing := pattern(64)
	src := backing[3:51] // 48 bytes starting at an odd address
	require.NoError(t, eng.Write(a, 0, src))

	got := make([]byte, len(src))
	require.NoError(t, eng.Read(a, 0, got))
	assert.Equal(t, src, got)
}

func TestWriteOutOfRange(t *testing.T) {
	eng, rec, m, _ := newTestEngine(t, 0x00)
	a, err := m.Open(area.ImageScratch)
	require.NoError(t, err)

	err = eng.Write(a, a.Size()-4, pattern(5))
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Empty(t, rec.ops, "no physical access on a rejected write")

	err = eng.Write(a, 0xFFFFFFFF, pattern(2))
	require.ErrorIs(t, err, ErrOutOfRange)

	err = eng.Read(a, a.Size(), make([]byte, 1))
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestEraseAligned(t *testing.T) {
	eng, rec, m, mem := newTestEngine(t, 0xEE)
	a, err := m.Open(area.Image0Secondary)
	require.NoError(t, err)

	require.NoError(t, eng.Erase(a, 0x100, 0x40))

	w := rec.writes()
	require.Len(t, w, 4)
	for i, o := range w {
		assert.Equal(t, a.Off()+0x100+uint32(16*i), o.addr, "erase must be address ascending")
	}

	got := make([]byte, 0x40)
	require.NoError(t, eng.Read(a, 0x100, got))
	assert.Equal(t, make([]byte, 0x40), got)

	image := mem.Bytes()
	assert.Equal(t, byte(0xEE), image[a.Off()+0xFF])
	assert.Equal(t, byte(0xEE), image[a.Off()+0x140])

	// Erasing again leaves the same state.
	before := bytes.Clone(image)
	require.NoError(t, eng.Erase(a, 0x100, 0x40))
	assert.Equal(t, before, mem.Bytes())
}

func TestEraseWholeArea(t *testing.T) {
	eng, _, m, _ := newTestEngine(t, 0xFF)
	a, err := m.Open(area.ImageScratch)
	require.NoError(t, err)

	require.NoError(t, eng.Erase(a, 0, a.Size()))
	got := make([]byte, a.Size())
	require.NoError(t, eng.Read(a, 0, got))
	assert.Equal(t, make([]byte, a.Size()), got)
}

func TestEraseUnalignedWritesNothing(t *testing.T) {
	tests := []struct {
		name        string
		off, length uint32
	}{
		{"unaligned offset", 0x8, 0x20},
		{"unaligned length", 0x10, 0x21},
		{"both unaligned", 0x3, 0x5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, rec, m, mem := newTestEngine(t, 0xA5)
			a, err := m.Open(area.Image0Primary)
			require.NoError(t, err)
			before := bytes.Clone(mem.Bytes())

			err = eng.Erase(a, tt.off, tt.length)
			require.ErrorIs(t, err, ErrInvalidAlignment)
			assert.Empty(t, rec.ops)
			assert.Equal(t, before, mem.Bytes())
		})
	}
}

func TestEraseOutOfRange(t *testing.T) {
	eng, rec, m, _ := newTestEngine(t, 0x00)
	a, err := m.Open(area.ImageScratch)
	require.NoError(t, err)

	err = eng.Erase(a, a.Size()-16, 32)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Empty(t, rec.ops)
}

// failingDevice fails the nth block program.
type failingDevice struct {
	Device
	failAt int
	writes int
}

func (f *failingDevice) WriteBlock(addr uint32, b *Block) error {
	f.writes++
	if f.writes == f.failAt {
		return errors.New("bus fault")
	}
	return f.Device.WriteBlock(addr, b)
}

func TestWriteSurfacesDeviceError(t *testing.T) {
	m, err := area.FromLayout(testLayout())
	require.NoError(t, err)
	dev := &failingDevice{Device: NewMemory(0, 0x40000), failAt: 2}
	eng := NewEngine(dev)

	a, err := m.Open(area.Image0Primary)
	require.NoError(t, err)

	err = eng.Write(a, 0, pattern(64))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0x00010010")
	assert.Equal(t, 2, dev.writes, "no retry after a failed program")
}

func BenchmarkEngineWrite(b *testing.B) {
	for _, size := range []int{16, 1024, 4096} {
		b.Run(fmt.Sprintf("unaligned_%d", size), func(b *testing.B) {
			eng, _, m, _ := newTestEngine(b, 0)
			a, err := m.Open(area.Image0Primary)
			require.NoError(b, err)
			data := pattern(size)

			b.SetBytes(int64(size))
			b.ResetTimer()
			for range b.N {
				if err := eng.Write(a, 3, data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
