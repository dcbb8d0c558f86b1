package mram

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mramflash/flash/area"
)

// op is one physical operation observed by a recorder.
type op struct {
	kind string // "read" or "write"
	addr uint32
	n    int
}

// recorder wraps a Device and logs every physical access.
type recorder struct {
	Device
	ops []op
}

func (r *recorder) ReadAt(p []byte, addr uint32) error {
	r.ops = append(r.ops, op{kind: "read", addr: addr, n: len(p)})
	return r.Device.ReadAt(p, addr)
}

func (r *recorder) WriteBlock(addr uint32, b *Block) error {
	r.ops = append(r.ops, op{kind: "write", addr: addr, n: len(b)})
	return r.Device.WriteBlock(addr, b)
}

func (r *recorder) writes() []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == "write" {
			out = append(out, o)
		}
	}
	return out
}

// testLayout places the primary slot at physical 0x10000 so addresses match
// hand-computed expectations.
func testLayout() area.Layout {
	return area.Layout{
		DeviceBase:       0,
		DeviceSize:       0x40000,
		BootloaderSize:   0x10000,
		PrimarySize:      0x10000,
		SecondarySize:    0x10000,
		ScratchSize:      0x1000,
		SwapUsingScratch: true,
		GetSectors:       true,
	}
}

// newTestEngine returns an engine over a recorded memory device with the
// whole device pre-filled with sentinel.
func newTestEngine(t testing.TB, sentinel byte) (*Engine, *recorder, *area.Map, *Memory) {
	t.Helper()

	m, err := area.FromLayout(testLayout())
	require.NoError(t, err)

	mem := NewMemory(0, 0x40000)
	copy(mem.Bytes(), bytes.Repeat([]byte{sentinel}, len(mem.Bytes())))

	rec := &recorder{Device: mem}
	return NewEngine(rec), rec, m, mem
}

// pattern returns n bytes that differ from their neighbours and from common sentinels.
func pattern(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i*7 + 1)
	}
	return p
}
