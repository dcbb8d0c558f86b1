package flash

import (
	"fmt"
	"iter"

	"github.com/joshuapare/mramflash/flash/area"
	"github.com/joshuapare/mramflash/flash/mram"
)

// Backend implements Storage over one area map and one MRAM device.
type Backend struct {
	areas *area.Map
	eng   *mram.Engine
}

// New creates a backend over dev laid out per areas.
func New(areas *area.Map, dev mram.Device, opts ...mram.Option) *Backend {
	return &Backend{areas: areas, eng: mram.NewEngine(dev, opts...)}
}

// OpenImage maps the MRAM image file at path and returns a backend over it.
// The returned file must be closed by the caller to flush pending writes.
func OpenImage(path string, areas *area.Map, opts ...mram.Option) (*Backend, *mram.File, error) {
	l := areas.Layout()
	f, err := mram.OpenFile(path, l.DeviceBase)
	if err != nil {
		return nil, nil, err
	}
	if size := f.Size(); uint64(size) < l.Used() {
		_ = f.Close()
		return nil, nil, fmt.Errorf("flash: image %s holds 0x%X bytes, layout needs 0x%X",
			path, size, l.Used())
	}
	return New(areas, f, opts...), f, nil
}

// Map returns the area registry.
func (b *Backend) Map() *area.Map { return b.areas }

// Areas returns the registry entries in layout order.
func (b *Backend) Areas() []*area.Area { return b.areas.Areas() }

// Open returns the area with the given identifier.
func (b *Backend) Open(id area.ID) (*area.Area, error) { return b.areas.Open(id) }

// Close is a no-op; areas are not leased.
func (b *Backend) Close(a *area.Area) { b.areas.Close(a) }

// Read copies len(dst) bytes from area offset off.
func (b *Backend) Read(a *area.Area, off uint32, dst []byte) error {
	return b.eng.Read(a, off, dst)
}

// Write programs src at area offset off, preserving every byte outside the range.
func (b *Backend) Write(a *area.Area, off uint32, src []byte) error {
	return b.eng.Write(a, off, src)
}

// Erase sets [off, off+length) to the erased value. Both must be block aligned.
func (b *Backend) Erase(a *area.Area, off, length uint32) error {
	return b.eng.Erase(a, off, length)
}

// Align returns the write block size.
func (b *Backend) Align(a *area.Area) uint32 { return area.Align(a) }

// ErasedVal returns the value of an erased byte.
func (b *Backend) ErasedVal(a *area.Area) uint8 { return area.ErasedVal(a) }

// Sector returns the nominal sector containing area offset off.
func (b *Backend) Sector(a *area.Area, off uint32) area.Sector { return area.SectorOf(a, off) }

// Sectors enumerates the nominal sectors of an area.
func (b *Backend) Sectors(id area.ID) (iter.Seq[area.Sector], error) { return b.areas.Sectors(id) }

// SectorList collects the sectors of an area into a slice.
func (b *Backend) SectorList(id area.ID) ([]area.Sector, error) { return b.areas.SectorList(id) }

// IDFromMultiImageSlot maps an image index and slot to an area identifier.
func (b *Backend) IDFromMultiImageSlot(image, slot int) (area.ID, error) {
	return area.IDFromMultiImageSlot(image, slot)
}

// IDFromSlot maps a slot of image 0 to an area identifier.
func (b *Backend) IDFromSlot(slot int) (area.ID, error) {
	return area.IDFromSlot(slot)
}
