package area

import (
	"fmt"
	"iter"
	"slices"

	"github.com/joshuapare/mramflash/internal/format"
)

// Default is the process-wide registry built from DefaultLayout.
var Default = mustFromLayout(DefaultLayout())

// Map is the immutable, ordered table of areas.
type Map struct {
	layout Layout
	areas  []Area
}

// FromLayout validates l and lays out the areas back to back in the fixed
// order bootloader, primary, secondary, scratch.
func FromLayout(l Layout) (*Map, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	off := l.DeviceBase + l.BootloaderStart
	next := func(id ID, size uint32) Area {
		a := Area{id: id, deviceID: DeviceMRAM, off: off, size: size}
		off += size
		return a
	}

	areas := make([]Area, 0, 4)
	areas = append(areas,
		next(Bootloader, l.BootloaderSize),
		next(Image0Primary, l.PrimarySize),
		next(Image0Secondary, l.SecondarySize),
	)
	if l.SwapUsingScratch {
		areas = append(areas, next(ImageScratch, l.ScratchSize))
	}
	return &Map{layout: l, areas: areas}, nil
}

func mustFromLayout(l Layout) *Map {
	m, err := FromLayout(l)
	if err != nil {
		panic(fmt.Sprintf("area: default layout: %v", err))
	}
	return m
}

// Layout returns the configuration the map was built from.
func (m *Map) Layout() Layout { return m.layout }

// Areas returns the areas in layout order. The handles point into the table.
func (m *Map) Areas() []*Area {
	out := make([]*Area, len(m.areas))
	for i := range m.areas {
		out[i] = &m.areas[i]
	}
	return out
}

// Open returns the area with the given identifier.
// Concurrent opens of the same area return the same handle.
func (m *Map) Open(id ID) (*Area, error) {
	for i := range m.areas {
		if m.areas[i].id == id {
			return &m.areas[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Close releases an area handle. Areas are not leased, so this does nothing.
func (m *Map) Close(*Area) {}

// Sectors enumerates the nominal sectors of the area with the given id.
// The sequence is restartable and yields ceil(size/SectorSize) sectors.
func (m *Map) Sectors(id ID) (iter.Seq[Sector], error) {
	if !m.layout.GetSectors {
		return nil, fmt.Errorf("%w: sector enumeration", ErrUnsupported)
	}
	a, err := m.Open(id)
	if err != nil {
		return nil, err
	}
	if a.deviceID != DeviceMRAM {
		return nil, fmt.Errorf("%w: area %s is on device %d", ErrWrongDevice, a.id, a.deviceID)
	}

	count := format.SectorCount(a.size)
	return func(yield func(Sector) bool) {
		for i := range count {
			if !yield(Sector{Off: i * format.SectorSize, Size: format.SectorSize}) {
				return
			}
		}
	}, nil
}

// SectorList collects Sectors into a slice.
func (m *Map) SectorList(id ID) ([]Sector, error) {
	seq, err := m.Sectors(id)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}
