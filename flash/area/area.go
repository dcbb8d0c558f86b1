package area

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies the logical role of an area. Values are stable across builds.
type ID uint8

const (
	Bootloader      ID = 0
	Image0Primary   ID = 1
	Image0Secondary ID = 2
	ImageScratch    ID = 3

	// SlotDoesNotExist marks a primary/secondary lookup for an image index
	// this configuration does not carry. It never names a real area.
	SlotDoesNotExist ID = 255
)

// DeviceMRAM is the device identifier of the on-chip MRAM.
const DeviceMRAM uint8 = 0

var idNames = map[ID]string{
	Bootloader:      "bootloader",
	Image0Primary:   "primary",
	Image0Secondary: "secondary",
	ImageScratch:    "scratch",
}

// String returns the role name of the identifier.
func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return "area-" + strconv.Itoa(int(id))
}

// ParseID accepts a role name ("primary") or a decimal identifier ("1").
func ParseID(s string) (ID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for id, name := range idNames {
		if s == name {
			return id, nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, s)
	}
	return ID(n), nil
}

// Area is one entry of the registry. It is immutable; accessors mirror the
// fields so handles can be shared freely.
type Area struct {
	id       ID
	deviceID uint8
	off      uint32
	size     uint32
}

// ID returns the identifier of the area.
func (a *Area) ID() ID { return a.id }

// DeviceID returns the identifier of the device the area resides on.
func (a *Area) DeviceID() uint8 { return a.deviceID }

// Off returns the absolute physical address of the first byte of the area.
func (a *Area) Off() uint32 { return a.off }

// Size returns the length of the area in bytes.
func (a *Area) Size() uint32 { return a.size }

// End returns the physical address one past the last byte of the area.
func (a *Area) End() uint32 { return a.off + a.size }

func (a *Area) String() string {
	return fmt.Sprintf("%s@0x%08X+0x%X", a.id, a.off, a.size)
}

// Sector describes one geometry unit of an area.
type Sector struct {
	Off  uint32 `json:"off"`  // Offset from the start of the area (not the device)
	Size uint32 `json:"size"` // Size in bytes
}
