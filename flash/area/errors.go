package area

import "errors"

var (
	// ErrNotFound indicates no area has the requested identifier.
	ErrNotFound = errors.New("area: not found")

	// ErrInvalidSlot indicates an unsupported image index / slot combination.
	ErrInvalidSlot = errors.New("area: invalid image slot")

	// ErrWrongDevice indicates a geometry query against an area that is not backed by MRAM.
	ErrWrongDevice = errors.New("area: area not on MRAM device")

	// ErrUnsupported indicates the operation was disabled by the layout.
	ErrUnsupported = errors.New("area: operation not enabled in layout")

	// ErrInvalidLayout indicates the layout does not describe a usable device map.
	ErrInvalidLayout = errors.New("area: invalid layout")
)
