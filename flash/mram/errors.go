package mram

import (
	"errors"

	"github.com/joshuapare/mramflash/internal/format"
	"github.com/joshuapare/mramflash/internal/mmfile"
)

var (
	// ErrInvalidAlignment indicates an erase whose offset or length is not block aligned.
	ErrInvalidAlignment = errors.New("mram: erase range not write-block aligned")

	// ErrOutOfRange indicates a request that extends past the end of its area.
	ErrOutOfRange = errors.New("mram: range exceeds area")

	// ErrUnaligned indicates a block program at an address not on a block boundary.
	ErrUnaligned = format.ErrUnaligned

	// ErrAddress indicates a physical address outside the device window.
	ErrAddress = errors.New("mram: address outside device")

	// ErrClosed indicates access to an image file device after Close.
	ErrClosed = mmfile.ErrClosed
)
