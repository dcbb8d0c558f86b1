package flash

import (
	"github.com/joshuapare/mramflash/flash/area"
	"github.com/joshuapare/mramflash/flash/mram"
)

var (
	ErrNotFound         = area.ErrNotFound
	ErrInvalidSlot      = area.ErrInvalidSlot
	ErrWrongDevice      = area.ErrWrongDevice
	ErrUnsupported      = area.ErrUnsupported
	ErrInvalidAlignment = mram.ErrInvalidAlignment
	ErrOutOfRange       = mram.ErrOutOfRange
	ErrClosed           = mram.ErrClosed
)
