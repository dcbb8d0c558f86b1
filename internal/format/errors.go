package format

import "errors"

// ErrUnaligned indicates a physical write address not on a block boundary.
var ErrUnaligned = errors.New("format: address not write-block aligned")
