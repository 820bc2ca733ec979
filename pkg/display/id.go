package display

import (
	"strconv"
)

// ID identifies one active display surface known to the OS.
//
// The value is the index of the display in the OS enumeration order
// (0, 1, ...), not a native OS display identifier.
type ID uint32

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
