package screen

import (
	"image"

	"github.com/kbinani/screenshot"
	"github.com/xaionaro-go/displaythumbs/pkg/display"
)

// NumActive returns the amount of displays the OS reports as active right now.
//
// The count is queried on every call, so there is no upper bound on the
// amount of displays.
func NumActive() int {
	return screenshot.NumActiveDisplays()
}

// IDs returns the identifiers of count active displays in the order the OS reports them.
func IDs(count int) []display.ID {
	if count <= 0 {
		return nil
	}
	result := make([]display.ID, 0, count)
	for idx := 0; idx < count; idx++ {
		result = append(result, display.ID(idx))
	}
	return result
}

func GetBounds(displayID display.ID) image.Rectangle {
	return screenshot.GetDisplayBounds(int(displayID))
}
