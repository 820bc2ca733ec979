package screenshot

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/displaythumbs/pkg/display"
	"github.com/xaionaro-go/displaythumbs/pkg/screen"
)

// ErrNoActiveDisplays is returned when the OS reports zero active displays.
//
// The underlying library reports a failure to reach the windowing system
// as zero displays, so the two cases are indistinguishable.
var ErrNoActiveDisplays = errors.New("no active displays reported by the OS")

// Implementation is the host windowing system as seen through
// github.com/kbinani/screenshot.
type Implementation struct{}

var numActiveDisplays = screen.NumActive

func (Implementation) ListDisplays(ctx context.Context) ([]display.ID, error) {
	ids := screen.IDs(numActiveDisplays())
	logger.Debugf(ctx, "the OS reported %d active displays", len(ids))
	if len(ids) == 0 {
		return nil, ErrNoActiveDisplays
	}
	return ids, nil
}

func (Implementation) CaptureDisplay(ctx context.Context, displayID display.ID) (*image.RGBA, error) {
	bounds := screen.GetBounds(displayID)
	logger.Tracef(ctx, "display %s bounds: %v", displayID, bounds)
	if bounds.Empty() {
		return nil, fmt.Errorf("display %s has empty bounds %v: %w", displayID, bounds, ErrEmptyBounds)
	}
	return Screenshot(Config{Bounds: bounds})
}
