package screenshot

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

var ErrEmptyBounds = errors.New("the bounds are empty")

func Screenshot(cfg Config) (*image.RGBA, error) {
	if cfg.Bounds.Empty() {
		return nil, fmt.Errorf("unable to screenshot bounds %v: %w", cfg.Bounds, ErrEmptyBounds)
	}

	img, err := screenshot.CaptureRect(cfg.Bounds)
	if err != nil {
		return nil, fmt.Errorf("unable to screenshot bounds %v: %w", cfg.Bounds, err)
	}
	if img == nil {
		return nil, fmt.Errorf("screenshot of bounds %v returned no image", cfg.Bounds)
	}

	return img, nil
}
