package screenshot

import (
	"image"
)

type Config struct {
	Bounds image.Rectangle
}
