package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Thumbnail returns a copy of img scaled to width pixels wide. The height
// follows from the aspect ratio, with a minimum of one pixel.
func Thumbnail(img image.Image, width int) (*image.NRGBA, error) {
	if width <= 0 {
		return nil, fmt.Errorf("invalid thumbnail width %d: must be positive", width)
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("cannot thumbnail an empty image")
	}

	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}
	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}
