package colorscheme

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with channels in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

var (
	// Black is the color of every inside point in the outside-colored schemes.
	Black = Color{0, 0, 0}

	// White is full intensity on all channels.
	White = Color{1, 1, 1}
)

// To8Bit converts the color to 8-bit channels by scaling with 255 and
// truncating. Alpha is always opaque.
func (c Color) To8Bit() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * 255.0),
		G: uint8(c.G * 255.0),
		B: uint8(c.B * 255.0),
		A: 255,
	}
}

// fromColorful converts a go-colorful color, clamping out-of-gamut values
// produced by Lab blending.
func fromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B}
}
