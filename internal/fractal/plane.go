package fractal

import (
	"fmt"
	"math"
)

// Viewport is the rectangular region of the complex plane mapped onto the
// output pixel grid.
//
// UpperLeft is expected to have a smaller real part and a larger imaginary
// part than LowerRight. A viewport that violates this is not rejected; the
// rendered image simply comes out mirrored.
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Width returns the horizontal span of the viewport.
func (v Viewport) Width() float64 {
	return math.Abs(real(v.UpperLeft) - real(v.LowerRight))
}

// Height returns the vertical span of the viewport.
func (v Viewport) Height() float64 {
	return math.Abs(imag(v.LowerRight) - imag(v.UpperLeft))
}

// MinGridSize is the smallest accepted width or height. Per-pixel deltas
// divide by size-1.
const MinGridSize = 2

// Plane maps pixel grid positions to complex-plane points for one viewport
// and grid size.
type Plane struct {
	viewport Viewport
	width    int
	height   int
	xDelta   float64
	yDelta   float64
}

// NewPlane creates a coordinate mapper for a width x height pixel grid
// covering the given viewport.
//
// Returns an error if either dimension is below MinGridSize.
func NewPlane(v Viewport, width, height int) (*Plane, error) {
	if width < MinGridSize || height < MinGridSize {
		return nil, fmt.Errorf("grid size %dx%d too small: both dimensions must be at least %d",
			width, height, MinGridSize)
	}

	return &Plane{
		viewport: v,
		width:    width,
		height:   height,
		xDelta:   v.Width() / float64(width-1),
		yDelta:   v.Height() / float64(height-1),
	}, nil
}

// Viewport returns the region covered by the plane.
func (p *Plane) Viewport() Viewport { return p.viewport }

// Width returns the grid width in pixels.
func (p *Plane) Width() int { return p.width }

// Height returns the grid height in pixels.
func (p *Plane) Height() int { return p.height }

// Deltas returns the distance on the plane between horizontally and
// vertically adjacent pixels.
func (p *Plane) Deltas() (x, y float64) { return p.xDelta, p.yDelta }

// ComplexAt returns the plane point for the pixel at (col, row).
//
// Positions outside the grid are extrapolated along the same affine map.
func (p *Plane) ComplexAt(col, row int) complex128 {
	re := real(p.viewport.UpperLeft) + float64(col)*p.xDelta
	im := imag(p.viewport.UpperLeft) - float64(row)*p.yDelta
	return complex(re, im)
}

// Locate is the inverse of ComplexAt: it returns the fractional pixel
// position of a plane point. On a zero-span axis the result is not finite.
func (p *Plane) Locate(z complex128) (col, row float64) {
	col = (real(z) - real(p.viewport.UpperLeft)) / p.xDelta
	row = (imag(p.viewport.UpperLeft) - imag(z)) / p.yDelta
	return col, row
}
