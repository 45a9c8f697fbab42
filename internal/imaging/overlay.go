package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"github.com/ironsheep/fractal-render/internal/fractal"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// maxAxisLines bounds the number of grid lines per axis.
const maxAxisLines = 256

// Overlay colors.
var (
	GridColor       = color.RGBA{255, 0, 0, 255}
	LabelColor      = color.RGBA{255, 255, 255, 255}
	LabelBackground = color.RGBA{0, 0, 0, 255}
)

// AxisOverlay returns a copy of img with grid lines at every multiple of step
// on the real and imaginary axes of plane. Vertical lines are labeled with
// their real coordinate and horizontal lines with their imaginary coordinate.
//
// img must have the same dimensions as plane.
func AxisOverlay(img image.Image, plane *fractal.Plane, step float64) (*image.RGBA, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("invalid grid step %v: must be positive", step)
	}
	bounds := img.Bounds()
	if bounds.Dx() != plane.Width() || bounds.Dy() != plane.Height() {
		return nil, fmt.Errorf("image is %dx%d but plane is %dx%d",
			bounds.Dx(), bounds.Dy(), plane.Width(), plane.Height())
	}

	v := plane.Viewport()
	reLines, err := axisMultiples(real(v.UpperLeft), real(v.LowerRight), step)
	if err != nil {
		return nil, err
	}
	imLines, err := axisMultiples(imag(v.UpperLeft), imag(v.LowerRight), step)
	if err != nil {
		return nil, err
	}

	result := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	width, height := bounds.Dx(), bounds.Dy()

	for _, re := range reLines {
		col, _ := plane.Locate(complex(re, 0))
		x := int(math.Round(col))
		if x < 0 || x >= width {
			continue
		}
		for y := 0; y < height; y++ {
			result.SetRGBA(x, y, GridColor)
		}
	}

	for _, im := range imLines {
		_, row := plane.Locate(complex(0, im))
		y := int(math.Round(row))
		if y < 0 || y >= height {
			continue
		}
		for x := 0; x < width; x++ {
			result.SetRGBA(x, y, GridColor)
		}
	}

	for _, re := range reLines {
		col, _ := plane.Locate(complex(re, 0))
		if x := int(math.Round(col)); x >= 0 && x < width {
			drawLabel(result, x+2, 2, formatCoordinate(re, ""))
		}
	}
	for _, im := range imLines {
		_, row := plane.Locate(complex(0, im))
		if y := int(math.Round(row)); y >= 0 && y < height {
			drawLabel(result, 2, y+2, formatCoordinate(im, "i"))
		}
	}

	return result, nil
}

// axisMultiples returns every multiple of step in the closed range spanned by
// a and b, in either order. Ranges whose multiples are not distinct float64
// values are rejected.
func axisMultiples(a, b, step float64) ([]float64, error) {
	lo, hi := math.Min(a, b), math.Max(a, b)
	first := math.Ceil(lo / step)
	last := math.Floor(hi / step)
	if math.IsNaN(first) || math.IsInf(first, 0) || math.IsNaN(last) || math.IsInf(last, 0) ||
		first+1 == first {
		return nil, fmt.Errorf("grid step %v cannot resolve span [%v, %v]", step, lo, hi)
	}
	if last < first {
		return nil, nil
	}
	if last-first+1 > maxAxisLines {
		return nil, fmt.Errorf("grid step %v too small for span %v: more than %d lines",
			step, hi-lo, maxAxisLines)
	}

	n := int(last-first) + 1
	lines := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, (first+float64(i))*step)
	}
	return lines, nil
}

func formatCoordinate(v float64, suffix string) string {
	if v == 0 {
		v = 0 // normalizes -0
	}
	return strconv.FormatFloat(v, 'g', 6, 64) + suffix
}

// drawLabel draws text with its top-left corner at (x, y) on an opaque
// background box. Text running past the image edge is clipped.
func drawLabel(img *image.RGBA, x, y int, text string) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	h := face.Height

	box := image.Rect(x-1, y-1, x+w+1, y+h+1).Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(LabelBackground), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(LabelColor),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + face.Ascent)},
	}
	d.DrawString(text)
}
