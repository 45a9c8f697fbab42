package render

import (
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/ironsheep/fractal-render/internal/colorscheme"
	"github.com/ironsheep/fractal-render/internal/fractal"
	"github.com/ironsheep/fractal-render/internal/job"
)

// Frame is a rendered raster and what was learned while producing it.
type Frame struct {
	Image *image.RGBA

	// Plane is the coordinate mapper used for the frame.
	Plane *fractal.Plane

	// InsidePixels counts pixels whose point never escaped.
	InsidePixels int

	Elapsed time.Duration
}

// Render evaluates and colors every pixel of the job's grid.
//
// Returns an error only if the job's grid size is invalid.
func Render(j *job.Job) (*Frame, error) {
	plane, err := j.Plane()
	if err != nil {
		return nil, fmt.Errorf("failed to map viewport: %w", err)
	}

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, plane.Width(), plane.Height()))

	var inside atomic.Int64
	parallel.Line(plane.Height(), func(rowStart, rowEnd int) {
		inside.Add(int64(renderRows(img, plane, j.Fractal, j.Scheme, rowStart, rowEnd)))
	})

	return &Frame{
		Image:        img,
		Plane:        plane,
		InsidePixels: int(inside.Load()),
		Elapsed:      time.Since(start),
	}, nil
}

// renderRows fills rows [rowStart, rowEnd) of img in row-major order and
// returns the number of inside pixels in that band.
func renderRows(img *image.RGBA, plane *fractal.Plane, f fractal.Fractal, s colorscheme.Scheme, rowStart, rowEnd int) int {
	inside := 0
	for row := rowStart; row < rowEnd; row++ {
		for col := 0; col < plane.Width(); col++ {
			result := f.Evaluate(plane.ComplexAt(col, row))
			if result.Inside {
				inside++
			}
			img.SetRGBA(col, row, s.Color(result).To8Bit())
		}
	}
	return inside
}
