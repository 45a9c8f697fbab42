package render

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/ironsheep/fractal-render/internal/imaging"
	"github.com/ironsheep/fractal-render/internal/job"
)

// summaryColors is the number of dominant colors reported in a Summary.
const summaryColors = 5

// Options configures Execute.
type Options struct {
	// Debug enables per-run diagnostics on the standard logger.
	Debug bool

	// Cache, if set, receives the written images keyed by their paths.
	Cache *imaging.ImageCache
}

// Summary describes a completed run.
type Summary struct {
	OutputPath     string                   `json:"output_path"`
	ThumbnailPath  string                   `json:"thumbnail_path,omitempty"`
	Width          int                      `json:"width"`
	Height         int                      `json:"height"`
	FileSizeBytes  int64                    `json:"file_size_bytes"`
	Fractal        string                   `json:"fractal"`
	Scheme         string                   `json:"scheme"`
	InsidePixels   int                      `json:"inside_pixels"`
	InsidePercent  float64                  `json:"inside_percent"`
	DominantColors []imaging.ColorFrequency `json:"dominant_colors"`
	ElapsedMillis  int64                    `json:"elapsed_ms"`
}

// Execute renders the job and writes its output files. Any failure aborts the
// run and leaves no output image behind: if the thumbnail cannot be written,
// the main image written just before it is removed.
func Execute(j *job.Job, opts Options) (*Summary, error) {
	if opts.Debug {
		log.Printf("Rendering %s: %s with %s, %dx%d, viewport %v to %v",
			j.InputPath, j.Fractal.Kind(), j.Scheme.Kind(), j.Width, j.Height,
			j.Viewport.UpperLeft, j.Viewport.LowerRight)
	}

	frame, err := Render(j)
	if err != nil {
		return nil, err
	}

	var out image.Image = frame.Image
	if j.GridStep > 0 {
		out, err = imaging.AxisOverlay(frame.Image, frame.Plane, j.GridStep)
		if err != nil {
			return nil, fmt.Errorf("failed to draw axis overlay: %w", err)
		}
	}

	// Everything derived from the frame is built before the first write.
	var thumb image.Image
	if j.ThumbnailWidth > 0 {
		thumb, err = imaging.Thumbnail(out, j.ThumbnailWidth)
		if err != nil {
			return nil, fmt.Errorf("failed to create thumbnail: %w", err)
		}
	}
	dominant, err := imaging.DominantColors(out, summaryColors)
	if err != nil {
		return nil, err
	}

	if err := imaging.Save(out, j.OutputPath); err != nil {
		return nil, err
	}
	if thumb != nil {
		if err := imaging.Save(thumb, j.ThumbnailPath()); err != nil {
			if rmErr := os.Remove(j.OutputPath); rmErr != nil {
				log.Printf("Failed to remove %s after thumbnail error: %v", j.OutputPath, rmErr)
			}
			return nil, err
		}
	}

	info, err := imaging.Stat(out, j.OutputPath)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		OutputPath:     j.OutputPath,
		Width:          info.Width,
		Height:         info.Height,
		FileSizeBytes:  info.FileSizeBytes,
		Fractal:        j.Fractal.Kind().String(),
		Scheme:         j.Scheme.Kind().String(),
		InsidePixels:   frame.InsidePixels,
		InsidePercent:  float64(frame.InsidePixels) * 100 / float64(j.Width*j.Height),
		ElapsedMillis:  frame.Elapsed.Milliseconds(),
		DominantColors: dominant.Colors,
	}
	if thumb != nil {
		summary.ThumbnailPath = j.ThumbnailPath()
	}

	if opts.Cache != nil {
		opts.Cache.Store(j.OutputPath, out)
		if thumb != nil {
			opts.Cache.Store(summary.ThumbnailPath, thumb)
		}
	}

	if opts.Debug {
		log.Printf("Rendered %s in %dms: %d of %d pixels inside (%.1f%%)",
			summary.OutputPath, summary.ElapsedMillis, summary.InsidePixels,
			j.Width*j.Height, summary.InsidePercent)
		for _, c := range summary.DominantColors {
			log.Printf("  %s %.1f%%", c.Hex, c.Percentage)
		}
	}

	return summary, nil
}
