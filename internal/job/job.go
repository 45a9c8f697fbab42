package job

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ironsheep/fractal-render/internal/colorscheme"
	"github.com/ironsheep/fractal-render/internal/fractal"
)

// Defaults applied when the description leaves a value out.
const (
	DefaultWidth    = 1024
	DefaultHeight   = 768
	DefaultImageDir = "images"
)

// Job is a fully resolved render request. It is built once by Load or Parse
// and never modified afterwards.
type Job struct {
	// InputPath is the job description file, or empty when parsed from memory.
	InputPath string

	// OutputPath is where the rendered PNG is written.
	OutputPath string

	Viewport fractal.Viewport
	Width    int
	Height   int

	Fractal fractal.Fractal
	Scheme  colorscheme.Scheme

	// ThumbnailWidth, when positive, requests a resized copy of the output
	// this many pixels wide.
	ThumbnailWidth int

	// GridStep, when positive, requests an axis overlay with lines at every
	// multiple of the step on both axes.
	GridStep float64
}

// Plane returns the coordinate mapper for the job's viewport and grid.
func (j *Job) Plane() (*fractal.Plane, error) {
	return fractal.NewPlane(j.Viewport, j.Width, j.Height)
}

// ThumbnailPath returns the path of the thumbnail image, next to OutputPath
// with a "_thumb" suffix.
func (j *Job) ThumbnailPath() string {
	ext := filepath.Ext(j.OutputPath)
	return strings.TrimSuffix(j.OutputPath, ext) + "_thumb" + ext
}

// Option customizes Load and Parse.
type Option func(*options)

type options struct {
	imageDir string
}

// WithImageDir places the output image under dir instead of DefaultImageDir.
func WithImageDir(dir string) Option {
	return func(o *options) {
		o.imageDir = dir
	}
}

// OutputPathFor derives the PNG path for an input path: the input's base
// name with its extension replaced by ".png", under imageDir.
func OutputPathFor(inputPath, imageDir string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		stem = "fractal"
	}
	return filepath.Join(imageDir, stem+".png")
}

// Load reads and parses the job description at path.
func Load(path string, opts ...Option) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(KindIO, path, err)
	}
	return Parse(data, path, opts...)
}

// document mirrors the TOML layout of a job description.
type document struct {
	Image struct {
		Size           string `toml:"size"`
		UpperLeft      string `toml:"upper_left"`
		LowerRight     string `toml:"lower_right"`
		ThumbnailWidth int    `toml:"thumbnail_width"`
	} `toml:"image"`

	Fractal struct {
		Type          string  `toml:"type"`
		MaxIterations int     `toml:"max_iterations"`
		EscapeLength  float64 `toml:"escape_length"`
		C             string  `toml:"c"`
	} `toml:"fractal"`

	Color struct {
		Scheme string `toml:"scheme"`
		From   string `toml:"from"`
		To     string `toml:"to"`
	} `toml:"color"`

	Overlay struct {
		Grid float64 `toml:"grid"`
	} `toml:"overlay"`
}

// Parse builds a Job from the TOML description in data. inputPath is used
// only to derive the output path.
func Parse(data []byte, inputPath string, opts ...Option) (*Job, error) {
	o := options{imageDir: DefaultImageDir}
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, newError(KindEmptyDocument, inputPath, nil)
	}

	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			raw := perr.LastKey
			if raw == "" {
				raw = fmt.Sprintf("line %d", perr.Position.Line)
			}
			return nil, newError(KindMalformedDocument, raw, err)
		}
		return nil, newError(KindMalformedDocument, "", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, newError(KindUnknownField, undecoded[0].String(), nil)
	}

	for _, key := range [][]string{
		{"image", "upper_left"},
		{"image", "lower_right"},
		{"fractal", "type"},
		{"color", "scheme"},
	} {
		if !md.IsDefined(key...) {
			return nil, newError(KindMissingField, strings.Join(key, "."), nil)
		}
	}

	j := &Job{
		InputPath:  inputPath,
		OutputPath: OutputPathFor(inputPath, o.imageDir),
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}

	if md.IsDefined("image", "size") {
		if j.Width, j.Height, err = ParseSize(doc.Image.Size); err != nil {
			return nil, err
		}
	}

	if j.Viewport.UpperLeft, err = ParseComplex(doc.Image.UpperLeft); err != nil {
		return nil, err
	}
	if j.Viewport.LowerRight, err = ParseComplex(doc.Image.LowerRight); err != nil {
		return nil, err
	}

	if md.IsDefined("image", "thumbnail_width") {
		if doc.Image.ThumbnailWidth <= 0 {
			return nil, invalidValue("image.thumbnail_width", doc.Image.ThumbnailWidth, "must be positive")
		}
		j.ThumbnailWidth = doc.Image.ThumbnailWidth
	}

	if md.IsDefined("overlay", "grid") {
		if !(doc.Overlay.Grid > 0) {
			return nil, invalidValue("overlay.grid", doc.Overlay.Grid, "must be positive")
		}
		j.GridStep = doc.Overlay.Grid
	}

	if j.Fractal, err = buildFractal(md, &doc); err != nil {
		return nil, err
	}
	if j.Scheme, err = buildScheme(md, &doc); err != nil {
		return nil, err
	}

	return j, nil
}

func buildFractal(md toml.MetaData, doc *document) (fractal.Fractal, error) {
	kind, err := ParseFractalKind(doc.Fractal.Type)
	if err != nil {
		return nil, err
	}

	params := fractal.DefaultParams()
	if md.IsDefined("fractal", "max_iterations") {
		if doc.Fractal.MaxIterations <= 0 {
			return nil, invalidValue("fractal.max_iterations", doc.Fractal.MaxIterations, "must be positive")
		}
		params.MaxIterations = doc.Fractal.MaxIterations
	}
	if md.IsDefined("fractal", "escape_length") {
		if !(doc.Fractal.EscapeLength > 0) {
			return nil, invalidValue("fractal.escape_length", doc.Fractal.EscapeLength, "must be positive")
		}
		params.EscapeLength = doc.Fractal.EscapeLength
	}

	var c complex128
	hasC := md.IsDefined("fractal", "c")
	switch {
	case kind == fractal.KindJulia && !hasC:
		return nil, newError(KindMissingField, "fractal.c", nil)
	case kind == fractal.KindJulia:
		if c, err = ParseComplex(doc.Fractal.C); err != nil {
			return nil, err
		}
	case hasC:
		return nil, invalidValue("fractal.c", doc.Fractal.C, "only applies to julia")
	}

	return fractal.New(kind, params, c)
}

func buildScheme(md toml.MetaData, doc *document) (colorscheme.Scheme, error) {
	kind, err := ParseSchemeKind(doc.Color.Scheme)
	if err != nil {
		return nil, err
	}

	if kind != colorscheme.KindGradient {
		for _, key := range []string{"from", "to"} {
			if md.IsDefined("color", key) {
				return nil, newError(KindInvalidValue, "color."+key, fmt.Errorf("only applies to gradient"))
			}
		}
	}

	scheme, err := colorscheme.New(kind, colorscheme.Options{
		GradientFrom: doc.Color.From,
		GradientTo:   doc.Color.To,
	})
	if err != nil {
		return nil, newError(KindInvalidValue, doc.Color.From+", "+doc.Color.To, err)
	}
	return scheme, nil
}

func invalidValue(key string, value any, reason string) *Error {
	return newError(KindInvalidValue, fmt.Sprint(value), fmt.Errorf("%s %s", key, reason))
}
