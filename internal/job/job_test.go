package job

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/fractal-render/internal/colorscheme"
	"github.com/ironsheep/fractal-render/internal/fractal"
)

const mandelbrotJob = `
[image]
size = "512x384"
upper_left = "-2.0+1.2i"
lower_right = "1.2-1.2i"

[fractal]
type = "mandelbrot"
max_iterations = 256

[color]
scheme = "black_on_white"
`

// writeJobFile writes a job description into a temp dir and returns its path.
func writeJobFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write job file: %v", err)
	}
	return path
}

func requireKind(t *testing.T, err error, kind ErrorKind) *Error {
	t.Helper()
	var jerr *Error
	if !errors.As(err, &jerr) {
		t.Fatalf("got error %v, want *Error of kind %v", err, kind)
	}
	if jerr.Kind != kind {
		t.Fatalf("Kind: got %v (%v), want %v", jerr.Kind, err, kind)
	}
	return jerr
}

func TestParse_Mandelbrot(t *testing.T) {
	j, err := Parse([]byte(mandelbrotJob), "jobs/seahorse.toml")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if j.Width != 512 || j.Height != 384 {
		t.Errorf("size: got %dx%d, want 512x384", j.Width, j.Height)
	}
	want := fractal.Viewport{UpperLeft: complex(-2, 1.2), LowerRight: complex(1.2, -1.2)}
	if j.Viewport != want {
		t.Errorf("Viewport: got %+v, want %+v", j.Viewport, want)
	}
	m, ok := j.Fractal.(fractal.Mandelbrot)
	if !ok {
		t.Fatalf("Fractal: got %T, want fractal.Mandelbrot", j.Fractal)
	}
	if m.MaxIterations != 256 || m.EscapeLength != fractal.DefaultEscapeLength {
		t.Errorf("Params: got %+v", m.Params)
	}
	if _, ok := j.Scheme.(colorscheme.BlackOnWhite); !ok {
		t.Errorf("Scheme: got %T, want colorscheme.BlackOnWhite", j.Scheme)
	}
	if j.OutputPath != filepath.Join("images", "seahorse.png") {
		t.Errorf("OutputPath: got %q", j.OutputPath)
	}
	if j.InputPath != "jobs/seahorse.toml" {
		t.Errorf("InputPath: got %q", j.InputPath)
	}
}

func TestParse_Defaults(t *testing.T) {
	doc := `
[image]
upper_left = "-2+1i"
lower_right = "1-1i"
[fractal]
type = "burning_ship"
[color]
scheme = "gray"
`
	j, err := Parse([]byte(doc), "ship.toml")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if j.Width != DefaultWidth || j.Height != DefaultHeight {
		t.Errorf("size: got %dx%d, want %dx%d", j.Width, j.Height, DefaultWidth, DefaultHeight)
	}
	b, ok := j.Fractal.(fractal.BurningShip)
	if !ok {
		t.Fatalf("Fractal: got %T, want fractal.BurningShip", j.Fractal)
	}
	if b.Params != fractal.DefaultParams() {
		t.Errorf("Params: got %+v, want defaults", b.Params)
	}
	if j.ThumbnailWidth != 0 || j.GridStep != 0 {
		t.Errorf("optional features should be off: thumb=%d grid=%v", j.ThumbnailWidth, j.GridStep)
	}
}

func TestParse_JuliaAndExtras(t *testing.T) {
	doc := `
[image]
size = "300x200"
upper_left = "-1.5+1i"
lower_right = "1.5-1i"
thumbnail_width = 100

[fractal]
type = "Julia"
c = "-0.8+0.156i"
escape_length = 3.0

[color]
scheme = "gradient"
from = "#000000"
to = "#ffffff"

[overlay]
grid = 0.5
`
	j, err := Parse([]byte(doc), "julia.toml", WithImageDir("out"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	jl, ok := j.Fractal.(fractal.Julia)
	if !ok {
		t.Fatalf("Fractal: got %T, want fractal.Julia", j.Fractal)
	}
	if jl.C != complex(-0.8, 0.156) || jl.EscapeLength != 3 {
		t.Errorf("Julia: got %+v", jl)
	}
	if _, ok := j.Scheme.(colorscheme.Gradient); !ok {
		t.Errorf("Scheme: got %T, want colorscheme.Gradient", j.Scheme)
	}
	if j.ThumbnailWidth != 100 || j.GridStep != 0.5 {
		t.Errorf("extras: thumb=%d grid=%v", j.ThumbnailWidth, j.GridStep)
	}
	if j.OutputPath != filepath.Join("out", "julia.png") {
		t.Errorf("OutputPath: got %q", j.OutputPath)
	}
	if j.ThumbnailPath() != filepath.Join("out", "julia_thumb.png") {
		t.Errorf("ThumbnailPath: got %q", j.ThumbnailPath())
	}
}

func TestParse_Errors(t *testing.T) {
	base := func(replace, with string) string {
		return strings.Replace(mandelbrotJob, replace, with, 1)
	}

	tests := []struct {
		name string
		doc  string
		kind ErrorKind
		raw  string
	}{
		{"empty", "", KindEmptyDocument, ""},
		{"whitespace only", "  \n\t\n", KindEmptyDocument, ""},
		{"not toml", "[image\nsize = ", KindMalformedDocument, ""},
		{"wrong type", base("max_iterations = 256", `max_iterations = "many"`), KindMalformedDocument, "fractal.max_iterations"},
		{"size as integer", base(`size = "512x384"`, "size = 512"), KindMalformedDocument, "image.size"},
		{"bad complex", base(`"-2.0+1.2i"`, `"-2.0+1.2j"`), KindMalformedComplex, "-2.0+1.2j"},
		{"bad size", base(`"512x384"`, `"512by384"`), KindMalformedSize, "512by384"},
		{"size too small", base(`"512x384"`, `"1x384"`), KindInvalidValue, "1x384"},
		{"unknown fractal", base(`"mandelbrot"`, `"newton"`), KindUnknownFractal, "newton"},
		{"unknown scheme", base(`"black_on_white"`, `"sepia"`), KindUnknownScheme, "sepia"},
		{"missing upper_left", base(`upper_left = "-2.0+1.2i"`, ""), KindMissingField, "image.upper_left"},
		{"missing scheme", base(`scheme = "black_on_white"`, ""), KindMissingField, "color.scheme"},
		{"missing fractal type", base(`type = "mandelbrot"`, ""), KindMissingField, "fractal.type"},
		{"julia without c", base(`"mandelbrot"`, `"julia"`), KindMissingField, "fractal.c"},
		{"c on mandelbrot", base("max_iterations = 256", "c = \"0.1+0.1i\""), KindInvalidValue, "0.1+0.1i"},
		{"zero iterations", base("max_iterations = 256", "max_iterations = 0"), KindInvalidValue, "0"},
		{"negative escape", base("max_iterations = 256", "escape_length = -1.0"), KindInvalidValue, "-1"},
		{"unknown key", base("max_iterations = 256", "zoom = 3"), KindUnknownField, "fractal.zoom"},
		{"gradient colors on gray", base(`"black_on_white"`, "\"gray\"\nfrom = \"#ffffff\""), KindInvalidValue, "color.from"},
		{"bad gradient color", base(`"black_on_white"`, "\"gradient\"\nto = \"#12\""), KindInvalidValue, ""},
		{"zero thumbnail", base(`size = "512x384"`, "size = \"512x384\"\nthumbnail_width = 0"), KindInvalidValue, "0"},
		{"zero grid", mandelbrotJob + "\n[overlay]\ngrid = 0.0\n", KindInvalidValue, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), "job.toml")
			jerr := requireKind(t, err, tt.kind)
			if tt.raw != "" && jerr.Raw != tt.raw {
				t.Errorf("Raw: got %q, want %q", jerr.Raw, tt.raw)
			}
			if jerr.Error() == "" {
				t.Error("Error() should describe the failure")
			}
		})
	}
}

func TestParse_SyntaxErrorNamesLocation(t *testing.T) {
	_, err := Parse([]byte("[image]\nsize = \n"), "job.toml")
	jerr := requireKind(t, err, KindMalformedDocument)
	if jerr.Raw == "" {
		t.Error("Raw should name the key or line of the syntax error")
	}
}

func TestLoad(t *testing.T) {
	path := writeJobFile(t, "valley.toml", mandelbrotJob)

	j, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if j.InputPath != path {
		t.Errorf("InputPath: got %q, want %q", j.InputPath, path)
	}
	if j.OutputPath != filepath.Join(DefaultImageDir, "valley.png") {
		t.Errorf("OutputPath: got %q", j.OutputPath)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	_, err := Load(path)
	jerr := requireKind(t, err, KindIO)
	if jerr.Raw != path {
		t.Errorf("Raw: got %q, want %q", jerr.Raw, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist: %v", err)
	}
}

func TestOutputPathFor(t *testing.T) {
	tests := []struct {
		in, dir, want string
	}{
		{"jobs/a.toml", "images", filepath.Join("images", "a.png")},
		{"b", "images", filepath.Join("images", "b.png")},
		{"/abs/path/c.d.toml", "out", filepath.Join("out", "c.d.png")},
		{"", "images", filepath.Join("images", "fractal.png")},
	}
	for _, tt := range tests {
		if got := OutputPathFor(tt.in, tt.dir); got != tt.want {
			t.Errorf("OutputPathFor(%q, %q): got %q, want %q", tt.in, tt.dir, got, tt.want)
		}
	}
}

func TestParse_RandomSchemeHasTable(t *testing.T) {
	doc := strings.Replace(mandelbrotJob, `"black_on_white"`, `"random"`, 1)
	j, err := Parse([]byte(doc), "r.toml")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	r, ok := j.Scheme.(colorscheme.Random)
	if !ok {
		t.Fatalf("Scheme: got %T, want colorscheme.Random", j.Scheme)
	}
	if r.Color(fractal.Outside(5, 10)) != r.Color(fractal.Outside(5+colorscheme.RandomTableSize, 10)) {
		t.Error("random table lookups should wrap")
	}
}
