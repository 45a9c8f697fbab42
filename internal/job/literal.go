package job

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/ironsheep/fractal-render/internal/colorscheme"
	"github.com/ironsheep/fractal-render/internal/fractal"
)

// ParseComplex parses a complex literal such as "-2.0+1.2i", "(0.3-0.5i)",
// "1.5i" or "-0.75". Whitespace is ignored.
func ParseComplex(s string) (complex128, error) {
	compact := strings.Join(strings.Fields(s), "")
	if compact == "" {
		return 0, newError(KindMalformedComplex, s, nil)
	}
	z, err := strconv.ParseComplex(compact, 128)
	if err != nil {
		return 0, newError(KindMalformedComplex, s, err)
	}
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return 0, newError(KindMalformedComplex, s, fmt.Errorf("not a finite value"))
	}
	return z, nil
}

// ParseSize parses a WIDTHxHEIGHT literal such as "1024x768". Both
// dimensions must be at least fractal.MinGridSize.
func ParseSize(s string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, newError(KindMalformedSize, s, nil)
	}
	width, err = strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return 0, 0, newError(KindMalformedSize, s, err)
	}
	height, err = strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, 0, newError(KindMalformedSize, s, err)
	}
	if width < fractal.MinGridSize || height < fractal.MinGridSize {
		return 0, 0, newError(KindInvalidValue, s,
			fmt.Errorf("both dimensions must be at least %d", fractal.MinGridSize))
	}
	return width, height, nil
}

// normalizeName folds case and drops '_', '-' and spaces so that
// "BurningShip", "burning_ship" and "burning-ship" compare equal.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ', '\t':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

var fractalNames = map[string]fractal.Kind{
	"mandelbrot":  fractal.KindMandelbrot,
	"julia":       fractal.KindJulia,
	"burningship": fractal.KindBurningShip,
}

// ParseFractalKind resolves a fractal type name.
func ParseFractalKind(name string) (fractal.Kind, error) {
	if kind, ok := fractalNames[normalizeName(name)]; ok {
		return kind, nil
	}
	return 0, newError(KindUnknownFractal, name, nil)
}

var schemeNames = map[string]colorscheme.Kind{
	"blackonwhite": colorscheme.KindBlackOnWhite,
	"whiteonblack": colorscheme.KindWhiteOnBlack,
	"gray":         colorscheme.KindGray,
	"grey":         colorscheme.KindGray,
	"warppovred":   colorscheme.KindWarpPOVRed,
	"warppovgreen": colorscheme.KindWarpPOVGreen,
	"warppovblue":  colorscheme.KindWarpPOVBlue,
	"random":       colorscheme.KindRandom,
	"hue":          colorscheme.KindHue,
	"gradient":     colorscheme.KindGradient,
}

// ParseSchemeKind resolves a color scheme name.
func ParseSchemeKind(name string) (colorscheme.Kind, error) {
	if kind, ok := schemeNames[normalizeName(name)]; ok {
		return kind, nil
	}
	return 0, newError(KindUnknownScheme, name, nil)
}
