package colorscheme

import (
	"fmt"
	"math"

	"github.com/ironsheep/fractal-render/internal/fractal"
	"github.com/lucasb-eyer/go-colorful"
)

// Kind identifies a color scheme.
type Kind int

const (
	KindBlackOnWhite Kind = iota + 1
	KindWhiteOnBlack
	KindGray
	KindWarpPOVRed
	KindWarpPOVGreen
	KindWarpPOVBlue
	KindRandom
	KindHue
	KindGradient
)

var kindNames = map[Kind]string{
	KindBlackOnWhite: "black_on_white",
	KindWhiteOnBlack: "white_on_black",
	KindGray:         "gray",
	KindWarpPOVRed:   "warp_pov_red",
	KindWarpPOVGreen: "warp_pov_green",
	KindWarpPOVBlue:  "warp_pov_blue",
	KindRandom:       "random",
	KindHue:          "hue",
	KindGradient:     "gradient",
}

// String returns the canonical configuration name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns every scheme kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindBlackOnWhite, KindWhiteOnBlack, KindGray,
		KindWarpPOVRed, KindWarpPOVGreen, KindWarpPOVBlue,
		KindRandom, KindHue, KindGradient,
	}
}

// Scheme maps an iteration result to a color. Implementations are total:
// every result maps to exactly one color.
type Scheme interface {
	Color(r fractal.Result) Color
	Kind() Kind
	sealed()
}

// BlackOnWhite paints inside points black and outside points white.
type BlackOnWhite struct{}

// Color implements Scheme.
func (BlackOnWhite) Color(r fractal.Result) Color {
	if r.Inside {
		return Black
	}
	return White
}

// Kind implements Scheme.
func (BlackOnWhite) Kind() Kind { return KindBlackOnWhite }

func (BlackOnWhite) sealed() {}

// WhiteOnBlack paints inside points white and outside points black.
type WhiteOnBlack struct{}

// Color implements Scheme.
func (WhiteOnBlack) Color(r fractal.Result) Color {
	if r.Inside {
		return White
	}
	return Black
}

// Kind implements Scheme.
func (WhiteOnBlack) Kind() Kind { return KindWhiteOnBlack }

func (WhiteOnBlack) sealed() {}

// Gray paints outside points with intensity sqrt(i/m) on every channel.
type Gray struct{}

// Color implements Scheme.
func (Gray) Color(r fractal.Result) Color {
	if r.Inside || r.MaxIterations <= 0 {
		return Black
	}
	v := math.Sqrt(float64(r.Iterations) / float64(r.MaxIterations))
	return Color{v, v, v}
}

// Kind implements Scheme.
func (Gray) Kind() Kind { return KindGray }

func (Gray) sealed() {}

// Channel selects the primary channel of a WarpPOV scheme.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// WarpPOV ramps the primary channel up over the first half of the iteration
// budget, then holds it at full and ramps the other two channels.
type WarpPOV struct {
	Primary Channel
}

// Color implements Scheme.
func (w WarpPOV) Color(r fractal.Result) Color {
	if r.Inside || r.MaxIterations <= 0 {
		return Black
	}

	m := r.MaxIterations
	half := m/2 - 1

	var primary, secondary float64
	if r.Iterations <= half {
		primary = warpScale(max(1, r.Iterations), m)
	} else {
		primary = 1.0
		secondary = warpScale(r.Iterations-half, m)
	}

	switch w.Primary {
	case Green:
		return Color{secondary, primary, secondary}
	case Blue:
		return Color{secondary, secondary, primary}
	default:
		return Color{primary, secondary, secondary}
	}
}

func warpScale(k, m int) float64 {
	return 2 * float64(k-1) / float64(m)
}

// Kind implements Scheme.
func (w WarpPOV) Kind() Kind {
	switch w.Primary {
	case Green:
		return KindWarpPOVGreen
	case Blue:
		return KindWarpPOVBlue
	default:
		return KindWarpPOVRed
	}
}

func (WarpPOV) sealed() {}

// Hue paints outside points with hue 360*i/m at full saturation and value.
type Hue struct{}

// Color implements Scheme.
func (Hue) Color(r fractal.Result) Color {
	if r.Inside || r.MaxIterations <= 0 {
		return Black
	}
	t := float64(r.Iterations) / float64(r.MaxIterations)
	return fromColorful(colorful.Hsv(360*t, 1, 1))
}

// Kind implements Scheme.
func (Hue) Kind() Kind { return KindHue }

func (Hue) sealed() {}

// Default gradient endpoints.
const (
	DefaultGradientFrom = "#000764"
	DefaultGradientTo   = "#ffaa00"
)

// Gradient blends from From to To in Lab space as i/m goes from 0 to 1.
type Gradient struct {
	From colorful.Color
	To   colorful.Color
}

// NewGradient parses two hex colors ("#rrggbb" or "#rgb") into a Gradient.
func NewGradient(from, to string) (Gradient, error) {
	f, err := colorful.Hex(from)
	if err != nil {
		return Gradient{}, fmt.Errorf("invalid gradient color %q: %w", from, err)
	}
	t, err := colorful.Hex(to)
	if err != nil {
		return Gradient{}, fmt.Errorf("invalid gradient color %q: %w", to, err)
	}
	return Gradient{From: f, To: t}, nil
}

// Color implements Scheme.
func (g Gradient) Color(r fractal.Result) Color {
	if r.Inside || r.MaxIterations <= 0 {
		return Black
	}
	t := float64(r.Iterations) / float64(r.MaxIterations)
	return fromColorful(g.From.BlendLab(g.To, t))
}

// Kind implements Scheme.
func (Gradient) Kind() Kind { return KindGradient }

func (Gradient) sealed() {}

// Options carries the per-scheme settings that only some kinds use.
type Options struct {
	// GradientFrom and GradientTo are hex colors for KindGradient. Empty
	// values fall back to DefaultGradientFrom and DefaultGradientTo.
	GradientFrom string
	GradientTo   string
}

// New builds the scheme of the given kind. A KindRandom scheme gets a freshly
// drawn table on every call.
func New(kind Kind, opts Options) (Scheme, error) {
	switch kind {
	case KindBlackOnWhite:
		return BlackOnWhite{}, nil
	case KindWhiteOnBlack:
		return WhiteOnBlack{}, nil
	case KindGray:
		return Gray{}, nil
	case KindWarpPOVRed:
		return WarpPOV{Primary: Red}, nil
	case KindWarpPOVGreen:
		return WarpPOV{Primary: Green}, nil
	case KindWarpPOVBlue:
		return WarpPOV{Primary: Blue}, nil
	case KindRandom:
		return NewRandom(), nil
	case KindHue:
		return Hue{}, nil
	case KindGradient:
		from, to := opts.GradientFrom, opts.GradientTo
		if from == "" {
			from = DefaultGradientFrom
		}
		if to == "" {
			to = DefaultGradientTo
		}
		return NewGradient(from, to)
	default:
		return nil, fmt.Errorf("unknown color scheme kind: %v", kind)
	}
}
