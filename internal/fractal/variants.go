package fractal

import "fmt"

// Default evaluation parameters used when a job leaves them unspecified.
const (
	DefaultMaxIterations = 512
	DefaultEscapeLength  = 2.0
)

// Kind identifies one of the supported fractal formulas.
type Kind int

const (
	KindMandelbrot Kind = iota + 1
	KindJulia
	KindBurningShip
)

// String returns the canonical configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMandelbrot:
		return "mandelbrot"
	case KindJulia:
		return "julia"
	case KindBurningShip:
		return "burning_ship"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Params holds the settings shared by every variant.
type Params struct {
	MaxIterations int
	EscapeLength  float64
}

// DefaultParams returns Params populated with DefaultMaxIterations and
// DefaultEscapeLength.
func DefaultParams() Params {
	return Params{
		MaxIterations: DefaultMaxIterations,
		EscapeLength:  DefaultEscapeLength,
	}
}

// Fractal classifies plane points. The set of implementations is closed:
// Mandelbrot, Julia and BurningShip.
type Fractal interface {
	// Evaluate classifies the plane point p.
	Evaluate(p complex128) Result

	// Kind reports which formula the fractal uses.
	Kind() Kind

	sealed()
}

// Mandelbrot iterates from z0 = 0 with c set to the plane point.
type Mandelbrot struct {
	Params
}

// Evaluate implements Fractal.
func (m Mandelbrot) Evaluate(p complex128) Result {
	return Evaluate(0, p, m.EscapeLength, m.MaxIterations, Identity)
}

// Kind implements Fractal.
func (Mandelbrot) Kind() Kind { return KindMandelbrot }

func (Mandelbrot) sealed() {}

// Julia iterates from z0 set to the plane point with a fixed parameter C.
type Julia struct {
	Params
	C complex128
}

// Evaluate implements Fractal.
func (j Julia) Evaluate(p complex128) Result {
	return Evaluate(p, j.C, j.EscapeLength, j.MaxIterations, Identity)
}

// Kind implements Fractal.
func (Julia) Kind() Kind { return KindJulia }

func (Julia) sealed() {}

// BurningShip iterates like Mandelbrot but folds the running value with Fold
// before every squaring.
type BurningShip struct {
	Params
}

// Evaluate implements Fractal.
func (b BurningShip) Evaluate(p complex128) Result {
	return Evaluate(0, p, b.EscapeLength, b.MaxIterations, Fold)
}

// Kind implements Fractal.
func (BurningShip) Kind() Kind { return KindBurningShip }

func (BurningShip) sealed() {}

// New builds the fractal of the given kind. c is used only by KindJulia.
func New(kind Kind, params Params, c complex128) (Fractal, error) {
	switch kind {
	case KindMandelbrot:
		return Mandelbrot{Params: params}, nil
	case KindJulia:
		return Julia{Params: params, C: c}, nil
	case KindBurningShip:
		return BurningShip{Params: params}, nil
	default:
		return nil, fmt.Errorf("unknown fractal kind: %v", kind)
	}
}
