package fractal

import "math"

// Result is the outcome of an escape-time evaluation.
//
// Iterations counts the completed transform+square+add steps and never
// exceeds MaxIterations. An inside result always has
// Iterations == MaxIterations.
type Result struct {
	Inside        bool `json:"inside"`
	Iterations    int  `json:"iterations"`
	MaxIterations int  `json:"max_iterations"`
}

// Inside builds a bounded-orbit result.
func Inside(iterations, maxIterations int) Result {
	return Result{Inside: true, Iterations: iterations, MaxIterations: maxIterations}
}

// Outside builds an escaped-orbit result.
func Outside(iterations, maxIterations int) Result {
	return Result{Iterations: iterations, MaxIterations: maxIterations}
}

// Transform is applied to the running value before it is squared on every
// iteration.
type Transform func(z complex128) complex128

// Identity leaves z unchanged. Used by Mandelbrot and Julia.
func Identity(z complex128) complex128 { return z }

// Fold maps z to (|re|, -|im|). Used by Burning Ship.
//
// The negative imaginary part keeps the ship upright in screen orientation
// (row 0 at the top of the image).
func Fold(z complex128) complex128 {
	return complex(math.Abs(real(z)), -math.Abs(imag(z)))
}

// Evaluate iterates z = transform(z); z = z*z + c starting from z0 until the
// squared magnitude of z reaches escapeLength² or maxIterations steps have
// run.
//
// The escape test runs before each step, so a z0 that already lies on or
// beyond the escape radius is reported as Outside after 0 iterations. A nil
// transform is treated as Identity.
func Evaluate(z0, c complex128, escapeLength float64, maxIterations int, transform Transform) Result {
	if transform == nil {
		transform = Identity
	}

	threshold := escapeLength * escapeLength
	z := z0
	n := 0
	for real(z)*real(z)+imag(z)*imag(z) < threshold && n < maxIterations {
		z = transform(z)
		z = z*z + c
		n++
	}

	if n >= maxIterations {
		return Inside(n, maxIterations)
	}
	return Outside(n, maxIterations)
}
