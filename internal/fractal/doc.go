// Package fractal implements escape-time evaluation for the quadratic family
// of fractals (Mandelbrot, Julia, Burning Ship) and the mapping between pixel
// grid positions and points on the complex plane.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
//   - Column increases rightward, the real part increases with it
//   - Row increases downward, the imaginary part decreases with it
//
// Column 0 maps to the viewport's upper-left real part and column width-1 maps
// to the lower-right real part. Rows behave the same way on the imaginary axis.
//
// # Iteration Results
//
// Every evaluation yields a Result that is either inside (the orbit stayed
// bounded for the whole iteration budget) or outside (the orbit crossed the
// escape radius after Iterations steps). Results carry counts only, never
// plane coordinates.
//
// # Thread Safety
//
// All types in this package are immutable values once constructed. Evaluate
// and Plane.ComplexAt may be called concurrently from any number of goroutines.
package fractal
