// Package colorscheme maps escape-time results to pixel colors.
//
// A Scheme is a pure function from a fractal.Result to a Color. The set of
// schemes is closed and selected by name in the job description:
//
//   - black_on_white: inside black, outside white
//   - white_on_black: inside white, outside black
//   - gray: outside intensity sqrt(i/m)
//   - warp_pov_red, warp_pov_green, warp_pov_blue: two-segment ramp that
//     saturates the primary channel first and then lifts the other two
//   - random: lookup into a 2048-entry table of random colors
//   - hue: outside hue proportional to i/m at full saturation and value
//   - gradient: outside blend in Lab space between two configured colors
//
// Throughout, i is Result.Iterations and m is Result.MaxIterations.
//
// # Color Representation
//
// Colors hold three float64 channels in [0, 1]. Conversion to 8-bit output
// truncates rather than rounds, so 0.5 becomes 127.
//
// # Thread Safety
//
// Schemes are immutable after construction. The Random scheme shares its
// table by reference and never modifies it, so one instance may color pixels
// from many goroutines at once.
package colorscheme
