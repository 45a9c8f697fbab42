// Package job reads render job descriptions.
//
// A job description is a TOML document naming the viewport, the output grid
// size, the fractal formula and the color scheme:
//
//	[image]
//	size = "512x384"
//	upper_left = "-2.0+1.2i"
//	lower_right = "1.2-1.2i"
//
//	[fractal]
//	type = "mandelbrot"
//	max_iterations = 512
//
//	[color]
//	scheme = "black_on_white"
//
// Load and Parse turn a description into an immutable Job. The output image
// path is derived from the input path: the extension is replaced by ".png"
// and the file is placed under DefaultImageDir.
//
// # Error Handling
//
// Every failure is returned as an *Error whose Kind tells configuration
// problems (bad literals, unknown names, missing fields), structural problems
// (empty or malformed documents) and input I/O failures apart. The raw text
// that caused the failure is kept in Error.Raw for diagnostics.
package job
