// Package imaging handles the raster side of fractal rendering: writing the
// rendered image to disk, reading it back, and post-processing it.
//
// This package provides PNG output, an image cache for rendered files,
// thumbnails, an axis overlay that labels complex-plane coordinates, and
// color sampling and dominant-color summaries for inspecting results. All
// operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The other functions are
// stateless and never modify their input images.
//
// # Color Representation
//
// Sampled colors are returned in multiple formats:
//   - Hex: 6-character format "#RRGGBB"
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Non-positive thumbnail widths or overlay steps
//   - File I/O errors while reading or writing images
//   - Encoding errors during image output
package imaging
