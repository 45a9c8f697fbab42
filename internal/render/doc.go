// Package render turns a job into a raster image and runs the batch pipeline
// around it.
//
// Render evaluates every pixel of the job's grid independently: pixel
// position to plane point, plane point to iteration result, result to color.
// Rows are split into disjoint bands that are rendered concurrently; no two
// goroutines write the same pixel, so the output is identical to a
// sequential pass.
//
// Execute wraps Render with the rest of a run: the optional axis overlay,
// PNG output, the optional thumbnail and a summary of the result.
package render
