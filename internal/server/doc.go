// Package server implements an MCP (Model Context Protocol) server that
// exposes the fractal renderer as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - fractal_render: Render a job description file to PNG
//   - fractal_evaluate: Classify a single complex point
//   - fractal_locate: Map a pixel of a job's grid to its complex point
//   - fractal_sample_color: Get the color at a pixel of a rendered image
//   - fractal_dominant_colors: Summarize the colors of a rendered image
//
// # Image Caching
//
// Images written by fractal_render are kept in memory by output path, so
// later sampling calls on the same output do not decode the file again.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
