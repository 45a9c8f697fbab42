package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/fractal-render/internal/colorscheme"
	"github.com/ironsheep/fractal-render/internal/fractal"
	"github.com/ironsheep/fractal-render/internal/imaging"
	"github.com/ironsheep/fractal-render/internal/job"
	"github.com/ironsheep/fractal-render/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "fractal_render").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "fractal_render":
		return s.handleRender(args)
	case "fractal_evaluate":
		return s.handleEvaluate(args)
	case "fractal_locate":
		return s.handleLocate(args)
	case "fractal_sample_color":
		return s.handleSampleColor(args)
	case "fractal_dominant_colors":
		return s.handleDominantColors(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return fmt.Errorf("missing arguments")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

type renderArgs struct {
	JobPath  string `json:"job_path"`
	ImageDir string `json:"image_dir"`
}

func (s *Server) handleRender(args json.RawMessage) (interface{}, error) {
	var a renderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	dir := a.ImageDir
	if dir == "" {
		dir = s.imageDir
	}

	j, err := job.Load(a.JobPath, job.WithImageDir(dir))
	if err != nil {
		return nil, err
	}
	return render.Execute(j, render.Options{Debug: s.debug, Cache: s.cache})
}

type evaluateArgs struct {
	Fractal       string  `json:"fractal"`
	Point         string  `json:"point"`
	MaxIterations int     `json:"max_iterations"`
	EscapeLength  float64 `json:"escape_length"`
	C             string  `json:"c"`
	Scheme        string  `json:"scheme"`
}

// EvaluateResult is the outcome of fractal_evaluate.
type EvaluateResult struct {
	fractal.Result
	Color *imaging.ColorResult `json:"color,omitempty"`
}

func (s *Server) handleEvaluate(args json.RawMessage) (interface{}, error) {
	var a evaluateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	kind, err := job.ParseFractalKind(a.Fractal)
	if err != nil {
		return nil, err
	}
	point, err := job.ParseComplex(a.Point)
	if err != nil {
		return nil, err
	}

	params := fractal.DefaultParams()
	if a.MaxIterations != 0 {
		if a.MaxIterations < 0 {
			return nil, fmt.Errorf("max_iterations must be positive, got %d", a.MaxIterations)
		}
		params.MaxIterations = a.MaxIterations
	}
	if a.EscapeLength != 0 {
		if a.EscapeLength < 0 {
			return nil, fmt.Errorf("escape_length must be positive, got %v", a.EscapeLength)
		}
		params.EscapeLength = a.EscapeLength
	}

	var c complex128
	if kind != fractal.KindJulia && a.C != "" {
		return nil, fmt.Errorf("parameter c applies only to julia, not %s", kind)
	}
	if kind == fractal.KindJulia {
		if a.C == "" {
			return nil, fmt.Errorf("julia requires parameter c")
		}
		if c, err = job.ParseComplex(a.C); err != nil {
			return nil, err
		}
	}

	f, err := fractal.New(kind, params, c)
	if err != nil {
		return nil, err
	}
	res := EvaluateResult{Result: f.Evaluate(point)}

	if a.Scheme != "" {
		schemeKind, err := job.ParseSchemeKind(a.Scheme)
		if err != nil {
			return nil, err
		}
		scheme, err := colorscheme.New(schemeKind, colorscheme.Options{})
		if err != nil {
			return nil, err
		}
		color := imaging.Describe(scheme.Color(res.Result).To8Bit())
		res.Color = &color
	}

	return res, nil
}

type locateArgs struct {
	JobPath string `json:"job_path"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

// LocateResult is the outcome of fractal_locate.
type LocateResult struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Real  float64 `json:"real"`
	Imag  float64 `json:"imag"`
	Point string  `json:"point"`
}

func (s *Server) handleLocate(args json.RawMessage) (interface{}, error) {
	var a locateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	j, err := job.Load(a.JobPath, job.WithImageDir(s.imageDir))
	if err != nil {
		return nil, err
	}
	plane, err := j.Plane()
	if err != nil {
		return nil, err
	}
	if a.X < 0 || a.X >= plane.Width() || a.Y < 0 || a.Y >= plane.Height() {
		return nil, fmt.Errorf("pixel (%d,%d) outside %dx%d grid", a.X, a.Y, plane.Width(), plane.Height())
	}

	z := plane.ComplexAt(a.X, a.Y)
	return &LocateResult{
		X:     a.X,
		Y:     a.Y,
		Real:  real(z),
		Imag:  imag(z),
		Point: fmt.Sprint(z),
	}, nil
}

type sampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type dominantColorsArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (s *Server) handleDominantColors(args json.RawMessage) (interface{}, error) {
	var a dominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count)
}
