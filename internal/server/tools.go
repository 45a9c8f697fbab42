package server

import (
	"github.com/ironsheep/fractal-render/internal/colorscheme"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func schemeNames() []string {
	kinds := colorscheme.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "fractal_render",
			Description: "Render a TOML job description to a PNG image. Returns the output path, size, share of inside pixels and dominant colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"job_path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the job description file",
					},
					"image_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory for the output image (default: the server's image directory)",
					},
				},
				"required": []string{"job_path"},
			},
		},
		{
			Name:        "fractal_evaluate",
			Description: "Run the escape-time iteration for one complex point and report whether it stays inside or after how many iterations it escapes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"fractal": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"mandelbrot", "julia", "burning_ship"},
						"description": "Fractal formula",
					},
					"point": map[string]interface{}{
						"type":        "string",
						"description": "Complex point, e.g. \"-0.75+0.1i\"",
					},
					"max_iterations": map[string]interface{}{
						"type":        "integer",
						"description": "Iteration budget (default 512)",
						"default":     512,
					},
					"escape_length": map[string]interface{}{
						"type":        "number",
						"description": "Escape radius (default 2.0)",
						"default":     2.0,
					},
					"c": map[string]interface{}{
						"type":        "string",
						"description": "Julia parameter, required for julia",
					},
					"scheme": map[string]interface{}{
						"type":        "string",
						"enum":        schemeNames(),
						"description": "Optional color scheme; when set the resulting color is included",
					},
				},
				"required": []string{"fractal", "point"},
			},
		},
		{
			Name:        "fractal_locate",
			Description: "Return the complex-plane point that a pixel of a job's grid maps to.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"job_path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the job description file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Column (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Row (0-based, from top)",
					},
				},
				"required": []string{"job_path", "x", "y"},
			},
		},
		{
			Name:        "fractal_sample_color",
			Description: "Get the exact color value at a pixel of a rendered image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the rendered PNG",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "fractal_dominant_colors",
			Description: "Return the N most frequent colors of a rendered image with their share of the pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the rendered PNG",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return (default 5)",
						"default":     5,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
