package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func noArgs() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func integerProp(description string, lo, hi int) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
		"minimum":     lo,
		"maximum":     hi,
	}
}

// GetToolDefinitions returns all available tools. Numeric bounds in the
// schemas come from the controller limits in effect.
func (s *Server) GetToolDefinitions() []Tool {
	limits := s.ctrl.Limits()

	return []Tool{
		// Image sources
		{
			Name:        "image_load",
			Description: "Load a PNG or JPEG file as the current image. Resets the channel view to all channels and returns the rendered view.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to a .png, .jpg or .jpeg file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_capture",
			Description: "Take one still photo from the default webcam and make it the current image.",
			InputSchema: noArgs(),
		},

		// View
		{
			Name:        "image_set_channel",
			Description: "Choose what the view shows: all channels, or only the red, green or blue channel with the other two zeroed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"channel": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"all", "red", "green", "blue"},
						"description": "Channel selector",
					},
				},
				"required": []string{"channel"},
			},
		},
		{
			Name:        "image_render",
			Description: "Return the current view as a base64-encoded PNG. Without an image, returns a placeholder and empty=true.",
			InputSchema: noArgs(),
		},
		{
			Name:        "image_info",
			Description: "Report whether an image is loaded, its size, source and the selected channel.",
			InputSchema: noArgs(),
		},

		// Edits
		{
			Name:        "image_resize",
			Description: "Resize the current image to exactly the given width and height (bilinear, aspect ratio not preserved).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width":  integerProp("New width in pixels", 1, limits.MaxDimension),
					"height": integerProp("New height in pixels", 1, limits.MaxDimension),
				},
				"required": []string{"width", "height"},
			},
		},
		{
			Name:        "image_decrease_brightness",
			Description: "Subtract a value from every channel of every pixel, clamping at 0.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"amount": integerProp("Value to subtract", 0, 255),
				},
				"required": []string{"amount"},
			},
		},
		{
			Name:        "image_draw_circle",
			Description: "Draw a red circle outline, 2 pixels thick, on the current image. Parts outside the image are clipped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Centre X coordinate (0 to image width)",
						"minimum":     0,
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Centre Y coordinate (0 to image height)",
						"minimum":     0,
					},
					"radius": integerProp("Circle radius in pixels", 1, limits.MaxRadius),
				},
				"required": []string{"x", "y", "radius"},
			},
		},

		// Inspection
		{
			Name:        "image_sample_color",
			Description: "Get the color of one pixel of the current view (hex, RGB and HSL).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "List the most common colors of the current view.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
				},
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
			"tools": s.GetToolDefinitions(),
		},
	}
}
