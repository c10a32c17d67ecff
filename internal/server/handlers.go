package server

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/ironsheep/channel-viewer/internal/controller"
	"github.com/ironsheep/channel-viewer/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_resize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ToolErrorData is the data attached to a failed tool call.
type ToolErrorData struct {
	// Kind is a stable identifier such as "no_image" or "corrupt_image".
	Kind string `json:"kind"`

	// Message is the human-readable error text.
	Message string `json:"message"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000 and
// a ToolErrorData payload.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	s.logger.Debug("tool call", "tool", params.Name)

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", ToolErrorData{
			Kind:    controller.Kind(err),
			Message: err.Error(),
		})
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
	// Image sources
	case "image_load":
		return s.handleImageLoad(args)
	case "image_capture":
		return s.handleImageCapture(args)

	// View
	case "image_set_channel":
		return s.handleImageSetChannel(args)
	case "image_render":
		return s.handleImageRender(args)
	case "image_info":
		return s.ctrl.Info(), nil

	// Edits
	case "image_resize":
		return s.handleImageResize(args)
	case "image_decrease_brightness":
		return s.handleImageDecreaseBrightness(args)
	case "image_draw_circle":
		return s.handleImageDrawCircle(args)

	// Inspection
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
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

// unmarshalArgs decodes tool arguments. Missing arguments decode as an
// empty object.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// ViewResult is the rendered view sent back after every change.
type ViewResult struct {
	// Empty is true when no image is loaded; Image then holds the placeholder.
	Empty   bool                  `json:"empty"`
	Channel imaging.Channel       `json:"channel"`
	Image   *imaging.EncodedImage `json:"image"`
}

// EditResult is returned by every tool that changes the view.
type EditResult struct {
	Message string     `json:"message"`
	View    ViewResult `json:"view"`
}

// render encodes the controller's current view, substituting the placeholder
// when no image is loaded.
func (s *Server) render() (*ViewResult, error) {
	view := s.ctrl.Render()
	buf := view.Buffer
	if view.Empty {
		var err error
		if buf, err = imaging.Placeholder(imaging.PlaceholderWidth, imaging.PlaceholderHeight); err != nil {
			return nil, err
		}
	}

	enc, err := imaging.EncodeBase64PNG(buf)
	if err != nil {
		return nil, err
	}
	return &ViewResult{Empty: view.Empty, Channel: view.Channel, Image: enc}, nil
}

func (s *Server) edited(message string) (*EditResult, error) {
	view, err := s.render()
	if err != nil {
		return nil, err
	}
	return &EditResult{Message: message, View: *view}, nil
}

// === Image Source Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

// LoadResult is returned by image_load.
type LoadResult struct {
	EditResult
	Info *imaging.ImageInfo `json:"info"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	info, err := s.ctrl.LoadFile(a.Path)
	if err != nil {
		return nil, err
	}

	res, err := s.edited(fmt.Sprintf("loaded %s", filepath.Base(a.Path)))
	if err != nil {
		return nil, err
	}
	return &LoadResult{EditResult: *res, Info: info}, nil
}

func (s *Server) handleImageCapture(_ json.RawMessage) (interface{}, error) {
	if err := s.ctrl.Capture(); err != nil {
		return nil, err
	}
	return s.edited("snapshot taken")
}

// === View Handlers ===

type imageSetChannelArgs struct {
	Channel string `json:"channel"`
}

func (s *Server) handleImageSetChannel(args json.RawMessage) (interface{}, error) {
	var a imageSetChannelArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	ch, err := imaging.ParseChannel(a.Channel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", controller.ErrOutOfRange, err)
	}

	s.ctrl.SetChannel(ch)
	return s.edited(fmt.Sprintf("showing %s", ch))
}

func (s *Server) handleImageRender(_ json.RawMessage) (interface{}, error) {
	return s.render()
}

// === Edit Handlers ===

type imageResizeArgs struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.ctrl.Resize(a.Width, a.Height); err != nil {
		return nil, err
	}
	return s.edited(fmt.Sprintf("resized to %dx%d", a.Width, a.Height))
}

type imageDecreaseBrightnessArgs struct {
	Amount int `json:"amount"`
}

func (s *Server) handleImageDecreaseBrightness(args json.RawMessage) (interface{}, error) {
	var a imageDecreaseBrightnessArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.ctrl.DecreaseBrightness(a.Amount); err != nil {
		return nil, err
	}
	return s.edited(fmt.Sprintf("brightness decreased by %d", a.Amount))
}

type imageDrawCircleArgs struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Radius int `json:"radius"`
}

func (s *Server) handleImageDrawCircle(args json.RawMessage) (interface{}, error) {
	var a imageDrawCircleArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.ctrl.DrawCircle(a.X, a.Y, a.Radius); err != nil {
		return nil, err
	}
	return s.edited(fmt.Sprintf("circle drawn at (%d,%d) radius %d", a.X, a.Y, a.Radius))
}

// === Inspection Handlers ===

// currentView returns the rendered buffer, or ErrNoImage.
func (s *Server) currentView() (*imaging.Buffer, error) {
	view := s.ctrl.Render()
	if view.Empty {
		return nil, controller.ErrNoImage
	}
	return view.Buffer, nil
}

type imageSampleColorArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.currentView()
	if err != nil {
		return nil, err
	}
	res, err := imaging.SampleColor(buf, a.X, a.Y)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", controller.ErrOutOfRange, err)
	}
	return res, nil
}

type imageDominantColorsArgs struct {
	Count int `json:"count"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	buf, err := s.currentView()
	if err != nil {
		return nil, err
	}
	res, err := imaging.DominantColors(buf, a.Count)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", controller.ErrOutOfRange, err)
	}
	return res, nil
}
