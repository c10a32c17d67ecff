// Package server exposes the image controller as MCP tools over stdio.
//
// This is the viewer's presentation shell: every user action arrives as a
// tools/call request, is applied to the single controller, and answered with
// the freshly rendered view.
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
// Image sources:
//   - image_load: Load a PNG or JPEG file
//   - image_capture: Take a webcam snapshot
//
// View:
//   - image_set_channel: Show all channels or one isolated channel
//   - image_render: Current view as PNG
//   - image_info: Size, source and channel
//
// Edits:
//   - image_resize: Resize to an exact width and height
//   - image_decrease_brightness: Saturating brightness reduction
//   - image_draw_circle: Red circle outline
//
// Inspection:
//   - image_sample_color: Color at a pixel of the view
//   - image_dominant_colors: Most common colors of the view
//
// # Ordering
//
// Requests are processed strictly one after another. The controller is not
// safe for concurrent use and the server never calls it from more than one
// goroutine.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: {"kind": ..., "message": ...} where kind is one of the
//     controller error kinds (no_image, corrupt_image, ...)
//
// A failed tool leaves the current image and channel untouched.
package server
