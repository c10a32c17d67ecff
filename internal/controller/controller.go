// Package controller holds the viewer's single image and the edits that can
// be applied to it.
//
// The Controller owns at most one image buffer and the current channel
// selector. Loading or capturing replaces the buffer and resets the selector;
// every edit derives a new buffer from the current one and swaps it in, so a
// buffer handed out by Render is never written afterwards.
//
// A Controller is not safe for concurrent use. It is driven from one event
// loop and each call runs to completion before the next starts.
package controller

import (
	"fmt"
	"log/slog"

	"github.com/ironsheep/channel-viewer/internal/camera"
	"github.com/ironsheep/channel-viewer/internal/imaging"
)

// SourceCamera is the Info source reported for captured images.
const SourceCamera = "camera"

// Limits bounds the arguments accepted by the edit operations.
type Limits struct {
	// MaxDimension is the largest width or height Resize accepts.
	MaxDimension int

	// MaxRadius is the largest radius DrawCircle accepts.
	MaxRadius int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxDimension: 2000, MaxRadius: 1000}
}

// Controller is the image state behind the viewer.
type Controller struct {
	image   *imaging.Buffer
	channel imaging.Channel
	source  string
	format  string

	camera camera.Opener
	limits Limits
	logger *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithCamera sets the device used by Capture.
func WithCamera(o camera.Opener) Option {
	return func(c *Controller) { c.camera = o }
}

// WithLimits overrides the argument limits. Non-positive fields keep their
// defaults.
func WithLimits(l Limits) Option {
	return func(c *Controller) {
		if l.MaxDimension > 0 {
			c.limits.MaxDimension = l.MaxDimension
		}
		if l.MaxRadius > 0 {
			c.limits.MaxRadius = l.MaxRadius
		}
	}
}

// WithLogger sets the logger for state changes.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a controller with no image and the All selector.
func New(opts ...Option) *Controller {
	c := &Controller{
		channel: imaging.ChannelAll,
		limits:  DefaultLimits(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Limits returns the limits in effect.
func (c *Controller) Limits() Limits { return c.limits }

// HasImage reports whether an image is loaded.
func (c *Controller) HasImage() bool { return c.image != nil }

// Channel returns the current selector.
func (c *Controller) Channel() imaging.Channel { return c.channel }

// SetChannel changes what Render shows. It never fails; an undefined selector
// is stored as ChannelAll. The caller re-renders.
func (c *Controller) SetChannel(ch imaging.Channel) {
	if !ch.Valid() {
		ch = imaging.ChannelAll
	}
	c.channel = ch
}

// LoadFile replaces the current image with the decoded contents of path.
// On failure the controller is left untouched.
func (c *Controller) LoadFile(path string) (*imaging.ImageInfo, error) {
	buf, info, err := imaging.LoadFile(path)
	if err != nil {
		return nil, err
	}

	c.replace(buf, path, info.Format)
	c.logger.Debug("image loaded", "path", path, "width", buf.Width, "height", buf.Height, "format", info.Format)
	return info, nil
}

// Capture replaces the current image with one frame from the camera. The
// device is released before Capture returns, on success and failure alike.
func (c *Controller) Capture() error {
	frame, err := camera.Snapshot(c.camera)
	if err != nil {
		return err
	}

	c.replace(frame, SourceCamera, "")
	c.logger.Debug("frame captured", "width", frame.Width, "height", frame.Height)
	return nil
}

func (c *Controller) replace(buf *imaging.Buffer, source, format string) {
	c.image = buf
	c.source = source
	c.format = format
	c.channel = imaging.ChannelAll
}

// Resize resamples the image to exactly width x height.
func (c *Controller) Resize(width, height int) error {
	if c.image == nil {
		return ErrNoImage
	}
	if err := checkRange("width", width, 1, c.limits.MaxDimension); err != nil {
		return err
	}
	if err := checkRange("height", height, 1, c.limits.MaxDimension); err != nil {
		return err
	}

	out, err := imaging.Resize(c.image, width, height)
	if err != nil {
		return err
	}
	c.image = out
	return nil
}

// DecreaseBrightness subtracts amount from every channel, saturating at 0.
func (c *Controller) DecreaseBrightness(amount int) error {
	if c.image == nil {
		return ErrNoImage
	}
	if err := checkRange("amount", amount, 0, 255); err != nil {
		return err
	}

	out, err := imaging.DecreaseBrightness(c.image, amount)
	if err != nil {
		return err
	}
	c.image = out
	return nil
}

// DrawCircle draws a red outline centred on (cx, cy). The centre may sit on
// the right or bottom edge (cx == width, cy == height).
func (c *Controller) DrawCircle(cx, cy, radius int) error {
	if c.image == nil {
		return ErrNoImage
	}
	if err := checkRange("x", cx, 0, c.image.Width); err != nil {
		return err
	}
	if err := checkRange("y", cy, 0, c.image.Height); err != nil {
		return err
	}
	if err := checkRange("radius", radius, 1, c.limits.MaxRadius); err != nil {
		return err
	}

	out, err := imaging.DrawCircle(c.image, cx, cy, radius)
	if err != nil {
		return err
	}
	c.image = out
	return nil
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s %d not in [%d,%d]", ErrOutOfRange, name, v, lo, hi)
	}
	return nil
}

// View is the result of Render.
type View struct {
	// Empty is set when no image is loaded; Buffer is nil in that case and
	// the caller shows a placeholder.
	Empty bool

	// Channel is the selector the view was rendered with.
	Channel imaging.Channel

	// Buffer is a fresh RGB buffer owned by the caller.
	Buffer *imaging.Buffer
}

// Render derives the displayable view from the current state. It never
// modifies the controller and returns identical pixels until the next edit.
func (c *Controller) Render() View {
	if c.image == nil {
		return View{Empty: true, Channel: c.channel}
	}
	return View{
		Channel: c.channel,
		Buffer:  imaging.IsolateChannel(c.image, c.channel),
	}
}

// Info summarises the controller state.
type Info struct {
	HasImage bool            `json:"has_image"`
	Width    int             `json:"width,omitempty"`
	Height   int             `json:"height,omitempty"`
	Channel  imaging.Channel `json:"channel"`
	Source   string          `json:"source,omitempty"`
	Format   string          `json:"format,omitempty"`
}

// Info reports the current state.
func (c *Controller) Info() Info {
	info := Info{Channel: c.channel}
	if c.image != nil {
		info.HasImage = true
		info.Width = c.image.Width
		info.Height = c.image.Height
		info.Source = c.source
		info.Format = c.format
	}
	return info
}
