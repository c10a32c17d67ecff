// Package camera captures single still frames from a capture device.
//
// A device is an exclusive resource: Snapshot opens it, reads exactly one
// frame and closes it again before returning, on every path.
//
// The OpenCV-backed implementation is only compiled with the "gocv" build tag
// (it needs cgo and an OpenCV install). Without the tag, Default returns an
// opener that always reports ErrDeviceUnavailable.
package camera

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ironsheep/channel-viewer/internal/imaging"
)

var (
	// ErrDeviceUnavailable is returned when the capture device cannot be opened.
	ErrDeviceUnavailable = errors.New("camera unavailable")

	// ErrCaptureFailed is returned when the device opened but produced no frame.
	ErrCaptureFailed = errors.New("camera capture failed")
)

// Device is an open capture device.
type Device interface {
	// ReadFrame grabs one frame as an RGB buffer.
	ReadFrame() (*imaging.Buffer, error)

	// Close releases the device.
	Close() error
}

// Opener acquires a Device.
type Opener interface {
	Open() (Device, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func() (Device, error)

// Open calls f.
func (f OpenerFunc) Open() (Device, error) { return f() }

// Snapshot opens the device, reads one frame and closes the device.
//
// Close is called exactly once on every device Open returned, even alongside
// an Open error, and whether or not the read produced a frame. A Close error is logged and does not discard a frame
// that was already read.
func Snapshot(o Opener) (*imaging.Buffer, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: no capture device configured", ErrDeviceUnavailable)
	}

	dev, err := o.Open()
	if err != nil {
		if dev != nil {
			if cerr := dev.Close(); cerr != nil {
				slog.Warn("failed to release camera", "error", cerr)
			}
		}
		return nil, fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}
	if dev == nil {
		return nil, ErrDeviceUnavailable
	}

	defer func() {
		if err := dev.Close(); err != nil {
			slog.Warn("failed to release camera", "error", err)
		}
	}()

	frame, err := dev.ReadFrame()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}
	if frame == nil || frame.Width <= 0 || frame.Height <= 0 {
		return nil, fmt.Errorf("%w: empty frame", ErrCaptureFailed)
	}

	return frame, nil
}
