//go:build gocv

package camera

import (
	"fmt"
	"log/slog"

	"gocv.io/x/gocv"

	"github.com/ironsheep/channel-viewer/internal/imaging"
)

// Supported reports whether this build can talk to real capture devices.
const Supported = true

// VideoDevice is an OpenCV VideoCapture device.
type VideoDevice struct {
	capture *gocv.VideoCapture
}

// Default returns an opener for the capture device with the given index
// (0 is the system default webcam).
func Default(index int) Opener {
	return OpenerFunc(func() (Device, error) {
		capture, err := gocv.VideoCaptureDevice(index)
		if err != nil {
			return nil, fmt.Errorf("open device %d: %w", index, err)
		}
		if !capture.IsOpened() {
			if cerr := capture.Close(); cerr != nil {
				slog.Warn("failed to release camera", "device", index, "error", cerr)
			}
			return nil, fmt.Errorf("device %d did not open", index)
		}
		return &VideoDevice{capture: capture}, nil
	})
}

// ReadFrame grabs one BGR frame and converts it to an RGB buffer.
func (d *VideoDevice) ReadFrame() (*imaging.Buffer, error) {
	mat := gocv.NewMat()
	defer mat.Close()

	if ok := d.capture.Read(&mat); !ok || mat.Empty() {
		return nil, fmt.Errorf("no frame read")
	}

	// ToImage swaps OpenCV's BGR order into a Go RGBA image.
	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	return imaging.FromImage(img)
}

// Close releases the device.
func (d *VideoDevice) Close() error {
	return d.capture.Close()
}
