package controller

import (
	"errors"

	"github.com/ironsheep/channel-viewer/internal/camera"
	"github.com/ironsheep/channel-viewer/internal/imaging"
)

var (
	// ErrNoImage is returned by edits issued before any image was loaded.
	ErrNoImage = errors.New("no image loaded")

	// ErrOutOfRange is returned when an edit argument fails validation.
	ErrOutOfRange = errors.New("argument out of range")
)

// Error kinds reported by Kind.
const (
	KindUnsupportedFormat = "unsupported_format"
	KindCorruptImage      = "corrupt_image"
	KindIO                = "io_error"
	KindDeviceUnavailable = "device_unavailable"
	KindCaptureFailed     = "capture_failed"
	KindNoImage           = "no_image"
	KindOutOfRange        = "out_of_range"
	KindInternal          = "internal"
)

var kinds = []struct {
	err  error
	kind string
}{
	{imaging.ErrUnsupportedFormat, KindUnsupportedFormat},
	{imaging.ErrCorruptImage, KindCorruptImage},
	{imaging.ErrIO, KindIO},
	{camera.ErrDeviceUnavailable, KindDeviceUnavailable},
	{camera.ErrCaptureFailed, KindCaptureFailed},
	{ErrNoImage, KindNoImage},
	{ErrOutOfRange, KindOutOfRange},
}

// Kind maps an error returned by the controller to a stable identifier.
// Unrecognised errors map to KindInternal and nil maps to "".
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
