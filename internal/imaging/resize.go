package imaging

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// Resize returns a new buffer resampled to exactly width x height using
// bilinear interpolation. The aspect ratio is not preserved.
func Resize(src *Buffer, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}

	resized := imaging.Resize(src, width, height, imaging.Linear)
	return FromImage(resized)
}
