package imaging

import (
	"fmt"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
)

// DecreaseBrightness subtracts amount from every channel of every pixel,
// saturating at zero. The same scalar is applied to R, G and B; there is no
// luminance weighting.
func DecreaseBrightness(src *Buffer, amount int) (*Buffer, error) {
	if amount < 0 || amount > 255 {
		return nil, fmt.Errorf("brightness amount %d outside [0,255]", amount)
	}
	if amount == 0 {
		return src.Clone(), nil
	}

	d := uint8(amount)
	sub := func(v uint8) uint8 {
		if v < d {
			return 0
		}
		return v - d
	}

	out := adjust.Apply(src, func(c color.RGBA) color.RGBA {
		return color.RGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: 255}
	})
	return FromImage(out)
}
