package imaging

import (
	"fmt"
	"math"
)

// CircleThickness is the width of the outline drawn by DrawCircle, in pixels.
const CircleThickness = 2

// OnCircleOutline reports whether the pixel at (x, y) belongs to the outline
// of a circle centred on (cx, cy). A pixel is on the outline when its distance
// d from the centre satisfies radius-1 <= d < radius+1.
func OnCircleOutline(x, y, cx, cy, radius int) bool {
	dx := float64(x - cx)
	dy := float64(y - cy)
	d := math.Sqrt(dx*dx + dy*dy)
	half := float64(CircleThickness) / 2
	return d >= float64(radius)-half && d < float64(radius)+half
}

// DrawCircle returns a copy of src with a pure red circle outline centred on
// (cx, cy). Parts of the outline outside the buffer are clipped.
func DrawCircle(src *Buffer, cx, cy, radius int) (*Buffer, error) {
	if radius < 1 {
		return nil, fmt.Errorf("circle radius %d must be positive", radius)
	}

	out := src.Clone()

	// Only the bounding box of the ring, clipped to the buffer, is scanned.
	reach := radius + CircleThickness
	x0, x1 := max(cx-reach, 0), min(cx+reach, out.Width-1)
	y0, y1 := max(cy-reach, 0), min(cy+reach, out.Height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if OnCircleOutline(x, y, cx, cy, radius) {
				out.SetRGB(x, y, 255, 0, 0)
			}
		}
	}

	return out, nil
}
