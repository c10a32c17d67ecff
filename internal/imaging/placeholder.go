package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PlaceholderText is shown when there is no image to render.
const PlaceholderText = "No image selected"

// Default placeholder size, matching the viewer's display area.
const (
	PlaceholderWidth  = 600
	PlaceholderHeight = 400
)

var (
	placeholderBackground = color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}
	placeholderForeground = color.RGBA{0x40, 0x40, 0x40, 0xFF}
)

// Placeholder draws PlaceholderText centred on a light background. Sizes
// smaller than the text are allowed; the text is then clipped.
func Placeholder(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		width, height = PlaceholderWidth, PlaceholderHeight
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(placeholderBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(placeholderForeground),
		Face: face,
	}
	textWidth := d.MeasureString(PlaceholderText)
	metrics := face.Metrics()
	textHeight := metrics.Ascent + metrics.Descent

	d.Dot = fixed.Point26_6{
		X: (fixed.I(width) - textWidth) / 2,
		Y: (fixed.I(height)-textHeight)/2 + metrics.Ascent,
	}
	d.DrawString(PlaceholderText)

	return FromImage(canvas)
}
