package imaging

import (
	"fmt"
	"image"
	"image/color"
)

// Buffer is an opaque 8-bit RGB raster.
//
// Pixels are stored row-major with the three channels interleaved in
// R, G, B order, so len(Pix) == Width*Height*3. A Buffer is treated as an
// immutable value once it has been handed to a caller: every transform in
// this package returns a new Buffer and never writes to its input.
//
// Buffer implements image.Image so it can be passed straight to other imaging
// libraries. Its bounds always start at (0,0).
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBuffer allocates a black buffer of the given size.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid buffer size %dx%d", width, height)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}, nil
}

// FromImage converts any image into a Buffer.
//
// Grayscale, paletted and 16-bit images are expanded to 8-bit RGB. Alpha is
// dropped without compositing against a background: the straight
// (non-premultiplied) colour of each pixel is kept.
func FromImage(img image.Image) (*Buffer, error) {
	if b, ok := img.(*Buffer); ok {
		return b.Clone(), nil
	}

	bounds := img.Bounds()
	buf, err := NewBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	i := 0
	switch src := img.(type) {
	case *image.NRGBA:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, y):]
			for x := 0; x < buf.Width; x++ {
				buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = row[x*4], row[x*4+1], row[x*4+2]
				i += 3
			}
		}
	case *image.NRGBA64:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, y):]
			for x := 0; x < buf.Width; x++ {
				// High bytes of the big-endian 16-bit samples.
				buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = row[x*8], row[x*8+2], row[x*8+4]
				i += 3
			}
		}
	case *image.Gray:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, y):]
			for x := 0; x < buf.Width; x++ {
				v := row[x]
				buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = v, v, v
				i += 3
			}
		}
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = c.R, c.G, c.B
				i += 3
			}
		}
	}

	return buf, nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// PixOffset returns the index of the first channel of pixel (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * 3
}

// RGB returns the channel intensities at (x, y). Coordinates must be in range.
func (b *Buffer) RGB(x, y int) (r, g, bl uint8) {
	i := b.PixOffset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// SetRGB writes a pixel. Out of range coordinates are ignored.
func (b *Buffer) SetRGB(x, y int, r, g, bl uint8) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	i := b.PixOffset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return color.RGBA{}
	}
	r, g, bl := b.RGB(x, y)
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// NRGBA expands the buffer into a fully opaque *image.NRGBA.
func (b *Buffer) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(b.Bounds())
	for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+4 {
		out.Pix[j] = b.Pix[i]
		out.Pix[j+1] = b.Pix[i+1]
		out.Pix[j+2] = b.Pix[i+2]
		out.Pix[j+3] = 255
	}
	return out
}

// Equal reports whether two buffers have the same size and pixel data.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.Width != o.Width || b.Height != o.Height || len(b.Pix) != len(o.Pix) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}
