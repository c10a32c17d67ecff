package imaging

import (
	"fmt"
	"math"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains a color value in several representations.
type ColorResult struct {
	Hex string   `json:"hex"` // "#RRGGBB"
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// SampleColor returns the color at (x, y).
//
// Coordinates are 0-based with origin at top-left; valid ranges are
// 0..width-1 and 0..height-1.
func SampleColor(b *Buffer, x, y int) (*ColorResult, error) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, b.Width, b.Height)
	}

	r, g, bl := b.RGB(x, y)
	result := describeColor(r, g, bl)
	return &result, nil
}

func describeColor(r, g, b uint8) ColorResult {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()

	return ColorResult{
		Hex: strings.ToUpper(c.Hex()),
		RGB: RGBColor{R: r, G: g, B: b},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Color      ColorResult `json:"color"`      // Quantized color
	Percentage float64     `json:"percentage"` // Share of pixels (0-100)
}

// DominantColorsResult contains the most frequent colors, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most common colors in b.
//
// Each component is quantized to a multiple of 16 before counting so that
// near-identical shades are grouped together:
//
//	quantized = (original / 16) * 16
func DominantColors(b *Buffer, count int) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("color count must be positive, got %d", count)
	}

	counts := make(map[[3]uint8]int)
	for i := 0; i < len(b.Pix); i += 3 {
		key := [3]uint8{b.Pix[i] / 16 * 16, b.Pix[i+1] / 16 * 16, b.Pix[i+2] / 16 * 16}
		counts[key]++
	}

	total := float64(b.Width * b.Height)
	colors := make([]ColorFrequency, 0, len(counts))
	for key, n := range counts {
		colors = append(colors, ColorFrequency{
			Color:      describeColor(key[0], key[1], key[2]),
			Percentage: float64(n) / total * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Color.Hex < colors[j].Color.Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}
