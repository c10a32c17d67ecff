package imaging

import (
	"image/color"
	"testing"
)

func TestResize_ExactDimensions(t *testing.T) {
	src := createPatternBuffer(t, 100, 50)

	tests := []struct {
		name string
		w, h int
	}{
		{"same", 100, 50},
		{"shrink", 10, 5},
		{"grow", 300, 120},
		{"aspect changed", 50, 200},
		{"single pixel", 1, 1},
		{"thin", 2000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Resize(src, tt.w, tt.h)
			if err != nil {
				t.Fatalf("Resize failed: %v", err)
			}
			if out.Width != tt.w || out.Height != tt.h {
				t.Errorf("dimensions: got %dx%d, want %dx%d", out.Width, out.Height, tt.w, tt.h)
			}
			if len(out.Pix) != tt.w*tt.h*3 {
				t.Errorf("pix length: got %d, want %d", len(out.Pix), tt.w*tt.h*3)
			}
		})
	}
}

func TestResize_SolidColorPreserved(t *testing.T) {
	src := solidBuffer(t, 20, 20, color.RGBA{90, 60, 30, 255})

	out, err := Resize(src, 37, 11)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			if r, g, b := out.RGB(x, y); r != 90 || g != 60 || b != 30 {
				t.Fatalf("pixel (%d,%d): got (%d,%d,%d), want (90,60,30)", x, y, r, g, b)
			}
		}
	}
}

func TestResize_DoesNotModifySource(t *testing.T) {
	src := createPatternBuffer(t, 10, 10)
	before := src.Clone()

	if _, err := Resize(src, 5, 5); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if !src.Equal(before) {
		t.Error("Resize modified its input")
	}
}

func TestResize_InvalidSize(t *testing.T) {
	src := createPatternBuffer(t, 10, 10)
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-3, 3}} {
		if _, err := Resize(src, size[0], size[1]); err == nil {
			t.Errorf("Resize(%d,%d) should fail", size[0], size[1])
		}
	}
}

func TestDecreaseBrightness_Saturating(t *testing.T) {
	src, _ := NewBuffer(256, 1)
	for x := 0; x < 256; x++ {
		src.SetRGB(x, 0, uint8(x), uint8(255-x), uint8(x/2))
	}

	for _, amount := range []int{0, 1, 40, 128, 254, 255} {
		out, err := DecreaseBrightness(src, amount)
		if err != nil {
			t.Fatalf("DecreaseBrightness(%d) failed: %v", amount, err)
		}
		for i, v := range src.Pix {
			want := int(v) - amount
			if want < 0 {
				want = 0
			}
			if int(out.Pix[i]) != want {
				t.Fatalf("amount %d, index %d: got %d, want %d", amount, i, out.Pix[i], want)
			}
		}
	}
}

func TestDecreaseBrightness_ZeroIsIdentity(t *testing.T) {
	src := createPatternBuffer(t, 7, 3)
	out, err := DecreaseBrightness(src, 0)
	if err != nil {
		t.Fatalf("DecreaseBrightness failed: %v", err)
	}
	if !out.Equal(src) {
		t.Error("amount 0 changed the image")
	}
	if &out.Pix[0] == &src.Pix[0] {
		t.Error("amount 0 returned an aliased buffer")
	}
}

func TestDecreaseBrightness_FullAmountBlack(t *testing.T) {
	src := createPatternBuffer(t, 9, 9)
	out, err := DecreaseBrightness(src, 255)
	if err != nil {
		t.Fatalf("DecreaseBrightness failed: %v", err)
	}
	for i, v := range out.Pix {
		if v != 0 {
			t.Fatalf("index %d: got %d, want 0", i, v)
		}
	}
}

func TestDecreaseBrightness_OutOfRange(t *testing.T) {
	src := createPatternBuffer(t, 2, 2)
	for _, amount := range []int{-1, 256} {
		if _, err := DecreaseBrightness(src, amount); err == nil {
			t.Errorf("DecreaseBrightness(%d) should fail", amount)
		}
	}
}

func TestDrawCircle_AxisPixels(t *testing.T) {
	src, _ := NewBuffer(21, 21)
	out, err := DrawCircle(src, 10, 10, 5)
	if err != nil {
		t.Fatalf("DrawCircle failed: %v", err)
	}

	tests := []struct {
		x, y int
		red  bool
	}{
		{10, 10, false}, // centre
		{13, 10, false}, // d=3
		{14, 10, true},  // d=4, inner edge
		{15, 10, true},  // d=5, radius
		{16, 10, false}, // d=6, outside
		{10, 5, true},
		{10, 14, true},
		{10, 16, false},
	}

	for _, tt := range tests {
		r, g, b := out.RGB(tt.x, tt.y)
		isRed := r == 255 && g == 0 && b == 0
		if isRed != tt.red {
			t.Errorf("pixel (%d,%d): red=%v, want %v", tt.x, tt.y, isRed, tt.red)
		}
	}
}

func TestDrawCircle_OnlyOutlineChanges(t *testing.T) {
	src := solidBuffer(t, 60, 40, color.RGBA{0, 80, 160, 255})
	cx, cy, radius := 30, 20, 12

	out, err := DrawCircle(src, cx, cy, radius)
	if err != nil {
		t.Fatalf("DrawCircle failed: %v", err)
	}

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			r, g, b := out.RGB(x, y)
			if OnCircleOutline(x, y, cx, cy, radius) {
				if r != 255 || g != 0 || b != 0 {
					t.Fatalf("outline pixel (%d,%d) = (%d,%d,%d), want red", x, y, r, g, b)
				}
				continue
			}
			sr, sg, sb := src.RGB(x, y)
			if r != sr || g != sg || b != sb {
				t.Fatalf("pixel (%d,%d) off the outline changed", x, y)
			}
		}
	}
}

func TestDrawCircle_Clipped(t *testing.T) {
	src, _ := NewBuffer(10, 10)

	out, err := DrawCircle(src, 0, 0, 3)
	if err != nil {
		t.Fatalf("DrawCircle failed: %v", err)
	}
	if r, _, _ := out.RGB(3, 0); r != 255 {
		t.Error("visible part of a clipped circle was not drawn")
	}

	out, err = DrawCircle(src, 10, 10, 2)
	if err != nil {
		t.Fatalf("DrawCircle at the far corner failed: %v", err)
	}
	if r, _, _ := out.RGB(9, 8); r != 255 {
		t.Error("pixel (9,8) at distance ~2.2 should be on the outline")
	}
}

func TestDrawCircle_EntirelyOutside(t *testing.T) {
	src := createPatternBuffer(t, 10, 10)

	// Every pixel is at most ~7.1 from the centre, well inside the ring.
	out, err := DrawCircle(src, 5, 5, 100)
	if err != nil {
		t.Fatalf("DrawCircle failed: %v", err)
	}
	if !out.Equal(src) {
		t.Error("a circle entirely outside the buffer changed pixels")
	}
}

func TestDrawCircle_DoesNotModifySource(t *testing.T) {
	src, _ := NewBuffer(20, 20)
	before := src.Clone()

	if _, err := DrawCircle(src, 10, 10, 4); err != nil {
		t.Fatalf("DrawCircle failed: %v", err)
	}
	if !src.Equal(before) {
		t.Error("DrawCircle modified its input")
	}
}

func TestDrawCircle_InvalidRadius(t *testing.T) {
	src, _ := NewBuffer(5, 5)
	if _, err := DrawCircle(src, 2, 2, 0); err == nil {
		t.Error("DrawCircle should reject radius 0")
	}
}

func TestPlaceholder(t *testing.T) {
	buf, err := Placeholder(PlaceholderWidth, PlaceholderHeight)
	if err != nil {
		t.Fatalf("Placeholder failed: %v", err)
	}
	if buf.Width != PlaceholderWidth || buf.Height != PlaceholderHeight {
		t.Errorf("dimensions: got %dx%d", buf.Width, buf.Height)
	}

	// Corners are background, and some text pixels differ from it.
	if r, g, b := buf.RGB(0, 0); r != 0xF0 || g != 0xF0 || b != 0xF0 {
		t.Errorf("corner: got (%d,%d,%d), want background", r, g, b)
	}
	textPixels := 0
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			if r, _, _ := buf.RGB(x, y); r != 0xF0 {
				textPixels++
			}
		}
	}
	if textPixels == 0 {
		t.Error("placeholder text was not drawn")
	}
}

func TestPlaceholder_DefaultSize(t *testing.T) {
	buf, err := Placeholder(0, 0)
	if err != nil {
		t.Fatalf("Placeholder failed: %v", err)
	}
	if buf.Width != PlaceholderWidth || buf.Height != PlaceholderHeight {
		t.Errorf("dimensions: got %dx%d, want default", buf.Width, buf.Height)
	}
}

func TestEncodeBase64PNG(t *testing.T) {
	buf := createPatternBuffer(t, 12, 8)

	enc, err := EncodeBase64PNG(buf)
	if err != nil {
		t.Fatalf("EncodeBase64PNG failed: %v", err)
	}
	if enc.Width != 12 || enc.Height != 8 || enc.MimeType != "image/png" {
		t.Errorf("unexpected header: %+v", enc)
	}

	data, err := EncodePNG(buf)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	back, _, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !back.Equal(buf) {
		t.Error("PNG encoding did not round-trip")
	}
}
