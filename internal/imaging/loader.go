package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
)

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format reported by the decoder: "png" or "jpeg".
	Format string `json:"format"`

	// HasAlpha indicates whether the source had any non-opaque pixel whose
	// alpha was discarded during conversion.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// FormatForPath maps a file extension to the format name used for loading.
//
// The comparison is case-insensitive:
//   - ".png" -> "png"
//   - ".jpg", ".jpeg" -> "jpeg"
//
// Any other extension yields ErrUnsupportedFormat.
func FormatForPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	}
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, filepath.Base(path))
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// LoadFile reads a PNG or JPEG file and converts it to an RGB Buffer.
//
// The extension is checked first, so an unsupported path never touches the
// filesystem. The whole file is read before decoding, which keeps read
// failures (ErrIO) apart from decode failures (ErrCorruptImage).
func LoadFile(path string) (*Buffer, *ImageInfo, error) {
	if _, err := FormatForPath(path); err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	buf, info, err := Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	info.FileSizeBytes = int64(len(data))

	return buf, info, nil
}

// Decode decodes PNG or JPEG bytes into an RGB Buffer.
func Decode(data []byte) (*Buffer, *ImageInfo, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCorruptImage, err)
	}

	buf, err := FromImage(img)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCorruptImage, err)
	}

	hasAlpha := false
	if o, ok := img.(interface{ Opaque() bool }); ok {
		hasAlpha = !o.Opaque()
	}

	return buf, &ImageInfo{
		Width:    buf.Width,
		Height:   buf.Height,
		Format:   format,
		HasAlpha: hasAlpha,
	}, nil
}
