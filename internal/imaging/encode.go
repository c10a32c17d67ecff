package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
)

// EncodedImage is a rendered buffer ready to be sent to a client.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes a buffer as PNG.
func EncodePNG(b *Buffer) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.NRGBA()); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeBase64PNG encodes a buffer as a base64 PNG payload.
func EncodeBase64PNG(b *Buffer) (*EncodedImage, error) {
	data, err := EncodePNG(b)
	if err != nil {
		return nil, err
	}
	return &EncodedImage{
		Width:       b.Width,
		Height:      b.Height,
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
	}, nil
}
