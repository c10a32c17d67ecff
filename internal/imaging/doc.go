// Package imaging provides the raster type and the image transforms used by
// the viewer.
//
// All pixel data lives in Buffer, an 8-bit, 3-channel RGB raster with no
// alpha. Transforms take a *Buffer and return a new one; none of them write to
// their input, so a buffer that has been handed out can be shared freely.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. X grows to
// the right and Y grows downward.
//
// # Loading
//
// LoadFile accepts .png, .jpg and .jpeg files (extension compared case
// insensitively). Every source is normalised to RGB: grayscale and paletted
// images are expanded and alpha is dropped.
//
// # Transforms
//
//   - Resize: bilinear resample to an exact width and height
//   - DecreaseBrightness: saturating subtraction of one scalar from all channels
//   - DrawCircle: red outline, 2 pixels thick, clipped to the buffer
//   - IsolateChannel: keep one channel, zero the others
//
// # Error Handling
//
// Load failures wrap one of ErrUnsupportedFormat, ErrCorruptImage or ErrIO
// and can be tested with errors.Is. Transforms return plain errors for
// invalid arguments.
package imaging
