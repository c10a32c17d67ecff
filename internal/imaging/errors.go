package imaging

import "errors"

// Load failures. Callers match them with errors.Is; the wrapped error carries
// the path and the underlying cause.
var (
	// ErrUnsupportedFormat is returned when the file extension is not one of
	// .png, .jpg or .jpeg. No I/O is attempted in that case.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrCorruptImage is returned when the file was read but its bytes could
	// not be decoded as an image.
	ErrCorruptImage = errors.New("corrupt image")

	// ErrIO is returned for any other read failure (missing file, permission
	// denied, path is a directory).
	ErrIO = errors.New("image read failed")
)
