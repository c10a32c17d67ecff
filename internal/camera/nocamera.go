//go:build !gocv

package camera

import "errors"

// Supported reports whether this build can talk to real capture devices.
const Supported = false

var errNoCameraSupport = errors.New("built without camera support (rebuild with -tags gocv)")

// Default returns an opener that always fails; real devices need the gocv
// build tag.
func Default(index int) Opener {
	return OpenerFunc(func() (Device, error) {
		return nil, errNoCameraSupport
	})
}
