package photomode

import "errors"

var (
	// ErrClosed is returned by operations on a closed Session.
	ErrClosed = errors.New("photomode: session closed")

	// ErrNotBound is returned when an operation needs a bound renderer.
	ErrNotBound = errors.New("photomode: no renderer bound")

	// ErrNoCamera is returned by Bind when the binding has no camera.
	ErrNoCamera = errors.New("photomode: binding has no camera")
)
