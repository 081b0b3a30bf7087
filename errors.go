package spiro

import (
	"errors"
	"fmt"
)

// Geometry errors are reported before any tracing starts.
var (
	// ErrInvalidRadius is returned for zero, negative or non-finite radii.
	ErrInvalidRadius = errors.New("spiro: radius must be positive and finite")

	// ErrInvalidStep is returned for angular steps that would never make
	// progress (zero, negative, NaN or infinite).
	ErrInvalidStep = errors.New("spiro: angular step must be positive and finite")

	// ErrInvalidRange is returned for a negative or NaN closure tolerance.
	ErrInvalidRange = errors.New("spiro: closure range must be non-negative")

	// ErrInvalidSweep is returned for a non-positive fixed sweep.
	ErrInvalidSweep = errors.New("spiro: sweep must be positive and finite")

	// ErrInvalidPenOffset is returned for a NaN or infinite pen offset.
	ErrInvalidPenOffset = errors.New("spiro: pen offset must be finite")
)

// ErrNotClosed is returned when the traced curve did not come back to its
// start within the step budget. The partial trace is returned with it.
var ErrNotClosed = errors.New("spiro: curve did not close within step budget")

// ErrEmptyPath is returned when a polyline is finished without any points.
var ErrEmptyPath = errors.New("spiro: polyline has no points")

// ErrRender is returned when a sink rejects a stroke.
var ErrRender = errors.New("spiro: render failed")

// ErrOutput is matched by every *OutputError.
var ErrOutput = errors.New("spiro: output failed")

// OutputError records a failure to encode or persist a rendered image.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("spiro: output failed: %v", e.Err)
	}
	return fmt.Sprintf("spiro: output to %s failed: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrOutput) hold for every OutputError.
func (e *OutputError) Is(target error) bool { return target == ErrOutput }
