package body

import "errors"

// Validation errors for body descriptors.
var (
	// ErrNonPositiveMass indicates a zero, negative or non-finite mass.
	ErrNonPositiveMass = errors.New("body: mass must be positive and finite")

	// ErrNonPositiveRadius indicates a zero, negative or non-finite radius.
	ErrNonPositiveRadius = errors.New("body: radius must be positive and finite")

	// ErrNonFiniteState indicates a NaN or Inf position or velocity component.
	ErrNonFiniteState = errors.New("body: position and velocity must be finite")
)
