package ode

import "errors"

// Domain errors for integration runs. Both indicate caller mistakes
// and are raised at the point of detection, never retried.
var (
	// ErrShapeMismatch indicates a derivative whose output shape
	// disagrees with the state it was evaluated at.
	ErrShapeMismatch = errors.New("ode: derivative shape disagrees with state shape")

	// ErrStepCount indicates a negative step count request.
	ErrStepCount = errors.New("ode: negative step count")
)
