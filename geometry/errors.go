package geometry

import "errors"

var (
	// ErrAxis indicates a strategy axis is out of range or two axes coincide.
	ErrAxis = errors.New("geometry: invalid axis assignment")

	// ErrNegativeRadius indicates a radial dimension whose lower limit is below zero.
	ErrNegativeRadius = errors.New("geometry: radial lower limit must be >= 0")
)
