package charset

import (
	"errors"
)

var (
	// ErrNoClassSelected is returned when filtering leaves no usable
	// character class. The caller can recover by adjusting options.
	ErrNoClassSelected = errors.New("no character class selected")

	// ErrLengthBelowMin is returned when the clamped length cannot cover
	// one character per active class.
	ErrLengthBelowMin = errors.New("length below the minimum required to cover every class")
)
