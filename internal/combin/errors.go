package combin

import (
	"errors"
)

var (
	// ErrNegativeLength is returned for a negative sequence length, which is
	// a caller contract violation rather than a data condition.
	ErrNegativeLength = errors.New("sequence length must be non-negative")

	// ErrNegativeSize is returned for a negative class size.
	ErrNegativeSize = errors.New("class sizes must be non-negative")
)
