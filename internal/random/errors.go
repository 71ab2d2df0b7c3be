package random

import (
	"errors"
)

// ErrSourceUnavailable is returned when the cryptographic random source
// cannot be read. No generation may proceed in this state.
var ErrSourceUnavailable = errors.New("cryptographic random source unavailable")
