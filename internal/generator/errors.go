package generator

import (
	"errors"
)

// ErrInternalSampling reports a sampling-pipeline invariant violation.
// The guaranteed-inclusion tier always succeeds for a valid configuration,
// so this error marks a defect, not bad input; it is surfaced instead of
// ever returning an empty or partial password.
var ErrInternalSampling = errors.New("sampling pipeline invariant violated")
