// Package random draws unbiased bounded integers from the operating system's
// cryptographically secure random source, for both machine-word and
// arbitrary-precision ranges.
package random
