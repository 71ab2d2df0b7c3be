// Package entropy converts exact combinatorial counts into bit entropy.
// Uniform sampling methods get Hartley entropy of their outcome space;
// the deliberately biased guaranteed-inclusion method gets the exact
// Shannon expectation of its sampling distribution.
package entropy
