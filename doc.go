// Package main provides the entry point for the passforge password engine.
// It generates passwords that satisfy character-class composition rules
// from a cryptographically secure random source and reports the exact
// information-theoretic strength of each password as sampled. The engine
// is exposed as a one-shot CLI command and as a small JSON web service
// built on the Fiber framework.
package main
