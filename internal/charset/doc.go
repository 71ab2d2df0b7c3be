// Package charset defines the canonical password character classes and
// derives the active character pool for a single generation call.
package charset
