// Package generator runs the multi-tier sampling pipeline that turns
// generation options into a password and the exact entropy of the sampling
// method that produced it.
package generator

import (
	"github.com/rs/zerolog/log"

	"github.com/joengan/passforge/internal/charset"
	"github.com/joengan/passforge/internal/entropy"
)

// Method identifies the sampling tier that produced a password.
type Method string

const (
	// MethodRejection draws whole sequences uniformly and retries until
	// coverage holds; uniform over the constrained space.
	MethodRejection Method = "rejection_sampling"

	// MethodCombinatorial unranks a uniform index into the set of covering
	// sequences; also uniform over the constrained space.
	MethodCombinatorial Method = "combinatorial_sampling"

	// MethodGuaranteed forces one character per class and fills the rest;
	// deliberately not uniform, with its own entropy accounting.
	MethodGuaranteed Method = "guaranteed_inclusion"
)

// Result is the outcome of a single generation call.
type Result struct {
	Password    string  `json:"password"`
	EntropyBits float64 `json:"entropy_bits"`
	Method      Method  `json:"method"`
}

// Generate produces one password for opts along with the entropy of the
// sampling method that ended up being used. Configuration problems wrap
// the charset sentinel errors and are recoverable by adjusting options;
// random-source failures wrap random.ErrSourceUnavailable. The engine
// holds no state across calls.
func Generate(opts charset.Options) (Result, error) {
	pool, err := charset.Build(opts)
	if err != nil {
		return Result{}, err
	}

	seq, method, err := sample(pool)
	if err != nil {
		return Result{}, err
	}

	// Tiers 2 and 3 emit characters in class-determined order; every
	// sequence is shuffled before entropy is computed or the password
	// leaves the engine.
	if err := shuffle(seq); err != nil {
		return Result{}, err
	}

	bits := entropy.Bits(pool.Length, len(pool.Union), pool.Sizes(), pool.ForceEach,
		method == MethodGuaranteed)

	generations.WithLabelValues(string(method)).Inc()

	log.Debug().
		Str("method", string(method)).
		Int("length", pool.Length).
		Float64("entropy_bits", bits).
		Msg("password generated")

	return Result{
		Password:    string(seq),
		EntropyBits: bits,
		Method:      method,
	}, nil
}
