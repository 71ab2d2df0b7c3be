package generator

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/joengan/passforge/internal/charset"
	"github.com/joengan/passforge/internal/combin"
	"github.com/joengan/passforge/internal/random"
)

// maxRejectionAttempts bounds tier 1 before the pipeline falls through.
const maxRejectionAttempts = 1000

// sample runs the strictly ordered sampling tiers. A tier either yields a
// full-length sequence or defers to the next one; no tier is retried.
// Tier failures are internal and invisible to the caller, only
// random-source errors abort.
func sample(pool charset.Pool) ([]byte, Method, error) {
	seq, ok, err := sampleRejection(pool)
	if err != nil {
		return nil, "", err
	}

	if ok {
		return seq, MethodRejection, nil
	}

	seq, ok, err = sampleUnranked(pool)
	if err != nil {
		if errors.Is(err, random.ErrSourceUnavailable) {
			return nil, "", err
		}

		log.Debug().Err(err).Msg("combinatorial sampling unavailable, falling back")

		ok = false
	}

	if ok {
		return seq, MethodCombinatorial, nil
	}

	seq, err = sampleGuaranteed(pool)
	if err != nil {
		return nil, "", err
	}

	if len(seq) != pool.Length {
		return nil, "", errors.Wrap(ErrInternalSampling, "guaranteed tier produced short sequence")
	}

	return seq, MethodGuaranteed, nil
}

// sampleRejection draws each position independently and uniformly from the
// full pool and, when coverage is forced, discards whole attempts that
// miss a class. The only tier whose output is trivially uniform over the
// constrained space; without forced coverage the first attempt always
// succeeds.
func sampleRejection(pool charset.Pool) ([]byte, bool, error) {
	for attempt := 0; attempt < maxRejectionAttempts; attempt++ {
		seq := make([]byte, pool.Length)

		for i := range seq {
			idx, err := random.UniformInt(len(pool.Union))
			if err != nil {
				return nil, false, err
			}

			seq[i] = pool.Union[idx]
		}

		if !pool.ForceEach || pool.Covers(seq) {
			return seq, true, nil
		}
	}

	return nil, false, nil
}

// sampleUnranked maps a uniform rank in [0, T) bijectively onto the T
// sequences that cover every class, building the password position by
// position from exact completion counts. Uniform over the constrained
// space like tier 1; only attempted when coverage is forced.
func sampleUnranked(pool charset.Pool) ([]byte, bool, error) {
	if !pool.ForceEach {
		return nil, false, nil
	}

	sizes := pool.Sizes()

	total, err := combin.CountValidSequences(pool.Length, sizes)
	if err != nil {
		return nil, false, err
	}

	if total.Sign() == 0 {
		return nil, false, nil
	}

	rank, err := random.UniformBig(total)
	if err != nil {
		return nil, false, err
	}

	seq, err := unrank(pool, sizes, rank)
	if err != nil {
		return nil, false, err
	}

	return seq, true, nil
}

// unrank decodes rank into the rank-th covering sequence. At every
// position each candidate class owns a contiguous block of
// size·completions ranks; the rank picks the block, the quotient picks the
// character and the remainder recurses into the completions.
func unrank(pool charset.Pool, sizes []int, rank *big.Int) ([]byte, error) {
	var (
		counter      = combin.NewCounter(sizes)
		seq          = make([]byte, 0, pool.Length)
		mask         = 0
		size         = new(big.Int)
		contribution = new(big.Int)
		charIdx      = new(big.Int)
	)

	for pos := 0; pos < pool.Length; pos++ {
		var (
			remLen = pool.Length - 1 - pos
			placed = false
		)

		for ci, set := range pool.Sets {
			ways := counter.Remaining(remLen, mask|1<<ci)

			size.SetInt64(int64(len(set.Chars)))
			contribution.Mul(ways, size)

			if rank.Cmp(contribution) < 0 {
				charIdx.Div(rank, ways)
				rank.Mod(rank, ways)

				seq = append(seq, set.Chars[charIdx.Int64()])
				mask |= 1 << ci
				placed = true

				break
			}

			rank.Sub(rank, contribution)
		}

		// A rank inside [0, T) always lands in some class's share; running
		// out of candidates means the counts and the rank disagree.
		if !placed {
			return nil, errors.Wrapf(ErrInternalSampling,
				"no class accepted rank at position %d", pos)
		}
	}

	return seq, nil
}

// sampleGuaranteed draws exactly one character from every active class and
// fills the remaining positions from the full pool. Coverage is certain
// but the output distribution is deliberately not uniform over the
// constrained space; entropy for this method uses the Shannon expectation,
// never the Hartley count.
func sampleGuaranteed(pool charset.Pool) ([]byte, error) {
	seq := make([]byte, 0, pool.Length)

	for _, set := range pool.Sets {
		idx, err := random.UniformInt(len(set.Chars))
		if err != nil {
			return nil, err
		}

		seq = append(seq, set.Chars[idx])
	}

	for len(seq) < pool.Length {
		idx, err := random.UniformInt(len(pool.Union))
		if err != nil {
			return nil, err
		}

		seq = append(seq, pool.Union[idx])
	}

	return seq, nil
}
