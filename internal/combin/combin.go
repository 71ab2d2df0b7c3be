package combin

import (
	"math/big"
	"math/bits"
)

// CountValidSequences returns the number of length-L sequences over the
// pooled classes in which every class appears at least once:
//
//	T = Σ_{S⊆classes} (-1)^|S| · (N − Σ_{i∈S} size_i)^L
//
// computed with a flat loop over subset bitmasks. With at most four classes
// this is at most sixteen exact big-integer terms.
func CountValidSequences(length int, sizes []int) (*big.Int, error) {
	if length < 0 {
		return nil, ErrNegativeLength
	}

	total := 0

	for _, s := range sizes {
		if s < 0 {
			return nil, ErrNegativeSize
		}

		total += s
	}

	var (
		k    = len(sizes)
		expo = big.NewInt(int64(length))
		sum  = new(big.Int)
		base = new(big.Int)
		term = new(big.Int)
	)

	for mask := 0; mask < 1<<k; mask++ {
		excluded := 0

		for i := 0; i < k; i++ {
			if mask&(1<<i) != 0 {
				excluded += sizes[i]
			}
		}

		base.SetInt64(int64(total - excluded))
		term.Exp(base, expo, nil)

		if bits.OnesCount(uint(mask))%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}

	return sum, nil
}

type memoKey struct {
	remLen int
	mask   int
}

// Counter computes coverage-completion counts for a fixed set of class
// sizes. Results are memoized by (remaining length, satisfied mask); the
// memo is scoped to one Counter, so callers must build a fresh Counter per
// generation call and never share one across calls.
type Counter struct {
	sizes []int
	total int
	memo  map[memoKey]*big.Int
}

// NewCounter returns a Counter for the given class sizes.
func NewCounter(sizes []int) *Counter {
	total := 0
	for _, s := range sizes {
		total += s
	}

	return &Counter{
		sizes: sizes,
		total: total,
		memo:  make(map[memoKey]*big.Int),
	}
}

// Remaining returns the number of ways to fill remLen further positions
// from the full pool such that every class whose bit is unset in
// satisfiedMask appears at least once among them. Classes already
// satisfied impose no constraint. The returned value is shared with the
// memo and must be treated as read-only.
func (c *Counter) Remaining(remLen, satisfiedMask int) *big.Int {
	if remLen < 0 {
		return new(big.Int)
	}

	key := memoKey{remLen: remLen, mask: satisfiedMask}
	if v, ok := c.memo[key]; ok {
		return v
	}

	var unsatisfied []int

	for i := range c.sizes {
		if satisfiedMask&(1<<i) == 0 {
			unsatisfied = append(unsatisfied, i)
		}
	}

	var (
		expo = big.NewInt(int64(remLen))
		sum  = new(big.Int)
		base = new(big.Int)
		term = new(big.Int)
	)

	for sub := 0; sub < 1<<len(unsatisfied); sub++ {
		excluded := 0

		for j, idx := range unsatisfied {
			if sub&(1<<j) != 0 {
				excluded += c.sizes[idx]
			}
		}

		base.SetInt64(int64(c.total - excluded))
		term.Exp(base, expo, nil)

		if bits.OnesCount(uint(sub))%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}

	c.memo[key] = sum

	return sum
}
