package entropy

import (
	"math"
	"math/big"

	"github.com/joengan/passforge/internal/combin"
)

// mantissaBits is the float64 mantissa width; integers up to this many
// bits convert losslessly.
const mantissaBits = 53

// Log2Big returns log2 of a non-negative arbitrary-precision integer with
// full float64 precision regardless of magnitude. Small integers are
// converted losslessly; larger ones use their top 53 bits as mantissa and
// add the discarded bit count, keeping ~15-16 significant decimal digits.
// Non-positive input returns 0.
func Log2Big(n *big.Int) float64 {
	if n == nil || n.Sign() <= 0 {
		return 0
	}

	bitLen := n.BitLen()
	if bitLen <= mantissaBits {
		return math.Log2(float64(n.Uint64()))
	}

	shift := uint(bitLen - mantissaBits)
	top := new(big.Int).Rsh(n, shift)

	return math.Log2(float64(top.Uint64())) + float64(shift)
}

// Bits returns the entropy, in bits, of a password produced for the given
// configuration. The uniform sampling methods get the Hartley entropy of
// their outcome space: poolSize^length when coverage is not forced, or the
// exact count of covering sequences when it is. The guaranteed-inclusion
// method is not uniform over the constrained space, so it delegates to
// ShannonGuaranteed instead. Degenerate input yields 0.
func Bits(length, poolSize int, sizes []int, forceEach, guaranteed bool) float64 {
	if length <= 0 || poolSize <= 0 {
		return 0
	}

	if guaranteed && forceEach {
		return ShannonGuaranteed(length, sizes)
	}

	if !forceEach {
		space := new(big.Int).Exp(big.NewInt(int64(poolSize)), big.NewInt(int64(length)), nil)
		return Log2Big(space)
	}

	count, err := combin.CountValidSequences(length, sizes)
	if err != nil || count.Sign() == 0 {
		return 0
	}

	return Log2Big(count)
}

// ShannonGuaranteed returns the exact expected surprisal, in bits, of the
// guaranteed-inclusion sampler: one uniformly drawn character per class,
// length−k free draws from the full pool, then a uniform shuffle. With
// X_i ~ Binomial(n, size_i/N) counting free-draw occurrences of class i,
// linearity of expectation gives
//
//	H = log2(L!/(L−k)!) + n·log2(N) + Σ log2(size_i) − Σ E[log2(X_i+1)]
//
// Degenerate input (no classes, non-positive sizes, length below the class
// count) yields 0, and round-off is clamped so the result is never
// negative.
func ShannonGuaranteed(length int, sizes []int) float64 {
	var (
		k = len(sizes)
		n = length - k
	)

	if k == 0 || n < 0 {
		return 0
	}

	total := 0

	for _, s := range sizes {
		if s <= 0 {
			return 0
		}

		total += s
	}

	// log2(L!/(L−k)!), the positional arrangements of the k forced draws.
	h := 0.0
	for j := n + 1; j <= length; j++ {
		h += math.Log2(float64(j))
	}

	h += float64(n) * math.Log2(float64(total))

	logFact := logFactorials(n)

	for _, s := range sizes {
		h += math.Log2(float64(s))
		h -= expectedLog2Successor(n, float64(s)/float64(total), logFact)
	}

	if h < 0 {
		return 0
	}

	return h
}

// logFactorials returns ln(j!) for j = 0..n.
func logFactorials(n int) []float64 {
	lf := make([]float64, n+1)
	for j := 1; j <= n; j++ {
		lf[j] = lf[j-1] + math.Log(float64(j))
	}

	return lf
}

// expectedLog2Successor computes E[log2(X+1)] for X ~ Binomial(n, p),
// summing the pmf in log space and normalizing with log-sum-exp so extreme
// tail probabilities never underflow to zero.
func expectedLog2Successor(n int, p float64, logFact []float64) float64 {
	if n <= 0 || p <= 0 {
		return 0
	}

	if p >= 1 {
		// Every free draw lands in this class.
		return math.Log2(float64(n + 1))
	}

	var (
		logP   = math.Log(p)
		logQ   = math.Log(1 - p)
		logPmf = make([]float64, n+1)
		maxLog = math.Inf(-1)
	)

	for j := 0; j <= n; j++ {
		logPmf[j] = logFact[n] - logFact[j] - logFact[n-j] +
			float64(j)*logP + float64(n-j)*logQ

		if logPmf[j] > maxLog {
			maxLog = logPmf[j]
		}
	}

	var norm, acc float64

	for j := 0; j <= n; j++ {
		w := math.Exp(logPmf[j] - maxLog)
		norm += w
		acc += w * math.Log2(float64(j+1))
	}

	return acc / norm
}
