package random

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
)

const (
	// wordBytes is the number of random bytes consumed per 32-bit draw.
	wordBytes = 4

	// wordRange is the total number of distinct 32-bit generator outputs (2^32).
	wordRange = 1 << 32

	// byteBits is the number of bits contributed per random byte.
	byteBits = 8
)

var one = big.NewInt(1)

// Probe verifies that the cryptographic random source is usable.
// It must be called before any generation work begins; callers must refuse
// to generate when it fails rather than degrade to a weaker source.
func Probe() error {
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		return errors.Wrap(ErrSourceUnavailable, err.Error())
	}

	return nil
}

// UniformInt returns an integer uniform on [0, max) drawn from the
// cryptographic source. Modulo bias is avoided by rejecting 32-bit draws at
// or above the largest multiple of max that fits in the generator's output
// range. max <= 1 returns 0 without consuming entropy.
func UniformInt(max int) (int, error) {
	if max <= 1 {
		return 0, nil
	}

	var (
		buf   [wordBytes]byte
		limit = uint64(wordRange) / uint64(max) * uint64(max)
	)

	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, errors.Wrap(ErrSourceUnavailable, err.Error())
		}

		x := uint64(binary.BigEndian.Uint32(buf[:]))
		if x < limit {
			return int(x % uint64(max)), nil
		}
	}
}

// UniformBig returns an integer uniform on [0, maxExclusive) for
// arbitrary-precision bounds. It draws just enough random bytes to cover
// the bound and applies the same rejection rule as UniformInt against the
// largest multiple of the bound representable in that many bytes.
// Bounds of at most 1 return 0.
func UniformBig(maxExclusive *big.Int) (*big.Int, error) {
	if maxExclusive == nil || maxExclusive.Cmp(one) <= 0 {
		return big.NewInt(0), nil
	}

	width := (maxExclusive.BitLen() + byteBits - 1) / byteBits
	space := new(big.Int).Lsh(one, uint(byteBits*width))

	limit := new(big.Int).Div(space, maxExclusive)
	limit.Mul(limit, maxExclusive)

	var (
		buf = make([]byte, width)
		x   = new(big.Int)
	)

	for {
		if _, err := rand.Read(buf); err != nil {
			return nil, errors.Wrap(ErrSourceUnavailable, err.Error())
		}

		x.SetBytes(buf)
		if x.Cmp(limit) < 0 {
			return x.Mod(x, maxExclusive), nil
		}
	}
}
