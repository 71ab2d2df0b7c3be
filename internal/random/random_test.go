package random

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe(t *testing.T) {
	require.NoError(t, Probe())
}

func TestUniformInt_DegenerateBounds(t *testing.T) {
	for _, max := range []int{-3, 0, 1} {
		got, err := UniformInt(max)
		require.NoError(t, err)
		assert.Equal(t, 0, got, "max=%d must return 0 deterministically", max)
	}
}

func TestUniformInt_Bounds(t *testing.T) {
	for _, max := range []int{2, 3, 7, 94, 128, 1000} {
		for n := 0; n < 500; n++ {
			got, err := UniformInt(max)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, max)
		}
	}
}

func TestUniformInt_HitsWholeRange(t *testing.T) {
	// With 2000 draws on [0,7) every residue shows up unless the
	// generator is badly broken (miss probability < 1e-100 per value).
	seen := make(map[int]bool)
	for n := 0; n < 2000; n++ {
		got, err := UniformInt(7)
		require.NoError(t, err)
		seen[got] = true
	}

	assert.Len(t, seen, 7)
}

func TestUniformBig_DegenerateBounds(t *testing.T) {
	for _, max := range []*big.Int{nil, big.NewInt(0), big.NewInt(1), big.NewInt(-5)} {
		got, err := UniformBig(max)
		require.NoError(t, err)
		assert.Zero(t, got.Sign())
	}
}

func TestUniformBig_Bounds(t *testing.T) {
	// A bound far beyond 64 bits: 94^40.
	max := new(big.Int).Exp(big.NewInt(94), big.NewInt(40), nil)

	for n := 0; n < 200; n++ {
		got, err := UniformBig(max)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Sign(), 0)
		assert.Negative(t, got.Cmp(max))
	}
}

func TestUniformBig_SmallBound(t *testing.T) {
	seen := make(map[int64]bool)
	for n := 0; n < 1000; n++ {
		got, err := UniformBig(big.NewInt(5))
		require.NoError(t, err)
		require.Less(t, got.Int64(), int64(5))
		seen[got.Int64()] = true
	}

	assert.Len(t, seen, 5)
}
