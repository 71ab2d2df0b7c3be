package combin

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
)

// bruteForceCount enumerates every length-L sequence over the pool and
// counts those covering all classes. Only usable for tiny inputs.
func bruteForceCount(length int, sizes []int) int64 {
	total := 0
	for _, s := range sizes {
		total += s
	}

	// classOf maps a pool index to its class.
	classOf := make([]int, 0, total)
	for ci, s := range sizes {
		for j := 0; j < s; j++ {
			classOf = append(classOf, ci)
		}
	}

	var (
		count int64
		seq   = make([]int, length)
	)

	for {
		mask := 0
		for _, idx := range seq {
			mask |= 1 << classOf[idx]
		}

		if mask == 1<<len(sizes)-1 {
			count++
		}

		// next sequence, odometer style
		pos := length - 1
		for pos >= 0 {
			seq[pos]++
			if seq[pos] < total {
				break
			}
			seq[pos] = 0
			pos--
		}

		if pos < 0 {
			return count
		}
	}
}

func TestCountValidSequences_Known(t *testing.T) {
	// 5^5 − 3^5 − 2^5 + 0^5 = 2850
	got, err := CountValidSequences(5, []int{2, 3})
	if err != nil {
		t.Fatalf("CountValidSequences() error = %v", err)
	}

	if got.Cmp(big.NewInt(2850)) != 0 {
		t.Errorf("count = %s, want 2850", got)
	}
}

func TestCountValidSequences_MatchesBruteForce(t *testing.T) {
	tests := []struct {
		name   string
		length int
		sizes  []int
	}{
		{"L4 two classes", 4, []int{2, 2}},
		{"L5 uneven classes", 5, []int{2, 3}},
		{"L3 three classes", 3, []int{1, 2, 2}},
		{"L6 single class", 6, []int{3}},
		{"L2 too short for 3 classes", 2, []int{1, 1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CountValidSequences(tc.length, tc.sizes)
			if err != nil {
				t.Fatalf("CountValidSequences() error = %v", err)
			}

			want := bruteForceCount(tc.length, tc.sizes)
			if got.Cmp(big.NewInt(want)) != 0 {
				t.Errorf("count = %s, brute force = %d", got, want)
			}
		})
	}
}

func TestCountValidSequences_Degenerate(t *testing.T) {
	// Zero length with constrained classes: nothing covers them.
	got, err := CountValidSequences(0, []int{2, 3})
	if err != nil {
		t.Fatalf("CountValidSequences() error = %v", err)
	}

	if got.Sign() != 0 {
		t.Errorf("count = %s, want 0", got)
	}

	// Zero length with no classes: exactly the empty sequence.
	got, err = CountValidSequences(0, nil)
	if err != nil {
		t.Fatalf("CountValidSequences() error = %v", err)
	}

	if got.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("count = %s, want 1", got)
	}
}

func TestCountValidSequences_ContractViolations(t *testing.T) {
	if _, err := CountValidSequences(-1, []int{2}); !errors.Is(err, ErrNegativeLength) {
		t.Errorf("negative length: want ErrNegativeLength, got %v", err)
	}

	if _, err := CountValidSequences(5, []int{2, -3}); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("negative size: want ErrNegativeSize, got %v", err)
	}
}

func TestCounter_RemainingUnconstrained(t *testing.T) {
	// All classes satisfied: remaining fills are free, N^remLen.
	c := NewCounter([]int{26, 26, 10, 32})
	full := 1<<4 - 1

	got := c.Remaining(3, full)
	want := new(big.Int).Exp(big.NewInt(94), big.NewInt(3), nil)

	if got.Cmp(want) != 0 {
		t.Errorf("Remaining(3, full) = %s, want %s", got, want)
	}

	if c.Remaining(0, full).Cmp(big.NewInt(1)) != 0 {
		t.Errorf("Remaining(0, full) should be 1")
	}
}

func TestCounter_RemainingMatchesCount(t *testing.T) {
	// With nothing satisfied, Remaining equals CountValidSequences.
	sizes := []int{2, 3}
	c := NewCounter(sizes)

	for _, l := range []int{0, 1, 3, 5, 9} {
		want, err := CountValidSequences(l, sizes)
		if err != nil {
			t.Fatalf("CountValidSequences() error = %v", err)
		}

		if got := c.Remaining(l, 0); got.Cmp(want) != 0 {
			t.Errorf("Remaining(%d, 0) = %s, want %s", l, got, want)
		}
	}
}

func TestCounter_RemainingPartialCoverage(t *testing.T) {
	// sizes [2,3], class 0 satisfied: fills of length 2 must hit class 1.
	// 5^2 − 2^2 = 21.
	c := NewCounter([]int{2, 3})

	if got := c.Remaining(2, 1); got.Cmp(big.NewInt(21)) != 0 {
		t.Errorf("Remaining(2, 0b01) = %s, want 21", got)
	}

	// Class 1 satisfied: fills must hit class 0. 5^2 − 3^2 = 16.
	if got := c.Remaining(2, 2); got.Cmp(big.NewInt(16)) != 0 {
		t.Errorf("Remaining(2, 0b10) = %s, want 16", got)
	}
}

func TestCounter_MemoReturnsSameValue(t *testing.T) {
	c := NewCounter([]int{2, 3})

	first := c.Remaining(4, 1)
	second := c.Remaining(4, 1)

	if first != second {
		t.Error("memoized call should return the cached value")
	}
}
