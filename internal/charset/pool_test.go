package charset

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestClassLiterals(t *testing.T) {
	tests := []struct {
		name  string
		chars string
		size  int
	}{
		{"upper", Upper, 26},
		{"lower", Lower, 26},
		{"digits", Digits, 10},
		{"symbols", Symbols, 32},
		{"ambiguous", Ambiguous, 15},
		{"code unsafe", CodeUnsafe, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.chars) != tc.size {
				t.Fatalf("want %d characters, got %d (%q)", tc.size, len(tc.chars), tc.chars)
			}

			seen := make(map[byte]bool)
			for i := 0; i < len(tc.chars); i++ {
				if seen[tc.chars[i]] {
					t.Fatalf("duplicate character %q", tc.chars[i])
				}
				seen[tc.chars[i]] = true
			}
		})
	}
}

func TestBuild_DefaultPoolSize(t *testing.T) {
	pool, err := Build(DefaultOptions())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(pool.Union) != 94 {
		t.Errorf("default pool size = %d, want 94", len(pool.Union))
	}

	if pool.Length != 18 {
		t.Errorf("default length = %d, want 18", pool.Length)
	}

	if len(pool.Sets) != 4 {
		t.Errorf("active classes = %d, want 4", len(pool.Sets))
	}
}

func TestBuild_LengthClamp(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below minimum", 4, 5},
		{"minimum", 5, 5},
		{"maximum", 128, 128},
		{"above maximum", 4096, 128},
		{"negative clamps up", -7, 5},
		{"zero maps to fallback", 0, 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Length = tc.in
			opts.ForceEach = false

			pool, err := Build(opts)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			if pool.Length != tc.want {
				t.Errorf("length = %d, want %d", pool.Length, tc.want)
			}
		})
	}
}

func TestBuild_NoClassSelected(t *testing.T) {
	opts := Options{Length: 20}

	_, err := Build(opts)
	if !errors.Is(err, ErrNoClassSelected) {
		t.Fatalf("want ErrNoClassSelected, got %v", err)
	}
}

func TestBuild_LengthBelowClassCount(t *testing.T) {
	opts := DefaultOptions()
	opts.Length = 3 // four classes need at least 4 requested positions

	if _, err := Build(opts); !errors.Is(err, ErrLengthBelowMin) {
		t.Fatalf("want ErrLengthBelowMin, got %v", err)
	}

	// Two classes fit into a requested length of 3 (clamped to 5).
	two := Options{Length: 3, Upper: true, Digits: true, ForceEach: true}

	pool, err := Build(two)
	if err != nil {
		t.Fatalf("2 classes at requested length 3 should pass, got %v", err)
	}

	if pool.Length != 5 {
		t.Errorf("length = %d, want clamped 5", pool.Length)
	}
}

func TestBuild_AmbiguousFiltering(t *testing.T) {
	opts := DefaultOptions()
	opts.ExcludeAmbiguous = true

	pool, err := Build(opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for i := 0; i < len(Ambiguous); i++ {
		if strings.IndexByte(pool.Union, Ambiguous[i]) >= 0 {
			t.Errorf("ambiguous character %q present in filtered pool", Ambiguous[i])
		}
	}

	// 94 total minus 15 ambiguous characters, all of which are in the pool.
	if len(pool.Union) != 94-15 {
		t.Errorf("filtered pool size = %d, want %d", len(pool.Union), 94-15)
	}
}

func TestBuild_CodeUnsafeOnlyAffectsSymbols(t *testing.T) {
	opts := DefaultOptions()
	opts.ExcludeCodeUnsafe = true

	pool, err := Build(opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Upper, lower and digits stay untouched.
	sizes := pool.Sizes()
	if sizes[0] != 26 || sizes[1] != 26 || sizes[2] != 10 {
		t.Errorf("letter/digit classes were filtered: sizes = %v", sizes)
	}

	if sizes[3] != 32-20 {
		t.Errorf("symbols size = %d, want %d", sizes[3], 32-20)
	}
}

func TestCovers(t *testing.T) {
	pool, err := Build(Options{Length: 8, Upper: true, Digits: true, ForceEach: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := []struct {
		name string
		seq  string
		want bool
	}{
		{"both classes", "A7BC1234", true},
		{"missing digits", "ABCDEFGH", false},
		{"missing upper", "01234567", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := pool.Covers([]byte(tc.seq)); got != tc.want {
				t.Errorf("Covers(%q) = %v, want %v", tc.seq, got, tc.want)
			}
		})
	}
}
