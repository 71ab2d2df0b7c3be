package charset

import (
	"strings"

	"github.com/pkg/errors"
)

// Class is an ordered, immutable set of distinct characters.
type Class struct {
	Name  string
	Chars string
}

// Pool is the active-set configuration derived from Options for one
// generation call: the clamped length, the non-empty classes that survived
// filtering (in canonical order) and their concatenated union.
type Pool struct {
	Length    int
	Sets      []Class
	ForceEach bool
	Union     string
}

// Build derives the active-set configuration from opts. Each enabled class
// starts from its canonical literal, loses Ambiguous characters when
// requested and, for Symbols only, CodeUnsafe characters; classes that end
// up empty are dropped. The length is clamped to [MinLength, MaxLength],
// with the zero value standing in for unusable input and mapping to
// FallbackLength first. The force-each minimum is checked against the
// requested length, so asking for fewer positions than active classes is
// an error even when clamping would stretch the length far enough.
func Build(opts Options) (Pool, error) {
	requested := opts.Length
	if requested == 0 {
		requested = FallbackLength
	}

	length := requested
	if length < MinLength {
		length = MinLength
	}

	if length > MaxLength {
		length = MaxLength
	}

	candidates := []struct {
		name       string
		chars      string
		enabled    bool
		codeUnsafe bool
	}{
		{"upper", Upper, opts.Upper, false},
		{"lower", Lower, opts.Lower, false},
		{"digits", Digits, opts.Digits, false},
		{"symbols", Symbols, opts.Symbols, true},
	}

	var (
		sets  []Class
		union strings.Builder
	)

	for _, cand := range candidates {
		if !cand.enabled {
			continue
		}

		chars := cand.chars
		if opts.ExcludeAmbiguous {
			chars = strip(chars, Ambiguous)
		}

		if cand.codeUnsafe && opts.ExcludeCodeUnsafe {
			chars = strip(chars, CodeUnsafe)
		}

		if chars == "" {
			continue
		}

		sets = append(sets, Class{Name: cand.name, Chars: chars})
		union.WriteString(chars)
	}

	if len(sets) == 0 {
		return Pool{}, ErrNoClassSelected
	}

	if opts.ForceEach && requested < len(sets) {
		return Pool{}, errors.Wrapf(ErrLengthBelowMin,
			"length %d cannot cover %d classes", requested, len(sets))
	}

	return Pool{
		Length:    length,
		Sets:      sets,
		ForceEach: opts.ForceEach,
		Union:     union.String(),
	}, nil
}

// Sizes returns the per-class character counts in set order.
func (p Pool) Sizes() []int {
	sizes := make([]int, len(p.Sets))
	for i, s := range p.Sets {
		sizes[i] = len(s.Chars)
	}

	return sizes
}

// Covers reports whether seq contains at least one character from every
// active class.
func (p Pool) Covers(seq []byte) bool {
	for _, set := range p.Sets {
		found := false

		for _, b := range seq {
			if strings.IndexByte(set.Chars, b) >= 0 {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// strip removes every character of cut from s.
func strip(s, cut string) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if strings.IndexByte(cut, s[i]) < 0 {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
