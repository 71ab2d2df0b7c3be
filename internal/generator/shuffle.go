package generator

import (
	"github.com/joengan/passforge/internal/random"
)

// shuffle permutes seq in place with an unbiased Fisher-Yates pass: each
// position from the end swaps with a uniform position at or before it, so
// every permutation is equally likely.
func shuffle(seq []byte) error {
	for i := len(seq) - 1; i > 0; i-- {
		j, err := random.UniformInt(i + 1)
		if err != nil {
			return err
		}

		seq[i], seq[j] = seq[j], seq[i]
	}

	return nil
}
