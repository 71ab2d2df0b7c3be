package charset

// Canonical class literals. The exact characters and their order are part
// of the generation contract and must not change.
const (
	// Upper is the uppercase letter class.
	Upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Lower is the lowercase letter class.
	Lower = "abcdefghijklmnopqrstuvwxyz"

	// Digits is the decimal digit class.
	Digits = "0123456789"

	// Symbols is the punctuation class.
	Symbols = "'\"\\!@#$%^&*()_+~`|}{[]:;?><,./-="

	// Ambiguous characters are easily confused with one another; they are a
	// filter over all classes, not a class of their own.
	Ambiguous = "il1I|Lo0O2Z5S8B"

	// CodeUnsafe characters commonly break shells, URLs and config files;
	// they are removable from the Symbols class only.
	CodeUnsafe = "'\"\\$^*()+~|}{[]?><./"
)

const (
	// MinLength and MaxLength bound the clamped password length.
	MinLength = 5
	MaxLength = 128

	// DefaultLength applies when the caller does not choose a length.
	DefaultLength = 18

	// FallbackLength substitutes for unusable length input before clamping.
	FallbackLength = 16
)

// Options are the per-call generation options.
type Options struct {
	Length            int
	Upper             bool
	Lower             bool
	Digits            bool
	Symbols           bool
	ForceEach         bool
	ExcludeAmbiguous  bool
	ExcludeCodeUnsafe bool
}

// DefaultOptions returns the documented defaults: length 18, all four
// classes enabled, at least one character per class required, no filtering.
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		Upper:     true,
		Lower:     true,
		Digits:    true,
		Symbols:   true,
		ForceEach: true,
	}
}
