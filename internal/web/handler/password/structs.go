package password

import (
	"github.com/joengan/passforge/internal/charset"
	"github.com/joengan/passforge/internal/generator"
)

// GenerateRequest is the JSON body of a generation call. Pointer fields
// distinguish "absent" from "false"/"zero" so the configured defaults can
// fill the gaps.
type GenerateRequest struct {
	Length            *int  `json:"length" validate:"omitempty,gte=0,lte=4096"`
	Upper             *bool `json:"upper"`
	Lower             *bool `json:"lower"`
	Nums              *bool `json:"nums"`
	Symbols           *bool `json:"symbols"`
	ForceEach         *bool `json:"forceEach"`
	ExcludeAmbiguous  *bool `json:"excludeAmbiguous"`
	ExcludeCodeUnsafe *bool `json:"excludeCodeUnsafe"`
	Count             int   `json:"count" validate:"omitempty,gte=1,lte=100"`
}

// options merges the request over the configured defaults.
func (r GenerateRequest) options(defaults charset.Options) charset.Options {
	opts := defaults

	if r.Length != nil {
		opts.Length = *r.Length
	}

	if r.Upper != nil {
		opts.Upper = *r.Upper
	}

	if r.Lower != nil {
		opts.Lower = *r.Lower
	}

	if r.Nums != nil {
		opts.Digits = *r.Nums
	}

	if r.Symbols != nil {
		opts.Symbols = *r.Symbols
	}

	if r.ForceEach != nil {
		opts.ForceEach = *r.ForceEach
	}

	if r.ExcludeAmbiguous != nil {
		opts.ExcludeAmbiguous = *r.ExcludeAmbiguous
	}

	if r.ExcludeCodeUnsafe != nil {
		opts.ExcludeCodeUnsafe = *r.ExcludeCodeUnsafe
	}

	return opts
}

// GenerateResponse is the JSON result of a generation call.
type GenerateResponse struct {
	Results []generator.Result `json:"results"`
}

// ErrorResponse is the JSON error shape for configuration problems.
type ErrorResponse struct {
	Error string `json:"error"`
}
