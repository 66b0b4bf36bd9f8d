package triarb

import "github.com/valyala/fastjson/fastfloat"

// parseDecimalFloat parses a plain decimal numeric string (optionally
// signed, optionally fractional, no exponent) as used throughout the
// bookTicker wire format. Both parser variants route through this single
// function so their numeric coercion can never diverge.
func parseDecimalFloat(s string) (float64, error) {
	return fastfloat.Parse(s)
}
