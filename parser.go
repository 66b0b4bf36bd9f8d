package triarb

import (
	"errors"
	"math"
)

// errNotFinite is the cause attached to a ParseBadNumber for a numeric
// string that parses to NaN or an infinity.
var errNotFinite = errors.New("value is not finite")

// Parser transforms a raw bookTicker payload into a validated
// TopOfBookUpdate. Implementations are stateless and reentrant: a failed
// call never poisons a later one, and both shipped variants must produce
// byte-for-byte identical TopOfBookUpdates for every well-formed input
// (spec.md §4.C, §8 property 2).
type Parser interface {
	Parse(raw []byte) (TopOfBookUpdate, error)
}

// requiredNumericFields lists the bookTicker keys decoded as numeric
// strings. Neither parser reads this list; each names the same four keys
// itself and passes them through parseNumericField, which is what keeps
// their field-presence and lexical-shape rules identical.
var requiredNumericFields = [4]string{"b", "B", "a", "A"}

// parseNumericField applies the shared lexical rule for numeric-string
// fields: absence is ParseMissingField, an empty string is
// ParseMalformedField (it is present but not of the expected lexical
// shape), and anything else that fails to parse, or parses to NaN or an
// infinity, is ParseBadNumber.
func parseNumericField(field, raw string, present bool) (float64, error) {
	if !present {
		return 0, missingFieldError(field)
	}
	if raw == "" {
		return 0, malformedFieldError(field)
	}
	v, err := parseDecimalFloat(raw)
	if err != nil {
		return 0, badNumberError(field, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, badNumberError(field, errNotFinite)
	}
	return v, nil
}
