package triarb

import (
	"bytes"
	"strconv"
)

// ScanningParser implements Parser via direct byte-level scanning of the
// bookTicker payload instead of building a DOM. It locates each field by
// its quoted key, independent of field order and of whitespace after the
// colon (the colon must follow the closing quote of the key directly),
// and skips over any keys it does not recognize. It makes exactly the
// same presence and lexical-shape decisions as StructuredParser so the
// two variants stay byte-for-byte equivalent on well-formed input
// (spec.md §4.C, V2; §8 property 2).
type ScanningParser struct{}

// NewScanningParser returns the V2 parser variant.
func NewScanningParser() *ScanningParser {
	return &ScanningParser{}
}

func (*ScanningParser) Parse(raw []byte) (TopOfBookUpdate, error) {
	if !looksLikeJSONObject(raw) {
		return TopOfBookUpdate{}, malformedFieldError("<root>")
	}

	symbol, symbolPresent := scanStringField(raw, "s")
	if !symbolPresent {
		return TopOfBookUpdate{}, missingFieldError("s")
	}
	if symbol == "" {
		return TopOfBookUpdate{}, malformedFieldError("s")
	}

	updateID, updateIDPresent := scanUintField(raw, "u")
	if !updateIDPresent {
		return TopOfBookUpdate{}, missingFieldError("u")
	}

	bidPriceRaw, bidPricePresent := scanStringField(raw, "b")
	bidPrice, err := parseNumericField("b", bidPriceRaw, bidPricePresent)
	if err != nil {
		return TopOfBookUpdate{}, err
	}
	bidQtyRaw, bidQtyPresent := scanStringField(raw, "B")
	bidQty, err := parseNumericField("B", bidQtyRaw, bidQtyPresent)
	if err != nil {
		return TopOfBookUpdate{}, err
	}
	askPriceRaw, askPricePresent := scanStringField(raw, "a")
	askPrice, err := parseNumericField("a", askPriceRaw, askPricePresent)
	if err != nil {
		return TopOfBookUpdate{}, err
	}
	askQtyRaw, askQtyPresent := scanStringField(raw, "A")
	askQty, err := parseNumericField("A", askQtyRaw, askQtyPresent)
	if err != nil {
		return TopOfBookUpdate{}, err
	}

	return TopOfBookUpdate{
		Symbol:       Symbol(symbol),
		BestBidPrice: bidPrice,
		BestBidQty:   bidQty,
		BestAskPrice: askPrice,
		BestAskQty:   askQty,
		UpdateID:     updateID,
	}, nil
}

func looksLikeJSONObject(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) >= 2 && trimmed[0] == '{' && trimmed[len(trimmed)-1] == '}'
}

// fieldKeyPattern builds the byte pattern scanStringField and
// scanUintField search for: a quoted key immediately followed by a
// colon.
func fieldKeyPattern(key string) []byte {
	return []byte(`"` + key + `":`)
}

// scanStringField locates key's value in raw and, if it is a quoted JSON
// string, returns the raw bytes between its quotes. present reports whether the key
// was found at all, independent of whether its value had the expected
// shape — a present value of the wrong shape (not a quoted string, or
// an unterminated one) is reported as an empty string, landing in the
// same malformed bucket a literal "" would.
//
// This is a deliberately narrow string scanner: it does not unescape
// backslash sequences, since the bookTicker wire format never quotes
// anything but plain decimal digits.
func scanStringField(raw []byte, key string) (string, bool) {
	pattern := fieldKeyPattern(key)
	idx := bytes.Index(raw, pattern)
	if idx < 0 {
		return "", false
	}
	rest := skipJSONWhitespace(raw[idx+len(pattern):])
	if len(rest) == 0 || rest[0] != '"' {
		return "", true
	}
	rest = rest[1:]
	end := bytes.IndexByte(rest, '"')
	if end < 0 {
		return "", true
	}
	return string(rest[:end]), true
}

// scanUintField locates key's value in raw and, if it is a run of ASCII
// digits, parses it as a uint64. present reports whether the key was
// found; a present value that fails to parse as digits is reported as 0,
// matching the StructuredParser's GetUint64 behavior on a type mismatch.
func scanUintField(raw []byte, key string) (uint64, bool) {
	pattern := fieldKeyPattern(key)
	idx := bytes.Index(raw, pattern)
	if idx < 0 {
		return 0, false
	}
	rest := skipJSONWhitespace(raw[idx+len(pattern):])
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, true
	}
	v, err := strconv.ParseUint(string(rest[:end]), 10, 64)
	if err != nil {
		return 0, true
	}
	return v, true
}

func skipJSONWhitespace(b []byte) []byte {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t' || b[i] == '\n' || b[i] == '\r') {
		i++
	}
	return b[i:]
}
