package triarb

import "github.com/valyala/fastjson"

// bookTickerFrame is the intermediate typed record StructuredParser
// deserializes into before coercing its numeric strings to float64. It
// exists to separate "does the JSON have the shape we expect" from "are
// the values we extracted well-formed numbers" — the two failure classes
// spec.md §4.C distinguishes as ParseMalformedField and ParseBadNumber.
type bookTickerFrame struct {
	symbol          string
	symbolPresent   bool
	bidPrice        string
	bidPricePresent bool
	bidQty          string
	bidQtyPresent   bool
	askPrice        string
	askPricePresent bool
	askQty          string
	askQtyPresent   bool
	updateID        uint64
	updateIDPresent bool
}

// StructuredParser implements Parser via a schema-driven deserializer
// (valyala/fastjson): it parses the raw payload into a DOM, reads each
// required field by name regardless of ordering, and lets extra fields
// pass through untouched. It prioritizes clarity over allocation count
// (spec.md §4.C, V1).
type StructuredParser struct{}

// NewStructuredParser returns the V1 parser variant.
func NewStructuredParser() *StructuredParser {
	return &StructuredParser{}
}

func (*StructuredParser) Parse(raw []byte) (TopOfBookUpdate, error) {
	var p fastjson.Parser
	val, err := p.ParseBytes(raw)
	if err != nil || val.Type() != fastjson.TypeObject {
		return TopOfBookUpdate{}, malformedFieldError("<root>")
	}

	frame := readBookTickerFrame(val)

	if !frame.symbolPresent {
		return TopOfBookUpdate{}, missingFieldError("s")
	}
	if frame.symbol == "" {
		return TopOfBookUpdate{}, malformedFieldError("s")
	}
	if !frame.updateIDPresent {
		return TopOfBookUpdate{}, missingFieldError("u")
	}

	bidPrice, err := parseNumericField("b", frame.bidPrice, frame.bidPricePresent)
	if err != nil {
		return TopOfBookUpdate{}, err
	}
	bidQty, err := parseNumericField("B", frame.bidQty, frame.bidQtyPresent)
	if err != nil {
		return TopOfBookUpdate{}, err
	}
	askPrice, err := parseNumericField("a", frame.askPrice, frame.askPricePresent)
	if err != nil {
		return TopOfBookUpdate{}, err
	}
	askQty, err := parseNumericField("A", frame.askQty, frame.askQtyPresent)
	if err != nil {
		return TopOfBookUpdate{}, err
	}

	return TopOfBookUpdate{
		Symbol:       Symbol(frame.symbol),
		BestBidPrice: bidPrice,
		BestBidQty:   bidQty,
		BestAskPrice: askPrice,
		BestAskQty:   askQty,
		UpdateID:     frame.updateID,
	}, nil
}

// readBookTickerFrame extracts the six bookTicker fields from val without
// assuming field order, tolerating and ignoring any extra keys. Presence
// is checked with Exists so a key that is present but the wrong type
// (e.g. a JSON number where a numeric string is expected) is reported as
// an empty string, falling into the same ParseMalformedField bucket as a
// literal "" value rather than being silently treated as missing.
func readBookTickerFrame(val *fastjson.Value) bookTickerFrame {
	var f bookTickerFrame
	if val.Exists("s") {
		f.symbolPresent = true
		f.symbol = string(val.GetStringBytes("s"))
	}
	if val.Exists("b") {
		f.bidPricePresent = true
		f.bidPrice = string(val.GetStringBytes("b"))
	}
	if val.Exists("B") {
		f.bidQtyPresent = true
		f.bidQty = string(val.GetStringBytes("B"))
	}
	if val.Exists("a") {
		f.askPricePresent = true
		f.askPrice = string(val.GetStringBytes("a"))
	}
	if val.Exists("A") {
		f.askQtyPresent = true
		f.askQty = string(val.GetStringBytes("A"))
	}
	if val.Exists("u") {
		f.updateIDPresent = true
		f.updateID = val.GetUint64("u")
	}
	return f
}
