// Package sink provides Sink implementations that persist reported
// opportunities. It is adapted from the generic WriteAsJson helper
// NimbleMarkets' file writers use for DBN records, narrowed to a single
// record type and widened into something safe for one writer shared by
// a pipeline and its caller.
package sink

import (
	"encoding/json"
	"io"
	"sync"

	triarb "github.com/arbflow/triarb-go"
)

// opportunityRecord is the JSON Lines shape written by JSONLSink. It
// intentionally omits the PricingPath pointer in favor of a flattened,
// serialization-stable view.
type opportunityRecord struct {
	Symbols  [3]triarb.Symbol `json:"path_symbols"`
	Sides    [3]string        `json:"sides"`
	Start    string           `json:"start"`
	Amount   float64          `json:"final_amount"`
	Profit   float64          `json:"profit"`
	Trigger  string           `json:"trigger_symbol"`
	UpdateID uint64           `json:"trigger_update_id"`
}

// JSONLSink writes each Opportunity as a single line of JSON. It is
// safe for concurrent use by multiple pipelines sharing one writer.
type JSONLSink struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewJSONLSink wraps writer as a JSONLSink.
func NewJSONLSink(writer io.Writer) *JSONLSink {
	return &JSONLSink{writer: writer}
}

// Opportunity writes op to the underlying writer as one JSON line.
func (s *JSONLSink) Opportunity(op triarb.Opportunity) error {
	record := opportunityRecord{
		Symbols: op.Path.Symbols(),
		Sides: [3]string{
			op.Path.Legs[0].Side.String(),
			op.Path.Legs[1].Side.String(),
			op.Path.Legs[2].Side.String(),
		},
		Start:    string(op.Path.Start),
		Amount:   op.FinalAmount,
		Profit:   op.Profit(),
		Trigger:  string(op.TriggerSymbol),
		UpdateID: op.TriggerUpdateID,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeAsJSON(&record, s.writer)
}

// writeAsJSON marshals val and writes it followed by a newline.
func writeAsJSON[T any](val *T, writer io.Writer) error {
	jstr, err := json.Marshal(val)
	if err != nil {
		return err
	}
	if _, err := writer.Write(jstr); err != nil {
		return err
	}
	_, err = writer.Write([]byte{'\n'})
	return err
}
