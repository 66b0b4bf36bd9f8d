// Package pipeline wires the decoder, parser, and evaluator stages
// together behind bounded in-process channels, and runs the single
// consumer loop that invokes the evaluator and reports its findings
// (spec.md §4.E, §5).
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	triarb "github.com/arbflow/triarb-go"
)

// Sink receives every opportunity the evaluator reports. Implementations
// must not block the consumer loop indefinitely; a log, a channel send,
// or a buffered file write all qualify.
type Sink interface {
	Opportunity(op triarb.Opportunity) error
}

// Decode reads raw frames from in, parses each with parser, and sends
// successfully parsed updates to out, closing out when in is exhausted
// or ctx is done. A parse failure is logged at warn level, counted, and
// the offending frame is dropped; decoding continues (spec.md §4.E
// propagation policy — "parser errors are logged at warn level and the
// offending message is dropped").
func Decode(ctx context.Context, parser triarb.Parser, logger *slog.Logger, in <-chan []byte, out chan<- triarb.TopOfBookUpdate) {
	defer close(out)
	if logger == nil {
		logger = slog.Default()
	}
	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-in:
			if !ok {
				return
			}
			u, err := parser.Parse(frame)
			if err != nil {
				var perr *triarb.ParseError
				if errors.As(err, &perr) {
					triarb.IncParseError(perr.Kind)
					logger.Warn("pipeline: parse failed", "kind", perr.Kind.String(), "field", perr.Field, "error", err)
				} else {
					logger.Warn("pipeline: parse failed", "error", err)
				}
				continue
			}
			select {
			case out <- u:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Pipeline is the single consumer loop of spec.md §4.E: pull parsed
// updates off a queue, invoke the evaluator, report any opportunity to
// a sink. The loop itself never suspends past a single dequeue; the
// evaluator runs to completion synchronously before the next iteration.
type Pipeline struct {
	Evaluator triarb.Evaluator
	Sink      Sink
	Logger    *slog.Logger
}

// New builds a Pipeline over evaluator and sink. A nil logger falls
// back to slog.Default().
func New(evaluator triarb.Evaluator, sink Sink, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Evaluator: evaluator, Sink: sink, Logger: logger}
}

// Run drains updates until the channel is closed or ctx is done.
func (p *Pipeline) Run(ctx context.Context, updates <-chan triarb.TopOfBookUpdate) {
	for {
		select {
		case <-ctx.Done():
			return
		case u, ok := <-updates:
			if !ok {
				return
			}
			opp, found := p.Evaluator.ProcessUpdate(u)
			if !found {
				continue
			}
			if err := p.Sink.Opportunity(opp); err != nil {
				p.Logger.Warn("pipeline: sink failed", "error", err, "symbol", opp.TriggerSymbol)
			}
		}
	}
}
