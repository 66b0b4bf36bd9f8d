// triarb-replay feeds a captured, newline-delimited bookTicker file
// (optionally zstd-compressed, optionally filtered to records at or
// after a start time) through the detection pipeline offline, writing
// any detected opportunities as JSON Lines. It exists for backtesting a
// universe/evaluator/parser choice against a recorded session without a
// live exchange connection.

package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/relvacode/iso8601"
	"github.com/spf13/pflag"

	triarb "github.com/arbflow/triarb-go"
	"github.com/arbflow/triarb-go/internal/capture"
	"github.com/arbflow/triarb-go/internal/sink"
	"github.com/arbflow/triarb-go/pipeline"
)

type config struct {
	MetadataFile string
	InputFile    string
	OutputFile   string
	HomeAsset    string
	Evaluator    string
	RayonReturn  string
	RayonWorkers int
	ParserKind   string
	Since        string
	Verbose      bool
}

func main() {
	var cfg config
	var showHelp bool

	pflag.StringVarP(&cfg.MetadataFile, "metadata", "m", "", "Exchange metadata JSON file")
	pflag.StringVarP(&cfg.InputFile, "in", "i", "-", "Captured bookTicker JSONL file ('-' for stdin; .zst/.zstd auto-decompressed)")
	pflag.StringVarP(&cfg.OutputFile, "out", "o", "-", "Opportunities JSONL output file ('-' for stdout)")
	pflag.StringVarP(&cfg.HomeAsset, "home", "H", "USDT", "Home asset to build cycles from")
	pflag.StringVarP(&cfg.Evaluator, "evaluator", "e", "edge", "Evaluator variant: naive|edge|rayon")
	pflag.StringVar(&cfg.RayonReturn, "rayon-return", "best", "rayon selection policy: first|best")
	pflag.IntVar(&cfg.RayonWorkers, "rayon-workers", 0, "rayon worker pool size (0 = GOMAXPROCS)")
	pflag.StringVarP(&cfg.ParserKind, "parser", "p", "structured", "Parser variant: structured|scan")
	pflag.StringVarP(&cfg.Since, "since", "t", "", "Drop records before this ISO 8601 timestamp (requires a 't' field in each record)")
	pflag.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose logging")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.Parse()

	if showHelp {
		fmt.Fprintf(os.Stdout, "usage: %s -m <metadata.json> -i <capture.jsonl[.zst]> [opts]\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(0)
	}
	if cfg.MetadataFile == "" {
		fmt.Fprintln(os.Stderr, "missing required --metadata")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

func run(cfg config) error {
	sessionID := uuid.New().String()

	var since time.Time
	if cfg.Since != "" {
		var err error
		since, err = iso8601.ParseString(cfg.Since)
		if err != nil {
			return fmt.Errorf("failed to parse --since as ISO 8601 time: %w", err)
		}
	}

	triCfg := triarb.Config{
		HomeAsset:           triarb.Asset(cfg.HomeAsset),
		Evaluator:           triarb.EvaluatorKind(cfg.Evaluator),
		RayonOnUpdateReturn: triarb.RayonReturnMode(cfg.RayonReturn),
		RayonWorkers:        cfg.RayonWorkers,
	}
	if err := triCfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration (session %s): %w", sessionID, err)
	}

	metadataFile, err := os.Open(cfg.MetadataFile)
	if err != nil {
		return fmt.Errorf("failed to open metadata file: %w", err)
	}
	defer metadataFile.Close()
	info, err := triarb.LoadExchangeInfo(metadataFile)
	if err != nil {
		return fmt.Errorf("failed to parse metadata: %w", err)
	}

	table := triarb.NewSymbolTable(info.ValidSymbols(nil))
	if table.IsEmpty() {
		return fmt.Errorf("no valid trading symbols in metadata")
	}
	universe := triarb.BuildUniverse(triCfg.HomeAsset, table)
	index := triarb.BuildSymbolIndex(universe)
	store := triarb.NewQuoteStore()

	var parser triarb.Parser
	switch cfg.ParserKind {
	case "scan":
		parser = triarb.NewScanningParser()
	default:
		parser = triarb.NewStructuredParser()
	}

	evaluator := triarb.NewEvaluator(triCfg, universe, index, store)

	inReader, inCloser, err := capture.OpenCapture(cfg.InputFile)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	if inCloser != nil {
		defer inCloser.Close()
	}

	outWriter, outCloser, err := capture.CreateCapture(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}
	defer outCloser()

	opportunitySink := sink.NewJSONLSink(outWriter)
	p := pipeline.New(evaluator, opportunitySink, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := make(chan []byte, 256)
	updates := make(chan triarb.TopOfBookUpdate, 256)

	go scanFrames(ctx, inReader, since, frames)
	go pipeline.Decode(ctx, parser, nil, frames, updates)

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "session %s: replaying %s through %q/%s against %d paths\n",
			sessionID, cfg.InputFile, cfg.Evaluator, cfg.ParserKind, len(universe.Paths))
	}

	p.Run(ctx, updates)
	return nil
}

// scanFrames reads newline-delimited frames from r, optionally dropping
// any whose top-level "t" field (milliseconds since epoch) predates
// since, and sends the rest to out.
func scanFrames(ctx context.Context, r io.Reader, since time.Time, out chan<- []byte) {
	defer close(out)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !since.IsZero() && recordBefore(line, since) {
			continue
		}
		frame := make([]byte, len(line))
		copy(frame, line)
		select {
		case out <- frame:
		case <-ctx.Done():
			return
		}
	}
}

// recordBefore reports whether raw carries a top-level "t" millisecond
// timestamp earlier than since. A record with no "t" field, or one that
// isn't a bare integer, is never filtered out.
func recordBefore(raw []byte, since time.Time) bool {
	idx := bytes.Index(raw, []byte(`"t":`))
	if idx < 0 {
		return false
	}
	rest := bytes.TrimLeft(raw[idx+len(`"t":`):], " \t")
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return false
	}
	ms, err := strconv.ParseInt(string(rest[:end]), 10, 64)
	if err != nil {
		return false
	}
	return time.UnixMilli(ms).Before(since)
}
