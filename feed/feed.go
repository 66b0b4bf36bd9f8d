// Package feed connects to a plain top-of-book socket feed and hands
// raw newline-delimited frames to the rest of the pipeline. It is
// deliberately minimal: no TLS, no authentication handshake, and no
// reconnect policy. Wire security and session lifecycle management for
// a real exchange are an external collaborator's concern, not this
// core's (spec.md §1 Non-goals).
package feed

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
)

// defaultReadBufferSize bounds a single bufio.Reader allocation; frames
// larger than this never occur in the bookTicker wire format.
const defaultReadBufferSize = 64 * 1024

// Config describes a single plain TCP connection carrying
// newline-delimited JSON frames.
type Config struct {
	Logger  *slog.Logger
	Address string // host:port
}

// Validate reports whether config is usable by Dial.
func (c Config) Validate() error {
	if c.Address == "" {
		return errors.New("feed: Address must not be empty")
	}
	return nil
}

// Conn is a single dialed connection to a feed.
type Conn struct {
	config Config
	logger *slog.Logger
	conn   net.Conn
	reader *bufio.Reader
}

// Dial opens config.Address and returns a Conn ready for Frames. It does
// not retry: a failed dial is the caller's to handle.
func Dial(config Config) (*Conn, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := net.Dial("tcp", config.Address)
	if err != nil {
		return nil, fmt.Errorf("feed: dial %s: %w", config.Address, err)
	}
	return &Conn{
		config: config,
		logger: logger,
		conn:   conn,
		reader: bufio.NewReaderSize(conn, defaultReadBufferSize),
	}, nil
}

// Frames streams newline-delimited frames, trailing newline stripped,
// into out until the connection is closed or ctx is canceled, then
// closes out. It suspends only on the next socket read or channel send
// (spec.md §5 "Suspension points"); it never reconnects.
func (c *Conn) Frames(ctx context.Context, out chan<- []byte) {
	defer close(out)
	for {
		line, err := c.reader.ReadBytes('\n')
		if len(line) > 0 {
			frame := bytes.TrimRight(line, "\n")
			owned := make([]byte, len(frame))
			copy(owned, frame)
			select {
			case out <- owned:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.logger.Warn("feed: read failed", "address", c.config.Address, "error", err)
			}
			return
		}
	}
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}
