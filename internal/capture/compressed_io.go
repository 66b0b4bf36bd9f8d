// Package capture opens and creates capture files for recorded
// top-of-book feeds, used by cmd/triarb-replay to read a previously
// recorded session and to write the opportunities it finds.
//
// A capture file is a sequence of newline-delimited JSON records. Files
// named "-" mean stdin/stdout; files ending in ".zst" or ".zstd" are
// transparently zstd-compressed. Unlike the Gist this is adapted from
// (https://gist.github.com/neomantra/691a6028cdf2ac3fc6ec97d00e8ea802),
// there is no caller-forced compression flag: triarb-replay has no
// --zstd switch, so the only signal is the filename's own suffix.
package capture

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

func isZstdName(filename string) bool {
	return strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd")
}

// CreateCapture opens filename for writing a capture file, or os.Stdout
// if filename is "-". It returns a close function to defer and any
// error. A ".zst"/".zstd" suffix zstd-compresses the output.
func CreateCapture(filename string) (io.Writer, func(), error) {
	var writer io.Writer
	var closer io.Closer
	closeFile := func() {
		if closer != nil {
			closer.Close()
		}
	}

	if filename == "-" {
		writer = os.Stdout
	} else {
		file, err := os.Create(filename)
		if err != nil {
			return nil, nil, err
		}
		writer, closer = file, file
	}

	if !isZstdName(filename) {
		return writer, closeFile, nil
	}

	zstdWriter, err := zstd.NewWriter(writer)
	if err != nil {
		closeFile()
		return nil, nil, err
	}
	return zstdWriter, func() {
		zstdWriter.Close()
		closeFile()
	}, nil
}

// OpenCapture opens filename for reading a capture file, or os.Stdin if
// filename is "-". It returns a closer to defer; the closer is nil when
// reading stdin. A ".zst"/".zstd" suffix zstd-decompresses the input.
func OpenCapture(filename string) (io.Reader, io.Closer, error) {
	var reader io.Reader
	var closer io.Closer

	if filename == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(filename)
		if err != nil {
			return nil, nil, err
		}
		reader, closer = file, file
	}

	if !isZstdName(filename) {
		return reader, closer, nil
	}

	zstdReader, err := zstd.NewReader(reader)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, nil, err
	}
	return zstdReader, nopZstdCloser{r: zstdReader, underlying: closer}, nil
}

// nopZstdCloser closes both the zstd decoder (which has no error to
// report) and the underlying file, satisfying io.Closer for both.
type nopZstdCloser struct {
	r          *zstd.Decoder
	underlying io.Closer
}

func (c nopZstdCloser) Close() error {
	c.r.Close()
	if c.underlying != nil {
		return c.underlying.Close()
	}
	return nil
}
