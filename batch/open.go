package batch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stdin is the input name that reads standard input.
const Stdin = "-"

// Compression names the codec wrapped around an input file.
type Compression string

const (
	None   Compression = ""
	Gzip   Compression = "gzip"
	Zstd   Compression = "zstd"
	Snappy Compression = "snappy"
	LZ4    Compression = "lz4"
	Brotli Compression = "br"
)

// CompressionOf picks the codec from the file extension.
func CompressionOf(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".sz", ".snappy":
		return Snappy
	case ".lz4":
		return LZ4
	case ".br":
		return Brotli
	default:
		return None
	}
}

// Open opens path for reading and transparently decompresses it according
// to its extension. Stdin reads standard input uncompressed. Closing the
// returned reader closes the decompressor first and the file second.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, err
	}

	rc, err := Decompress(file, CompressionOf(path))
	if err != nil {
		_ = file.Close()

		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return &stack{Reader: rc, closers: []io.Closer{rc, file}}, nil
}

// Decompress wraps r with the reader for codec c. None returns r unchanged.
func Decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}

		return dec.IOReadCloser(), nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case LZ4:
		return io.NopCloser(&eofLatch{r: lz4.NewReader(r)}), nil
	case Brotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, c)
	}
}

// ErrUnknownCompression is returned by Decompress for an unsupported codec.
var ErrUnknownCompression = errors.New("unknown compression")

// eofLatch keeps returning io.EOF once r has reported it. The lz4 frame
// reader fails on reads past the end of the frame instead.
type eofLatch struct {
	r   io.Reader
	eof bool
}

func (l *eofLatch) Read(p []byte) (int, error) {
	if l.eof {
		return 0, io.EOF
	}

	n, err := l.r.Read(p)
	if errors.Is(err, io.EOF) {
		l.eof = true
	}

	return n, err
}

// stack reads from Reader and closes every closer in order.
type stack struct {
	io.Reader

	closers []io.Closer
}

func (s *stack) Close() error {
	var errs []error

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
