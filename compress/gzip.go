package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/textcodec/internal/pool"
)

// gzipWriterPool pools gzip writers for reuse, since creating a writer
// allocates sizable internal deflate state.
var gzipWriterPool = sync.Pool{
	New: func() any {
		writer, err := gzip.NewWriterLevel(nil, gzip.DefaultCompression)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create gzip writer for pool: %v", err))
		}
		return writer
	},
}

// gzipReaderPool pools gzip readers for reuse. A zero reader is valid,
// Reset initializes it against the first input.
var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// GzipCompressor provides gzip compression for armored text payloads.
//
// Gzip is the interoperability choice: the frames it produces can be
// inspected with standard tooling and consumed by systems that do not
// link any of the other codecs. For pure Go-to-Go transport Zstd or S2
// are usually better picks.
type GzipCompressor struct{}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a new gzip compressor with default settings.
//
// Returns:
//   - GzipCompressor: New gzip compressor instance
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Compress compresses the input data using gzip.
// Uses a pooled writer and a pooled staging buffer to minimize allocations.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	writer, _ := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(writer)

	writer.Reset(buf)
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	// The staging buffer goes back to the pool, so hand the caller a copy.
	compressed := make([]byte, buf.Len())
	copy(compressed, buf.Bytes())

	return compressed, nil
}

// Decompress decompresses gzip-compressed data.
//
// This method validates the gzip header and CRC trailer and returns an
// error if the data is corrupted or was not compressed with gzip.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	reader, _ := gzipReaderPool.Get().(*gzip.Reader)
	defer gzipReaderPool.Put(reader)

	if err := reader.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return decompressed, nil
}
