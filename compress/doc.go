// Package compress provides compression and decompression codecs for armored text payloads.
//
// This package offers multiple compression algorithms optimized for different
// characteristics of text data. Compression is applied at the payload level
// before armoring, so the base64 expansion of the armor layer operates on the
// smallest possible frame.
//
// # Overview
//
// Armoring applies a two-stage transformation:
//
//  1. **Compression**: Shrinks the payload using a general-purpose algorithm
//  2. **Framing**: Prefixes the codec identifier and checksum, then base64-encodes
//
// The compress package implements the first stage, supporting multiple algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//   - Gzip: Standard format, best interoperability
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// All built-in codecs are stateless values that are safe for concurrent use.
// Internal encoder and decoder state is pooled behind the scenes.
//
// # Supported Algorithms
//
// **NoOp** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)       // Returns data unchanged
//	original, _ := codec.Decompress(compressed) // Returns data unchanged
//
// Use when:
//   - Payloads are tiny and framing overhead dominates
//   - Data is incompressible (random, encrypted)
//
// **Zstandard** (format.CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//
// Characteristics:
//   - Compression: Excellent, typically 3-10x on escaped text
//   - Speed: Moderate (compression ~400 MB/s, decompression ~1000 MB/s)
//
// Use when storage cost or bandwidth is the primary concern. By default a
// pure Go implementation is used; building with the "gozstd" tag switches
// to the libzstd cgo bindings for higher throughput.
//
// **S2** (format.CompressionS2)
//
//	codec := compress.NewS2Compressor()
//
// Characteristics:
//   - Compression: Good, typically 1.5-3x on escaped text
//   - Speed: Fast (compression ~1000 MB/s, decompression ~2000 MB/s)
//
// Use for hot paths where armoring latency matters more than frame size.
//
// **LZ4** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//
// Characteristics:
//   - Compression: Moderate, typically 1.5-2.5x on escaped text
//   - Speed: Very fast decompression (~3000 MB/s)
//
// Use when frames are written once and read many times.
//
// **Gzip** (format.CompressionGzip)
//
//	codec := compress.NewGzipCompressor()
//
// Characteristics:
//   - Compression: Good, comparable to Zstd at lower speed
//   - Speed: Slowest of the real codecs
//
// Use when frames must be consumed by external tooling that only speaks
// gzip. The implementation carries its own CRC trailer, so corruption is
// detected even before the armor checksum is verified.
//
// # Codec Selection
//
// Codecs are addressed by their wire identifier from the format package:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// GetCodec returns a shared built-in instance. CreateCodec constructs a fresh
// value and reports the caller-supplied target in its error message, which
// helps when several call sites resolve codecs from untrusted frame headers.
package compress
