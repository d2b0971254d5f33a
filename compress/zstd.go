package compress

// ZstdCompressor provides Zstandard compression for armored text payloads.
//
// This compressor is designed for scenarios where compression ratio is more
// important than compression speed, making it ideal for:
//   - Cold storage and archival of escaped text corpora
//   - Network transmission where bandwidth is limited
//   - Scenarios where decompression happens infrequently
//
// Two implementations are available, selected at build time:
//   - Default: pure Go (github.com/klauspost/compress/zstd)
//   - With the "gozstd" build tag: cgo bindings to libzstd
//     (github.com/valyala/gozstd), trading build complexity for speed
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
