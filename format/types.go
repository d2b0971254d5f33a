// Package format defines the wire identifiers shared by the compress
// and armor packages.
package format

// CompressionType identifies the compression codec applied to an armored
// payload. The value is stored as the first byte of the armor header, so
// existing identifiers must never be renumbered.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionGzip CompressionType = 0x5 // CompressionGzip represents gzip compression.
)

// IsValid reports whether c names a known codec.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionGzip
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}
