// Package armor wraps binary payloads in a printable, integrity-checked
// text form.
//
// A frame is the unpadded URL-safe Base64 encoding of a one-byte codec
// identifier, the xxHash64 checksum of the original payload in
// little-endian order, and the compressed payload:
//
//	base64url( codecID | checksum | compressed )
//
// The result is safe to embed in config files, scripts, and other text
// documents. Unpack rejects frames whose payload does not survive the
// trip intact.
package armor

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/textcodec/base64"
	"github.com/arloliu/textcodec/compress"
	"github.com/arloliu/textcodec/errs"
	"github.com/arloliu/textcodec/format"
	"github.com/arloliu/textcodec/internal/hash"
	"github.com/arloliu/textcodec/internal/pool"
)

const (
	checksumSize = 8
	// headerSize is the codec identifier byte plus the checksum.
	headerSize = 1 + checksumSize
)

// Pack compresses payload with the given codec and encodes it as an
// armored text frame.
//
// The checksum is computed over the original payload, so Unpack verifies
// the full decompression path and not just transport integrity.
//
// Parameters:
//   - payload: Binary data to armor (empty payload is legal)
//   - compression: Codec wire identifier (None, Zstd, S2, LZ4, or Gzip)
//
// Returns:
//   - string: Armored frame in unpadded URL-safe Base64
//   - error: Unknown compression type or compression failure
func Pack(payload []byte, compression format.CompressionType) (string, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return "", err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return "", fmt.Errorf("armor compression failed: %w", err)
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	buf.Grow(headerSize + len(compressed))
	_ = buf.WriteByte(byte(compression))

	var sum [checksumSize]byte
	binary.LittleEndian.PutUint64(sum[:], hash.Sum(payload))
	buf.MustWrite(sum[:])
	buf.MustWrite(compressed)

	return base64.EncodeURL(buf.Bytes()), nil
}

// Unpack decodes an armored text frame and returns the original payload.
//
// The frame text may carry Base64 padding or not. The returned slice is
// newly allocated and owned by the caller.
//
// Errors:
//   - errs.ErrInvalidBase64: text is not URL-safe Base64
//   - errs.ErrInvalidArmor: frame is truncated, names an unknown codec,
//     or its payload does not decompress
//   - errs.ErrChecksumMismatch: payload decompressed but its checksum
//     does not match the frame header
func Unpack(text string) ([]byte, error) {
	frame, err := base64.DecodeURL(text)
	if err != nil {
		return nil, fmt.Errorf("armor text: %w", err)
	}

	if len(frame) < headerSize {
		return nil, fmt.Errorf("%w: frame is %d bytes, want at least %d", errs.ErrInvalidArmor, len(frame), headerSize)
	}

	compression := format.CompressionType(frame[0])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown codec 0x%02x", errs.ErrInvalidArmor, frame[0])
	}

	want := binary.LittleEndian.Uint64(frame[1:headerSize])

	payload, err := codec.Decompress(frame[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: payload does not decompress: %v", errs.ErrInvalidArmor, err)
	}

	if got := hash.Sum(payload); got != want {
		return nil, fmt.Errorf("%w: frame 0x%016x, payload 0x%016x", errs.ErrChecksumMismatch, want, got)
	}

	return payload, nil
}
