// Package textcodec provides text-encoding primitives for systems that move
// string data across byte-oriented, unit-oriented, and text-only transports.
//
// The package covers four concerns that tend to show up together in codecs,
// serializers, and code generators: boundary-safe truncation of UTF-8 buffers,
// lossless conversion between UTF-8 bytes and 16/32-bit unit arrays (including
// unpaired surrogates), C-style literal escaping and parsing, and a compressed,
// checksummed armor format for embedding binary payloads in text channels.
//
// # Core Features
//
//   - Codepoint-boundary cropping of UTF-8 byte buffers and strings
//   - Byte/codepoint and byte/wide-unit codecs that round-trip unpaired
//     surrogates losslessly (WTF-8 style encoding)
//   - Base64 codec with standard and URL-safe alphabets
//   - Literal escaping with short escapes, four-hex-digit unicode escapes,
//     and surrogate-pair output for supplementary-plane characters
//   - Quoted-literal parsing that combines surrogate-pair escapes back into
//     single codepoints
//   - Armor framing with optional compression (None, Zstd, S2, LZ4, Gzip)
//     and an xxHash64 payload checksum
//
// # Basic Usage
//
// Escaping and parsing literals:
//
//	import "github.com/arloliu/textcodec"
//
//	// Render a value as a double-quoted ASCII-only literal.
//	quoted := textcodec.Escape(title, true)
//
//	// Parse it back, starting at the opening quote.
//	value, next, err := textcodec.ParseQuoted(quoted, 0)
//
// Armoring a payload for a text-only channel:
//
//	import "github.com/arloliu/textcodec/format"
//
//	armored, err := textcodec.Armor(payload, format.CompressionZstd)
//	restored, err := textcodec.Dearmor(armored)
//
// Converting to and from 16-bit units:
//
//	units, err := textcodec.ToWide16(utf8Bytes)
//	roundTripped := textcodec.FromWide16(units)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the wtf8, base64,
// literal, and armor packages, simplifying the most common use cases. For
// advanced usage and fine-grained control, use those packages directly.
package textcodec

import (
	"github.com/arloliu/textcodec/armor"
	"github.com/arloliu/textcodec/base64"
	"github.com/arloliu/textcodec/format"
	"github.com/arloliu/textcodec/literal"
	"github.com/arloliu/textcodec/wtf8"
)

// CropUTF8 returns the largest prefix length of b, in bytes, that does not
// exceed maxBytes and does not split a multi-byte UTF-8 sequence.
//
// The byte at the cut position is inspected, not decoded: continuation bytes
// are walked backwards until a sequence start fits entirely inside the limit.
// Buffers that end with malformed data are cropped conservatively.
//
// Parameters:
//   - b: The UTF-8 byte buffer to crop (may contain WTF-8 surrogate sequences)
//   - maxBytes: The maximum number of bytes to keep; negative values are
//     treated as zero
//
// Returns:
//   - int: The safe prefix length in bytes, always in [0, len(b)].
//
// Example:
//
//	title := []byte("пример") // 12 bytes, 6 two-byte codepoints
//	n := textcodec.CropUTF8(title, 7)
//	short := title[:n] // 6 bytes, "при", no torn sequence
func CropUTF8(b []byte, maxBytes int) int {
	return wtf8.Crop(b, maxBytes)
}

// CropUTF8String is the string variant of CropUTF8. It returns the largest
// prefix length of s, in bytes, that fits in maxBytes without splitting a
// multi-byte UTF-8 sequence.
func CropUTF8String(s string, maxBytes int) int {
	return wtf8.CropString(s, maxBytes)
}

// ToCodepoints decodes a UTF-8 byte buffer into a slice of codepoints.
//
// Decoding is permissive in two ways that the stdlib is not: three-byte
// sequences that encode UTF-16 surrogates (WTF-8) decode to the surrogate
// value, and four-byte sequences are accepted up to 0x1FFFFF. This makes the
// decoder a strict superset of well-formed UTF-8.
//
// Parameters:
//   - b: The byte buffer to decode
//
// Returns:
//   - []rune: The decoded codepoints, one per encoded sequence.
//   - error: errs.ErrMalformedUTF8 (wrapped with the byte offset) if the
//     buffer contains an invalid sequence.
//
// Example:
//
//	cps, err := textcodec.ToCodepoints([]byte("héllo"))
//	// cps == []rune{'h', 'é', 'l', 'l', 'o'}
func ToCodepoints(b []byte) ([]rune, error) {
	return wtf8.DecodeCodepoints(b)
}

// FromCodepoints encodes a slice of codepoints back into a UTF-8 byte buffer.
//
// Surrogate codepoints are encoded as three-byte WTF-8 sequences, so any
// slice produced by ToCodepoints round-trips exactly. Codepoints above
// 0x10FFFF are rejected.
//
// Parameters:
//   - cps: The codepoints to encode
//
// Returns:
//   - []byte: The encoded buffer.
//   - error: errs.ErrCodepointOutOfRange (wrapped with the offending index)
//     if a codepoint is negative or above 0x10FFFF.
func FromCodepoints(cps []rune) ([]byte, error) {
	return wtf8.EncodeCodepoints(cps)
}

// ToWide16 decodes a UTF-8 byte buffer into UTF-16 code units.
//
// Supplementary-plane codepoints expand to surrogate pairs. Unpaired
// surrogates stored as WTF-8 sequences decode to single unpaired units, so
// buffers produced by FromWide16 round-trip exactly even when the original
// unit slice was ill-formed UTF-16.
//
// Parameters:
//   - b: The byte buffer to decode
//
// Returns:
//   - []uint16: The UTF-16 code units.
//   - error: errs.ErrMalformedUTF8 if the buffer contains an invalid
//     sequence, or errs.ErrCodepointOutOfRange if a decoded codepoint cannot
//     be represented in UTF-16.
//
// Example:
//
//	units, err := textcodec.ToWide16([]byte("😀"))
//	// units is a high/low surrogate pair
func ToWide16(b []byte) ([]uint16, error) {
	return wtf8.DecodeWide16(b)
}

// FromWide16 encodes UTF-16 code units into a UTF-8 byte buffer.
//
// Adjacent high/low surrogate pairs combine into single four-byte sequences.
// Unpaired surrogates are preserved as three-byte WTF-8 sequences rather than
// being replaced, so the conversion is lossless for arbitrary unit slices.
// Every uint16 value is representable, which is why this direction cannot
// fail.
//
// Parameters:
//   - units: The UTF-16 code units to encode
//
// Returns:
//   - []byte: The encoded buffer; ToWide16 recovers the exact input units.
func FromWide16(units []uint16) []byte {
	return wtf8.EncodeWide16(units)
}

// ToWide32 decodes a UTF-8 byte buffer into 32-bit codepoint units.
//
// Each codepoint becomes one unit; surrogate pairs never appear in the
// output because four-byte sequences decode to single supplementary-plane
// values. WTF-8 surrogate sequences decode to the bare surrogate value.
//
// Parameters:
//   - b: The byte buffer to decode
//
// Returns:
//   - []uint32: One unit per decoded codepoint.
//   - error: errs.ErrMalformedUTF8 if the buffer contains an invalid
//     sequence.
func ToWide32(b []byte) ([]uint32, error) {
	return wtf8.DecodeWide32(b)
}

// FromWide32 encodes 32-bit codepoint units into a UTF-8 byte buffer.
//
// Units encode independently; no surrogate pairing applies at this width.
// Surrogate values are encoded as three-byte WTF-8 sequences, so any slice
// produced by ToWide32 round-trips exactly.
//
// Parameters:
//   - units: The codepoint units to encode
//
// Returns:
//   - []byte: The encoded buffer.
//   - error: errs.ErrCodepointOutOfRange (wrapped with the offending index)
//     if a unit is above 0x10FFFF.
func FromWide32(units []uint32) ([]byte, error) {
	return wtf8.EncodeWide32(units)
}

// Base64Encode encodes src using either the standard or the URL-safe base64
// alphabet.
//
// The standard alphabet pads the output to a multiple of four characters
// with '='. The URL-safe alphabet uses '-' and '_' in place of '+' and '/'
// and emits no padding, which keeps the output safe for URLs, filenames,
// and cookie values.
//
// Parameters:
//   - src: The bytes to encode
//   - urlSafe: Selects the unpadded URL-safe alphabet when true
//
// Returns:
//   - string: The encoded text; empty input encodes to the empty string.
//
// Example:
//
//	std := textcodec.Base64Encode(data, false) // "+", "/" and "=" padding
//	url := textcodec.Base64Encode(data, true)  // "-", "_" and no padding
func Base64Encode(src []byte, urlSafe bool) string {
	if urlSafe {
		return base64.EncodeURL(src)
	}

	return base64.Encode(src)
}

// Base64Decode decodes base64 text produced by Base64Encode.
//
// The standard decoder requires correctly padded quads. The URL-safe decoder
// accepts both padded and unpadded input, so text from other producers that
// pad URL-safe output still decodes.
//
// Parameters:
//   - s: The text to decode
//   - urlSafe: Selects the URL-safe alphabet when true
//
// Returns:
//   - []byte: The decoded bytes; empty input decodes to an empty slice.
//   - error: errs.ErrInvalidBase64 (wrapped with position detail) if the
//     text contains characters outside the alphabet, a stray '=' or a
//     truncated final group.
func Base64Decode(s string, urlSafe bool) ([]byte, error) {
	if urlSafe {
		return base64.DecodeURL(s)
	}

	return base64.Decode(s)
}

// Escape renders s as an ASCII-only C-style literal.
//
// Backslash, double quote and the common control characters use short
// escapes. Every other codepoint outside printable ASCII is written as a
// backslash-u escape with four lowercase hex digits; supplementary-plane
// codepoints are written as a surrogate-pair of two such escapes. Bytes that
// do not decode as UTF-8 are escaped individually by their raw value, so
// Escape never fails and never drops input.
//
// Parameters:
//   - s: The string to escape (need not be valid UTF-8)
//   - quoted: Wraps the result in double quotes when true
//
// Returns:
//   - string: The escaped literal, 7-bit ASCII regardless of input.
//
// Example:
//
//	lit := textcodec.Escape(title, true)
//	fmt.Printf("name=%s\n", lit) // safe to paste into generated source
func Escape(s string, quoted bool) string {
	return literal.Escape(s, quoted)
}

// ParseQuoted parses a quoted literal from src starting at pos and returns
// the decoded value together with the index just past the closing quote.
//
// The opening character may be a double or single quote and the literal must
// close with the same one. Short escapes, four-hex-digit unicode escapes
// (upper or lower case) and raw non-ASCII text are all accepted; adjacent
// unicode escapes that form a surrogate pair decode to a single codepoint,
// inverting what Escape produces for supplementary-plane characters.
//
// Parameters:
//   - src: The text containing the literal
//   - pos: The index of the opening quote
//
// Returns:
//   - string: The decoded value.
//   - int: The index of the first character after the closing quote.
//   - error: errs.ErrUnterminatedLiteral if the opening quote is missing or
//     the literal never closes, errs.ErrInvalidEscape if an escape is
//     malformed.
//
// Example:
//
//	value, next, err := textcodec.ParseQuoted(`name="demo" id=7`, 5)
//	// value == "demo", src[next:] == " id=7"
func ParseQuoted(src string, pos int) (string, int, error) {
	return literal.ParseQuoted(src, pos)
}

// Armor packs payload into a compressed, checksummed, URL-safe base64 frame.
//
// The payload is compressed with the selected codec, prefixed with the codec
// identifier and an xxHash64 checksum of the original payload, and the whole
// frame is encoded with the unpadded URL-safe alphabet. The result survives
// any transport that preserves ASCII, and Dearmor detects corruption anywhere
// in the frame.
//
// Parameters:
//   - payload: The bytes to pack (nil and empty are legal and produce a
//     minimal frame)
//   - compression: The compression codec (format.CompressionNone, Zstd, S2,
//     LZ4 or Gzip)
//
// Returns:
//   - string: The armored text.
//   - error: An error if compression is not a valid codec or the codec fails.
//
// Example:
//
//	armored, err := textcodec.Armor(snapshot, format.CompressionZstd)
//	// ship armored through JSON, a URL, an environment variable, ...
func Armor(payload []byte, compression format.CompressionType) (string, error) {
	return armor.Pack(payload, compression)
}

// Dearmor unpacks text produced by Armor and returns the original payload.
//
// The frame is base64-decoded, the payload is decompressed with the codec
// named in the header, and the xxHash64 checksum is verified against the
// decompressed bytes. Padded input is accepted even though Armor emits
// unpadded text.
//
// Parameters:
//   - text: The armored text
//
// Returns:
//   - []byte: The original payload.
//   - error: errs.ErrInvalidBase64 if the text is not URL-safe base64,
//     errs.ErrInvalidArmor if the frame is truncated, names an unknown
//     codec or does not decompress, or errs.ErrChecksumMismatch if the
//     payload was corrupted in transit.
//
// Example:
//
//	payload, err := textcodec.Dearmor(armored)
//	if err != nil {
//	    return fmt.Errorf("rejecting snapshot: %w", err)
//	}
func Dearmor(text string) ([]byte, error) {
	return armor.Unpack(text)
}
