// Package base64 implements the two Base64 alphabets used across textcodec.
//
// The standard alphabet (A-Z a-z 0-9 + /) pads its output with '=' to a
// multiple of four symbols. The URL-safe alphabet (A-Z a-z 0-9 - _) emits
// no padding, and its decoder accepts input with or without padding so
// text produced by foreign encoders still decodes.
//
// Decoding is alphabet-strict: any character outside the active alphabet,
// including whitespace, fails with errs.ErrInvalidBase64. This differs
// from the streaming decoders in the standard library, which skip line
// breaks.
package base64

import (
	"fmt"

	"github.com/arloliu/textcodec/errs"
)

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	padChar = '='

	// invalidSymbol marks table entries outside the active alphabet.
	invalidSymbol = 0xFF
)

var (
	stdDecodeLUT = buildDecodeLUT(stdAlphabet)
	urlDecodeLUT = buildDecodeLUT(urlAlphabet)
)

func buildDecodeLUT(alphabet string) [256]byte {
	var lut [256]byte
	for i := range lut {
		lut[i] = invalidSymbol
	}
	for i := 0; i < len(alphabet); i++ {
		lut[alphabet[i]] = byte(i)
	}

	return lut
}

// Encode returns the standard-alphabet encoding of src, padded with '='
// to a multiple of four symbols. An empty src encodes to "".
func Encode(src []byte) string {
	return encodeAlphabet(src, stdAlphabet, true)
}

// EncodeURL returns the URL-safe encoding of src without padding.
// An empty src encodes to "".
func EncodeURL(src []byte) string {
	return encodeAlphabet(src, urlAlphabet, false)
}

// Decode reverses Encode.
//
// The input length must be a multiple of four, padding included; '=' may
// appear only as the final one or two characters.
//
// Returns:
//   - []byte: decoded bytes, nil for empty input
//   - error: errs.ErrInvalidBase64 on a character outside the standard
//     alphabet, misplaced padding, or an inconsistent length
func Decode(s string) ([]byte, error) {
	return decodeAlphabet(s, &stdDecodeLUT, true)
}

// DecodeURL reverses EncodeURL.
//
// Padded and unpadded input are both accepted; when padding is present
// the total length must be a multiple of four.
//
// Returns:
//   - []byte: decoded bytes, nil for empty input
//   - error: errs.ErrInvalidBase64 on a character outside the URL-safe
//     alphabet, misplaced padding, or an impossible length
func DecodeURL(s string) ([]byte, error) {
	return decodeAlphabet(s, &urlDecodeLUT, false)
}

func encodeAlphabet(src []byte, alphabet string, pad bool) string {
	if len(src) == 0 {
		return ""
	}

	size := (len(src) + 2) / 3 * 4
	if !pad {
		size = (len(src)*8 + 5) / 6
	}
	out := make([]byte, 0, size)

	i := 0
	for ; i+3 <= len(src); i += 3 {
		v := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		out = append(out,
			alphabet[v>>18&0x3F],
			alphabet[v>>12&0x3F],
			alphabet[v>>6&0x3F],
			alphabet[v&0x3F],
		)
	}

	// The final group carries one or two remainder bytes.
	switch len(src) - i {
	case 1:
		v := uint32(src[i]) << 16
		out = append(out, alphabet[v>>18&0x3F], alphabet[v>>12&0x3F])
		if pad {
			out = append(out, padChar, padChar)
		}
	case 2:
		v := uint32(src[i])<<16 | uint32(src[i+1])<<8
		out = append(out, alphabet[v>>18&0x3F], alphabet[v>>12&0x3F], alphabet[v>>6&0x3F])
		if pad {
			out = append(out, padChar)
		}
	}

	return string(out)
}

func decodeAlphabet(s string, lut *[256]byte, requireQuads bool) ([]byte, error) {
	if s == "" {
		return nil, nil
	}

	// Strip trailing padding, at most two characters.
	trimmed := s
	padding := 0
	for padding <= 2 && len(trimmed) > 0 && trimmed[len(trimmed)-1] == padChar {
		trimmed = trimmed[:len(trimmed)-1]
		padding++
	}

	switch {
	case padding > 2:
		return nil, fmt.Errorf("%w: more than two padding characters", errs.ErrInvalidBase64)
	case (requireQuads || padding > 0) && len(s)%4 != 0:
		return nil, fmt.Errorf("%w: length %d is not a multiple of 4", errs.ErrInvalidBase64, len(s))
	case len(trimmed)%4 == 1:
		return nil, fmt.Errorf("%w: impossible input length %d", errs.ErrInvalidBase64, len(trimmed))
	}

	out := make([]byte, 0, len(trimmed)/4*3+2)

	i := 0
	for ; i+4 <= len(trimmed); i += 4 {
		v, err := decodeGroup(trimmed, i, lut, 4)
		if err != nil {
			return nil, err
		}

		out = append(out, byte(v>>16), byte(v>>8), byte(v))
	}

	switch len(trimmed) - i {
	case 2:
		v, err := decodeGroup(trimmed, i, lut, 2)
		if err != nil {
			return nil, err
		}

		out = append(out, byte(v>>16))
	case 3:
		v, err := decodeGroup(trimmed, i, lut, 3)
		if err != nil {
			return nil, err
		}

		out = append(out, byte(v>>16), byte(v>>8))
	}

	return out, nil
}

// decodeGroup reads count symbols at pos and returns them left-aligned in
// a 24-bit group so byte extraction is uniform across remainder sizes.
func decodeGroup(s string, pos int, lut *[256]byte, count int) (uint32, error) {
	var v uint32
	for i := 0; i < count; i++ {
		sym := lut[s[pos+i]]
		if sym == invalidSymbol {
			return 0, fmt.Errorf("%w: invalid character %q at offset %d", errs.ErrInvalidBase64, s[pos+i], pos+i)
		}

		v = v<<6 | uint32(sym)
	}

	return v << (6 * (4 - count)), nil
}
