package wtf8

import (
	"fmt"

	"github.com/arloliu/textcodec/errs"
)

// EncodeWide16 encodes 16-bit code units into UTF-8 bytes.
//
// A high surrogate immediately followed by a low surrogate combines into
// a single supplementary code point written as one four-byte sequence.
// Every other unit, including a lone surrogate in either order, is
// written directly in its one- to three-byte form.
//
// EncodeWide16 cannot fail: every []uint16 has an encoding, and
// DecodeWide16 restores the exact unit sequence.
//
// Parameters:
//   - units: 16-bit code units, not required to be valid UTF-16
//
// Returns:
//   - []byte: encoded bytes
func EncodeWide16(units []uint16) []byte {
	buf := make([]byte, 0, len(units)*3)
	for i := 0; i < len(units); i++ {
		u := units[i]
		if IsHighSurrogate(u) && i+1 < len(units) && IsLowSurrogate(units[i+1]) {
			buf = appendCodepoint(buf, CombinePair(u, units[i+1]))
			i++

			continue
		}

		buf = appendCodepoint(buf, rune(u))
	}

	return buf
}

// DecodeWide16 decodes UTF-8 bytes into 16-bit code units.
//
// Code points above 0xFFFF split into a high and low surrogate pair;
// surrogate-range code points decode to their unit value unchanged.
// Together with EncodeWide16 this gives a lossless round trip for
// arbitrary unit sequences.
//
// Parameters:
//   - b: UTF-8 encoded bytes
//
// Returns:
//   - []uint16: decoded code units
//   - error: errs.ErrMalformedUTF8 on structural damage, or
//     errs.ErrCodepointOutOfRange if a decoded value has no 16-bit
//     representation
func DecodeWide16(b []byte) ([]uint16, error) {
	units := make([]uint16, 0, len(b))
	for pos := 0; pos < len(b); {
		c, size, err := decodeAt(b, pos)
		if err != nil {
			return nil, err
		}
		if c > MaxCodepoint {
			return nil, fmt.Errorf("%w: value %#x at offset %d exceeds the surrogate pair range", errs.ErrCodepointOutOfRange, c, pos)
		}

		pos += size

		if c > rune3Max {
			hi, lo := SplitPair(c)
			units = append(units, hi, lo)

			continue
		}

		units = append(units, uint16(c)) //nolint:gosec
	}

	return units, nil
}

// EncodeWide32 encodes 32-bit code units into UTF-8 bytes.
//
// Units encode independently; no pair combination applies at this width.
// Surrogate-range units are written in their three-byte form.
//
// Parameters:
//   - units: 32-bit code units, each at most MaxCodepoint
//
// Returns:
//   - []byte: encoded bytes
//   - error: errs.ErrCodepointOutOfRange if any unit exceeds MaxCodepoint
func EncodeWide32(units []uint32) ([]byte, error) {
	buf := make([]byte, 0, len(units)*3)
	for i, u := range units {
		if u > MaxCodepoint {
			return nil, fmt.Errorf("%w: value %#x at index %d", errs.ErrCodepointOutOfRange, u, i)
		}

		buf = appendCodepoint(buf, rune(u))
	}

	return buf, nil
}

// DecodeWide32 decodes UTF-8 bytes into 32-bit code units.
//
// Each decoded code point becomes one unit. Surrogate-range scalars pass
// through unchanged, so EncodeWide16 output stays decodable at this width
// as well.
//
// Parameters:
//   - b: UTF-8 encoded bytes
//
// Returns:
//   - []uint32: decoded code units
//   - error: errs.ErrMalformedUTF8 on structural damage
func DecodeWide32(b []byte) ([]uint32, error) {
	units := make([]uint32, 0, len(b))
	for pos := 0; pos < len(b); {
		c, size, err := decodeAt(b, pos)
		if err != nil {
			return nil, err
		}

		units = append(units, uint32(c)) //nolint:gosec
		pos += size
	}

	return units, nil
}
