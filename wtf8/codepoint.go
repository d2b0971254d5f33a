package wtf8

import (
	"fmt"

	"github.com/arloliu/textcodec/errs"
)

// DecodeCodepoints decodes b into the sequence of code points it carries.
//
// Decoding is permissive: surrogate-range scalars and non-minimal
// encodings are returned as the values they carry rather than rejected,
// so output of EncodeWide16 decodes losslessly even when it holds lone
// surrogates. Only structural damage fails.
//
// Parameters:
//   - b: UTF-8 encoded bytes
//
// Returns:
//   - []rune: decoded code points
//   - error: errs.ErrMalformedUTF8 if b contains a truncated or corrupt sequence
func DecodeCodepoints(b []byte) ([]rune, error) {
	cps := make([]rune, 0, len(b))
	for pos := 0; pos < len(b); {
		c, size, err := decodeAt(b, pos)
		if err != nil {
			return nil, err
		}

		cps = append(cps, c)
		pos += size
	}

	return cps, nil
}

// EncodeCodepoints encodes code points into their minimal-length forms.
//
// Surrogate-range values are written in their ordinary three-byte form.
// Values above MaxCodepoint or below zero are rejected and nothing is
// returned for a failed input.
//
// Parameters:
//   - cps: code points to encode
//
// Returns:
//   - []byte: encoded bytes
//   - error: errs.ErrCodepointOutOfRange if any value is outside 0..MaxCodepoint
func EncodeCodepoints(cps []rune) ([]byte, error) {
	buf := make([]byte, 0, len(cps)*2)
	for i, c := range cps {
		if c < 0 || c > MaxCodepoint {
			return nil, fmt.Errorf("%w: value %#x at index %d", errs.ErrCodepointOutOfRange, c, i)
		}

		buf = appendCodepoint(buf, c)
	}

	return buf, nil
}
