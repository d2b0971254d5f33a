package wtf8

import (
	"fmt"

	"github.com/arloliu/textcodec/errs"
)

// MaxCodepoint is the largest code point the encoders accept.
const MaxCodepoint = 0x10FFFF

const (
	rune1Max = 1<<7 - 1  // largest 1-byte code point
	rune2Max = 1<<11 - 1 // largest 2-byte code point
	rune3Max = 1<<16 - 1 // largest 3-byte code point

	t2 = 0b11000000 // 2-byte lead
	t3 = 0b11100000 // 3-byte lead
	t4 = 0b11110000 // 4-byte lead
	tx = 0b10000000 // continuation

	maskx = 0b00111111 // continuation payload
	mask2 = 0b00011111 // 2-byte lead payload
	mask3 = 0b00001111 // 3-byte lead payload
	mask4 = 0b00000111 // 4-byte lead payload

	hiSurrogateMin = 0xD800
	loSurrogateMin = 0xDC00
	surrogateMax   = 0xDFFF

	// supplementaryBase is the first code point that needs a surrogate
	// pair in 16-bit units.
	supplementaryBase = 0x10000

	// replacementChar marks values AppendCodepoint cannot encode.
	replacementChar = 0xFFFD
)

// isContinuation reports whether b has the continuation shape 10xxxxxx.
func isContinuation(b byte) bool {
	return b&0xC0 == tx
}

// IsHighSurrogate reports whether u is a UTF-16 high (leading) surrogate.
func IsHighSurrogate(u uint16) bool {
	return u >= hiSurrogateMin && u < loSurrogateMin
}

// IsLowSurrogate reports whether u is a UTF-16 low (trailing) surrogate.
func IsLowSurrogate(u uint16) bool {
	return u >= loSurrogateMin && u <= surrogateMax
}

// CombinePair returns the supplementary code point a surrogate pair
// encodes. The caller guarantees hi is a high surrogate and lo a low
// surrogate; the result is always in 0x10000..0x10FFFF.
func CombinePair(hi, lo uint16) rune {
	return supplementaryBase + (rune(hi)-hiSurrogateMin)<<10 + (rune(lo) - loSurrogateMin)
}

// SplitPair splits a code point into its UTF-16 surrogate pair. The
// caller guarantees 0xFFFF < c <= MaxCodepoint.
func SplitPair(c rune) (hi, lo uint16) {
	c -= supplementaryBase

	return uint16(hiSurrogateMin + (c >> 10)), uint16(loSurrogateMin + (c & 0x3FF)) //nolint:gosec
}

// DecodeCodepoint decodes the single code point at the start of b and
// returns it with the number of bytes it occupies. Decoding follows the
// same permissive grammar as DecodeCodepoints.
func DecodeCodepoint(b []byte) (rune, int, error) {
	if len(b) == 0 {
		return 0, 0, fmt.Errorf("%w: empty input", errs.ErrMalformedUTF8)
	}

	return decodeAt(b, 0)
}

// DecodeCodepointInString is the string form of DecodeCodepoint.
func DecodeCodepointInString(s string) (rune, int, error) {
	if len(s) == 0 {
		return 0, 0, fmt.Errorf("%w: empty input", errs.ErrMalformedUTF8)
	}

	return decodeAt(s, 0)
}

// AppendCodepoint appends the minimal-length encoding of c to dst and
// returns the extended slice. Surrogate-range values are written in
// their ordinary three-byte form. Values outside 0..MaxCodepoint append
// the replacement character U+FFFD instead.
func AppendCodepoint(dst []byte, c rune) []byte {
	if c < 0 || c > MaxCodepoint {
		c = replacementChar
	}

	return appendCodepoint(dst, c)
}

// appendCodepoint appends the minimal-length encoding of c to dst.
// The caller guarantees 0 <= c <= MaxCodepoint. Surrogate-range values
// are written in their ordinary three-byte form so lone surrogates
// survive the round trip.
func appendCodepoint(dst []byte, c rune) []byte {
	switch {
	case c <= rune1Max:
		return append(dst, byte(c))
	case c <= rune2Max:
		return append(dst, t2|byte(c>>6), tx|byte(c)&maskx)
	case c <= rune3Max:
		return append(dst, t3|byte(c>>12), tx|byte(c>>6)&maskx, tx|byte(c)&maskx)
	default:
		return append(dst, t4|byte(c>>18), tx|byte(c>>12)&maskx, tx|byte(c>>6)&maskx, tx|byte(c)&maskx)
	}
}

// decodeAt decodes one code point starting at src[pos], which the caller
// guarantees is in range. It returns the code point and the number of
// bytes consumed. Error offsets are relative to src.
//
// The grammar is applied permissively: surrogate-range and non-minimal
// encodings decode to the value they carry. Only structural damage fails.
func decodeAt[T []byte | string](src T, pos int) (rune, int, error) {
	lead := src[pos]
	if lead < tx {
		return rune(lead), 1, nil
	}

	var (
		c    rune
		size int
	)

	switch {
	case lead&0xE0 == t2:
		c, size = rune(lead&mask2), 2
	case lead&0xF0 == t3:
		c, size = rune(lead&mask3), 3
	case lead&0xF8 == t4:
		c, size = rune(lead&mask4), 4
	case isContinuation(lead):
		return 0, 0, fmt.Errorf("%w: continuation byte 0x%02x in lead position at offset %d", errs.ErrMalformedUTF8, lead, pos)
	default:
		return 0, 0, fmt.Errorf("%w: invalid lead byte 0x%02x at offset %d", errs.ErrMalformedUTF8, lead, pos)
	}

	if pos+size > len(src) {
		return 0, 0, fmt.Errorf("%w: truncated %d-byte sequence at offset %d", errs.ErrMalformedUTF8, size, pos)
	}

	for i := pos + 1; i < pos+size; i++ {
		if !isContinuation(src[i]) {
			return 0, 0, fmt.Errorf("%w: invalid continuation byte 0x%02x at offset %d", errs.ErrMalformedUTF8, src[i], i)
		}

		c = c<<6 | rune(src[i]&maskx)
	}

	return c, size, nil
}
