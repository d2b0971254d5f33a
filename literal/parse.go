package literal

import (
	"fmt"

	"github.com/arloliu/textcodec/errs"
	"github.com/arloliu/textcodec/wtf8"
)

// ParseQuoted consumes the quoted literal starting at src[pos] and
// returns its decoded value together with the position just past the
// closing quote.
//
// src[pos] must be the opening quote, either " or '. Escapes decode to
// their original content: short escapes map back to control characters,
// \uXXXX decodes one 16-bit unit, and two consecutive \u escapes forming
// a high and low surrogate pair combine into one supplementary code
// point, mirroring wtf8.EncodeWide16. An escaped quote does not
// terminate the literal. Hex digits are read in either case.
//
// Parameters:
//   - src: source text containing the literal
//   - pos: index of the opening quote
//
// Returns:
//   - string: the decoded literal value
//   - int: index just past the closing quote
//   - error: errs.ErrUnterminatedLiteral if the closing quote never
//     appears or the input ends inside an escape,
//     errs.ErrInvalidEscape on an unknown escape or malformed hex
func ParseQuoted(src string, pos int) (string, int, error) {
	if pos < 0 || pos >= len(src) || (src[pos] != '"' && src[pos] != '\'') {
		return "", 0, fmt.Errorf("%w: no opening quote at offset %d", errs.ErrUnterminatedLiteral, pos)
	}

	quote := src[pos]
	out := make([]byte, 0, 16)

	i := pos + 1
	for i < len(src) {
		ch := src[i]
		switch ch {
		case quote:
			return string(out), i + 1, nil
		case '\\':
			var err error
			out, i, err = appendEscape(out, src, i+1)
			if err != nil {
				return "", 0, err
			}
		default:
			out = append(out, ch)
			i++
		}
	}

	return "", 0, fmt.Errorf("%w: closing quote %q never found", errs.ErrUnterminatedLiteral, quote)
}

// Unquote parses src as one complete quoted literal with nothing around
// it. It is shorthand for ParseQuoted at position 0 plus a check that
// the literal spans the whole input.
func Unquote(src string) (string, error) {
	value, next, err := ParseQuoted(src, 0)
	if err != nil {
		return "", err
	}
	if next != len(src) {
		return "", fmt.Errorf("%w: trailing data after closing quote at offset %d", errs.ErrUnexpectedToken, next)
	}

	return value, nil
}

// appendEscape decodes the escape whose character sits at src[pos] (the
// backslash already consumed) and returns the advanced position.
func appendEscape(out []byte, src string, pos int) ([]byte, int, error) {
	if pos >= len(src) {
		return nil, 0, fmt.Errorf("%w: input ends inside an escape", errs.ErrUnterminatedLiteral)
	}

	switch src[pos] {
	case 'n':
		return append(out, '\n'), pos + 1, nil
	case 'r':
		return append(out, '\r'), pos + 1, nil
	case 't':
		return append(out, '\t'), pos + 1, nil
	case 'b':
		return append(out, '\b'), pos + 1, nil
	case 'f':
		return append(out, '\f'), pos + 1, nil
	case '\\':
		return append(out, '\\'), pos + 1, nil
	case '"':
		return append(out, '"'), pos + 1, nil
	case '\'':
		return append(out, '\''), pos + 1, nil
	case 'u':
		u, err := parseHex4(src, pos+1)
		if err != nil {
			return nil, 0, err
		}

		next := pos + 5
		c := rune(u)

		// A high surrogate peeks at the following escape; a valid low
		// surrogate there combines into one supplementary code point.
		if wtf8.IsHighSurrogate(u) && next+1 < len(src) && src[next] == '\\' && src[next+1] == 'u' {
			if lo, loErr := parseHex4(src, next+2); loErr == nil && wtf8.IsLowSurrogate(lo) {
				c = wtf8.CombinePair(u, lo)
				next += 6
			}
		}

		return wtf8.AppendCodepoint(out, c), next, nil
	default:
		return nil, 0, fmt.Errorf("%w: unknown escape \\%c at offset %d", errs.ErrInvalidEscape, src[pos], pos-1)
	}
}

// parseHex4 reads exactly four hex digits at src[pos].
func parseHex4(src string, pos int) (uint16, error) {
	if pos+4 > len(src) {
		return 0, fmt.Errorf("%w: input ends inside a \\u escape", errs.ErrUnterminatedLiteral)
	}

	var v uint16
	for i := pos; i < pos+4; i++ {
		d, ok := hexDigit(src[i])
		if !ok {
			return 0, fmt.Errorf("%w: invalid hex digit %q at offset %d", errs.ErrInvalidEscape, src[i], i)
		}

		v = v<<4 | uint16(d)
	}

	return v, nil
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
