package literal

import (
	"github.com/arloliu/textcodec/wtf8"
)

const hexDigits = "0123456789abcdef"

// Escape converts s into an ASCII-only literal.
//
// The input is decoded with the permissive grammar of package wtf8, so
// lone surrogates escape cleanly. A byte that does not decode at all is
// escaped as its raw value; escaping never fails.
//
// Parameters:
//   - s: string to escape, not required to be well-formed UTF-8
//   - quoted: wrap the result in double quotes
//
// Returns:
//   - string: the escaped literal
func Escape(s string, quoted bool) string {
	out := make([]byte, 0, len(s)*2+2)
	if quoted {
		out = append(out, '"')
	}

	for pos := 0; pos < len(s); {
		c, size, err := wtf8.DecodeCodepointInString(s[pos:])
		if err != nil {
			out = appendUnicodeEscape(out, uint16(s[pos]))
			pos++

			continue
		}
		pos += size

		switch c {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		case '\b':
			out = append(out, '\\', 'b')
		case '\f':
			out = append(out, '\\', 'f')
		default:
			switch {
			case c >= 0x20 && c <= 0x7E:
				out = append(out, byte(c))
			case c <= 0xFFFF:
				out = appendUnicodeEscape(out, uint16(c)) //nolint:gosec
			default:
				hi, lo := wtf8.SplitPair(c)
				out = appendUnicodeEscape(out, hi)
				out = appendUnicodeEscape(out, lo)
			}
		}
	}

	if quoted {
		out = append(out, '"')
	}

	return string(out)
}

func appendUnicodeEscape(dst []byte, v uint16) []byte {
	return append(dst, '\\', 'u',
		hexDigits[v>>12&0xF],
		hexDigits[v>>8&0xF],
		hexDigits[v>>4&0xF],
		hexDigits[v&0xF],
	)
}
