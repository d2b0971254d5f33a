// Package errs defines the sentinel errors returned by textcodec operations.
//
// Callers match them with errors.Is; codec packages wrap them with
// fmt.Errorf("%w: ...") to add positional context.
package errs

import "errors"

// UTF-8 and code point errors.
var (
	// ErrMalformedUTF8 indicates a byte sequence that cannot be decoded:
	// a truncated multi-byte sequence, a continuation byte outside the
	// 0x80..0xBF range, a continuation byte in lead position, or an
	// invalid lead byte (0xF8 and above).
	ErrMalformedUTF8 = errors.New("malformed UTF-8 sequence")

	// ErrCodepointOutOfRange indicates a code point or wide unit that
	// cannot be encoded because it exceeds 0x10FFFF or is negative.
	ErrCodepointOutOfRange = errors.New("code point out of range")
)

// Base64 errors.
var (
	// ErrInvalidBase64 indicates base64 input containing a character
	// outside the active alphabet, misplaced padding, or a length that
	// is inconsistent with the padding rule.
	ErrInvalidBase64 = errors.New("invalid base64 input")
)

// Quoted literal errors.
var (
	// ErrUnterminatedLiteral indicates a quoted literal whose closing
	// quote never appears, including input that ends in the middle of
	// an escape sequence.
	ErrUnterminatedLiteral = errors.New("unterminated string literal")

	// ErrInvalidEscape indicates an unknown escape character or a \u
	// escape with fewer than four hex digits.
	ErrInvalidEscape = errors.New("invalid escape sequence")
)

// Scanning errors.
var (
	// ErrUnexpectedToken indicates source text whose next character does
	// not match what the caller asked the scanner for.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrInvalidNumber indicates a numeric literal that cannot be parsed.
	ErrInvalidNumber = errors.New("invalid number literal")
)

// Armor errors.
var (
	// ErrInvalidArmor indicates armored text that is too short to hold
	// a header or names an unknown compression codec.
	ErrInvalidArmor = errors.New("invalid armor payload")

	// ErrChecksumMismatch indicates an armored payload whose checksum
	// does not match its content after decompression.
	ErrChecksumMismatch = errors.New("armor checksum mismatch")
)
