// Package literal converts between raw strings and quoted, ASCII-only
// string literals.
//
// Escape produces the literal form: printable ASCII passes through,
// common control characters become short escapes, and everything else
// becomes \u escapes of its 16-bit units. ParseQuoted is the inverse; it
// is written as a cursor-style primitive so any token parser can call it
// when its input is positioned at an opening quote.
//
// # Round Trip
//
// For any string s that decodes under the permissive grammar of package
// wtf8,
//
//	value, _, err := ParseQuoted(Escape(s, true), 0)
//
// yields value == s with err == nil. This holds for strings carrying
// lone surrogates: Escape writes them as single \u escapes and
// ParseQuoted re-encodes them in their three-byte form. The one
// exception is a string where a three-byte high surrogate is directly
// followed by a three-byte low surrogate; such a pair re-encodes as the
// combined four-byte code point, mirroring the combination rule of
// wtf8.EncodeWide16. Bytes that do not decode at all are escaped as
// their raw value and reparse as code points instead.
//
// # Escape Format
//
//   - backslash and double quote: \\ and \"
//   - newline, carriage return, tab, backspace, form feed: \n \r \t \b \f
//   - other ASCII printable characters (0x20..0x7E): unchanged
//   - any other code point up to 0xFFFF: \u and four lowercase hex digits
//   - code points above 0xFFFF: two \u escapes forming a surrogate pair
//
// Digits and ASCII letters are never escaped. ParseQuoted additionally
// accepts \' and single-quoted literals, and reads hex in either case.
package literal
