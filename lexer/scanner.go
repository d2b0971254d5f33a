// Package lexer provides a byte-oriented scanner for line-based source
// text: configuration files, data snippets, script fragments.
//
// Scanner is a plain value over a string; it owns no resources and
// carries no parsing grammar of its own. Token parsers compose it:
// identifiers, numbers, and quoted literals (via package literal) are
// scanned on demand, and every failure is reported as an *Error carrying
// the source name, line, and column of the fault.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/arloliu/textcodec/errs"
	"github.com/arloliu/textcodec/literal"
)

// Scanner walks source text byte by byte, tracking line positions for
// error reporting. The zero value is unusable; create one with New.
type Scanner struct {
	name      string
	src       string
	pos       int
	line      int
	lineStart int
}

// Number is a scanned numeric literal, either integer or floating point.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

// Float64 returns the value as float64 regardless of kind.
func (n Number) Float64() float64 {
	if n.IsFloat {
		return n.Float
	}

	return float64(n.Int)
}

// Error describes a scan failure and its position in the source.
type Error struct {
	Source string // source name passed to New
	Line   int    // 1-based line number
	Column int    // 1-based byte column
	Err    error  // underlying cause
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %v", e.Source, e.Line, e.Column, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a Scanner over src. The name labels error positions,
// typically a file name.
func New(name, src string) *Scanner {
	return &Scanner{name: name, src: src, line: 1}
}

// SourceName returns the name passed to New.
func (s *Scanner) SourceName() string { return s.name }

// Pos returns the current byte offset into the source.
func (s *Scanner) Pos() int { return s.pos }

// Line returns the 1-based line number at the cursor.
func (s *Scanner) Line() int { return s.line }

// Column returns the 1-based byte column at the cursor.
func (s *Scanner) Column() int { return s.pos - s.lineStart + 1 }

// HasNext reports whether unread input remains.
func (s *Scanner) HasNext() bool { return s.pos < len(s.src) }

// Peek returns the byte at the cursor without consuming it, or 0 at the
// end of input.
func (s *Scanner) Peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}

	return s.src[s.pos]
}

// Next consumes and returns the byte at the cursor, or 0 at the end of
// input.
func (s *Scanner) Next() byte {
	if s.pos >= len(s.src) {
		return 0
	}

	ch := s.src[s.pos]
	s.advance(s.pos + 1)

	return ch
}

// Skip consumes up to n bytes.
func (s *Scanner) Skip(n int) {
	if n > 0 {
		s.advance(s.pos + n)
	}
}

// SkipWhitespace advances past spaces, tabs, carriage returns, and
// newlines.
func (s *Scanner) SkipWhitespace() {
	i := s.pos
	for i < len(s.src) && isSpace(s.src[i]) {
		i++
	}
	s.advance(i)
}

// SkipSpaces advances past spaces, tabs, and carriage returns, stopping
// at a newline. Line-oriented parsers use it to detect line ends.
func (s *Scanner) SkipSpaces() {
	i := s.pos
	for i < len(s.src) && (s.src[i] == ' ' || s.src[i] == '\t' || s.src[i] == '\r') {
		i++
	}
	s.advance(i)
}

// SkipLine advances past the next newline, or to the end of input.
// Callers use it to discard comments.
func (s *Scanner) SkipLine() {
	i := s.pos
	for i < len(s.src) && s.src[i] != '\n' {
		i++
	}
	if i < len(s.src) {
		i++
	}
	s.advance(i)
}

// Expect consumes the next byte if it equals ch.
//
// Returns:
//   - error: errs.ErrUnexpectedToken (as *Error) when the cursor holds a
//     different byte or input is exhausted
func (s *Scanner) Expect(ch byte) error {
	if s.pos >= len(s.src) {
		return s.wrapErr(fmt.Errorf("%w: expected %q, found end of input", errs.ErrUnexpectedToken, ch))
	}
	if s.src[s.pos] != ch {
		return s.wrapErr(fmt.Errorf("%w: expected %q, found %q", errs.ErrUnexpectedToken, ch, s.src[s.pos]))
	}

	s.advance(s.pos + 1)

	return nil
}

// Name scans an identifier: a letter or underscore followed by letters,
// digits, underscores, or any of '.', ':', '-'. The extended tail set
// admits dotted config keys and namespaced resource ids as single names.
func (s *Scanner) Name() (string, error) {
	if s.pos >= len(s.src) || !isNameStart(s.src[s.pos]) {
		return "", s.wrapErr(fmt.Errorf("%w: expected identifier", errs.ErrUnexpectedToken))
	}

	start := s.pos
	i := s.pos + 1
	for i < len(s.src) && isNamePart(s.src[i]) {
		i++
	}
	s.advance(i)

	return s.src[start:i], nil
}

// Number scans a numeric literal: an optional sign, then a decimal
// integer, a float with fraction and/or exponent, or a 0x hex integer.
// Hex literals carry raw 64-bit patterns, so a negated value wraps
// rather than overflows.
func (s *Scanner) Number() (Number, error) {
	start := s.pos
	i := s.pos

	negative := false
	if i < len(s.src) && (s.src[i] == '+' || s.src[i] == '-') {
		negative = s.src[i] == '-'
		i++
	}

	if i+1 < len(s.src) && s.src[i] == '0' && (s.src[i+1] == 'x' || s.src[i+1] == 'X') {
		j := i + 2
		for j < len(s.src) && isHexDigit(s.src[j]) {
			j++
		}
		if j == i+2 {
			return Number{}, s.wrapErr(fmt.Errorf("%w: incomplete hex literal", errs.ErrInvalidNumber))
		}

		v, err := strconv.ParseUint(s.src[i+2:j], 16, 64)
		if err != nil {
			return Number{}, s.wrapErr(fmt.Errorf("%w: %s", errs.ErrInvalidNumber, s.src[start:j]))
		}

		s.advance(j)
		value := int64(v) //nolint:gosec
		if negative {
			value = -value
		}

		return Number{Int: value}, nil
	}

	j := i
	for j < len(s.src) && isDigit(s.src[j]) {
		j++
	}
	if j == i {
		return Number{}, s.wrapErr(fmt.Errorf("%w: expected number", errs.ErrInvalidNumber))
	}

	isFloat := false
	if j < len(s.src) && s.src[j] == '.' {
		isFloat = true
		j++
		for j < len(s.src) && isDigit(s.src[j]) {
			j++
		}
	}
	// An exponent needs at least one digit; a bare 'e' belongs to the
	// next token.
	if j < len(s.src) && (s.src[j] == 'e' || s.src[j] == 'E') {
		k := j + 1
		if k < len(s.src) && (s.src[k] == '+' || s.src[k] == '-') {
			k++
		}
		digits := k
		for k < len(s.src) && isDigit(s.src[k]) {
			k++
		}
		if k > digits {
			isFloat = true
			j = k
		}
	}

	text := s.src[start:j]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Number{}, s.wrapErr(fmt.Errorf("%w: %s", errs.ErrInvalidNumber, text))
		}

		s.advance(j)

		return Number{IsFloat: true, Float: f}, nil
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Number{}, s.wrapErr(fmt.Errorf("%w: %s", errs.ErrInvalidNumber, text))
	}

	s.advance(j)

	return Number{Int: v}, nil
}

// QuotedString consumes a quoted literal at the cursor via
// literal.ParseQuoted and advances past its closing quote. Line
// accounting stays correct when the literal spans raw newlines.
//
// Returns:
//   - string: the decoded literal value
//   - error: the literal package's sentinel wrapped as *Error
func (s *Scanner) QuotedString() (string, error) {
	value, next, err := literal.ParseQuoted(s.src, s.pos)
	if err != nil {
		return "", s.wrapErr(err)
	}

	s.advance(next)

	return value, nil
}

// advance moves the cursor to target, keeping line accounting intact.
func (s *Scanner) advance(target int) {
	if target > len(s.src) {
		target = len(s.src)
	}
	for i := s.pos; i < target; i++ {
		if s.src[i] == '\n' {
			s.line++
			s.lineStart = i + 1
		}
	}
	s.pos = target
}

func (s *Scanner) wrapErr(err error) error {
	return &Error{Source: s.name, Line: s.line, Column: s.Column(), Err: err}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameStart(b byte) bool {
	return isLetter(b) || b == '_'
}

func isNamePart(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_' || b == '.' || b == ':' || b == '-'
}
