package lexer

import (
	"testing"

	"github.com/arloliu/textcodec/errs"
	"github.com/stretchr/testify/require"
)

func TestScanner_ConfigWalk(t *testing.T) {
	src := "title = \"пример\"\nwidth = 1280\nscale = 1.5\n# trailing comment\nflag"
	sc := New("app.cfg", src)

	name, err := sc.Name()
	require.NoError(t, err)
	require.Equal(t, "title", name)

	sc.SkipSpaces()
	require.NoError(t, sc.Expect('='))
	sc.SkipSpaces()

	value, err := sc.QuotedString()
	require.NoError(t, err)
	require.Equal(t, "пример", value)

	sc.SkipWhitespace()
	require.Equal(t, 2, sc.Line())

	name, err = sc.Name()
	require.NoError(t, err)
	require.Equal(t, "width", name)

	sc.SkipSpaces()
	require.NoError(t, sc.Expect('='))
	sc.SkipSpaces()

	num, err := sc.Number()
	require.NoError(t, err)
	require.False(t, num.IsFloat)
	require.Equal(t, int64(1280), num.Int)

	sc.SkipWhitespace()
	require.Equal(t, 3, sc.Line())

	name, err = sc.Name()
	require.NoError(t, err)
	require.Equal(t, "scale", name)

	sc.SkipSpaces()
	require.NoError(t, sc.Expect('='))
	sc.SkipSpaces()

	num, err = sc.Number()
	require.NoError(t, err)
	require.True(t, num.IsFloat)
	require.InDelta(t, 1.5, num.Float64(), 0)

	sc.SkipWhitespace()
	require.Equal(t, byte('#'), sc.Peek())
	sc.SkipLine()
	require.Equal(t, 5, sc.Line())

	name, err = sc.Name()
	require.NoError(t, err)
	require.Equal(t, "flag", name)
	require.False(t, sc.HasNext())
}

func TestScanner_DottedAndNamespacedNames(t *testing.T) {
	sc := New("", "audio.volume base:blocks/stone _tmp9")

	name, err := sc.Name()
	require.NoError(t, err)
	require.Equal(t, "audio.volume", name)

	sc.SkipSpaces()

	name, err = sc.Name()
	require.NoError(t, err)
	require.Equal(t, "base:blocks", name)
	require.Equal(t, byte('/'), sc.Peek())
	sc.Skip(1)

	name, err = sc.Name()
	require.NoError(t, err)
	require.Equal(t, "stone", name)

	sc.SkipSpaces()

	name, err = sc.Name()
	require.NoError(t, err)
	require.Equal(t, "_tmp9", name)
}

func TestScanner_NumberForms(t *testing.T) {
	tests := []struct {
		src     string
		isFloat bool
		i       int64
		f       float64
	}{
		{"42", false, 42, 0},
		{"-7", false, -7, 0},
		{"+13", false, 13, 0},
		{"3.5", true, 0, 3.5},
		{"-0.25", true, 0, -0.25},
		{"1e3", true, 0, 1000},
		{"2E-2", true, 0, 0.02},
		{"12.", true, 0, 12},
		{"0x1F", false, 31, 0},
		{"0X10", false, 16, 0},
		{"-0x10", false, -16, 0},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			num, err := New("", tt.src).Number()
			require.NoError(t, err)
			require.Equal(t, tt.isFloat, num.IsFloat)
			if tt.isFloat {
				require.InDelta(t, tt.f, num.Float, 1e-12)
			} else {
				require.Equal(t, tt.i, num.Int)
			}
		})
	}
}

func TestScanner_NumberStopsBeforeTrailingContent(t *testing.T) {
	sc := New("", "12em")

	num, err := sc.Number()
	require.NoError(t, err)
	require.Equal(t, int64(12), num.Int)

	name, err := sc.Name()
	require.NoError(t, err)
	require.Equal(t, "em", name)

	// A bare exponent letter belongs to the next token.
	sc = New("", "3.5e")

	num, err = sc.Number()
	require.NoError(t, err)
	require.InDelta(t, 3.5, num.Float, 0)

	name, err = sc.Name()
	require.NoError(t, err)
	require.Equal(t, "e", name)
}

func TestScanner_NumberErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not a number", "abc"},
		{"incomplete hex", "0x"},
		{"lone sign", "-"},
		{"decimal overflow", "99999999999999999999"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("", tt.src).Number()
			require.ErrorIs(t, err, errs.ErrInvalidNumber)
		})
	}
}

func TestScanner_ExpectMismatch(t *testing.T) {
	sc := New("test.src", "a=b")

	err := sc.Expect('x')
	require.ErrorIs(t, err, errs.ErrUnexpectedToken)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "test.src", perr.Source)
	require.Equal(t, 1, perr.Line)
	require.Equal(t, 1, perr.Column)

	// The cursor does not move on failure.
	require.Equal(t, 0, sc.Pos())
	require.NoError(t, sc.Expect('a'))
}

func TestScanner_QuotedStringErrorPosition(t *testing.T) {
	sc := New("bad.cfg", "key = \"oops\nmore")

	_, err := sc.Name()
	require.NoError(t, err)
	sc.SkipSpaces()
	require.NoError(t, sc.Expect('='))
	sc.SkipSpaces()

	_, err = sc.QuotedString()
	require.ErrorIs(t, err, errs.ErrUnterminatedLiteral)
	require.Contains(t, err.Error(), "bad.cfg:1:7: ")
}

func TestScanner_MultilineQuotedString(t *testing.T) {
	sc := New("", "\"line1\nline2\" tail")

	value, err := sc.QuotedString()
	require.NoError(t, err)
	require.Equal(t, "line1\nline2", value)
	require.Equal(t, 2, sc.Line())
	require.Equal(t, 7, sc.Column())
}

func TestScanner_PeekNextSkip(t *testing.T) {
	sc := New("", "ab\ncd")

	require.Equal(t, byte('a'), sc.Peek())
	require.Equal(t, byte('a'), sc.Next())
	require.Equal(t, byte('b'), sc.Next())
	require.Equal(t, 1, sc.Line())

	require.Equal(t, byte('\n'), sc.Next())
	require.Equal(t, 2, sc.Line())
	require.Equal(t, 1, sc.Column())

	sc.Skip(5)
	require.False(t, sc.HasNext())
	require.Equal(t, byte(0), sc.Peek())
	require.Equal(t, byte(0), sc.Next())
}

func TestScanner_SkipSpacesStopsAtNewline(t *testing.T) {
	sc := New("", " \t\r\nnext")

	sc.SkipSpaces()
	require.Equal(t, byte('\n'), sc.Peek())

	sc.SkipWhitespace()
	require.Equal(t, byte('n'), sc.Peek())
	require.Equal(t, 2, sc.Line())
}

func TestScanner_EmptySource(t *testing.T) {
	sc := New("empty", "")

	require.False(t, sc.HasNext())
	require.Equal(t, byte(0), sc.Peek())

	_, err := sc.Name()
	require.ErrorIs(t, err, errs.ErrUnexpectedToken)

	_, err = sc.QuotedString()
	require.ErrorIs(t, err, errs.ErrUnterminatedLiteral)
}
