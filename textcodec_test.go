package textcodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/textcodec/errs"
	"github.com/arloliu/textcodec/format"
)

// TestCropUTF8 verifies cropping never splits a multi-byte sequence
func TestCropUTF8(t *testing.T) {
	title := []byte("пример") // six two-byte codepoints

	n := CropUTF8(title, 7)
	require.Equal(t, 6, n)

	n = CropUTF8(title, 6)
	require.Equal(t, 6, n)

	n = CropUTF8(title, 100)
	require.Equal(t, len(title), n)

	n = CropUTF8([]byte("ascii"), 3)
	require.Equal(t, 3, n)

	n = CropUTF8(title, -1)
	require.Equal(t, 0, n)
}

// TestCropUTF8String verifies the string variant matches the byte variant
func TestCropUTF8String(t *testing.T) {
	s := "пример"

	require.Equal(t, 6, CropUTF8String(s, 7))
	require.Equal(t, CropUTF8([]byte(s), 9), CropUTF8String(s, 9))
}

// TestCodepointsRoundTrip verifies byte/codepoint conversion is lossless
func TestCodepointsRoundTrip(t *testing.T) {
	src := []byte("héllo, мир 😀")

	cps, err := ToCodepoints(src)
	require.NoError(t, err)
	require.Equal(t, []rune("héllo, мир 😀"), cps)

	back, err := FromCodepoints(cps)
	require.NoError(t, err)
	require.Equal(t, src, back)

	_, err = ToCodepoints([]byte{0xFF})
	require.ErrorIs(t, err, errs.ErrMalformedUTF8)

	_, err = FromCodepoints([]rune{0x110000})
	require.ErrorIs(t, err, errs.ErrCodepointOutOfRange)
}

// TestWide16RoundTrip verifies UTF-16 conversion including surrogate pairs
func TestWide16RoundTrip(t *testing.T) {
	units, err := ToWide16([]byte("a😀"))
	require.NoError(t, err)
	require.Equal(t, []uint16{'a', 0xD83D, 0xDE00}, units)

	back := FromWide16(units)
	require.Equal(t, []byte("a😀"), back)

	// Unpaired surrogates survive a full round trip.
	lone := []uint16{0xD800, 'x'}
	encoded := FromWide16(lone)
	decoded, err := ToWide16(encoded)
	require.NoError(t, err)
	require.Equal(t, lone, decoded)
}

// TestWide32RoundTrip verifies 32-bit unit conversion and range checking
func TestWide32RoundTrip(t *testing.T) {
	units, err := ToWide32([]byte("a😀"))
	require.NoError(t, err)
	require.Equal(t, []uint32{'a', 0x1F600}, units)

	back, err := FromWide32(units)
	require.NoError(t, err)
	require.Equal(t, []byte("a😀"), back)

	_, err = FromWide32([]uint32{0x110000})
	require.ErrorIs(t, err, errs.ErrCodepointOutOfRange)
}

// TestBase64EncodeDecode verifies both alphabets and cross-alphabet rejection
func TestBase64EncodeDecode(t *testing.T) {
	src := []byte{0xFB, 0xFF, 0xBF}

	std := Base64Encode(src, false)
	require.Equal(t, "+/+/", std)

	url := Base64Encode(src, true)
	require.Equal(t, "-_-_", url)

	decoded, err := Base64Decode(std, false)
	require.NoError(t, err)
	require.Equal(t, src, decoded)

	decoded, err = Base64Decode(url, true)
	require.NoError(t, err)
	require.Equal(t, src, decoded)

	_, err = Base64Decode(std, true)
	require.ErrorIs(t, err, errs.ErrInvalidBase64)
}

// TestEscapeParseQuoted verifies escaping and parsing invert each other
func TestEscapeParseQuoted(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii",
		"tabs\tand\nnewlines",
		`quotes "inside"`,
		"тест5",
		"mixed: пример 😀 end",
	}

	for _, input := range inputs {
		quoted := Escape(input, true)

		// The escaped form is pure ASCII regardless of input.
		for i := 0; i < len(quoted); i++ {
			require.Less(t, quoted[i], byte(0x80))
		}

		value, next, err := ParseQuoted(quoted, 0)
		require.NoError(t, err)
		require.Equal(t, input, value)
		require.Equal(t, len(quoted), next)
	}
}

// TestParseQuotedPosition verifies parsing from a mid-string offset
func TestParseQuotedPosition(t *testing.T) {
	src := `name="demo" id=7`

	value, next, err := ParseQuoted(src, 5)
	require.NoError(t, err)
	require.Equal(t, "demo", value)
	require.Equal(t, " id=7", src[next:])

	_, _, err = ParseQuoted(src, 0)
	require.ErrorIs(t, err, errs.ErrUnterminatedLiteral)
}

// TestArmorDearmor verifies the armor round trip across all codecs
func TestArmorDearmor(t *testing.T) {
	payload := []byte("пример текста для упаковки в текстовый канал")

	codecs := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionGzip,
	}

	for _, compression := range codecs {
		t.Run(compression.String(), func(t *testing.T) {
			armored, err := Armor(payload, compression)
			require.NoError(t, err)
			require.NotEmpty(t, armored)

			restored, err := Dearmor(armored)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

// TestArmorEmptyPayload verifies empty payloads produce a valid minimal frame
func TestArmorEmptyPayload(t *testing.T) {
	armored, err := Armor(nil, format.CompressionNone)
	require.NoError(t, err)
	require.NotEmpty(t, armored)

	restored, err := Dearmor(armored)
	require.NoError(t, err)
	require.Empty(t, restored)
}

// TestArmorInvalidCompression verifies unknown codecs are rejected up front
func TestArmorInvalidCompression(t *testing.T) {
	_, err := Armor([]byte("data"), format.CompressionType(0x7E))
	require.Error(t, err)
}

// TestDearmorCorruption verifies corrupted frames are detected
func TestDearmorCorruption(t *testing.T) {
	armored, err := Armor([]byte("checksummed payload"), format.CompressionNone)
	require.NoError(t, err)

	// Flip a character inside the checksum region of the frame.
	corrupted := []byte(armored)
	if corrupted[4] == 'A' {
		corrupted[4] = 'B'
	} else {
		corrupted[4] = 'A'
	}

	_, err = Dearmor(string(corrupted))
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)

	_, err = Dearmor("%%% not base64 %%%")
	require.ErrorIs(t, err, errs.ErrInvalidBase64)

	_, err = Dearmor("c2hvcnQ")
	require.ErrorIs(t, err, errs.ErrInvalidArmor)
}
