package wtf8

import (
	"math/rand"
	"testing"
	"unicode/utf16"

	"github.com/arloliu/textcodec/errs"
	"github.com/stretchr/testify/require"
)

func TestWide16_RoundTripRandom(t *testing.T) {
	// Arbitrary unit sequences round trip, valid UTF-16 or not.
	for _, seed := range []int64{5436324, 2019, 345873458} {
		rng := rand.New(rand.NewSource(seed)) //nolint:gosec

		units := make([]uint16, 10000)
		for i := range units {
			units[i] = uint16(rng.Intn(0x10000)) //nolint:gosec
		}

		b := EncodeWide16(units)
		back, err := DecodeWide16(b)
		require.NoError(t, err)
		require.Equal(t, units, back)
	}
}

func TestWide16_AgainstUTF16Package(t *testing.T) {
	// For well-formed text the codec agrees with the standard UTF-16
	// transformation of the same string.
	texts := []string{"plain", "пример", "テキストデモ", "smile 😀"}

	for _, text := range texts {
		units := utf16.Encode([]rune(text))

		b := EncodeWide16(units)
		require.Equal(t, text, string(b))

		back, err := DecodeWide16([]byte(text))
		require.NoError(t, err)
		require.Equal(t, units, back)
	}
}

func TestWide16_SurrogatePairCombines(t *testing.T) {
	// U+1F600 as a high and low pair becomes one four-byte sequence.
	units := []uint16{0xD83D, 0xDE00}

	b := EncodeWide16(units)
	require.Equal(t, []byte{0xF0, 0x9F, 0x98, 0x80}, b)
	require.Equal(t, "😀", string(b))

	back, err := DecodeWide16(b)
	require.NoError(t, err)
	require.Equal(t, units, back)
}

func TestWide16_LoneSurrogates(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		bytes []byte
	}{
		{"lone high", []uint16{0xD800}, []byte{0xED, 0xA0, 0x80}},
		{"lone low", []uint16{0xDC00}, []byte{0xED, 0xB0, 0x80}},
		{"low then high", []uint16{0xDC00, 0xD800}, []byte{0xED, 0xB0, 0x80, 0xED, 0xA0, 0x80}},
		{"high at end", []uint16{0x41, 0xD800}, []byte{0x41, 0xED, 0xA0, 0x80}},
		{"high then non-low", []uint16{0xD800, 0x41}, []byte{0xED, 0xA0, 0x80, 0x41}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := EncodeWide16(tt.units)
			require.Equal(t, tt.bytes, b)

			back, err := DecodeWide16(b)
			require.NoError(t, err)
			require.Equal(t, tt.units, back)
		})
	}
}

func TestWide16_Empty(t *testing.T) {
	require.Empty(t, EncodeWide16(nil))

	units, err := DecodeWide16(nil)
	require.NoError(t, err)
	require.Empty(t, units)
}

func TestDecodeWide16_Malformed(t *testing.T) {
	_, err := DecodeWide16([]byte{0xE3, 0x83})
	require.ErrorIs(t, err, errs.ErrMalformedUTF8)
}

func TestDecodeWide16_BeyondPairRange(t *testing.T) {
	// F7 BF BF BF carries 0x1FFFFF, which has no surrogate pair.
	_, err := DecodeWide16([]byte{0xF7, 0xBF, 0xBF, 0xBF})
	require.ErrorIs(t, err, errs.ErrCodepointOutOfRange)
}

func TestWide32_RoundTrip(t *testing.T) {
	units := []uint32{0, 0x41, 0x7F, 0x80, 0x7FF, 0x800, 0xD800, 0xFFFF, 0x10000, 0x1F600, MaxCodepoint}

	b, err := EncodeWide32(units)
	require.NoError(t, err)

	back, err := DecodeWide32(b)
	require.NoError(t, err)
	require.Equal(t, units, back)
}

func TestWide32_TextRoundTrip(t *testing.T) {
	text := "テキストデモ"

	units := make([]uint32, 0, len(text))
	for _, r := range text {
		units = append(units, uint32(r))
	}

	b, err := EncodeWide32(units)
	require.NoError(t, err)
	require.Equal(t, text, string(b))

	back, err := DecodeWide32([]byte(text))
	require.NoError(t, err)
	require.Equal(t, units, back)
}

func TestWide32_NoPairCombination(t *testing.T) {
	// At width 32 a surrogate pair stays two separate units.
	units := []uint32{0xD83D, 0xDE00}

	b, err := EncodeWide32(units)
	require.NoError(t, err)
	require.Equal(t, []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}, b)

	back, err := DecodeWide32(b)
	require.NoError(t, err)
	require.Equal(t, units, back)
}

func TestEncodeWide32_OutOfRange(t *testing.T) {
	_, err := EncodeWide32([]uint32{0x110000})
	require.ErrorIs(t, err, errs.ErrCodepointOutOfRange)
}

func TestDecodeWide32_PermissiveBeyondMax(t *testing.T) {
	// Width 32 reports the carried value even above MaxCodepoint.
	units, err := DecodeWide32([]byte{0xF7, 0xBF, 0xBF, 0xBF})
	require.NoError(t, err)
	require.Equal(t, []uint32{0x1FFFFF}, units)
}

func BenchmarkEncodeWide16(b *testing.B) {
	rng := rand.New(rand.NewSource(42)) //nolint:gosec
	units := make([]uint16, 4096)
	for i := range units {
		units[i] = uint16(rng.Intn(0x10000)) //nolint:gosec
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncodeWide16(units)
	}
}

func BenchmarkDecodeWide16(b *testing.B) {
	rng := rand.New(rand.NewSource(42)) //nolint:gosec
	units := make([]uint16, 4096)
	for i := range units {
		units[i] = uint16(rng.Intn(0x10000)) //nolint:gosec
	}
	encoded := EncodeWide16(units)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeWide16(encoded); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCrop(b *testing.B) {
	data := []byte("пример текста для обрезки по границе последовательности")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Crop(data, 33)
	}
}
