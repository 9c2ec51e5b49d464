package convref

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoding
		raw  byte
		want float64
	}{
		{"raw zero", Raw, 0x00, 0},
		{"raw max", Raw, 0xff, 255},
		{"raw sign bit ignored", Raw, 0x80, 128},

		{"q0.8 zero", UnsignedQ0_8, 0x00, 0},
		{"q0.8 half", UnsignedQ0_8, 0x80, 0.5},
		{"q0.8 max", UnsignedQ0_8, 0xff, 255.0 / 256},

		{"sq0.7 zero", SignedQ0_7, 0x00, 0},
		{"sq0.7 max", SignedQ0_7, 0x7f, 127.0 / 128},
		{"sq0.7 min", SignedQ0_7, 0x80, -1},
		{"sq0.7 minus half", SignedQ0_7, 0xc0, -0.5},
		{"sq0.7 all ones", SignedQ0_7, 0xff, 127.0/128 - 1},

		{"twos zero", TwosComplement, 0x00, 0},
		{"twos max", TwosComplement, 0x7f, 127},
		{"twos min", TwosComplement, 0x80, -128},
		{"twos minus one", TwosComplement, 0xff, -1},

		{"twos4 max", TwosComplement.WithWidth(4), 0x07, 7},
		{"twos4 min", TwosComplement.WithWidth(4), 0x08, -8},
		{"twos4 minus one", TwosComplement.WithWidth(4), 0x0f, -1},
		{"twos4 high bits masked", TwosComplement.WithWidth(4), 0xf7, 7},
		{"twos1 set", TwosComplement.WithWidth(1), 0x01, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.enc.Validate())
			assert.Equal(t, tt.want, tt.enc.Decode(tt.raw))
			assert.Equal(t, tt.want, Decode(tt.raw, tt.enc))
		})
	}
}

func TestDecodeIsPure(t *testing.T) {
	for _, enc := range []Encoding{Raw, UnsignedQ0_8, SignedQ0_7, TwosComplement} {
		first := make([]float64, 256)
		for b := 0; b < 256; b++ {
			first[b] = enc.Decode(byte(b))
		}
		for round := 0; round < 3; round++ {
			for b := 0; b < 256; b++ {
				require.Equal(t, first[b], enc.Decode(byte(b)), "%s byte %#x", enc, b)
			}
		}
	}
}

func TestSignedEncodingsExtremes(t *testing.T) {
	for _, enc := range []Encoding{SignedQ0_7, TwosComplement} {
		t.Run(enc.String(), func(t *testing.T) {
			lo, hi := enc.Decode(0x80), enc.Decode(0x7f)
			assert.Equal(t, 0.0, enc.Decode(0x00))
			for b := 0; b < 256; b++ {
				v := enc.Decode(byte(b))
				assert.GreaterOrEqual(t, v, lo)
				assert.LessOrEqual(t, v, hi)
			}
		})
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		name string
		want Encoding
	}{
		{"RAW", Raw},
		{"UNSIGNED_Q0_8", UnsignedQ0_8},
		{"Q0_8", UnsignedQ0_8},
		{"SIGNED_Q0_7", SignedQ0_7},
		{"SQ0_7", SignedQ0_7},
		{"TWOS_COMPLEMENT", TwosComplement},
		{"TWOS", TwosComplement},
		{" twos_complement ", TwosComplement},
		{"raw", Raw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEncoding(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEncodingUnknown(t *testing.T) {
	_, err := ParseEncoding("FLOAT16")
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
	assert.Contains(t, err.Error(), "FLOAT16")
}

func TestEncodingValidate(t *testing.T) {
	assert.Error(t, TwosComplement.WithWidth(0).Validate())
	assert.Error(t, TwosComplement.WithWidth(9).Validate())
	assert.NoError(t, TwosComplement.WithWidth(8).Validate())

	err := Encoding{Kind: EncodingKind(42)}.Validate()
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
}

func TestEncodingString(t *testing.T) {
	assert.Equal(t, "TWOS_COMPLEMENT", TwosComplement.String())
	assert.Equal(t, "TWOS_COMPLEMENT(4)", TwosComplement.WithWidth(4).String())
	assert.Equal(t, "SIGNED_Q0_7", SignedQ0_7.String())
	assert.True(t, Raw.Integral())
	assert.False(t, UnsignedQ0_8.Integral())
}
