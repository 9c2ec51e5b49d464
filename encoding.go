package convref

import (
	"fmt"
	"strings"
)

// EncodingKind selects how raw kernel bytes are turned into tap values.
type EncodingKind int

const (
	// EncodingRaw uses the byte unchanged (0..255).
	EncodingRaw EncodingKind = iota
	// EncodingUnsignedQ0_8 is unsigned Q0.8: byte/256, in [0, 1).
	EncodingUnsignedQ0_8
	// EncodingSignedQ0_7 has 7 fraction bits and a sign bit worth -1.
	EncodingSignedQ0_7
	// EncodingTwosComplement is N-bit two's complement.
	EncodingTwosComplement
)

// Encoding is a kernel encoding. Width only matters for
// EncodingTwosComplement and is the bit width N (sign bit at N-1).
type Encoding struct {
	Kind  EncodingKind
	Width uint
}

// Predefined encodings
var (
	Raw            = Encoding{Kind: EncodingRaw}
	UnsignedQ0_8   = Encoding{Kind: EncodingUnsignedQ0_8}
	SignedQ0_7     = Encoding{Kind: EncodingSignedQ0_7}
	TwosComplement = Encoding{Kind: EncodingTwosComplement, Width: DefaultTwosWidth}
)

var encodingNames = map[string]EncodingKind{
	"RAW":             EncodingRaw,
	"UNSIGNED_Q0_8":   EncodingUnsignedQ0_8,
	"Q0_8":            EncodingUnsignedQ0_8,
	"SIGNED_Q0_7":     EncodingSignedQ0_7,
	"SQ0_7":           EncodingSignedQ0_7,
	"TWOS_COMPLEMENT": EncodingTwosComplement,
	"TWOS":            EncodingTwosComplement,
}

// EncodingNames lists the canonical encoding names accepted by ParseEncoding.
func EncodingNames() []string {
	return []string{"RAW", "UNSIGNED_Q0_8", "SIGNED_Q0_7", "TWOS_COMPLEMENT"}
}

// ParseEncoding resolves an encoding name. Two's complement gets the
// default width; use WithWidth to change it.
func ParseEncoding(name string) (Encoding, error) {
	kind, ok := encodingNames[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Encoding{}, NewConfigError("ParseEncoding",
			fmt.Sprintf("invalid encoding %q, accepted are %v", name, EncodingNames()),
			ErrUnknownEncoding)
	}
	enc := Encoding{Kind: kind}
	if kind == EncodingTwosComplement {
		enc.Width = DefaultTwosWidth
	}
	return enc, nil
}

// WithWidth returns a copy of e with the two's complement width set.
func (e Encoding) WithWidth(width uint) Encoding {
	e.Width = width
	return e
}

// Validate checks the encoding against the closed set.
func (e Encoding) Validate() error {
	switch e.Kind {
	case EncodingRaw, EncodingUnsignedQ0_8, EncodingSignedQ0_7:
		return nil
	case EncodingTwosComplement:
		if e.Width < 1 || e.Width > 8 {
			return NewConfigError("Encoding.Validate",
				fmt.Sprintf("two's complement width %d outside [1, 8]", e.Width), nil)
		}
		return nil
	}
	return NewConfigError("Encoding.Validate",
		fmt.Sprintf("encoding kind %d", int(e.Kind)), ErrUnknownEncoding)
}

// Integral reports whether decoded values are always whole numbers.
func (e Encoding) Integral() bool {
	return e.Kind == EncodingRaw || e.Kind == EncodingTwosComplement
}

// String returns the canonical name.
func (e Encoding) String() string {
	switch e.Kind {
	case EncodingRaw:
		return "RAW"
	case EncodingUnsignedQ0_8:
		return "UNSIGNED_Q0_8"
	case EncodingSignedQ0_7:
		return "SIGNED_Q0_7"
	case EncodingTwosComplement:
		if e.Width != DefaultTwosWidth {
			return fmt.Sprintf("TWOS_COMPLEMENT(%d)", e.Width)
		}
		return "TWOS_COMPLEMENT"
	}
	return fmt.Sprintf("Encoding(%d)", int(e.Kind))
}

// Decode maps a raw kernel byte to its numeric value. The encoding is
// assumed valid.
func (e Encoding) Decode(raw byte) float64 {
	switch e.Kind {
	case EncodingUnsignedQ0_8:
		return float64(raw) / 256
	case EncodingSignedQ0_7:
		v := float64(raw&0x7f) / 128
		if raw&0x80 != 0 {
			v--
		}
		return v
	case EncodingTwosComplement:
		mask := uint(1)<<e.Width - 1
		v := int(uint(raw) & mask)
		if uint(raw)&(1<<(e.Width-1)) != 0 {
			v -= 1 << e.Width
		}
		return float64(v)
	}
	return float64(raw)
}

// Decode is the free-function form of Encoding.Decode.
func Decode(raw byte, enc Encoding) float64 {
	return enc.Decode(raw)
}
