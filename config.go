// Package convref configuration constants and run parameters
package convref

import (
	"fmt"
	"math"
	"strings"
)

// Comparison limits
const (
	// MaxErrors is the default number of mismatches recorded before a run aborts
	MaxErrors = 10

	// DefaultStep samples every row and column
	DefaultStep = 1

	// DefaultTwosWidth is the default two's complement bit width
	DefaultTwosWidth = 8
)

// Memory image layout of the deployed accelerator
const (
	// DefaultImageRows is the matrix height of the memory image
	DefaultImageRows = 1080

	// DefaultImageCols is the matrix width of the memory image
	DefaultImageCols = 1920

	// MaxKernelRows is the largest kernel the accelerator accepts
	MaxKernelRows = 5

	// KernelRegionAlign is the alignment of the kernel region in bytes
	KernelRegionAlign = 8
)

// BorderPolicy decides what happens to taps that fall outside the matrix.
type BorderPolicy int

const (
	// BorderZeroPad reads 0 outside the matrix; every coordinate is compared.
	BorderZeroPad BorderPolicy = iota
	// BorderInteriorOnly evaluates only coordinates at least half a kernel
	// away from every edge. Border coordinates are skipped when
	// SampleConfig.SkipBorder is set, otherwise expected to be 0.
	BorderInteriorOnly
)

// ParseBorderPolicy resolves a border policy name.
func ParseBorderPolicy(name string) (BorderPolicy, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ZERO_PAD", "ZERO":
		return BorderZeroPad, nil
	case "SKIP_BORDER_ONLY_INTERIOR", "INTERIOR":
		return BorderInteriorOnly, nil
	}
	return 0, NewConfigError("ParseBorderPolicy",
		fmt.Sprintf("invalid border policy %q, accepted are [ZERO_PAD SKIP_BORDER_ONLY_INTERIOR]", name), nil)
}

func (b BorderPolicy) String() string {
	switch b {
	case BorderZeroPad:
		return "ZERO_PAD"
	case BorderInteriorOnly:
		return "SKIP_BORDER_ONLY_INTERIOR"
	}
	return fmt.Sprintf("BorderPolicy(%d)", int(b))
}

// RoundingMode turns an accumulated value into an integer before masking.
type RoundingMode int

const (
	// RoundTruncate truncates toward zero.
	RoundTruncate RoundingMode = iota
	// RoundHalfEven rounds to nearest, ties to even.
	RoundHalfEven
)

// ParseRoundingMode resolves a rounding mode name.
func ParseRoundingMode(name string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "truncate", "trunc", "":
		return RoundTruncate, nil
	case "half-even", "half_even", "even":
		return RoundHalfEven, nil
	}
	return 0, NewConfigError("ParseRoundingMode",
		fmt.Sprintf("invalid rounding mode %q, accepted are [truncate half-even]", name), nil)
}

func (m RoundingMode) String() string {
	switch m {
	case RoundTruncate:
		return "truncate"
	case RoundHalfEven:
		return "half-even"
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// RoundingPolicy is the rounding configuration. A disabled policy always
// truncates.
type RoundingPolicy struct {
	Enabled bool
	Mode    RoundingMode
}

// Apply converts v to an integer.
func (p RoundingPolicy) Apply(v float64) int64 {
	if p.Enabled && p.Mode == RoundHalfEven {
		return int64(math.RoundToEven(v))
	}
	return int64(v)
}

// SampleConfig holds the resolved parameters of one run. It is not
// modified during a scan.
type SampleConfig struct {
	Step       int
	Border     BorderPolicy
	SkipBorder bool
	Rounding   RoundingPolicy
	Encoding   Encoding

	// ColumnLimit, when positive, excludes columns >= ColumnLimit from
	// comparison. One deployed checker hardcoded 1918 for a 1920 wide
	// matrix; it is off unless requested.
	ColumnLimit int

	// MaxErrors caps recorded mismatches; 0 means MaxErrors.
	MaxErrors int
}

// DefaultSampleConfig returns the reference configuration: every
// coordinate, zero padding, truncation, raw kernel.
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{
		Step:     DefaultStep,
		Border:   BorderZeroPad,
		Rounding: RoundingPolicy{Enabled: true, Mode: RoundTruncate},
		Encoding: Raw,
	}
}

// Validate checks the configuration before any scan starts.
func (c SampleConfig) Validate() error {
	if c.Step < 1 {
		return NewConfigError("SampleConfig.Validate", fmt.Sprintf("step must be >= 1, got %d", c.Step), nil)
	}
	if c.Border != BorderZeroPad && c.Border != BorderInteriorOnly {
		return NewConfigError("SampleConfig.Validate", fmt.Sprintf("unknown border policy %d", int(c.Border)), nil)
	}
	if c.Rounding.Mode != RoundTruncate && c.Rounding.Mode != RoundHalfEven {
		return NewConfigError("SampleConfig.Validate", fmt.Sprintf("unknown rounding mode %d", int(c.Rounding.Mode)), nil)
	}
	if c.ColumnLimit < 0 {
		return NewConfigError("SampleConfig.Validate", fmt.Sprintf("column limit must be >= 0, got %d", c.ColumnLimit), nil)
	}
	if c.MaxErrors < 0 {
		return NewConfigError("SampleConfig.Validate", fmt.Sprintf("max errors must be >= 0, got %d", c.MaxErrors), nil)
	}
	return c.Encoding.Validate()
}

func (c SampleConfig) errorCap() int {
	if c.MaxErrors == 0 {
		return MaxErrors
	}
	return c.MaxErrors
}
