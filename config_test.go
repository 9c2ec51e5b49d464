package convref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSampleConfig(t *testing.T) {
	cfg := DefaultSampleConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Step)
	assert.Equal(t, BorderZeroPad, cfg.Border)
	assert.True(t, cfg.Rounding.Enabled)
	assert.Equal(t, RoundTruncate, cfg.Rounding.Mode)
	assert.Equal(t, MaxErrors, cfg.errorCap())
}

func TestSampleConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SampleConfig)
	}{
		{"step", func(c *SampleConfig) { c.Step = -2 }},
		{"border", func(c *SampleConfig) { c.Border = BorderPolicy(3) }},
		{"rounding", func(c *SampleConfig) { c.Rounding.Mode = RoundingMode(5) }},
		{"column limit", func(c *SampleConfig) { c.ColumnLimit = -1 }},
		{"max errors", func(c *SampleConfig) { c.MaxErrors = -1 }},
		{"encoding", func(c *SampleConfig) { c.Encoding = TwosComplement.WithWidth(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSampleConfig()
			tt.mutate(&cfg)
			assert.True(t, IsConfigurationError(cfg.Validate()))
		})
	}
}

func TestParseBorderPolicy(t *testing.T) {
	b, err := ParseBorderPolicy("ZERO_PAD")
	require.NoError(t, err)
	assert.Equal(t, BorderZeroPad, b)

	b, err = ParseBorderPolicy("skip_border_only_interior")
	require.NoError(t, err)
	assert.Equal(t, BorderInteriorOnly, b)
	assert.Equal(t, "SKIP_BORDER_ONLY_INTERIOR", b.String())

	_, err = ParseBorderPolicy("MIRROR")
	assert.True(t, IsConfigurationError(err))
}

func TestParseRoundingMode(t *testing.T) {
	m, err := ParseRoundingMode("half-even")
	require.NoError(t, err)
	assert.Equal(t, RoundHalfEven, m)

	m, err = ParseRoundingMode("")
	require.NoError(t, err)
	assert.Equal(t, RoundTruncate, m)

	_, err = ParseRoundingMode("ceil")
	assert.True(t, IsConfigurationError(err))
}

func TestRoundingPolicyApply(t *testing.T) {
	trunc := RoundingPolicy{Enabled: true, Mode: RoundTruncate}
	even := RoundingPolicy{Enabled: true, Mode: RoundHalfEven}

	assert.Equal(t, int64(2), trunc.Apply(2.9))
	assert.Equal(t, int64(-2), trunc.Apply(-2.9))
	assert.Equal(t, int64(3), even.Apply(2.9))
	assert.Equal(t, int64(-4), even.Apply(-3.5))
	assert.Equal(t, int64(2), RoundingPolicy{Mode: RoundHalfEven}.Apply(2.9))
}
