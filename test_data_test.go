package convref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBytesDeterministic(t *testing.T) {
	a := GenerateBytes(1024, 12345)
	b := GenerateBytes(1024, 12345)
	c := GenerateBytes(1024, 54321)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	// Every byte value shows up in a long enough run.
	seen := make(map[byte]bool)
	for _, v := range GenerateBytes(1<<14, 1) {
		seen[v] = true
	}
	assert.Len(t, seen, 256)
}

func TestGenerateMatrix(t *testing.T) {
	m, err := GenerateMatrix(3, 5, 9)
	require.NoError(t, err)
	assert.Equal(t, GenerateBytes(15, 9)[7], m.At(1, 2))
}

func TestEdgeKernelBytesDecode(t *testing.T) {
	raw := GenerateEdgeKernelBytes()
	k := kernelOrFail(t, 3, raw, TwosComplement)
	assert.Equal(t, "0 1 127 -128 -1 64 -64 63 -127", k.Decode().String())

	k = kernelOrFail(t, 3, raw, SignedQ0_7)
	taps := k.Decode().Taps()
	assert.Equal(t, -1.0, taps[3])
	assert.Equal(t, -0.5, taps[6])
}
