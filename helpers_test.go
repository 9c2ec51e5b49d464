package convref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// matrixOrFail builds a matrix and fails the test if unsuccessful
func matrixOrFail(t testing.TB, rows, cols int, data []byte) Matrix {
	t.Helper()
	m, err := NewMatrix(rows, cols, data)
	require.NoError(t, err)
	return m
}

// kernelOrFail builds a kernel and fails the test if unsuccessful
func kernelOrFail(t testing.TB, rows int, raw []byte, enc Encoding) Kernel {
	t.Helper()
	k, err := NewKernel(rows, raw, enc)
	require.NoError(t, err)
	return k
}

// sequence returns 1, 2, ..., n as bytes
func sequence(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i + 1)
	}
	return data
}

// filled returns n copies of b
func filled(n int, b byte) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = b
	}
	return data
}

// expectedDump computes the output dump a correct accelerator produces
// under cfg, with 0 wherever a coordinate is not compared.
func expectedDump(t testing.TB, input Matrix, kernel Kernel, cfg SampleConfig) Matrix {
	t.Helper()
	taps := kernel.Decode()
	out := make([]byte, input.Rows()*input.Cols())
	for r := 0; r < input.Rows(); r++ {
		for c := 0; c < input.Cols(); c++ {
			if v, ok := Expected(input, taps, r, c, cfg); ok {
				out[input.Index(r, c)] = MaskByte(v)
			}
		}
	}
	return matrixOrFail(t, input.Rows(), input.Cols(), out)
}

// corrupt returns a copy of m with the bytes at coords inverted
func corrupt(t testing.TB, m Matrix, coords ...[2]int) Matrix {
	t.Helper()
	out := make([]byte, m.Rows()*m.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			out[m.Index(r, c)] = m.At(r, c)
		}
	}
	for _, rc := range coords {
		out[m.Index(rc[0], rc[1])] ^= 0xff
	}
	return matrixOrFail(t, m.Rows(), m.Cols(), out)
}
