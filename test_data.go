package convref

// GenerateBytes generates deterministic byte data using a linear
// congruential generator (LCG). This ensures reproducible fixtures across
// runs.
//
// Parameters:
//   - size: Number of bytes to generate
//   - seed: Random seed for reproducibility
//
// Example:
//
//	data := GenerateBytes(1080*1920, 12345)
func GenerateBytes(size int, seed uint64) []byte {
	data := make([]byte, size)
	rng := seed
	for i := range data {
		rng = rng*1103515245 + 12345 // LCG parameters from Numerical Recipes
		data[i] = byte(rng >> 16)
	}
	return data
}

// GenerateMatrix generates a deterministic rows x cols matrix.
func GenerateMatrix(rows, cols int, seed uint64) (Matrix, error) {
	return NewMatrix(rows, cols, GenerateBytes(rows*cols, seed))
}

// GenerateEdgeKernelBytes returns kernel bytes that hit the interesting
// decode points of every encoding: zero, one, the largest positive value,
// the sign bit alone and all bits set.
func GenerateEdgeKernelBytes() []byte {
	return []byte{0x00, 0x01, 0x7f, 0x80, 0xff, 0x40, 0xc0, 0x3f, 0x81}
}
