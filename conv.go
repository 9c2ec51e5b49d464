package convref

// Evaluate computes the multiply-accumulate of kernel taps over the
// neighbourhood of (r, c). Taps are consumed in row-major order, i outer
// and j inner, each over [-half, +half]. Reads outside the matrix are 0.
func Evaluate(m Matrix, k DecodedKernel, r, c int) float64 {
	half := k.Half()
	sum := 0.0
	tap := 0
	for i := -half; i <= half; i++ {
		for j := -half; j <= half; j++ {
			if v := m.AtOrZero(r+i, c+j); v != 0 {
				sum += float64(v) * k.Tap(tap)
			}
			tap++
		}
	}
	return sum
}

// Interior reports whether every tap around (r, c) lands inside m.
func Interior(m Matrix, half, r, c int) bool {
	return r >= half && r < m.Rows()-half && c >= half && c < m.Cols()-half
}

// Expected returns the integer the accelerator should have produced at
// (r, c) and whether the coordinate takes part in the comparison.
func Expected(m Matrix, k DecodedKernel, r, c int, cfg SampleConfig) (int64, bool) {
	if cfg.ColumnLimit > 0 && c >= cfg.ColumnLimit {
		return 0, false
	}
	if cfg.Border == BorderInteriorOnly && !Interior(m, k.Half(), r, c) {
		if cfg.SkipBorder {
			return 0, false
		}
		return 0, true
	}
	return cfg.Rounding.Apply(Evaluate(m, k, r, c)), true
}

// MaskByte keeps the low 8 bits of v in two's complement.
func MaskByte(v int64) byte {
	return byte(v & 0xff)
}
