package convref

import "fmt"

// Check recomputes the convolution of input with kernel at every sampled
// coordinate and compares it with output. Coordinates are visited row
// major, every cfg.Step rows and columns.
//
// The returned result is complete even when err is non-nil: err is a
// configuration error (nothing scanned), ErrErrorCapExceeded (scan
// aborted) or a mismatch error (scan finished with mismatches).
func Check(input Matrix, kernel Kernel, output Matrix, cfg SampleConfig, reporter Reporter) (ComparisonResult, error) {
	if err := cfg.Validate(); err != nil {
		return ComparisonResult{}, err
	}
	if kernel.Encoding() != cfg.Encoding {
		return ComparisonResult{}, NewConfigError("Check",
			fmt.Sprintf("kernel encoding %s does not match configured %s", kernel.Encoding(), cfg.Encoding), nil)
	}
	if !input.SameShape(output) {
		return ComparisonResult{}, NewConfigError("Check",
			fmt.Sprintf("output %s does not match input %s", output, input), nil)
	}

	taps := kernel.Decode()
	cmp := NewComparator(cfg.errorCap(), reporter)
	visited := 0

scan:
	for r := 0; r < input.Rows(); r += cfg.Step {
		for c := 0; c < input.Cols(); c += cfg.Step {
			visited++
			expected, compare := Expected(input, taps, r, c, cfg)
			if !compare {
				continue
			}
			if !cmp.Record(r, c, expected, output.At(r, c)) {
				break scan
			}
		}
	}

	res := cmp.Result(visited)
	return res, res.Err()
}
