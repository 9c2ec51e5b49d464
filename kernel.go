package convref

import (
	"fmt"
	"strconv"
	"strings"
)

// Kernel is a square convolution kernel as stored in accelerator memory.
type Kernel struct {
	rows     int
	raw      []byte
	encoding Encoding
}

// NewKernel validates the encoding and wraps the first rows*rows bytes of raw.
func NewKernel(rows int, raw []byte, enc Encoding) (Kernel, error) {
	if err := enc.Validate(); err != nil {
		return Kernel{}, err
	}
	if rows <= 0 {
		return Kernel{}, NewConfigError("NewKernel", fmt.Sprintf("invalid kernel rows %d", rows), nil)
	}
	size, err := area("NewKernel", rows, rows)
	if err != nil {
		return Kernel{}, err
	}
	if len(raw) < size {
		return Kernel{}, NewConfigError("NewKernel",
			fmt.Sprintf("%dx%d kernel needs %d bytes, have %d", rows, rows, size, len(raw)),
			ErrShortBuffer)
	}
	return Kernel{rows: rows, raw: raw[:size:size], encoding: enc}, nil
}

// Rows returns the kernel side length.
func (k Kernel) Rows() int { return k.rows }

// Size returns the number of stored taps.
func (k Kernel) Size() int { return k.rows * k.rows }

// Half returns rows >> 1, the reach of the kernel from its centre.
func (k Kernel) Half() int { return k.rows >> 1 }

// Encoding returns the kernel encoding.
func (k Kernel) Encoding() Encoding { return k.encoding }

// Decode decodes every stored tap once.
func (k Kernel) Decode() DecodedKernel {
	taps := make([]float64, len(k.raw))
	for i, b := range k.raw {
		taps[i] = k.encoding.Decode(b)
	}
	return DecodedKernel{rows: k.rows, half: k.Half(), taps: taps, integral: k.encoding.Integral()}
}

// DecodedKernel is the numeric tap vector in row-major order.
type DecodedKernel struct {
	rows     int
	half     int
	taps     []float64
	integral bool
}

// NewDecodedKernel builds a decoded kernel directly from tap values.
func NewDecodedKernel(rows int, taps []float64) (DecodedKernel, error) {
	if rows <= 0 || len(taps) != rows*rows {
		return DecodedKernel{}, NewConfigError("NewDecodedKernel",
			fmt.Sprintf("%d taps for a %dx%d kernel", len(taps), rows, rows), nil)
	}
	integral := true
	for _, t := range taps {
		if t != float64(int64(t)) {
			integral = false
			break
		}
	}
	return DecodedKernel{rows: rows, half: rows >> 1, taps: append([]float64(nil), taps...), integral: integral}, nil
}

// Rows returns the kernel side length.
func (d DecodedKernel) Rows() int { return d.rows }

// Half returns rows >> 1.
func (d DecodedKernel) Half() int { return d.half }

// Tap returns tap i, or 0 past the stored taps. Even sized kernels reach
// (2*half+1)^2 taps, more than they store.
func (d DecodedKernel) Tap(i int) float64 {
	if i < 0 || i >= len(d.taps) {
		return 0
	}
	return d.taps[i]
}

// Taps returns a copy of the tap vector.
func (d DecodedKernel) Taps() []float64 {
	return append([]float64(nil), d.taps...)
}

// String formats the taps space separated, as the checker banner prints them.
func (d DecodedKernel) String() string {
	parts := make([]string, len(d.taps))
	for i, t := range d.taps {
		if d.integral {
			parts[i] = strconv.FormatInt(int64(t), 10)
		} else {
			parts[i] = strconv.FormatFloat(t, 'g', -1, 64)
		}
	}
	return strings.Join(parts, " ")
}
