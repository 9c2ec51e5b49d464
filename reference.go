// Package convref reference implementations for verification
package convref

import "fmt"

// Reference contains plain whole-frame and single-neighbourhood versions
// of the convolution model. They are used to cross-check the per
// coordinate scan and to debug single outputs by hand.
type Reference struct{}

// DotTerm is one product of a dot product.
type DotTerm struct {
	Input   byte
	Raw     byte
	Tap     float64
	Product float64
}

func (t DotTerm) String() string {
	return fmt.Sprintf("%02x*%02x = %d*%g = %g", t.Input, t.Raw, t.Input, t.Tap, t.Product)
}

// Dot multiplies unsigned input bytes with kernel bytes decoded by enc and
// returns the products and their sum. It reproduces the computation of
// one output coordinate whose whole neighbourhood is inside the matrix.
func (r Reference) Dot(inputs, kernel []byte, enc Encoding) ([]DotTerm, float64, error) {
	if err := enc.Validate(); err != nil {
		return nil, 0, err
	}
	if len(inputs) != len(kernel) {
		return nil, 0, NewConfigError("Reference.Dot",
			fmt.Sprintf("%d inputs for %d kernel taps", len(inputs), len(kernel)), nil)
	}
	terms := make([]DotTerm, len(inputs))
	sum := 0.0
	for i := range inputs {
		tap := enc.Decode(kernel[i])
		p := float64(inputs[i]) * tap
		terms[i] = DotTerm{Input: inputs[i], Raw: kernel[i], Tap: tap, Product: p}
		sum += p
	}
	return terms, sum, nil
}

// Conv2D computes the zero-padded, stride 1 correlation of the whole
// matrix, one accumulated value per coordinate in row-major order.
func (r Reference) Conv2D(m Matrix, k DecodedKernel) []float64 {
	rows, cols := m.Rows(), m.Cols()
	half := k.Half()
	width := 2*half + 1
	out := make([]float64, rows*cols)

	for oh := 0; oh < rows; oh++ {
		for ow := 0; ow < cols; ow++ {
			sum := 0.0
			for kh := 0; kh < width; kh++ {
				for kw := 0; kw < width; kw++ {
					ih := oh - half + kh
					iw := ow - half + kw

					// Check bounds
					if ih >= 0 && ih < rows && iw >= 0 && iw < cols {
						sum += float64(m.At(ih, iw)) * k.Tap(kh*width+kw)
					}
				}
			}
			out[oh*cols+ow] = sum
		}
	}
	return out
}
