package convref

import (
	"fmt"
	"math"
)

// Matrix is a read-only row-major view over a byte buffer. Both the input
// matrix and the accelerator's output dump are Matrices.
type Matrix struct {
	rows, cols int
	data       []byte
}

// NewMatrix wraps data as a rows x cols matrix. Only the first rows*cols
// bytes are used.
func NewMatrix(rows, cols int, data []byte) (Matrix, error) {
	size, err := area("NewMatrix", rows, cols)
	if err != nil {
		return Matrix{}, err
	}
	if len(data) < size {
		return Matrix{}, NewConfigError("NewMatrix",
			fmt.Sprintf("%dx%d matrix needs %d bytes, have %d", rows, cols, size, len(data)),
			ErrShortBuffer)
	}
	return Matrix{rows: rows, cols: cols, data: data[:size:size]}, nil
}

// area returns rows*cols. Both must be positive and the product must fit
// in an int.
func area(op string, rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, NewConfigError(op, fmt.Sprintf("invalid dimensions %dx%d", rows, cols), nil)
	}
	if cols > math.MaxInt/rows {
		return 0, NewConfigError(op, fmt.Sprintf("dimensions %dx%d overflow", rows, cols), nil)
	}
	return rows * cols, nil
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// Index returns the buffer offset of (r, c).
func (m Matrix) Index(r, c int) int { return r*m.cols + c }

// In reports whether (r, c) lies inside the matrix.
func (m Matrix) In(r, c int) bool {
	return r >= 0 && r < m.rows && c >= 0 && c < m.cols
}

// At returns the byte at (r, c). The coordinate must be in range.
func (m Matrix) At(r, c int) byte { return m.data[m.Index(r, c)] }

// AtOrZero returns the byte at (r, c), or 0 outside the matrix.
func (m Matrix) AtOrZero(r, c int) byte {
	if !m.In(r, c) {
		return 0
	}
	return m.data[m.Index(r, c)]
}

// SameShape reports whether m and o have equal dimensions.
func (m Matrix) SameShape(o Matrix) bool {
	return m.rows == o.rows && m.cols == o.cols
}

func (m Matrix) String() string {
	return fmt.Sprintf("%dx%d", m.rows, m.cols)
}
