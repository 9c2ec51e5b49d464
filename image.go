package convref

import (
	"fmt"
	"math"
)

// ImageLayout describes a single memory image holding the input matrix,
// the kernel and the output matrix back to back:
//
//	| MAT rows*cols | KERN KernelRegion() | OUT rows*cols |
//
// The kernel region is sized for the largest kernel and padded past the
// next KernelRegionAlign boundary.
type ImageLayout struct {
	Rows          int
	Cols          int
	MaxKernelRows int
}

// DefaultImageLayout is the 1080x1920 layout with room for a 5x5 kernel.
func DefaultImageLayout() ImageLayout {
	return ImageLayout{Rows: DefaultImageRows, Cols: DefaultImageCols, MaxKernelRows: MaxKernelRows}
}

// MatrixSize returns rows*cols.
func (l ImageLayout) MatrixSize() int { return l.Rows * l.Cols }

// KernelRegion returns the size of the kernel region in bytes.
func (l ImageLayout) KernelRegion() int {
	maxSize := l.MaxKernelRows * l.MaxKernelRows
	return ((maxSize / KernelRegionAlign) + 1) * KernelRegionAlign
}

// MatrixAddr returns the offset of the input matrix.
func (l ImageLayout) MatrixAddr() int { return 0 }

// KernelAddr returns the offset of the kernel.
func (l ImageLayout) KernelAddr() int { return l.MatrixAddr() + l.MatrixSize() }

// OutputAddr returns the offset of the output matrix.
func (l ImageLayout) OutputAddr() int { return l.KernelAddr() + l.KernelRegion() }

// Size returns the total image size.
func (l ImageLayout) Size() int { return l.OutputAddr() + l.MatrixSize() }

// Validate checks the layout dimensions.
func (l ImageLayout) Validate() error {
	size, err := area("ImageLayout.Validate", l.Rows, l.Cols)
	if err != nil {
		return err
	}
	if l.MaxKernelRows <= 0 {
		return NewConfigError("ImageLayout.Validate", fmt.Sprintf("invalid max kernel rows %d", l.MaxKernelRows), nil)
	}
	kern, err := area("ImageLayout.Validate", l.MaxKernelRows, l.MaxKernelRows)
	if err != nil {
		return err
	}
	// Both matrices plus the aligned kernel region must be addressable.
	if size > (math.MaxInt-kern-2*KernelRegionAlign)/2 {
		return NewConfigError("ImageLayout.Validate",
			fmt.Sprintf("%dx%d image with a %dx%d kernel overflows", l.Rows, l.Cols, l.MaxKernelRows, l.MaxKernelRows), nil)
	}
	return nil
}

// Image is a memory image split into its three regions.
type Image struct {
	Input  Matrix
	Kernel Kernel
	Output Matrix
}

// Split carves image into input, kernel and output views.
func (l ImageLayout) Split(image []byte, kernelRows int, enc Encoding) (Image, error) {
	if err := l.Validate(); err != nil {
		return Image{}, err
	}
	if kernelRows <= 0 || kernelRows > l.MaxKernelRows {
		return Image{}, NewConfigError("ImageLayout.Split",
			fmt.Sprintf("kernel rows %d outside [1, %d]", kernelRows, l.MaxKernelRows), nil)
	}
	if len(image) < l.Size() {
		return Image{}, NewConfigError("ImageLayout.Split",
			fmt.Sprintf("image needs %d bytes, have %d", l.Size(), len(image)), ErrShortBuffer)
	}

	input, err := NewMatrix(l.Rows, l.Cols, image[l.MatrixAddr():l.KernelAddr()])
	if err != nil {
		return Image{}, err
	}
	kernel, err := NewKernel(kernelRows, image[l.KernelAddr():l.OutputAddr()], enc)
	if err != nil {
		return Image{}, err
	}
	output, err := NewMatrix(l.Rows, l.Cols, image[l.OutputAddr():l.Size()])
	if err != nil {
		return Image{}, err
	}
	return Image{Input: input, Kernel: kernel, Output: output}, nil
}
