package workload

import "fmt"

// GeometryError reports an output/kernel/padding/stride combination that
// cannot be inverted into a valid input dimension.
type GeometryError struct {
	Axis     int
	Output   int
	Kernel   int
	Padding  int
	Stride   int
	Inferred int
}

// Error implements the error interface
func (e *GeometryError) Error() string {
	return fmt.Sprintf(
		"axis %d: output %d, kernel %d, padding %d, stride %d does not invert to a valid input dimension (got %d)",
		e.Axis, e.Output, e.Kernel, e.Padding, e.Stride, e.Inferred)
}

// InferInputDims reconstructs per-axis input dimensions from output
// dimensions, kernel sizes, paddings and strides, inverting the standard
// convolution output-size formula o = (i + 2p - k)/s + 1. The slices are
// parallel arrays of equal length, one entry per spatial axis.
//
// The forward formula uses integer division, so after inverting it the
// forward identity is re-checked exactly; a combination that does not
// round-trip, a stride below 1, or a non-positive inferred dimension all
// fail with a *GeometryError. A silently wrong input size would corrupt
// every estimate computed from it.
func InferInputDims(outputDims, kernels, paddings, strides []int) ([]int, error) {
	inputDims := make([]int, len(outputDims))
	for axis, o := range outputDims {
		k, p, s := kernels[axis], paddings[axis], strides[axis]
		i := (o-1)*s - 2*p + k
		if s < 1 || i < 1 || o != (i+2*p-k)/s+1 {
			return nil, &GeometryError{
				Axis:     axis,
				Output:   o,
				Kernel:   k,
				Padding:  p,
				Stride:   s,
				Inferred: i,
			}
		}
		inputDims[axis] = i
	}
	return inputDims, nil
}
