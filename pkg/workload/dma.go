package workload

import (
	"fmt"
	"strings"
)

// DMAWorkload describes moving the pre-operation tensor from its source
// location into compute memory. Dimension vectors are ordered
// [width, height, channels, batch].
type DMAWorkload struct {
	Device VPUDevice

	InputDims  [4]int
	OutputDims [4]int

	// Source and destination are fixed: DMA queries always describe an
	// off-chip to on-chip transfer.
	InputLocation  MemoryLocation
	OutputLocation MemoryLocation

	InputDType  DataType
	OutputDType DataType
}

// NewDMAWorkload builds the data-movement descriptor for the given
// parameters. The user-supplied width/height describe the post-operation
// tensor, so the source dimensions are reconstructed by un-applying the
// kernel/padding/stride geometry; an inconsistent geometry fails the whole
// build.
func NewDMAWorkload(p OperationParameters) (DMAWorkload, error) {
	dims, err := InferInputDims(
		[]int{p.Height, p.Width},
		[]int{p.Kernel, p.Kernel},
		[]int{p.Padding, p.Padding},
		[]int{p.Stride, p.Stride},
	)
	if err != nil {
		return DMAWorkload{}, err
	}
	inputHeight, inputWidth := dims[0], dims[1]

	return DMAWorkload{
		Device:         p.Device,
		InputDims:      [4]int{inputWidth, inputHeight, p.InputChannels, p.Batch},
		OutputDims:     [4]int{p.Width, p.Height, p.OutputChannels, p.Batch},
		InputLocation:  LocationDRAM,
		OutputLocation: LocationCMX,
		InputDType:     p.InputDType,
		OutputDType:    p.OutputDType,
	}, nil
}

// InputBytes returns the size of the source tensor in bytes.
func (w DMAWorkload) InputBytes() int {
	return w.InputDims[0] * w.InputDims[1] * w.InputDims[2] * w.InputDims[3] * w.InputDType.Size()
}

// OutputBytes returns the size of the destination tensor in bytes.
func (w DMAWorkload) OutputBytes() int {
	return w.OutputDims[0] * w.OutputDims[1] * w.OutputDims[2] * w.OutputDims[3] * w.OutputDType.Size()
}

// Describe renders the descriptor as the model-input key/value block.
func (w DMAWorkload) Describe() string {
	var b strings.Builder
	b.WriteString("====================== Operation ======================\n")
	fmt.Fprintf(&b, "\tdevice = VPUDevice.%s\n", w.Device)
	fmt.Fprintf(&b, "\tinput_dimension = %v\n", w.InputDims[:])
	fmt.Fprintf(&b, "\toutput_dimension = %v\n", w.OutputDims[:])
	fmt.Fprintf(&b, "\tinput_location = MemoryLocation.%s\n", w.InputLocation)
	fmt.Fprintf(&b, "\toutput_location = MemoryLocation.%s\n", w.OutputLocation)
	fmt.Fprintf(&b, "\tinput_dtype = DataType.%s\n", w.InputDType)
	fmt.Fprintf(&b, "\toutput_dtype = DataType.%s\n", w.OutputDType)
	b.WriteString("=======================================================\n")
	return b.String()
}
