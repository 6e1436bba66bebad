package workload

import (
	"fmt"
	"strings"
)

// DPUWorkload is the fully-qualified descriptor for one compute (DPU)
// operation, in the shape the performance model expects. It is fully
// determined by the OperationParameters it was built from.
type DPUWorkload struct {
	Device    VPUDevice
	Operation Operation

	InputWidth    int
	InputHeight   int
	InputChannels int
	InputBatch    int

	OutputChannels int

	InputDType   DataType
	OutputDType  DataType
	OutputLayout Layout

	ExecutionMode ExecutionMode

	// Kernel geometry is symmetric across both axes: the single kernel,
	// stride and padding scalars fill both height and width slots, and
	// only the top/left pads are carried. Asymmetric geometry is not
	// expressible on the user-facing surface.
	KernelHeight int
	KernelWidth  int
	StrideHeight int
	StrideWidth  int
	PadTop       int
	PadLeft      int

	InputSparsityRate     float64
	WeightSparsityEnabled bool
	WeightSparsityRate    float64

	InputSwizzling  Swizzling
	WeightSwizzling Swizzling
	OutputSwizzling Swizzling

	OutputWriteTiles int
	ISIStrategy      ISIStrategy
}

// NewDPUWorkload builds the compute descriptor for the given parameters,
// deriving the execution mode on the way.
func NewDPUWorkload(p OperationParameters) DPUWorkload {
	return DPUWorkload{
		Device:    p.Device,
		Operation: p.Operation,

		InputWidth:    p.Width,
		InputHeight:   p.Height,
		InputChannels: p.InputChannels,
		InputBatch:    p.Batch,

		OutputChannels: p.OutputChannels,

		InputDType:   p.InputDType,
		OutputDType:  p.OutputDType,
		OutputLayout: p.OutputLayout,

		ExecutionMode: SelectExecutionMode(p.Device, p.InputDType, p.MPEMode, p.NTHWNTK),

		KernelHeight: p.Kernel,
		KernelWidth:  p.Kernel,
		StrideHeight: p.Stride,
		StrideWidth:  p.Stride,
		PadTop:       p.Padding,
		PadLeft:      p.Padding,

		InputSparsityRate:     p.ActSparsity,
		WeightSparsityEnabled: p.WeightSparsityEnabled,
		WeightSparsityRate:    p.WeightSparsity,

		InputSwizzling:  p.InputSwizzling,
		WeightSwizzling: p.WeightSwizzling,
		OutputSwizzling: p.OutputSwizzling,

		OutputWriteTiles: p.OutputWriteTiles,
		ISIStrategy:      p.ISIStrategy,
	}
}

// OutputWidth returns the output spatial width implied by the descriptor.
func (w DPUWorkload) OutputWidth() int {
	return (w.InputWidth+2*w.PadLeft-w.KernelWidth)/w.StrideWidth + 1
}

// OutputHeight returns the output spatial height implied by the descriptor.
func (w DPUWorkload) OutputHeight() int {
	return (w.InputHeight+2*w.PadTop-w.KernelHeight)/w.StrideHeight + 1
}

// Describe renders the descriptor as the model-input key/value block, with
// the tag-qualified value names the model's binding layer uses.
func (w DPUWorkload) Describe() string {
	var b strings.Builder
	b.WriteString("====================== Operation ======================\n")
	fmt.Fprintf(&b, "\tdevice = VPUDevice.%s\n", w.Device)
	fmt.Fprintf(&b, "\toperation = Operation.%s\n", w.Operation)
	fmt.Fprintf(&b, "\tinput_0_width = %d\n", w.InputWidth)
	fmt.Fprintf(&b, "\tinput_0_height = %d\n", w.InputHeight)
	fmt.Fprintf(&b, "\tinput_0_channels = %d\n", w.InputChannels)
	fmt.Fprintf(&b, "\tinput_0_batch = %d\n", w.InputBatch)
	fmt.Fprintf(&b, "\toutput_0_channels = %d\n", w.OutputChannels)
	fmt.Fprintf(&b, "\tinput_0_datatype = DataType.%s\n", w.InputDType)
	fmt.Fprintf(&b, "\toutput_0_datatype = DataType.%s\n", w.OutputDType)
	fmt.Fprintf(&b, "\toutput_0_layout = Layout.%s\n", w.OutputLayout)
	fmt.Fprintf(&b, "\texecution_order = ExecutionMode.%s\n", w.ExecutionMode)
	fmt.Fprintf(&b, "\tkernel_height = %d\n", w.KernelHeight)
	fmt.Fprintf(&b, "\tkernel_width = %d\n", w.KernelWidth)
	fmt.Fprintf(&b, "\tkernel_stride_height = %d\n", w.StrideHeight)
	fmt.Fprintf(&b, "\tkernel_stride_width = %d\n", w.StrideWidth)
	fmt.Fprintf(&b, "\tkernel_pad_top = %d\n", w.PadTop)
	fmt.Fprintf(&b, "\tkernel_pad_left = %d\n", w.PadLeft)
	fmt.Fprintf(&b, "\tinput_sparsity_rate = %g\n", w.InputSparsityRate)
	fmt.Fprintf(&b, "\tweight_sparsity_enabled = %t\n", w.WeightSparsityEnabled)
	fmt.Fprintf(&b, "\tweight_sparsity_rate = %g\n", w.WeightSparsityRate)
	fmt.Fprintf(&b, "\tinput_0_swizzling = Swizzling.%s\n", w.InputSwizzling)
	fmt.Fprintf(&b, "\tinput_1_swizzling = Swizzling.%s\n", w.WeightSwizzling)
	fmt.Fprintf(&b, "\toutput_0_swizzling = Swizzling.%s\n", w.OutputSwizzling)
	fmt.Fprintf(&b, "\toutput_write_tiles = %d\n", w.OutputWriteTiles)
	fmt.Fprintf(&b, "\tisi_strategy = ISIStrategy.%s\n", w.ISIStrategy)
	b.WriteString("=======================================================\n")
	return b.String()
}
