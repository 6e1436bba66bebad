package workload

// OperationParameters is the flat, user-supplied description of one hardware
// operation. It is built once by the CLI layer and never mutated afterwards;
// every workload descriptor derived from it is constructed fresh per query.
type OperationParameters struct {
	Device    VPUDevice
	Operation Operation

	// Tensor geometry. Width and Height describe the output tensor for DMA
	// queries and the input tensor for DPU queries, matching the flag surface.
	Width          int
	Height         int
	InputChannels  int
	OutputChannels int
	Batch          int

	// Kernel geometry, applied symmetrically on both spatial axes.
	Kernel  int
	Padding int
	Stride  int

	InputDType   DataType
	OutputDType  DataType
	OutputLayout Layout
	Activation   ActivationFunction

	MPEMode MPEMode
	NTHWNTK NTHWNTK

	ActSparsity           float64
	WeightSparsityEnabled bool
	WeightSparsity        float64

	InputSwizzling  Swizzling
	WeightSwizzling Swizzling
	OutputSwizzling Swizzling

	// OutputWriteTiles controls on how many tiles the DPU broadcasts the
	// output (1 = no broadcast).
	OutputWriteTiles int

	ISIStrategy ISIStrategy
}
