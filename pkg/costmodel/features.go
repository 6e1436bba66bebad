package costmodel

import "github.com/DariaMityagina/npu-nn-cost-model/pkg/workload"

// Preprocessing turns a workload descriptor into the fixed-order feature
// vector the trained network consumes. The field order is a compatibility
// surface with the training pipeline and must not be reordered; bumping
// the interface requires a new version constant and a model trained
// against it.
const preprocessingVersion = 1

// dpuFeatureCount is the input width a DPU-capable model must declare.
const dpuFeatureCount = 25

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func dpuFeatures(w workload.DPUWorkload) []float32 {
	return []float32{
		float32(w.Device),
		float32(w.Operation),
		float32(w.InputWidth),
		float32(w.InputHeight),
		float32(w.InputChannels),
		float32(w.InputBatch),
		float32(w.OutputChannels),
		float32(w.InputDType),
		float32(w.OutputDType),
		float32(w.OutputLayout),
		float32(w.ExecutionMode),
		float32(w.KernelHeight),
		float32(w.KernelWidth),
		float32(w.StrideHeight),
		float32(w.StrideWidth),
		float32(w.PadTop),
		float32(w.PadLeft),
		float32(w.InputSparsityRate),
		boolToFloat(w.WeightSparsityEnabled),
		float32(w.WeightSparsityRate),
		float32(w.InputSwizzling),
		float32(w.WeightSwizzling),
		float32(w.OutputSwizzling),
		float32(w.OutputWriteTiles),
		float32(w.ISIStrategy),
	}
}
