package workload

// SelectExecutionMode derives the DPU execution mode from the device
// generation and the relevant grid selector. The newer generations (VPU_2_7,
// VPU_4_0) use cuboid modes keyed by the NTHW-NTK selector, the older ones
// vector/matrix modes keyed by the input data type and the MPE grid.
//
// Unrecognized selector values degrade to a fallback mode rather than
// failing; the fallbacks are part of the model's compatibility surface and
// must not change.
func SelectExecutionMode(device VPUDevice, inputDType DataType, mpeMode MPEMode, nthwNTK NTHWNTK) ExecutionMode {
	if device == VPU27 || device == VPU40 {
		switch nthwNTK {
		case NTHWNTK4x16:
			return Cuboid4x16
		case NTHWNTK8x8:
			return Cuboid8x16
		default:
			return Cuboid16x16
		}
	}
	if inputDType.IsFloat() {
		return VectorFP16
	}
	if mpeMode == MPE4x4 {
		return Matrix
	}
	return Vector
}
