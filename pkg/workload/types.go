package workload

import "fmt"

// VPUDevice identifies the VPU IP generation a workload targets.
type VPUDevice int

const (
	VPU20 VPUDevice = iota
	VPU21
	VPU27
	VPU40
)

var deviceNames = map[VPUDevice]string{
	VPU20: "VPU_2_0",
	VPU21: "VPU_2_1",
	VPU27: "VPU_2_7",
	VPU40: "VPU_4_0",
}

// String returns the canonical device name
func (d VPUDevice) String() string {
	if name, ok := deviceNames[d]; ok {
		return name
	}
	return fmt.Sprintf("unknown device (%d)", int(d))
}

// ParseVPUDevice parses a device name like "VPU_2_7"
func ParseVPUDevice(s string) (VPUDevice, error) {
	for d, name := range deviceNames {
		if name == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown device %q", s)
}

// Operation is the kind of DPU operation being profiled.
type Operation int

const (
	Convolution Operation = iota
	DWConvolution
	Eltwise
	MaxPool
	CMConvolution
)

var operationNames = map[Operation]string{
	Convolution:   "CONVOLUTION",
	DWConvolution: "DW_CONVOLUTION",
	Eltwise:       "ELTWISE",
	MaxPool:       "MAXPOOL",
	CMConvolution: "CM_CONVOLUTION",
}

// String returns the canonical operation name
func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("unknown operation (%d)", int(o))
}

// ParseOperation parses an operation name like "CONVOLUTION"
func ParseOperation(s string) (Operation, error) {
	for o, name := range operationNames {
		if name == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

// DataType is the element type of a tensor.
type DataType int

const (
	UInt8 DataType = iota
	Int8
	Float16
	BFloat16
)

var dataTypeNames = map[DataType]string{
	UInt8:    "UINT8",
	Int8:     "INT8",
	Float16:  "FLOAT16",
	BFloat16: "BFLOAT16",
}

// String returns the canonical data type name
func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown datatype (%d)", int(t))
}

// ParseDataType parses a data type name like "UINT8"
func ParseDataType(s string) (DataType, error) {
	for t, name := range dataTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown datatype %q", s)
}

// IsFloat reports whether the type belongs to the floating-point family.
func (t DataType) IsFloat() bool {
	return t == Float16 || t == BFloat16
}

// Size returns the element size in bytes.
func (t DataType) Size() int {
	if t.IsFloat() {
		return 2
	}
	return 1
}

// Layout is the ODU output tensor layout.
type Layout int

const (
	LayoutZXY Layout = iota
	LayoutXZY
	LayoutYXZ
	LayoutYZX
	LayoutZYX
	LayoutXYZ
)

var layoutNames = map[Layout]string{
	LayoutZXY: "ZXY",
	LayoutXZY: "XZY",
	LayoutYXZ: "YXZ",
	LayoutYZX: "YZX",
	LayoutZYX: "ZYX",
	LayoutXYZ: "XYZ",
}

// String returns the canonical layout name
func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("unknown layout (%d)", int(l))
}

// ParseLayout parses a layout name like "ZXY"
func ParseLayout(s string) (Layout, error) {
	for l, name := range layoutNames {
		if name == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown layout %q", s)
}

// ExecutionMode is the DPU grid configuration a workload executes with.
// It is derived from device, data type and MPE/NTHW-NTK mode, never set
// directly by the user.
type ExecutionMode int

const (
	Matrix ExecutionMode = iota
	Vector
	VectorFP16
	Cuboid4x16
	Cuboid8x16
	Cuboid16x16
)

var executionModeNames = map[ExecutionMode]string{
	Matrix:      "MATRIX",
	Vector:      "VECTOR",
	VectorFP16:  "VECTOR_FP16",
	Cuboid4x16:  "CUBOID_4x16",
	Cuboid8x16:  "CUBOID_8x16",
	Cuboid16x16: "CUBOID_16x16",
}

// String returns the canonical execution mode name
func (m ExecutionMode) String() string {
	if name, ok := executionModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("unknown execution mode (%d)", int(m))
}

// MPEMode is the MPE grid selector used by the older device generations.
type MPEMode int

const (
	MPE4x4 MPEMode = iota
	MPE16x1
	MPE4x1
)

var mpeModeNames = map[MPEMode]string{
	MPE4x4:  "4x4",
	MPE16x1: "16x1",
	MPE4x1:  "4x1",
}

// String returns the canonical MPE mode name
func (m MPEMode) String() string {
	if name, ok := mpeModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("unknown MPE mode (%d)", int(m))
}

// ParseMPEMode parses an MPE mode name like "4x4"
func ParseMPEMode(s string) (MPEMode, error) {
	for m, name := range mpeModeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown MPE mode %q", s)
}

// NTHWNTK is the NTHW/NTK grid selector used by the newer device generations.
type NTHWNTK int

const (
	NTHWNTK4x16 NTHWNTK = iota
	NTHWNTK8x8
	NTHWNTK16x4
)

var nthwNTKNames = map[NTHWNTK]string{
	NTHWNTK4x16: "4x16",
	NTHWNTK8x8:  "8x8",
	NTHWNTK16x4: "16x4",
}

// String returns the canonical NTHW-NTK mode name
func (m NTHWNTK) String() string {
	if name, ok := nthwNTKNames[m]; ok {
		return name
	}
	return fmt.Sprintf("unknown NTHW-NTK mode (%d)", int(m))
}

// ParseNTHWNTK parses an NTHW-NTK mode name like "8x8"
func ParseNTHWNTK(s string) (NTHWNTK, error) {
	for m, name := range nthwNTKNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown NTHW-NTK mode %q", s)
}

// ActivationFunction is the activation fused onto the operation.
type ActivationFunction int

const (
	ActNone ActivationFunction = iota
	ActRelu
	ActMult
	ActLRelu
	ActAdd
	ActSub
)

var activationNames = map[ActivationFunction]string{
	ActNone:  "NONE",
	ActRelu:  "RELU",
	ActMult:  "MULT",
	ActLRelu: "LRELU",
	ActAdd:   "ADD",
	ActSub:   "SUB",
}

// String returns the canonical activation name
func (a ActivationFunction) String() string {
	if name, ok := activationNames[a]; ok {
		return name
	}
	return fmt.Sprintf("unknown activation (%d)", int(a))
}

// ParseActivation parses an activation name like "RELU"
func ParseActivation(s string) (ActivationFunction, error) {
	for a, name := range activationNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown activation %q", s)
}

// ISIStrategy is the inter-slice-interconnect tiling strategy.
type ISIStrategy int

const (
	Clustering ISIStrategy = iota
	SplitOverH
	SplitOverK
)

var isiStrategyNames = map[ISIStrategy]string{
	Clustering: "CLUSTERING",
	SplitOverH: "SPLIT_OVER_H",
	SplitOverK: "SPLIT_OVER_K",
}

// String returns the canonical ISI strategy name
func (s ISIStrategy) String() string {
	if name, ok := isiStrategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown ISI strategy (%d)", int(s))
}

// ParseISIStrategy parses a strategy name like "clustering" or "split_over_h"
func ParseISIStrategy(s string) (ISIStrategy, error) {
	switch s {
	case "clustering":
		return Clustering, nil
	case "split_over_h":
		return SplitOverH, nil
	case "split_over_k":
		return SplitOverK, nil
	}
	return 0, fmt.Errorf("unknown ISI strategy %q", s)
}

// Swizzling is a memory-addressing permutation key.
type Swizzling int

// String returns the canonical swizzling key name
func (s Swizzling) String() string {
	return fmt.Sprintf("KEY_%d", int(s))
}

// MemoryLocation identifies where a DMA endpoint tensor lives.
type MemoryLocation int

const (
	LocationDRAM MemoryLocation = iota
	LocationCMX
)

var memoryLocationNames = map[MemoryLocation]string{
	LocationDRAM: "DRAM",
	LocationCMX:  "CMX",
}

// String returns the canonical memory location name
func (l MemoryLocation) String() string {
	if name, ok := memoryLocationNames[l]; ok {
		return name
	}
	return fmt.Sprintf("unknown location (%d)", int(l))
}
