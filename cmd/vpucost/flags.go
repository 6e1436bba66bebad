package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/DariaMityagina/npu-nn-cost-model/pkg/profile"
	"github.com/DariaMityagina/npu-nn-cost-model/pkg/workload"
)

// options is the fully parsed invocation.
type options struct {
	modelPath string
	mode      profile.Mode
	target    profile.Target
	verbose   bool
	params    workload.OperationParameters
}

// rawOptions holds flag values before enum parsing and validation.
type rawOptions struct {
	model      string
	mode       string
	target     string
	device     string
	operation  string
	mpeMode    string
	nthwNTK    string
	activation string

	width          int
	height         int
	inputChannels  int
	outputChannels int
	batch          int
	kernel         int
	padding        int
	strides        int

	inputDtype   string
	outputDtype  string
	outputLayout string
	isiStrategy  string

	actSparsity          float64
	paramSparsityEnabled bool
	paramSparsity        float64

	inputSwizzling  int
	paramSwizzling  int
	outputSwizzling int

	outputWriteTiles int
	verbose          bool
}

func newFlagSet(name string, raw *rawOptions) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringVar(&raw.model, "model", "", "model path")
	fs.StringVar(&raw.model, "m", "", "model path (shorthand)")
	fs.StringVar(&raw.mode, "mode", "DPU", "profiling mode: DPU|DMA")
	fs.StringVar(&raw.target, "target", "cycles", "target metric: cycles|power|utilization")
	fs.StringVar(&raw.device, "device", "", "the VPU IP device: VPU_2_0|VPU_2_1|VPU_2_7|VPU_4_0")
	fs.StringVar(&raw.device, "d", "", "the VPU IP device (shorthand)")
	fs.StringVar(&raw.operation, "operation", "CONVOLUTION",
		"the operation: CONVOLUTION|DW_CONVOLUTION|ELTWISE|MAXPOOL|CM_CONVOLUTION")
	fs.StringVar(&raw.operation, "op", "CONVOLUTION", "the operation (shorthand)")
	fs.StringVar(&raw.mpeMode, "mpe_mode", "4x4", "DPU MPE mode: 4x4|16x1|4x1")
	fs.StringVar(&raw.nthwNTK, "nthw-ntk", "8x8", "DPU nthw-ntk mode: 4x16|8x8|16x4")
	fs.StringVar(&raw.activation, "activation", "NONE",
		"the operation activation function: NONE|RELU|MULT|LRELU|ADD|SUB")
	fs.StringVar(&raw.activation, "act", "NONE", "the operation activation function (shorthand)")

	fs.IntVar(&raw.width, "width", 0, "tensor width")
	fs.IntVar(&raw.width, "x", 0, "tensor width (shorthand)")
	fs.IntVar(&raw.height, "height", 0, "tensor height")
	fs.IntVar(&raw.height, "y", 0, "tensor height (shorthand)")
	fs.IntVar(&raw.inputChannels, "input_channels", 0, "tensor input channels")
	fs.IntVar(&raw.inputChannels, "ic", 0, "tensor input channels (shorthand)")
	fs.IntVar(&raw.outputChannels, "output_channels", 0, "tensor output channels")
	fs.IntVar(&raw.outputChannels, "oc", 0, "tensor output channels (shorthand)")
	fs.IntVar(&raw.batch, "batch", 1, "tensor batch")
	fs.IntVar(&raw.batch, "b", 1, "tensor batch (shorthand)")
	fs.IntVar(&raw.kernel, "kernel", 1, "operation kernel")
	fs.IntVar(&raw.kernel, "k", 1, "operation kernel (shorthand)")
	fs.IntVar(&raw.padding, "padding", 0, "operation padding")
	fs.IntVar(&raw.padding, "p", 0, "operation padding (shorthand)")
	fs.IntVar(&raw.strides, "strides", 1, "operation strides")
	fs.IntVar(&raw.strides, "s", 1, "operation strides (shorthand)")

	fs.StringVar(&raw.inputDtype, "input_dtype", "UINT8",
		"the input datatype: UINT8|INT8|FLOAT16|BFLOAT16")
	fs.StringVar(&raw.outputDtype, "output_dtype", "UINT8",
		"the output datatype: UINT8|INT8|FLOAT16|BFLOAT16")
	fs.StringVar(&raw.outputLayout, "output_layout", "ZXY",
		"the ODU layout: ZXY|XZY|YXZ|YZX|ZYX|XYZ")
	fs.StringVar(&raw.isiStrategy, "isi_strategy", "clustering",
		"ISI strategy: clustering|split_over_h|split_over_k")

	fs.Float64Var(&raw.actSparsity, "act-sparsity", 0, "activation tensor sparsity")
	fs.BoolVar(&raw.paramSparsityEnabled, "param-sparsity-enabled", false,
		"weight tensor sparsity enabled")
	fs.Float64Var(&raw.paramSparsity, "param-sparsity", 0, "weight tensor sparsity")

	fs.IntVar(&raw.inputSwizzling, "input-swizzling", 0, "input tensor swizzling")
	fs.IntVar(&raw.paramSwizzling, "param-swizzling", 0, "weight tensor swizzling")
	fs.IntVar(&raw.outputSwizzling, "output-swizzling", 0, "output tensor swizzling")

	fs.IntVar(&raw.outputWriteTiles, "output-write-tiles", 1,
		"controls on how many tiles the DPU broadcast (1 = no broadcast)")

	fs.BoolVar(&raw.verbose, "verbose", false, "describe the workload before querying")

	return fs
}

// parseArgs parses and validates the full flag surface into options.
func parseArgs(name string, args []string) (*options, error) {
	var raw rawOptions
	fs := newFlagSet(name, &raw)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := &options{verbose: raw.verbose}

	var err error
	if opts.mode, err = profile.ParseMode(raw.mode); err != nil {
		return nil, err
	}
	if opts.target, err = profile.ParseTarget(raw.target); err != nil {
		return nil, err
	}

	p := &opts.params
	if p.Device, err = workload.ParseVPUDevice(strings.ToUpper(raw.device)); err != nil {
		return nil, err
	}
	if p.Operation, err = workload.ParseOperation(strings.ToUpper(raw.operation)); err != nil {
		return nil, err
	}
	if p.MPEMode, err = workload.ParseMPEMode(raw.mpeMode); err != nil {
		return nil, err
	}
	if p.NTHWNTK, err = workload.ParseNTHWNTK(raw.nthwNTK); err != nil {
		return nil, err
	}
	if p.Activation, err = workload.ParseActivation(strings.ToUpper(raw.activation)); err != nil {
		return nil, err
	}
	if p.InputDType, err = workload.ParseDataType(strings.ToUpper(raw.inputDtype)); err != nil {
		return nil, err
	}
	if p.OutputDType, err = workload.ParseDataType(strings.ToUpper(raw.outputDtype)); err != nil {
		return nil, err
	}
	if p.OutputLayout, err = workload.ParseLayout(strings.ToUpper(raw.outputLayout)); err != nil {
		return nil, err
	}
	if p.ISIStrategy, err = workload.ParseISIStrategy(raw.isiStrategy); err != nil {
		return nil, err
	}

	for _, dim := range []struct {
		name  string
		value int
	}{
		{"width", raw.width},
		{"height", raw.height},
		{"input_channels", raw.inputChannels},
		{"output_channels", raw.outputChannels},
	} {
		if dim.value < 1 {
			return nil, fmt.Errorf("--%s must be a positive integer", dim.name)
		}
	}

	p.Width = raw.width
	p.Height = raw.height
	p.InputChannels = raw.inputChannels
	p.OutputChannels = raw.outputChannels
	p.Batch = raw.batch
	p.Kernel = raw.kernel
	p.Padding = raw.padding
	p.Stride = raw.strides
	p.ActSparsity = raw.actSparsity
	p.WeightSparsityEnabled = raw.paramSparsityEnabled
	p.WeightSparsity = raw.paramSparsity
	p.InputSwizzling = workload.Swizzling(raw.inputSwizzling)
	p.WeightSwizzling = workload.Swizzling(raw.paramSwizzling)
	p.OutputSwizzling = workload.Swizzling(raw.outputSwizzling)
	p.OutputWriteTiles = raw.outputWriteTiles

	opts.modelPath = raw.model
	if opts.modelPath == "" {
		opts.modelPath = filepath.Join("models", strings.ToLower(p.Device.String())+".vpunn")
	}

	return opts, nil
}
