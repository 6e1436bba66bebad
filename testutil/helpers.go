package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DariaMityagina/npu-nn-cost-model/pkg/workload"
)

// TempFile creates a temporary file with given content
func TempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	return path
}

// ConvParameters returns a plausible convolution parameter set that tests
// can tweak per case.
func ConvParameters() workload.OperationParameters {
	return workload.OperationParameters{
		Device:           workload.VPU27,
		Operation:        workload.Convolution,
		Width:            56,
		Height:           56,
		InputChannels:    64,
		OutputChannels:   64,
		Batch:            1,
		Kernel:           3,
		Padding:          1,
		Stride:           1,
		InputDType:       workload.UInt8,
		OutputDType:      workload.UInt8,
		OutputLayout:     workload.LayoutZXY,
		Activation:       workload.ActNone,
		MPEMode:          workload.MPE4x4,
		NTHWNTK:          workload.NTHWNTK8x8,
		OutputWriteTiles: 1,
		ISIStrategy:      workload.Clustering,
	}
}
