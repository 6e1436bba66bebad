//go:build integration

package integration

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/DariaMityagina/npu-nn-cost-model/pkg/costmodel"
	"github.com/DariaMityagina/npu-nn-cost-model/pkg/profile"
	"github.com/DariaMityagina/npu-nn-cost-model/testutil"
)

// writeTestModel serializes a constant-output network that satisfies the
// DPU preprocessing interface.
func writeTestModel(t *testing.T, cycles float32) string {
	t.Helper()

	const inputSize = 25
	n := &costmodel.Network{
		InputSize: inputSize,
		Layers: []costmodel.Layer{
			{
				In:         inputSize,
				Out:        1,
				Activation: costmodel.ActivationLinear,
				Weights:    make([]float32, inputSize),
				Bias:       []float32{cycles},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "vpu_2_7.vpunn")
	if err := os.WriteFile(path, n.Marshal(), 0644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	return path
}

func TestEndToEndLoadedModel(t *testing.T) {
	model := costmodel.Load(writeTestModel(t, 8192))
	if !model.Initialized() {
		t.Fatalf("model failed to load: %v", model.LoadError())
	}

	profiler := profile.New(model)
	params := testutil.ConvParameters()

	for _, target := range []profile.Target{
		profile.TargetCycles, profile.TargetPower, profile.TargetUtilization,
	} {
		result, err := profiler.Run(params, profile.ModeDPU, target)
		if err != nil {
			t.Fatalf("DPU %s: %v", target, err)
		}
		if result <= 0 {
			t.Errorf("DPU %s = %g, want a positive metric", target, result)
		}
	}

	for _, target := range []profile.Target{profile.TargetCycles, profile.TargetPower} {
		result, err := profiler.Run(params, profile.ModeDMA, target)
		if err != nil {
			t.Fatalf("DMA %s: %v", target, err)
		}
		if result <= 0 {
			t.Errorf("DMA %s = %g, want a positive metric", target, result)
		}
	}
}

func TestEndToEndDegradedModel(t *testing.T) {
	model := costmodel.Load(filepath.Join(t.TempDir(), "missing.vpunn"))
	if model.Initialized() {
		t.Fatal("missing model file must leave the handle degraded")
	}

	profiler := profile.New(model)
	result, err := profiler.Run(testutil.ConvParameters(), profile.ModeDPU, profile.TargetCycles)
	if err != nil {
		t.Fatalf("degraded dispatch: %v", err)
	}
	if result <= 0 {
		t.Errorf("degraded cycles = %g, want a positive fallback estimate", result)
	}
}

func TestConcurrentDispatch(t *testing.T) {
	// Queries share no mutable state; parallel dispatches over one handle
	// must agree with a serial one.
	model := costmodel.Load(writeTestModel(t, 4096))
	profiler := profile.New(model)
	params := testutil.ConvParameters()

	want, err := profiler.Run(params, profile.ModeDPU, profile.TargetCycles)
	if err != nil {
		t.Fatalf("serial run: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]float64, 16)
	errs := make([]error, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = profiler.Run(params, profile.ModeDPU, profile.TargetCycles)
		}(i)
	}
	wg.Wait()

	for i := range results {
		if errs[i] != nil {
			t.Fatalf("parallel run %d: %v", i, errs[i])
		}
		if results[i] != want {
			t.Errorf("parallel run %d = %g, want %g", i, results[i], want)
		}
	}
}
