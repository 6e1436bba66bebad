package costmodel

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/DariaMityagina/npu-nn-cost-model/testutil"
)

// writeModel serializes a network to a temp file and returns its path.
func writeModel(t *testing.T, n *Network) string {
	t.Helper()
	return testutil.TempFile(t, "test.vpunn", n.Marshal())
}

// constantModel is a trained-model stand-in that always predicts cycles.
func constantModel(cycles float32) *Network {
	return &Network{
		InputSize: dpuFeatureCount,
		Layers: []Layer{
			{
				In:         dpuFeatureCount,
				Out:        1,
				Activation: ActivationLinear,
				Weights:    make([]float32, dpuFeatureCount),
				Bias:       []float32{cycles},
			},
		},
	}
}

func TestLoadMissingFile(t *testing.T) {
	m := Load(filepath.Join(t.TempDir(), "nope.vpunn"))

	if m.Initialized() {
		t.Fatal("missing file must leave the model uninitialized")
	}
	if m.LoadError() == nil {
		t.Fatal("missing file must record a load error")
	}

	// degraded mode still answers every query
	w := convWorkload()
	cycles, err := m.DPUCycles(w)
	if err != nil || cycles <= 0 {
		t.Errorf("degraded DPUCycles = %g, %v", cycles, err)
	}
	util, err := m.HWUtilization(w)
	if err != nil {
		t.Fatalf("degraded HWUtilization: %v", err)
	}
	if util != 1 {
		t.Errorf("degraded utilization = %g, want 1 (ideal vs ideal)", util)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	m := Load(testutil.TempFile(t, "garbage.vpunn", []byte("not a model at all")))
	if m.Initialized() {
		t.Fatal("garbage file must leave the model uninitialized")
	}
	if !errors.Is(m.LoadError(), ErrBadMagic) {
		t.Errorf("load error = %v, want ErrBadMagic", m.LoadError())
	}
}

func TestLoadZeroOutputModel(t *testing.T) {
	// A model whose head layer produces nothing must degrade the handle
	// at load, and queries must keep answering from the fallback.
	headless := &Network{
		InputSize: dpuFeatureCount,
		Layers: []Layer{
			{In: dpuFeatureCount, Out: 0, Activation: ActivationLinear},
		},
	}

	m := Load(writeModel(t, headless))
	if m.Initialized() {
		t.Fatal("zero-output model must leave the handle uninitialized")
	}
	if !errors.Is(m.LoadError(), ErrLayerShapeMismatch) {
		t.Errorf("load error = %v, want ErrLayerShapeMismatch", m.LoadError())
	}

	cycles, err := m.DPUCycles(convWorkload())
	if err != nil || cycles <= 0 {
		t.Errorf("degraded DPUCycles = %g, %v", cycles, err)
	}
}

func TestLoadWrongInputSize(t *testing.T) {
	m := Load(writeModel(t, tinyNetwork()))
	if m.Initialized() {
		t.Fatal("a 2-input network cannot serve the DPU preprocessing")
	}
	if !errors.Is(m.LoadError(), ErrFeatureSize) {
		t.Errorf("load error = %v, want ErrFeatureSize", m.LoadError())
	}
}

func TestLoadedModelQueries(t *testing.T) {
	m := Load(writeModel(t, constantModel(4096)))
	if !m.Initialized() {
		t.Fatalf("load failed: %v", m.LoadError())
	}

	w := convWorkload()

	cycles, err := m.DPUCycles(w)
	if err != nil {
		t.Fatalf("DPUCycles: %v", err)
	}
	if math.Abs(cycles-4096) > 1e-6 {
		t.Errorf("cycles = %g, want the network's 4096", cycles)
	}

	util, err := m.HWUtilization(w)
	if err != nil {
		t.Fatalf("HWUtilization: %v", err)
	}
	// ideal 32 cycles against the predicted 4096
	if math.Abs(util-32.0/4096.0) > 1e-6 {
		t.Errorf("utilization = %g, want %g", util, 32.0/4096.0)
	}

	activity, err := m.DPUActivityFactor(w)
	if err != nil {
		t.Fatalf("DPUActivityFactor: %v", err)
	}
	if activity <= 0 || activity > 1 {
		t.Errorf("activity factor out of range: %g", activity)
	}
	if math.Abs(activity-util*powerFactor(w.Operation, w.InputChannels, false)) > 1e-9 {
		t.Errorf("activity %g is not power-factor-scaled utilization", activity)
	}
}

func TestUtilizationClamped(t *testing.T) {
	// A network predicting fewer cycles than the ideal clamps to 1.
	m := Load(writeModel(t, constantModel(1)))
	if !m.Initialized() {
		t.Fatalf("load failed: %v", m.LoadError())
	}

	util, err := m.HWUtilization(convWorkload())
	if err != nil {
		t.Fatalf("HWUtilization: %v", err)
	}
	if util != 1 {
		t.Errorf("utilization = %g, want clamped 1", util)
	}
}

func TestDMAQueriesAreAnalytic(t *testing.T) {
	// DMA estimates do not depend on the trained network.
	loaded := Load(writeModel(t, constantModel(4096)))
	degraded := Load(filepath.Join(t.TempDir(), "nope.vpunn"))

	w := dmaWorkload(t)

	a, err := loaded.DMACycles(w)
	if err != nil {
		t.Fatalf("DMACycles: %v", err)
	}
	b, err := degraded.DMACycles(w)
	if err != nil {
		t.Fatalf("DMACycles: %v", err)
	}
	if a != b {
		t.Errorf("DMA cycles differ with model state: %g vs %g", a, b)
	}

	power, err := loaded.DMAPower(w)
	if err != nil {
		t.Fatalf("DMAPower: %v", err)
	}
	if power <= 0 || power >= 1 {
		t.Errorf("DMA power out of range: %g", power)
	}
}
