package costmodel

import (
	"fmt"

	"github.com/DariaMityagina/npu-nn-cost-model/pkg/workload"
)

// CostModel is the handle to the performance-estimation engine. When the
// trained network loads it answers DPU queries by inference; otherwise the
// handle stays usable in degraded mode, answering from the analytic
// estimates. DMA queries are always analytic.
//
// A CostModel performs no writes after construction, so independent queries
// are safe to run concurrently.
type CostModel struct {
	path    string
	nn      *Network
	loadErr error
}

// Load opens a cost model from a serialized network file. Load never fails
// hard: a missing or malformed file produces an uninitialized model whose
// queries fall back to the analytic estimates, with the cause retrievable
// through LoadError.
func Load(path string) *CostModel {
	m := &CostModel{path: path}

	data, err := readModelFile(path)
	if err != nil {
		m.loadErr = err
		return m
	}
	defer data.Close()

	nn, err := ParseNetwork(data.data)
	if err != nil {
		m.loadErr = fmt.Errorf("failed to parse model %s: %w", path, err)
		return m
	}
	if nn.InputSize != dpuFeatureCount {
		m.loadErr = fmt.Errorf("model %s: %w: input size %d, preprocessing v%d produces %d",
			path, ErrFeatureSize, nn.InputSize, preprocessingVersion, dpuFeatureCount)
		return m
	}

	m.nn = nn
	return m
}

// Path returns the model file path the handle was loaded from.
func (m *CostModel) Path() string {
	return m.path
}

// Initialized reports whether the trained network loaded successfully.
func (m *CostModel) Initialized() bool {
	return m.nn != nil
}

// LoadError returns why the trained network is unavailable, or nil.
func (m *CostModel) LoadError() error {
	return m.loadErr
}

// DPUCycles estimates the execution cycles of a DPU workload.
func (m *CostModel) DPUCycles(w workload.DPUWorkload) (float64, error) {
	if m.nn == nil {
		return theoreticalDPUCycles(w), nil
	}
	cycles, err := m.nn.Infer(dpuFeatures(w))
	if err != nil {
		return 0, fmt.Errorf("DPU query: %w", err)
	}
	return cycles, nil
}

// HWUtilization estimates the MAC-array utilization of a DPU workload as
// the ratio of ideal cycles to estimated cycles, in (0, 1].
func (m *CostModel) HWUtilization(w workload.DPUWorkload) (float64, error) {
	cycles, err := m.DPUCycles(w)
	if err != nil {
		return 0, err
	}
	if cycles <= 0 {
		return 0, fmt.Errorf("DPU query: %w", ErrInvalidOutput)
	}
	utilization := theoreticalDPUCycles(w) / cycles
	if utilization > 1 {
		utilization = 1
	}
	return utilization, nil
}

// DPUActivityFactor estimates the power activity factor of a DPU workload
// by scaling its utilization with the per-operation power factor.
func (m *CostModel) DPUActivityFactor(w workload.DPUWorkload) (float64, error) {
	utilization, err := m.HWUtilization(w)
	if err != nil {
		return 0, err
	}
	factor := powerFactor(w.Operation, w.InputChannels, w.InputDType.IsFloat())
	activity := factor * utilization
	if activity > 1 {
		activity = 1
	}
	return activity, nil
}

// DMACycles estimates the transfer cycles of a DMA workload.
func (m *CostModel) DMACycles(w workload.DMAWorkload) (float64, error) {
	return theoreticalDMACycles(w), nil
}

// DMAPower estimates the activity factor of a DMA workload.
func (m *CostModel) DMAPower(w workload.DMAWorkload) (float64, error) {
	return theoreticalDMAPower(w), nil
}
