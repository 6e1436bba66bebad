package testutil

import (
	"github.com/DariaMityagina/npu-nn-cost-model/pkg/workload"
)

// FakeEstimator implements the profiler's estimator surface, recording which
// entry points were called and returning canned results.
type FakeEstimator struct {
	DPUCyclesCalls         int
	DPUActivityFactorCalls int
	HWUtilizationCalls     int
	DMACyclesCalls         int
	DMAPowerCalls          int

	LastDPUWorkload workload.DPUWorkload
	LastDMAWorkload workload.DMAWorkload

	Result float64
	Err    error
}

// NewFakeEstimator creates a fake estimator returning the given result
func NewFakeEstimator(result float64) *FakeEstimator {
	return &FakeEstimator{Result: result}
}

// DPUCycles records the call and returns the canned result
func (f *FakeEstimator) DPUCycles(w workload.DPUWorkload) (float64, error) {
	f.DPUCyclesCalls++
	f.LastDPUWorkload = w
	return f.Result, f.Err
}

// DPUActivityFactor records the call and returns the canned result
func (f *FakeEstimator) DPUActivityFactor(w workload.DPUWorkload) (float64, error) {
	f.DPUActivityFactorCalls++
	f.LastDPUWorkload = w
	return f.Result, f.Err
}

// HWUtilization records the call and returns the canned result
func (f *FakeEstimator) HWUtilization(w workload.DPUWorkload) (float64, error) {
	f.HWUtilizationCalls++
	f.LastDPUWorkload = w
	return f.Result, f.Err
}

// DMACycles records the call and returns the canned result
func (f *FakeEstimator) DMACycles(w workload.DMAWorkload) (float64, error) {
	f.DMACyclesCalls++
	f.LastDMAWorkload = w
	return f.Result, f.Err
}

// DMAPower records the call and returns the canned result
func (f *FakeEstimator) DMAPower(w workload.DMAWorkload) (float64, error) {
	f.DMAPowerCalls++
	f.LastDMAWorkload = w
	return f.Result, f.Err
}

// TotalCalls returns the number of estimator queries recorded.
func (f *FakeEstimator) TotalCalls() int {
	return f.DPUCyclesCalls + f.DPUActivityFactorCalls + f.HWUtilizationCalls +
		f.DMACyclesCalls + f.DMAPowerCalls
}
