// Package profile routes a parsed operation to the right cost-model query.
package profile

import (
	"fmt"
	"io"

	"github.com/DariaMityagina/npu-nn-cost-model/pkg/workload"
)

// Mode selects which engine a query profiles.
type Mode int

const (
	ModeDPU Mode = iota
	ModeDMA
)

// String returns the canonical mode name
func (m Mode) String() string {
	switch m {
	case ModeDPU:
		return "DPU"
	case ModeDMA:
		return "DMA"
	}
	return fmt.Sprintf("unknown mode (%d)", int(m))
}

// ParseMode parses a profiling mode name
func ParseMode(s string) (Mode, error) {
	switch s {
	case "DPU":
		return ModeDPU, nil
	case "DMA":
		return ModeDMA, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Target selects the metric a query reports.
type Target int

const (
	TargetCycles Target = iota
	TargetPower
	TargetUtilization
)

// String returns the canonical target name
func (t Target) String() string {
	switch t {
	case TargetCycles:
		return "cycles"
	case TargetPower:
		return "power"
	case TargetUtilization:
		return "utilization"
	}
	return fmt.Sprintf("unknown target (%d)", int(t))
}

// ParseTarget parses a target metric name
func ParseTarget(s string) (Target, error) {
	switch s {
	case "cycles":
		return TargetCycles, nil
	case "power":
		return TargetPower, nil
	case "utilization":
		return TargetUtilization, nil
	}
	return 0, fmt.Errorf("unknown target %q", s)
}

// Estimator is the cost-model query surface the profiler dispatches to.
type Estimator interface {
	DPUCycles(workload.DPUWorkload) (float64, error)
	DPUActivityFactor(workload.DPUWorkload) (float64, error)
	HWUtilization(workload.DPUWorkload) (float64, error)
	DMACycles(workload.DMAWorkload) (float64, error)
	DMAPower(workload.DMAWorkload) (float64, error)
}

// Profiler builds workload descriptors and dispatches them to an Estimator.
type Profiler struct {
	model   Estimator
	verbose io.Writer
}

// Option is a function that configures a Profiler
type Option func(*Profiler)

// WithVerbose makes the profiler describe each descriptor to w before
// querying the model.
func WithVerbose(w io.Writer) Option {
	return func(p *Profiler) {
		p.verbose = w
	}
}

// New creates a Profiler over the given estimator.
func New(model Estimator, opts ...Option) *Profiler {
	p := &Profiler{model: model}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run builds the descriptor for (params, mode), performs exactly one model
// query for the target metric, and returns the raw result. Each call is
// independent; nothing is cached or reused between calls.
func (p *Profiler) Run(params workload.OperationParameters, mode Mode, target Target) (float64, error) {
	switch mode {
	case ModeDPU:
		return p.runDPU(params, target)
	case ModeDMA:
		return p.runDMA(params, target)
	}
	return 0, fmt.Errorf("unknown mode (%d)", int(mode))
}

func (p *Profiler) runDPU(params workload.OperationParameters, target Target) (float64, error) {
	w := workload.NewDPUWorkload(params)
	if p.verbose != nil {
		fmt.Fprint(p.verbose, w.Describe())
	}

	switch target {
	case TargetCycles:
		return p.model.DPUCycles(w)
	case TargetPower:
		return p.model.DPUActivityFactor(w)
	default:
		return p.model.HWUtilization(w)
	}
}

func (p *Profiler) runDMA(params workload.OperationParameters, target Target) (float64, error) {
	w, err := workload.NewDMAWorkload(params)
	if err != nil {
		return 0, err
	}
	if p.verbose != nil {
		fmt.Fprint(p.verbose, w.Describe())
	}

	// Utilization is a compute-engine concept; any non-cycles target maps
	// to the power query.
	if target == TargetCycles {
		return p.model.DMACycles(w)
	}
	return p.model.DMAPower(w)
}
