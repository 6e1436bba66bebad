package costmodel

import "github.com/DariaMityagina/npu-nn-cost-model/pkg/workload"

// Analytic estimates used when no trained network is available. These are
// idealized hardware-occupancy numbers, not calibrated predictions; they
// keep the tool answering in degraded mode.

// macsPerCycle is the MAC-array width per device generation.
var macsPerCycle = map[workload.VPUDevice]int{
	workload.VPU20: 256,
	workload.VPU21: 256,
	workload.VPU27: 2048,
	workload.VPU40: 2048,
}

// dmaBytesPerCycle is the DDR-to-CMX sustained bandwidth per device.
var dmaBytesPerCycle = map[workload.VPUDevice]int{
	workload.VPU20: 16,
	workload.VPU21: 16,
	workload.VPU27: 32,
	workload.VPU40: 64,
}

// dmaLatencyCycles is the fixed DMA setup latency per device.
var dmaLatencyCycles = map[workload.VPUDevice]int{
	workload.VPU20: 100,
	workload.VPU21: 100,
	workload.VPU27: 950,
	workload.VPU40: 1000,
}

// deviceConstant resolves a per-device table entry, falling back to the
// oldest generation for devices outside the tables so library callers
// never divide by a missing entry.
func deviceConstant(table map[workload.VPUDevice]int, device workload.VPUDevice) int {
	if v, ok := table[device]; ok {
		return v
	}
	return table[workload.VPU20]
}

// theoreticalMACs counts the multiply-accumulates the operation performs.
func theoreticalMACs(w workload.DPUWorkload) float64 {
	outputPlane := float64(w.OutputWidth() * w.OutputHeight() * w.OutputChannels * w.InputBatch)
	kernelArea := float64(w.KernelHeight * w.KernelWidth)

	var macs float64
	switch w.Operation {
	case workload.Convolution, workload.CMConvolution:
		macs = outputPlane * kernelArea * float64(w.InputChannels)
	case workload.DWConvolution, workload.MaxPool:
		macs = outputPlane * kernelArea
	default: // element-wise
		macs = outputPlane
	}

	if w.WeightSparsityEnabled && w.WeightSparsityRate > 0 && w.WeightSparsityRate < 1 {
		macs *= 1 - w.WeightSparsityRate
	}
	return macs
}

// theoreticalDPUCycles estimates ideal DPU cycles at full MAC utilization.
func theoreticalDPUCycles(w workload.DPUWorkload) float64 {
	perCycle := float64(deviceConstant(macsPerCycle, w.Device))
	if w.InputDType.IsFloat() {
		// fp compute runs the MAC array at half rate
		perCycle /= 2
	}
	cycles := theoreticalMACs(w) / perCycle
	if cycles < 1 {
		cycles = 1
	}
	return cycles
}

// theoreticalDMACycles estimates transfer cycles from payload size,
// sustained bandwidth and fixed setup latency.
func theoreticalDMACycles(w workload.DMAWorkload) float64 {
	payload := w.InputBytes()
	if out := w.OutputBytes(); out > payload {
		payload = out
	}
	transfer := float64(payload) / float64(deviceConstant(dmaBytesPerCycle, w.Device))
	if transfer < 1 {
		transfer = 1
	}
	return float64(deviceConstant(dmaLatencyCycles, w.Device)) + transfer
}

// theoreticalDMAPower estimates the DMA activity factor as the fraction of
// the transfer spent moving payload rather than waiting on setup.
func theoreticalDMAPower(w workload.DMAWorkload) float64 {
	total := theoreticalDMACycles(w)
	latency := float64(deviceConstant(dmaLatencyCycles, w.Device))
	return (total - latency) / total
}
