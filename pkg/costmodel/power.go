package costmodel

import (
	"math"

	"github.com/DariaMityagina/npu-nn-cost-model/pkg/workload"
)

// Power factor lookup tables, per operation, keyed by log2 of the input
// channel count. Values come from silicon simulation measurements; entries
// between table keys are linearly interpolated on the log2 scale.
var powerFactorLUT = map[workload.Operation]map[int]float64{
	workload.Convolution: {
		4: 0.87,
		5: 0.92,
		6: 1.0,
		7: 0.95,
		8: 0.86,
		9: 0.87,
	},
	workload.CMConvolution: {
		6: 0.9,
	},
	workload.DWConvolution: {
		6: 0.6,
	},
	workload.Eltwise: {
		6: 0.25,
	},
	workload.MaxPool: {
		6: 0.44,
	},
}

// fpPowerRatio scales the power factor when the workload computes in the
// floating-point pipeline.
const fpPowerRatio = 0.87

// powerFactor returns the interpolated power factor for an operation with
// the given input channel count.
func powerFactor(op workload.Operation, inputChannels int, fpCompute bool) float64 {
	table, ok := powerFactorLUT[op]
	if !ok {
		table = powerFactorLUT[workload.Convolution]
	}
	if inputChannels < 1 {
		inputChannels = 1
	}
	chLog2 := math.Log2(float64(inputChannels))

	smaller, greater := math.MinInt, math.MaxInt
	for key := range table {
		if float64(key) <= chLog2 && key > smaller {
			smaller = key
		}
		if float64(key) >= chLog2 && key < greater {
			greater = key
		}
	}

	var value float64
	switch {
	case smaller == math.MinInt: // below the table, clamp to smallest entry
		value = table[greater]
	case greater == math.MaxInt: // above the table, clamp to largest entry
		value = table[smaller]
	case smaller == greater:
		value = table[smaller]
	default:
		interval := float64(greater - smaller)
		value = (float64(greater)-chLog2)/interval*table[smaller] +
			(chLog2-float64(smaller))/interval*table[greater]
	}

	if fpCompute {
		value *= fpPowerRatio
	}
	return value
}
