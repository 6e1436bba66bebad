package costmodel

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Serialized network container layout (all little-endian):
//
//	magic      uint32  'V' 'P' 'U' 'N'
//	version    uint32  currently 1
//	inputSize  uint32
//	layerCount uint32
//	per layer:
//	  inSize     uint32
//	  outSize    uint32
//	  activation uint32
//	  weights    outSize*inSize float32, row-major
//	  bias       outSize float32
const (
	networkMagic   = 0x4E555056 // "VPUN"
	networkVersion = 1
)

// Activation selects the per-layer nonlinearity.
type Activation uint32

const (
	ActivationLinear Activation = iota
	ActivationRelu
	ActivationSigmoid
)

// Layer is one dense layer of the cost network.
type Layer struct {
	In         int
	Out        int
	Activation Activation
	Weights    []float32 // Out rows of In columns
	Bias       []float32 // Out entries
}

// Network is the trained feed-forward cost network.
type Network struct {
	InputSize int
	Layers    []Layer
}

// ParseNetwork parses a serialized network from raw bytes.
func ParseNetwork(data []byte) (*Network, error) {
	r := bytes.NewReader(data)

	var header struct {
		Magic      uint32
		Version    uint32
		InputSize  uint32
		LayerCount uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, ErrTruncatedModel
	}
	if header.Magic != networkMagic {
		return nil, ErrBadMagic
	}
	if header.Version != networkVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header.Version)
	}
	if header.LayerCount == 0 {
		return nil, ErrNoLayers
	}

	n := &Network{InputSize: int(header.InputSize)}
	prevOut := n.InputSize
	for i := 0; i < int(header.LayerCount); i++ {
		var shape struct {
			In         uint32
			Out        uint32
			Activation uint32
		}
		if err := binary.Read(r, binary.LittleEndian, &shape); err != nil {
			return nil, ErrTruncatedModel
		}
		if shape.In < 1 || shape.Out < 1 {
			return nil, fmt.Errorf("%w: layer %d declares %dx%d", ErrLayerShapeMismatch, i, shape.In, shape.Out)
		}
		if int(shape.In) != prevOut {
			return nil, fmt.Errorf("%w: layer %d expects %d inputs, previous layer produces %d",
				ErrLayerShapeMismatch, i, shape.In, prevOut)
		}
		// bound the declared sizes against the bytes actually present
		// before allocating anything
		need := (uint64(shape.In)*uint64(shape.Out) + uint64(shape.Out)) * 4
		if need > uint64(r.Len()) {
			return nil, ErrTruncatedModel
		}
		layer := Layer{
			In:         int(shape.In),
			Out:        int(shape.Out),
			Activation: Activation(shape.Activation),
			Weights:    make([]float32, int(shape.In)*int(shape.Out)),
			Bias:       make([]float32, int(shape.Out)),
		}
		if err := binary.Read(r, binary.LittleEndian, layer.Weights); err != nil {
			return nil, ErrTruncatedModel
		}
		if err := binary.Read(r, binary.LittleEndian, layer.Bias); err != nil {
			return nil, ErrTruncatedModel
		}
		n.Layers = append(n.Layers, layer)
		prevOut = layer.Out
	}
	return n, nil
}

// Marshal serializes the network into the container layout.
func (n *Network) Marshal() []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(networkMagic))
	binary.Write(&buf, binary.LittleEndian, uint32(networkVersion))
	binary.Write(&buf, binary.LittleEndian, uint32(n.InputSize))
	binary.Write(&buf, binary.LittleEndian, uint32(len(n.Layers)))
	for _, layer := range n.Layers {
		binary.Write(&buf, binary.LittleEndian, uint32(layer.In))
		binary.Write(&buf, binary.LittleEndian, uint32(layer.Out))
		binary.Write(&buf, binary.LittleEndian, uint32(layer.Activation))
		binary.Write(&buf, binary.LittleEndian, layer.Weights)
		binary.Write(&buf, binary.LittleEndian, layer.Bias)
	}
	return buf.Bytes()
}

// Infer runs the network over a feature vector and returns the first output.
func (n *Network) Infer(features []float32) (float64, error) {
	if len(features) != n.InputSize {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureSize, len(features), n.InputSize)
	}

	current := features
	for _, layer := range n.Layers {
		next := make([]float32, layer.Out)
		for row := 0; row < layer.Out; row++ {
			sum := layer.Bias[row]
			weights := layer.Weights[row*layer.In : (row+1)*layer.In]
			for col, w := range weights {
				sum += w * current[col]
			}
			switch layer.Activation {
			case ActivationRelu:
				if sum < 0 {
					sum = 0
				}
			case ActivationSigmoid:
				sum = float32(1 / (1 + math.Exp(-float64(sum))))
			}
			next[row] = sum
		}
		current = next
	}

	out := float64(current[0])
	if math.IsNaN(out) || math.IsInf(out, 0) || out < 0 {
		return 0, ErrInvalidOutput
	}
	return out, nil
}
