package costmodel

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func tinyNetwork() *Network {
	return &Network{
		InputSize: 2,
		Layers: []Layer{
			{
				In:         2,
				Out:        1,
				Activation: ActivationLinear,
				Weights:    []float32{1, 2},
				Bias:       []float32{0.5},
			},
		},
	}
}

func TestNetworkMarshalParse(t *testing.T) {
	data := tinyNetwork().Marshal()

	parsed, err := ParseNetwork(data)
	if err != nil {
		t.Fatalf("ParseNetwork: %v", err)
	}
	if parsed.InputSize != 2 || len(parsed.Layers) != 1 {
		t.Fatalf("shape: input %d, %d layers", parsed.InputSize, len(parsed.Layers))
	}

	got, err := parsed.Infer([]float32{3, 4})
	if err != nil {
		t.Fatalf("Infer: %v", err)
	}
	if math.Abs(got-11.5) > 1e-6 {
		t.Errorf("Infer = %g, want 11.5", got)
	}
}

func TestNetworkInferRelu(t *testing.T) {
	n := tinyNetwork()
	n.Layers[0].Activation = ActivationRelu
	n.Layers[0].Weights = []float32{-1, -1}
	n.Layers[0].Bias = []float32{0}

	got, err := n.Infer([]float32{3, 4})
	if err != nil {
		t.Fatalf("Infer: %v", err)
	}
	if got != 0 {
		t.Errorf("relu output = %g, want 0", got)
	}
}

func TestNetworkInferFeatureSize(t *testing.T) {
	_, err := tinyNetwork().Infer([]float32{1})
	if !errors.Is(err, ErrFeatureSize) {
		t.Errorf("got %v, want ErrFeatureSize", err)
	}
}

func TestNetworkInferNegativeOutput(t *testing.T) {
	n := tinyNetwork()
	n.Layers[0].Bias = []float32{-100}

	_, err := n.Infer([]float32{1, 1})
	if !errors.Is(err, ErrInvalidOutput) {
		t.Errorf("got %v, want ErrInvalidOutput", err)
	}
}

func TestParseNetworkErrors(t *testing.T) {
	valid := tinyNetwork().Marshal()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncatedModel},
		{"bad magic", append([]byte{0, 0, 0, 0}, valid[4:]...), ErrBadMagic},
		{"truncated weights", valid[:len(valid)-4], ErrTruncatedModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNetwork(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseNetworkVersion(t *testing.T) {
	data := tinyNetwork().Marshal()
	data[4] = 99 // bump the version field
	_, err := ParseNetwork(data)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("got %v, want ErrUnsupportedVersion", err)
	}
}

func TestParseNetworkDegenerateLayer(t *testing.T) {
	// A layer declaring zero outputs would leave Infer with nothing to
	// return; both degenerate axes must be rejected at parse time.
	zeroOut := &Network{
		InputSize: 2,
		Layers: []Layer{
			{In: 2, Out: 0, Activation: ActivationLinear},
		},
	}
	if _, err := ParseNetwork(zeroOut.Marshal()); !errors.Is(err, ErrLayerShapeMismatch) {
		t.Errorf("zero-output layer: got %v, want ErrLayerShapeMismatch", err)
	}

	zeroIn := &Network{
		InputSize: 0,
		Layers: []Layer{
			{In: 0, Out: 1, Activation: ActivationLinear, Bias: []float32{1}},
		},
	}
	if _, err := ParseNetwork(zeroIn.Marshal()); !errors.Is(err, ErrLayerShapeMismatch) {
		t.Errorf("zero-input layer: got %v, want ErrLayerShapeMismatch", err)
	}
}

func TestParseNetworkOversizedDeclaration(t *testing.T) {
	// A tiny file declaring enormous layer shapes must be refused before
	// any weight buffer is allocated.
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(networkMagic))
	binary.Write(&buf, binary.LittleEndian, uint32(networkVersion))
	binary.Write(&buf, binary.LittleEndian, uint32(0xFFFFFFFF)) // input size
	binary.Write(&buf, binary.LittleEndian, uint32(1))          // layer count
	binary.Write(&buf, binary.LittleEndian, uint32(0xFFFFFFFF)) // layer in
	binary.Write(&buf, binary.LittleEndian, uint32(0xFFFFFFFF)) // layer out
	binary.Write(&buf, binary.LittleEndian, uint32(0))          // activation

	if _, err := ParseNetwork(buf.Bytes()); !errors.Is(err, ErrTruncatedModel) {
		t.Errorf("oversized declaration: got %v, want ErrTruncatedModel", err)
	}
}

func TestParseNetworkShapeChain(t *testing.T) {
	n := tinyNetwork()
	n.Layers = append(n.Layers, Layer{
		In:         3, // previous layer produces 1
		Out:        1,
		Activation: ActivationLinear,
		Weights:    []float32{1, 1, 1},
		Bias:       []float32{0},
	})
	_, err := ParseNetwork(n.Marshal())
	if !errors.Is(err, ErrLayerShapeMismatch) {
		t.Errorf("got %v, want ErrLayerShapeMismatch", err)
	}
}
