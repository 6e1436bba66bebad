package costmodel

import "errors"

// Errors for model loading and queries
var (
	ErrBadMagic           = errors.New("not a VPUNN model file")
	ErrUnsupportedVersion = errors.New("unsupported VPUNN model version")
	ErrTruncatedModel     = errors.New("truncated VPUNN model file")
	ErrNoLayers           = errors.New("VPUNN model has no layers")
	ErrLayerShapeMismatch = errors.New("VPUNN model layer shapes do not chain")
	ErrFeatureSize        = errors.New("feature vector size does not match model input")
	ErrInvalidOutput      = errors.New("model output outside the valid range")
)
