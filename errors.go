package contour

import "errors"

var (
	// ErrResolution indicates a grid resolution below one cell.
	ErrResolution = errors.New("contour: grid resolution must be at least 1")
	// ErrSize indicates non-positive or non-finite grid dimensions.
	ErrSize = errors.New("contour: grid dimensions must be positive and finite")
	// ErrNilField indicates a missing scalar field.
	ErrNilField = errors.New("contour: scalar field must not be nil")
	// ErrLayerCount indicates a layer count below one.
	ErrLayerCount = errors.New("contour: layer count must be at least 1")
	// ErrBounds indicates NaN or infinite threshold bounds.
	ErrBounds = errors.New("contour: threshold bounds must be finite")
	// ErrNodeDegree indicates an isoline node joined in more than two directions.
	// It points at a broken case table or grid topology, never at bad input.
	ErrNodeDegree = errors.New("contour: isoline node connected in more than two directions")
	// ErrTooFewPoints indicates a polyline too short for the requested operation.
	ErrTooFewPoints = errors.New("contour: polyline needs at least 2 points")
	// ErrUnsupportedFormat indicates an output file extension with no drawer.
	ErrUnsupportedFormat = errors.New("contour: unsupported output format")
)
