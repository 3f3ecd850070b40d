package contour

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Options controls how isolines are extracted from a grid.
type Options struct {
	// Interpolate moves nodes to where the threshold crosses their edge.
	// Otherwise nodes stay on edge midpoints.
	Interpolate bool
	// EvenSpacing resamples every polyline so its points are evenly spaced.
	EvenSpacing bool
	// GridLayer appends the cell outlines as an extra, final layer.
	GridLayer bool
}

// Thresholds returns the threshold of every layer. A single layer sits at
// the middle of the bounds; several layers span the bounds inclusively.
func Thresholds(count int, low, high float64) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrLayerCount, count)
	}
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) {
		return nil, fmt.Errorf("%w: got [%g, %g]", ErrBounds, low, high)
	}
	if count == 1 {
		return []float64{(low + high) / 2}, nil
	}
	thresholds := floats.Span(make([]float64, count), low, high)
	thresholds[0], thresholds[count-1] = low, high
	return thresholds, nil
}

// Isolines extracts the polylines along which the field crosses threshold.
func (g *Grid) Isolines(threshold float64, opts Options) (Layer, error) {
	g.reset(opts.Interpolate)
	for i := range g.cells {
		g.update(&g.cells[i], threshold, opts.Interpolate)
	}

	paths, err := g.extractPaths()
	if err != nil {
		return nil, fmt.Errorf("threshold %g: %w", threshold, err)
	}
	layer := make(Layer, 0, len(paths))
	for _, path := range paths {
		if opts.EvenSpacing {
			if path, err = EvenlySpace(path, len(path)); err != nil {
				return nil, err
			}
		}
		layer = append(layer, path)
	}
	return layer, nil
}

// Layers extracts one layer per threshold returned by Thresholds(count, low, high).
// Passes share the grid's node graph and therefore run one after another.
func (g *Grid) Layers(count int, low, high float64, opts Options) ([]Layer, error) {
	thresholds, err := Thresholds(count, low, high)
	if err != nil {
		return nil, err
	}

	layers := make([]Layer, 0, len(thresholds)+1)
	for _, threshold := range thresholds {
		layer, err := g.Isolines(threshold, opts)
		if err != nil {
			return nil, err
		}
		Logf("contour: threshold %.4f: %d polylines", threshold, len(layer))
		layers = append(layers, layer)
	}
	if opts.GridLayer {
		layers = append(layers, g.Outline())
	}
	return layers, nil
}
