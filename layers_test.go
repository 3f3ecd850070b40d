package contour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholds(t *testing.T) {
	got, err := Thresholds(4, 0.25, 0.85)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{0.25, 0.45, 0.65, 0.85}, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Thresholds mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0.25, got[0])
	assert.Equal(t, 0.85, got[3])

	got, err = Thresholds(1, 0.2, 0.6)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.4, got[0], 1e-12)

	_, err = Thresholds(0, 0, 1)
	assert.ErrorIs(t, err, ErrLayerCount)
	_, err = Thresholds(3, math.NaN(), 1)
	assert.ErrorIs(t, err, ErrBounds)
	_, err = Thresholds(3, 0, math.Inf(1))
	assert.ErrorIs(t, err, ErrBounds)
}

// square is 1 inside [.25, .75]² and 0 elsewhere.
func square(u, v float64) float64 {
	if u >= 0.25 && u <= 0.75 && v >= 0.25 && v <= 0.75 {
		return 1
	}
	return 0
}

func TestIsolinesRectangle(t *testing.T) {
	g, err := NewGrid(8, Pt(0, 0), Pt(8, 8), square)
	require.NoError(t, err)

	for _, opts := range []Options{{Interpolate: true}, {Interpolate: true, EvenSpacing: true}} {
		layer, err := g.Isolines(0.5, opts)
		require.NoError(t, err)
		require.Len(t, layer, 1)

		pl := layer[0]
		assert.Len(t, pl, 21)
		assert.True(t, pl.Closed(closeTolerance))
		if opts.EvenSpacing {
			continue
		}
		for _, p := range pl {
			onEdge := p.X == 1.5 || p.X == 6.5 || p.Y == 1.5 || p.Y == 6.5
			inside := p.X >= 1.5 && p.X <= 6.5 && p.Y >= 1.5 && p.Y <= 6.5
			assert.True(t, onEdge && inside, "point %v off the rectangle", p)
		}
	}
}

func TestIsolinesMidpointsWithoutInterpolation(t *testing.T) {
	g, err := NewGrid(8, Pt(0, 0), Pt(8, 8), RadialField())
	require.NoError(t, err)

	// Interpolated pass first so the reset has something to undo.
	_, err = g.Isolines(0.3, Options{Interpolate: true})
	require.NoError(t, err)
	layer, err := g.Isolines(0.3, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, layer)

	for _, pl := range layer {
		for _, p := range pl {
			onVertical := p.X == math.Trunc(p.X) && p.Y-math.Trunc(p.Y) == 0.5
			onHorizontal := p.Y == math.Trunc(p.Y) && p.X-math.Trunc(p.X) == 0.5
			assert.True(t, onVertical || onHorizontal, "point %v is not an edge midpoint", p)
		}
	}
}

func TestIsolinesUniformField(t *testing.T) {
	for _, v := range []float64{0, 1, 0.5} {
		g, err := NewGrid(5, Pt(0, 0), Pt(1, 1), flat(v))
		require.NoError(t, err)
		layer, err := g.Isolines(0.5, Options{Interpolate: true, EvenSpacing: true})
		require.NoError(t, err)
		assert.Empty(t, layer, "field %g", v)
	}
}

func TestLayers(t *testing.T) {
	g, err := NewGrid(16, Pt(0, 0), Pt(100, 100), RadialField())
	require.NoError(t, err)

	layers, err := g.Layers(3, 0.2, 0.6, Options{Interpolate: true, EvenSpacing: true, GridLayer: true})
	require.NoError(t, err)
	require.Len(t, layers, 4)
	for i, layer := range layers[:3] {
		assert.Len(t, layer, 1, "layer %d", i)
		assert.True(t, layer[0].Closed(closeTolerance))
	}
	// Larger thresholds give larger rings.
	assert.Less(t, layers[0][0].Length(), layers[1][0].Length())
	assert.Less(t, layers[1][0].Length(), layers[2][0].Length())

	grid := layers[3]
	assert.Len(t, grid, 16*16)
	for _, pl := range grid {
		assert.Len(t, pl, 5)
	}

	_, err = g.Layers(0, 0.2, 0.6, Options{})
	assert.ErrorIs(t, err, ErrLayerCount)
}

func TestLayersDeterministic(t *testing.T) {
	g, err := NewGrid(40, Pt(0, 0), Pt(400, 300), NoiseField(7, 2, 3, 0.21))
	require.NoError(t, err)
	opts := Options{Interpolate: true, EvenSpacing: true}

	first, err := g.Layers(5, 0.3, 0.7, opts)
	require.NoError(t, err)
	// A pass without interpolation in between must not leak into the next run.
	_, err = g.Layers(2, 0.4, 0.5, Options{})
	require.NoError(t, err)
	second, err := g.Layers(5, 0.3, 0.7, opts)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("layers differ between runs on the same grid (-first +second):\n%s", diff)
	}

	other, err := NewGrid(40, Pt(0, 0), Pt(400, 300), NoiseField(7, 2, 3, 0.21))
	require.NoError(t, err)
	fresh, err := other.Layers(5, 0.3, 0.7, opts)
	require.NoError(t, err)
	if diff := cmp.Diff(first, fresh); diff != "" {
		t.Errorf("layers differ between grids (-first +fresh):\n%s", diff)
	}
}
