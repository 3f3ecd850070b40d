package contour

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	SetLogger(nil)
}

func smallProcessor() *Processor {
	p := NewProcessor()
	p.Width, p.Height = 240, 160
	p.Resolution = 24
	return p
}

func TestFrame(t *testing.T) {
	p := NewProcessor()
	p.Width, p.Height = 200, 100
	p.Inset = 0.1

	origin, size := p.Frame()
	assert.Equal(t, Pt(10, 10), origin)
	assert.Equal(t, Pt(180, 80), size)

	p.FixedAspect = true
	origin, size = p.Frame()
	assert.Equal(t, Pt(60, 10), origin)
	assert.Equal(t, Pt(80, 80), size)
}

func TestGenerate(t *testing.T) {
	p := smallProcessor()
	p.Mask = false
	p.LayerCount = 3
	p.EdgeLow, p.EdgeHigh = 0.3, 0.6

	res, err := p.Generate(p.Field(nil))
	require.NoError(t, err)
	assert.Equal(t, 24, res.Cols)
	assert.Equal(t, 16, res.Rows)
	assert.Len(t, res.Thresholds, 3)
	require.Len(t, res.Layers, 3)
	require.Len(t, res.Splines, 3)
	for i := range res.Layers {
		assert.Len(t, res.Splines[i], len(res.Layers[i]))
	}
}

func TestGenerateGridLayer(t *testing.T) {
	p := smallProcessor()
	p.GridLayer = true

	res, err := p.Generate(RadialField())
	require.NoError(t, err)
	require.Len(t, res.Layers, p.LayerCount+1)

	grid := res.Splines[len(res.Splines)-1]
	require.Len(t, grid, res.Cols*res.Rows)
	for _, s := range grid {
		assert.True(t, s.Closed)
		for _, seg := range s.Segments {
			// The outline is drawn with straight segments.
			assert.Equal(t, seg.P0, seg.P1)
			assert.Equal(t, seg.P3, seg.P2)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	p := smallProcessor()
	p.Width = 0
	_, err := p.Generate(RadialField())
	assert.ErrorIs(t, err, ErrSize)

	p = smallProcessor()
	p.Resolution = 0
	_, err = p.Generate(RadialField())
	assert.ErrorIs(t, err, ErrResolution)

	p = smallProcessor()
	p.LayerCount = 0
	_, err = p.Generate(RadialField())
	assert.ErrorIs(t, err, ErrLayerCount)

	p = smallProcessor()
	p.Inset = 0.5
	_, err = p.Generate(RadialField())
	assert.ErrorIs(t, err, ErrSize)

	_, err = smallProcessor().Generate(nil)
	assert.ErrorIs(t, err, ErrNilField)
}

func TestProcessNoise(t *testing.T) {
	out := filepath.Join(t.TempDir(), "noise.png")
	p := smallProcessor()

	_, res, err := p.Process(nil, out)
	require.NoError(t, err)
	require.NotNil(t, res)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 240, 160), img.Bounds())
}

func TestProcessHeightmap(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8(x * 4)})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	out := filepath.Join(t.TempDir(), "heightmap.svg")
	p := smallProcessor()
	p.Mask = false
	_, res, err := p.Process(&buf, out)
	require.NoError(t, err)

	// A horizontal ramp gives one open line per threshold.
	for i, layer := range res.Layers {
		require.Len(t, layer, 1, "layer %d", i)
		assert.False(t, layer[0].Closed(closeTolerance))
	}

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestProcessErrors(t *testing.T) {
	dir := t.TempDir()
	p := smallProcessor()

	_, _, err := p.Process(nil, filepath.Join(dir, "out.gif"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, _, err = p.Process(bytes.NewBufferString("not an image"), filepath.Join(dir, "out.png"))
	assert.ErrorContains(t, err, "decoding heightmap")
	_, statErr := os.Stat(filepath.Join(dir, "out.png"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

type failingDrawer struct{}

func (failingDrawer) Draw(w io.Writer, res *Result) error {
	if _, err := io.WriteString(w, "partial"); err != nil {
		return err
	}
	return errors.New("encoder failed")
}

func TestWriteOutputRemovesPartialFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "broken.png")
	_, err := writeOutput(out, failingDrawer{}, &Result{})
	assert.ErrorContains(t, err, "encoder failed")

	_, statErr := os.Stat(out)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestDefaultLineWidth(t *testing.T) {
	// A 1 mm nib at 96 dpi.
	assert.InDelta(t, 3.7795, NewProcessor().LineWidth, 1e-4)
}
