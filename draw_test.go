package contour

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func radialResult(t *testing.T) (*Processor, *Result) {
	t.Helper()
	p := smallProcessor()
	p.Mask = false
	res, err := p.Generate(RadialField())
	require.NoError(t, err)
	return p, res
}

func TestDrawer(t *testing.T) {
	p := NewProcessor()

	d, err := p.Drawer("out.PNG")
	require.NoError(t, err)
	assert.IsType(t, &Image{}, d)

	d, err = p.Drawer("dir/out.svg")
	require.NoError(t, err)
	assert.IsType(t, &SVG{}, d)

	_, err = p.Drawer("out.jpg")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, err = p.Drawer("out")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestImageDraw(t *testing.T) {
	p, res := radialResult(t)
	var buf bytes.Buffer
	require.NoError(t, (&Image{Processor: *p}).Draw(&buf, res))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, p.Width, p.Height), img.Bounds())

	// Background stays white and at least one stroke is dark.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
	var dark bool
	for y := 0; y < p.Height && !dark; y++ {
		for x := 0; x < p.Width; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r < 0x8000 {
				dark = true
				break
			}
		}
	}
	assert.True(t, dark, "no stroke drawn")
}

func TestSVGDraw(t *testing.T) {
	p, res := radialResult(t)
	var buf bytes.Buffer
	require.NoError(t, (&SVG{Processor: *p}).Draw(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	var paths int
	for _, l := range res.Splines {
		paths += len(l)
	}
	assert.GreaterOrEqual(t, strings.Count(out, "<path"), paths)
}

func TestPreviewDraw(t *testing.T) {
	_, res := radialResult(t)
	var buf bytes.Buffer
	pv := &Preview{Cols: 30, Title: "radial"}
	require.NoError(t, pv.Draw(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "radial")
	assert.Contains(t, out, "╭")

	var dots int
	for _, r := range out {
		if r > 0x2800 && r <= 0x28ff {
			dots++
		}
	}
	assert.Positive(t, dots)

	err := (&Preview{}).Draw(&buf, &Result{})
	assert.ErrorIs(t, err, ErrSize)
}

func TestDotCanvas(t *testing.T) {
	c := newDotCanvas(2, 1)
	c.line(0, 0, 3, 3)
	c.set(-1, 0)
	c.set(10, 0)

	lines := strings.Split(c.String(), "\n")
	require.Len(t, lines, 1)
	require.Equal(t, 2, utf8.RuneCountInString(lines[0]))

	// The diagonal covers dots (0,0), (1,1) in the first cell and
	// (2,2), (3,3) in the second.
	runes := []rune(lines[0])
	assert.Equal(t, rune(0x2800+0x01+0x10), runes[0])
	assert.Equal(t, rune(0x2800+0x04+0x80), runes[1])

	empty := newDotCanvas(3, 2)
	assert.Equal(t, "   \n   ", empty.String())
}
