package contour

import (
	"fmt"
	"image"
	_ "image/jpeg" // register the JPEG heightmap decoder
	_ "image/png"  // register the PNG heightmap decoder
	"io"
	"math"
	"os"

	_ "golang.org/x/image/bmp"  // register the BMP heightmap decoder
	_ "golang.org/x/image/tiff" // register the TIFF heightmap decoder
	_ "golang.org/x/image/webp" // register the WebP heightmap decoder
)

// noiseUnit is the canvas distance, in pixels, covered by one unit of noise
// input at scale 1. It is one inch at 96 dpi.
const noiseUnit = 96.0

// pixelsPerMM converts pen nib sizes in millimetres to canvas pixels at the
// same 96 dpi.
const pixelsPerMM = noiseUnit / 25.4

// defaultNibSize is the pen nib size in millimetres.
const defaultNibSize = 1.0

// Processor : type with processing options
type Processor struct {
	Width  int
	Height int

	LayerCount int
	EdgeLow    float64
	EdgeHigh   float64

	Inset       float64
	FixedAspect bool

	Mask     bool
	Rounding float64
	Easing   float64

	NoiseScaleX  float64
	NoiseScaleY  float64
	NoiseVariant float64
	Seed         int64
	Blur         int

	Resolution    int
	Interpolate   bool
	EvenSpacing   bool
	SplineTension float64
	// LineWidth is the stroke width in canvas pixels.
	LineWidth float64
	GridLayer bool
}

// NewProcessor returns a Processor with the default contour sketch settings.
func NewProcessor() *Processor {
	return &Processor{
		Width:         1200,
		Height:        1200,
		LayerCount:    4,
		EdgeLow:       0.25,
		EdgeHigh:      0.85,
		Inset:         0.01,
		Mask:          true,
		Rounding:      0.32,
		Easing:        10,
		NoiseScaleX:   0.19,
		NoiseScaleY:   0.81,
		NoiseVariant:  0.21,
		Resolution:    200,
		Interpolate:   true,
		EvenSpacing:   true,
		SplineTension: 1,
		LineWidth:     defaultNibSize * pixelsPerMM,
	}
}

// Result is the outcome of a contour generation.
type Result struct {
	Width, Height int
	Cols, Rows    int

	// Thresholds holds the field value of every isoline layer.
	Thresholds []float64
	// Layers holds the raw polylines. With GridLayer set the last layer is
	// the grid outline and has no threshold.
	Layers []Layer
	// Splines holds the fitted curve of every polyline, indexed like Layers.
	Splines [][]Spline
}

// Frame returns the area of the canvas covered by the grid. The inset is a
// fraction of the shorter canvas side; with FixedAspect the area is also
// squared up and centred.
func (p *Processor) Frame() (origin, size Point) {
	w, h := float64(p.Width), float64(p.Height)
	side := math.Min(w, h)
	origin = Pt(side*p.Inset, side*p.Inset)
	if p.FixedAspect {
		origin = Pt((w-side)/2+side*p.Inset, (h-side)/2+side*p.Inset)
	}
	return origin, Pt(w-origin.X*2, h-origin.Y*2)
}

// Field returns the scalar field to contour: the luminance of src when it is
// not nil, seeded noise otherwise. With Mask set the field fades out towards
// the edges of the frame.
func (p *Processor) Field(src image.Image) Field {
	var field Field
	if src != nil {
		field = HeightmapField(src, p.Blur)
	} else {
		field = NoiseField(
			p.Seed,
			float64(p.Width)/noiseUnit*p.NoiseScaleX,
			float64(p.Height)/noiseUnit*p.NoiseScaleY,
			p.NoiseVariant,
		)
	}
	if p.Mask {
		field = MaskField(field, p.Rounding, p.Easing)
	}
	return field
}

// Generate samples field over the canvas frame, extracts the isoline layers
// and fits a spline to every polyline.
func (p *Processor) Generate(field Field) (*Result, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrSize, p.Width, p.Height)
	}
	thresholds, err := Thresholds(p.LayerCount, p.EdgeLow, p.EdgeHigh)
	if err != nil {
		return nil, err
	}

	origin, size := p.Frame()
	grid, err := NewGrid(p.Resolution, origin, size, field)
	if err != nil {
		return nil, err
	}
	lo, hi := grid.ValueRange()
	Logf("contour: %dx%d grid, field range [%.4f, %.4f]", grid.Cols(), grid.Rows(), lo, hi)

	layers, err := grid.Layers(p.LayerCount, p.EdgeLow, p.EdgeHigh, Options{
		Interpolate: p.Interpolate,
		EvenSpacing: p.EvenSpacing,
		GridLayer:   p.GridLayer,
	})
	if err != nil {
		return nil, err
	}

	res := &Result{
		Width:      p.Width,
		Height:     p.Height,
		Cols:       grid.Cols(),
		Rows:       grid.Rows(),
		Thresholds: thresholds,
		Layers:     layers,
		Splines:    make([][]Spline, 0, len(layers)),
	}
	for i, layer := range layers {
		tension := p.SplineTension
		if p.GridLayer && i == len(layers)-1 {
			tension = 0
		}
		splines := make([]Spline, 0, len(layer))
		for _, pl := range layer {
			s, err := CardinalSpline(pl, tension)
			if err != nil {
				return nil, err
			}
			splines = append(splines, s)
		}
		res.Splines = append(res.Splines, splines)
	}
	return res, nil
}

// Process generates the contour drawing and writes it to output. When src is
// not nil it is decoded as the heightmap image; otherwise the noise field is
// used. The output format follows the file extension.
func (p *Processor) Process(src io.Reader, output string) (*os.File, *Result, error) {
	drawer, err := p.Drawer(output)
	if err != nil {
		return nil, nil, err
	}

	var img image.Image
	if src != nil {
		if img, _, err = image.Decode(src); err != nil {
			return nil, nil, fmt.Errorf("decoding heightmap: %w", err)
		}
	}

	res, err := p.Generate(p.Field(img))
	if err != nil {
		return nil, nil, err
	}

	fq, err := writeOutput(output, drawer, res)
	if err != nil {
		return nil, nil, err
	}
	return fq, res, nil
}

// writeOutput draws res into the file at output. A file left incomplete by a
// failed draw is removed.
func writeOutput(output string, drawer Drawer, res *Result) (*os.File, error) {
	fq, err := os.Create(output)
	if err != nil {
		return nil, err
	}
	defer fq.Close()

	if err = drawer.Draw(fq, res); err != nil {
		fq.Close()
		os.Remove(output)
		return nil, fmt.Errorf("drawing %s: %w", output, err)
	}
	return fq, nil
}
