package contour

import (
	"image"
	"math"

	"github.com/aquilax/go-perlin"
)

// Noise generator settings: alpha controls how quickly octave weights fall
// off, beta the frequency step between octaves.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// NoiseField returns a seeded 3D Perlin noise field sampled at
// (u*scaleX, v*scaleY, variant) and mapped around 0.5.
// Changing variant moves through the third dimension, giving a related but
// different pattern for the same seed.
func NoiseField(seed int64, scaleX, scaleY, variant float64) Field {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	return func(u, v float64) float64 {
		return p.Noise3D(u*scaleX, v*scaleY, variant)/2 + 0.5
	}
}

// RadialField returns the distance from the centre of the unit square,
// normalized so the corners are at 1.
func RadialField() Field {
	maxDist := math.Hypot(0.5, 0.5)
	return func(u, v float64) float64 {
		return math.Hypot(u-0.5, v-0.5) / maxDist
	}
}

// RoundedRectSDF is the signed distance from (u, v) to a rounded rectangle
// centred in the unit square. Radius is given in [0, 1]; 0 gives square
// corners and 1 a circle.
func RoundedRectSDF(u, v, radius float64) float64 {
	const halfSide = 0.5
	x := u*2 - 1
	y := v*2 - 1
	r := radius - 0.5

	dx := math.Abs(x) - halfSide + r
	dy := math.Abs(y) - halfSide + r
	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)
	return inside + outside - r
}

// SigmoidEase maps t in [0, 1] onto an S curve with steepness k that still
// passes through 0, 0.5 and 1.
func SigmoidEase(t, k float64) float64 {
	base := func(t float64) float64 {
		return 1/(1+math.Exp(-k*t)) - 0.5
	}
	correction := 0.5 / base(1)
	return correction*base(2*t-1) + 0.5
}

// MaskField fades base out towards the border of the unit square along a
// rounded rectangle. Easing sets how hard the fade edge is.
func MaskField(base Field, rounding, easing float64) Field {
	return func(u, v float64) float64 {
		m := SigmoidEase(RoundedRectSDF(u, v, rounding), easing)
		return base(u, v) * math.Max(0, 1-m*2)
	}
}

// heightmap holds the luminance of an image in [0, 1], row-major.
type heightmap struct {
	w, h int
	lum  []float64
}

// HeightmapField uses the luminance of img as the scalar field. A positive
// blur radius smooths the image first; very large images are scaled down.
func HeightmapField(img image.Image, blur int) Field {
	gray := Grayscale(ImgToNRGBA(downscale(img, maxHeightmapSide)))
	boxBlur(gray, blur)

	b := gray.Bounds()
	hm := &heightmap{w: b.Dx(), h: b.Dy(), lum: make([]float64, b.Dx()*b.Dy())}
	for y := 0; y < hm.h; y++ {
		for x := 0; x < hm.w; x++ {
			hm.lum[x+y*hm.w] = float64(gray.Pix[gray.PixOffset(x, y)]) / 255
		}
	}
	return hm.sample
}

// sample interpolates the heightmap bilinearly at normalized coordinates.
func (hm *heightmap) sample(u, v float64) float64 {
	if hm.w == 0 || hm.h == 0 {
		return 0
	}
	x := Clamp(u, 0, 1) * float64(hm.w-1)
	y := Clamp(v, 0, 1) * float64(hm.h-1)
	x0, y0 := int(x), int(y)
	x1, y1 := Min(x0+1, hm.w-1), Min(y0+1, hm.h-1)
	fx, fy := x-float64(x0), y-float64(y0)

	at := func(x, y int) float64 { return hm.lum[x+y*hm.w] }
	top := at(x0, y0) + (at(x1, y0)-at(x0, y0))*fx
	bottom := at(x0, y1) + (at(x1, y1)-at(x0, y1))*fx
	return top + (bottom-top)*fy
}
