package contour

import (
	"image"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/draw"
)

// maxHeightmapSide caps the longest side of a heightmap raster. Larger
// sources are scaled down before sampling.
const maxHeightmapSide = 1024

// Grayscale converts the image to grayscale, keeping the luminance in every
// color channel.
func Grayscale(src *image.NRGBA) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			si, di := src.PixOffset(x, y), dst.PixOffset(x, y)
			r, g, b := float64(src.Pix[si]), float64(src.Pix[si+1]), float64(src.Pix[si+2])
			lum := uint8(Clamp(r*0.299+g*0.587+b*0.114, 0, 255))
			dst.Pix[di], dst.Pix[di+1], dst.Pix[di+2] = lum, lum, lum
			dst.Pix[di+3] = src.Pix[si+3]
		}
	}
	return dst
}

// ImgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func ImgToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if src, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// downscale shrinks img so that its longest side is at most maxSide pixels.
// Smaller images are returned untouched.
func downscale(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	side := Max(b.Dx(), b.Dy())
	if side <= maxSide {
		return img
	}
	w := Max(1, b.Dx()*maxSide/side)
	h := Max(1, b.Dy()*maxSide/side)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// boxBlur averages the red channel of a grayscale image over a
// (2*radius+1)² window. Windows are clipped at the image border and
// normalized by the number of pixels actually covered.
func boxBlur(img *image.NRGBA, radius int) {
	if radius < 1 {
		return
	}
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	src := make([]int, width*height)
	for i := range src {
		src[i] = int(img.Pix[i*4])
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum, count int
			for sy := Max(0, y-radius); sy <= Min(height-1, y+radius); sy++ {
				for sx := Max(0, x-radius); sx <= Min(width-1, x+radius); sx++ {
					sum += src[sx+sy*width]
					count++
				}
			}
			v := uint8(sum / count)
			i := (x + y*width) << 2
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = v, v, v
		}
	}
}

// Min returns the smallest of the given values.
func Min[T constraints.Ordered](values ...T) T {
	acc := values[0]
	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest of the given values.
func Max[T constraints.Ordered](values ...T) T {
	acc := values[0]
	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}

// Clamp limits v to the range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Min(Max(v, lo), hi)
}
