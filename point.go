package contour

import (
	"fmt"
	"math"
)

// Point is a position in the output coordinate space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add translates the point by o.
func (pt Point) Add(o Point) Point {
	return Point{X: pt.X + o.X, Y: pt.Y + o.Y}
}

// Sub returns the component-wise difference pt-o.
func (pt Point) Sub(o Point) Point {
	return Point{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Scale multiplies both coordinates by s.
func (pt Point) Scale(s float64) Point {
	return Point{X: pt.X * s, Y: pt.Y * s}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: pt.X + t*(o.X-pt.X),
		Y: pt.Y + t*(o.Y-pt.Y),
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// Polyline is an ordered sequence of points.
type Polyline []Point

// Length returns the arc length of the polyline.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += pl[i-1].Distance(pl[i])
	}
	return total
}

// Closed reports whether the first and last points coincide within tol on both axes.
func (pl Polyline) Closed(tol float64) bool {
	if len(pl) < 2 {
		return false
	}
	first, last := pl[0], pl[len(pl)-1]
	return math.Abs(first.X-last.X) < tol && math.Abs(first.Y-last.Y) < tol
}

// Reverse returns a reversed copy of the polyline.
func (pl Polyline) Reverse() Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}

// Layer holds every polyline extracted for a single threshold.
type Layer []Polyline
