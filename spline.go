package contour

import "fmt"

// closeTolerance is the per-axis distance under which a polyline's end
// points are treated as the same point.
const closeTolerance = 0.0001

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the segment at t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Spline is a smooth curve made of cubic segments joined end to start.
type Spline struct {
	Segments []CubicBez
	Closed   bool
}

// Start returns the first point of the spline.
func (s Spline) Start() Point {
	if len(s.Segments) == 0 {
		return Point{}
	}
	return s.Segments[0].P0
}

// Flatten approximates the spline with steps line segments per cubic.
func (s Spline) Flatten(steps int) Polyline {
	if len(s.Segments) == 0 {
		return nil
	}
	if steps < 1 {
		steps = 1
	}
	pl := Polyline{s.Segments[0].P0}
	for _, seg := range s.Segments {
		for i := 1; i <= steps; i++ {
			pl = append(pl, seg.Eval(float64(i)/float64(steps)))
		}
	}
	return pl
}

// CardinalSpline fits a cardinal spline through every point of pl. Tension 0
// yields straight segments, 1 the full Catmull-Rom curvature. A polyline
// whose ends coincide produces a closed spline that is smooth across the
// seam; an open one gets phantom end points mirrored across its ends.
func CardinalSpline(pl Polyline, tension float64) (Spline, error) {
	if len(pl) < 2 {
		return Spline{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(pl))
	}

	closed := pl.Closed(closeTolerance)
	n := len(pl)
	pts := make(Polyline, 0, n+2)
	if closed {
		pts = append(pts, pl[n-2])
		pts = append(pts, pl...)
		pts = append(pts, pl[1])
	} else {
		pts = append(pts, reflect(pl[0], pl[1]))
		pts = append(pts, pl...)
		pts = append(pts, reflect(pl[n-1], pl[n-2]))
	}

	k := tension / 6
	segments := make([]CubicBez, 0, n-1)
	for i := 1; i < len(pts)-2; i++ {
		p0, p1, p2, p3 := pts[i-1], pts[i], pts[i+1], pts[i+2]
		segments = append(segments, CubicBez{
			P0: p1,
			P1: p1.Add(p2.Sub(p0).Scale(k)),
			P2: p2.Sub(p3.Sub(p1).Scale(k)),
			P3: p2,
		})
	}
	return Spline{Segments: segments, Closed: closed}, nil
}

// reflect mirrors p across the pivot point.
func reflect(pivot, p Point) Point {
	return pivot.Sub(p.Sub(pivot))
}
