package contour

import "fmt"

// EvenlySpace returns n points following pl, spaced evenly by the distance
// travelled along pl. The first and last points are kept as they are.
// Spacing is measured along the input polyline, so the straight-line gaps
// of the result only match exactly where pl itself is straight.
func EvenlySpace(pl Polyline, n int) (Polyline, error) {
	if len(pl) < 2 || n < 2 {
		return nil, fmt.Errorf("%w: got %d points, want %d", ErrTooFewPoints, len(pl), n)
	}

	// cum[i] is the arc length from pl[0] to pl[i].
	cum := make([]float64, len(pl))
	for i := 1; i < len(pl); i++ {
		cum[i] = cum[i-1] + pl[i-1].Distance(pl[i])
	}
	step := cum[len(cum)-1] / float64(n-1)

	out := make(Polyline, 0, n)
	out = append(out, pl[0])
	j := 1
	for k := 1; k < n-1; k++ {
		target := float64(k) * step
		for j < len(pl)-1 && cum[j] < target {
			j++
		}
		var t float64
		if seg := cum[j] - cum[j-1]; seg > 0 {
			t = (target - cum[j-1]) / seg
		}
		out = append(out, pl[j-1].Lerp(pl[j], t))
	}
	return append(out, pl[len(pl)-1]), nil
}
