package contour

// side names one of the four edge nodes of a cell.
type side uint8

const (
	sideTop side = iota
	sideLeft
	sideRight
	sideBottom
)

// Corner weights of the marching squares code.
const (
	bitSW = 1 << iota
	bitSE
	bitNE
	bitNW
)

// caseTable maps a marching squares code to the node pairs joined inside the
// cell. The saddle codes 5 and 10 always use the same wiring; no asymptotic
// decider is applied, so some fields produce crossed looking contours there.
var caseTable = [16][][2]side{
	0:  nil,
	1:  {{sideLeft, sideBottom}},
	2:  {{sideBottom, sideRight}},
	3:  {{sideLeft, sideRight}},
	4:  {{sideTop, sideRight}},
	5:  {{sideLeft, sideTop}, {sideBottom, sideRight}},
	6:  {{sideTop, sideBottom}},
	7:  {{sideLeft, sideTop}},
	8:  {{sideLeft, sideTop}},
	9:  {{sideTop, sideBottom}},
	10: {{sideLeft, sideBottom}, {sideTop, sideRight}},
	11: {{sideTop, sideRight}},
	12: {{sideLeft, sideRight}},
	13: {{sideBottom, sideRight}},
	14: {{sideLeft, sideBottom}},
	15: nil,
}

// Classify returns the 4-bit marching squares code of a cell. A corner sets
// its bit only when its value is strictly greater than threshold.
func Classify(threshold, nw, ne, sw, se float64) int {
	var code int
	if sw > threshold {
		code |= bitSW
	}
	if se > threshold {
		code |= bitSE
	}
	if ne > threshold {
		code |= bitNE
	}
	if nw > threshold {
		code |= bitNW
	}
	return code
}

func (c *Cell) node(s side) int {
	switch s {
	case sideTop:
		return c.Top
	case sideLeft:
		return c.Left
	case sideRight:
		return c.Right
	default:
		return c.Bottom
	}
}

// update places the cell's nodes for threshold and joins them according to
// the case table. Nodes must have been reset for the pass beforehand.
func (g *Grid) update(c *Cell, threshold float64, interpolate bool) {
	if interpolate {
		g.nodes[c.Left].pos = g.edgePoint(c.NW, c.SW, threshold)
		g.nodes[c.Top].pos = g.edgePoint(c.NW, c.NE, threshold)
		g.nodes[c.Right].pos = g.edgePoint(c.NE, c.SE, threshold)
		g.nodes[c.Bottom].pos = g.edgePoint(c.SW, c.SE, threshold)
	}

	nw, ne := g.corners[c.NW].Value, g.corners[c.NE].Value
	sw, se := g.corners[c.SW].Value, g.corners[c.SE].Value
	for _, pair := range caseTable[Classify(threshold, nw, ne, sw, se)] {
		g.connect(c.node(pair[0]), c.node(pair[1]))
	}
}

// edgePoint returns where threshold crosses the edge between two corners.
func (g *Grid) edgePoint(c1, c2 int, threshold float64) Point {
	a, b := g.corners[c1], g.corners[c2]
	t := 0.5
	if a.Value != b.Value {
		t = Clamp((threshold-a.Value)/(b.Value-a.Value), 0, 1)
	}
	return a.Pos.Lerp(b.Pos, t)
}
