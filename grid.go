package contour

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Field is a scalar field over normalized coordinates u, v in [0, 1].
type Field func(u, v float64) float64

// Corner is a sampled grid vertex. Corners are shared by up to four cells.
type Corner struct {
	Pos   Point
	Value float64
}

// node is an isoline node sitting on a cell edge. Nodes are shared by the
// two cells straddling the edge and are addressed by their arena index.
type node struct {
	pos   Point
	mid   Point
	edges []int
}

// edge joins two nodes for the duration of one threshold pass.
type edge struct {
	a, b     int
	consumed bool
}

func (e edge) other(n int) int {
	if e.a == n {
		return e.b
	}
	return e.a
}

// Cell is a marching squares unit. It references its four corners and its
// four edge nodes by handle.
type Cell struct {
	NW, NE, SW, SE           int
	Top, Left, Right, Bottom int
}

// Grid is the sampled scalar field together with the isoline node graph.
// The node graph is mutated in place by every threshold pass, so a Grid must
// not be used from several goroutines at once.
type Grid struct {
	cols, rows int

	corners []Corner
	cells   []Cell
	nodes   []node
	edges   []edge
}

// NewGrid samples field on a resolution wide grid covering the rectangle
// [origin, origin+size]. The row count follows the aspect ratio of size.
func NewGrid(resolution int, origin, size Point, field Field) (*Grid, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrResolution, resolution)
	}
	if !(size.X > 0) || !(size.Y > 0) || math.IsInf(size.X, 0) || math.IsInf(size.Y, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrSize, size)
	}
	if field == nil {
		return nil, ErrNilField
	}

	cols := resolution
	rows := int(math.Round(float64(resolution) * size.Y / size.X))
	if rows < 1 {
		rows = 1
	}

	g := &Grid{
		cols:    cols,
		rows:    rows,
		corners: make([]Corner, 0, (cols+1)*(rows+1)),
		cells:   make([]Cell, 0, cols*rows),
		nodes:   make([]node, 0, 2*cols*rows+cols+rows),
	}

	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			u := float64(c) / float64(cols)
			v := float64(r) / float64(rows)
			g.corners = append(g.corners, Corner{
				Pos:   Pt(origin.X+u*size.X, origin.Y+v*size.Y),
				Value: field(u, v),
			})

			// Cell indices trail corner indices by one in both directions.
			if r == 0 || c == 0 {
				continue
			}
			cell := Cell{
				NW: g.cornerIndex(c-1, r-1),
				NE: g.cornerIndex(c, r-1),
				SW: g.cornerIndex(c-1, r),
				SE: g.cornerIndex(c, r),
			}
			if c > 1 {
				cell.Left = g.cells[len(g.cells)-1].Right
			} else {
				cell.Left = g.newNode(cell.NW, cell.SW)
			}
			if r > 1 {
				cell.Top = g.cells[len(g.cells)-cols].Bottom
			} else {
				cell.Top = g.newNode(cell.NW, cell.NE)
			}
			cell.Right = g.newNode(cell.NE, cell.SE)
			cell.Bottom = g.newNode(cell.SW, cell.SE)
			g.cells = append(g.cells, cell)
		}
	}
	return g, nil
}

func (g *Grid) cornerIndex(c, r int) int {
	return r*(g.cols+1) + c
}

// newNode appends a node at the midpoint between two corners and returns its handle.
func (g *Grid) newNode(c1, c2 int) int {
	mid := g.corners[c1].Pos.Midpoint(g.corners[c2].Pos)
	g.nodes = append(g.nodes, node{pos: mid, mid: mid, edges: make([]int, 0, 2)})
	return len(g.nodes) - 1
}

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// NodeCount returns the number of isoline nodes in the arena.
func (g *Grid) NodeCount() int { return len(g.nodes) }

// Corners returns the sampled corners in row-major order.
// The returned slice must not be modified.
func (g *Grid) Corners() []Corner { return g.corners }

// Cells returns the cells in row-major order.
// The returned slice must not be modified.
func (g *Grid) Cells() []Cell { return g.cells }

// ValueRange returns the smallest and largest sampled corner values.
func (g *Grid) ValueRange() (lo, hi float64) {
	values := make([]float64, len(g.corners))
	for i, c := range g.corners {
		values[i] = c.Value
	}
	return floats.Min(values), floats.Max(values)
}

// Outline returns one closed quadrilateral per cell, for use as a reference
// layer when inspecting the sampling grid.
func (g *Grid) Outline() Layer {
	layer := make(Layer, 0, len(g.cells))
	for _, cell := range g.cells {
		nw, ne := g.corners[cell.NW].Pos, g.corners[cell.NE].Pos
		sw, se := g.corners[cell.SW].Pos, g.corners[cell.SE].Pos
		layer = append(layer, Polyline{nw, ne, se, sw, nw})
	}
	return layer
}

// reset clears every node connection ahead of a threshold pass.
func (g *Grid) reset(interpolate bool) {
	for i := range g.nodes {
		g.nodes[i].edges = g.nodes[i].edges[:0]
		if !interpolate {
			g.nodes[i].pos = g.nodes[i].mid
		}
	}
	g.edges = g.edges[:0]
}

// connect joins two nodes symmetrically through a single edge record.
func (g *Grid) connect(a, b int) {
	idx := len(g.edges)
	g.edges = append(g.edges, edge{a: a, b: b})
	g.nodes[a].edges = append(g.nodes[a].edges, idx)
	g.nodes[b].edges = append(g.nodes[b].edges, idx)
}
