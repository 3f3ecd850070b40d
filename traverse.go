package contour

import "fmt"

// extractPaths walks the node graph built by the last threshold pass and
// returns its polylines. Edges are consumed as they are walked, so every
// connection is emitted exactly once. Walks shorter than three points are
// dropped.
func (g *Grid) extractPaths() ([]Polyline, error) {
	var paths []Polyline
	for n := range g.nodes {
		path, err := g.pathFrom(n)
		if err != nil {
			return nil, err
		}
		if len(path) > 2 {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// pathFrom assembles the curve passing through start. With one arm the node
// is an end of the curve; with two arms it sits inside it and the first arm
// is reversed so the points stay in walking order.
func (g *Grid) pathFrom(start int) (Polyline, error) {
	if err := g.checkDegree(start); err != nil {
		return nil, err
	}

	var arms []Polyline
	for {
		e, ok := g.nextEdge(start)
		if !ok {
			break
		}
		arm, err := g.follow(start, e)
		if err != nil {
			return nil, err
		}
		arms = append(arms, arm)
	}

	pos := g.nodes[start].pos
	switch len(arms) {
	case 0:
		return Polyline{pos}, nil
	case 1:
		return append(Polyline{pos}, arms[0]...), nil
	case 2:
		path := make(Polyline, 0, len(arms[0])+len(arms[1])+1)
		path = append(path, arms[0].Reverse()...)
		path = append(path, pos)
		return append(path, arms[1]...), nil
	default:
		return nil, fmt.Errorf("%w: node %d produced %d arms", ErrNodeDegree, start, len(arms))
	}
}

// follow walks away from n across edge e until it reaches a node with no
// unconsumed edges left, returning the positions visited after n.
func (g *Grid) follow(n, e int) (Polyline, error) {
	var arm Polyline
	for {
		g.edges[e].consumed = true
		n = g.edges[e].other(n)
		if err := g.checkDegree(n); err != nil {
			return nil, err
		}
		arm = append(arm, g.nodes[n].pos)

		next, ok := g.nextEdge(n)
		if !ok {
			return arm, nil
		}
		e = next
	}
}

// nextEdge returns the most recently added unconsumed edge of node n.
func (g *Grid) nextEdge(n int) (int, bool) {
	edges := g.nodes[n].edges
	for i := len(edges) - 1; i >= 0; i-- {
		if !g.edges[edges[i]].consumed {
			return edges[i], true
		}
	}
	return 0, false
}

func (g *Grid) checkDegree(n int) error {
	if d := len(g.nodes[n].edges); d > 2 {
		return fmt.Errorf("%w: node %d at %v has degree %d", ErrNodeDegree, n, g.nodes[n].pos, d)
	}
	return nil
}
