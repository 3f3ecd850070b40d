/*
Package contour is a generative art library which draws topographic style
contour lines of a scalar field using marching squares.

The field is sampled on a regular grid. For every threshold the grid cells are
classified against the threshold, the crossing points of neighbouring cells are
linked into a graph, and the graph is walked into polylines. Each polyline is
then respaced and fitted with a cardinal spline before it is drawn.

The package provides a command line utility supporting various customization options.
Check the supported commands by typing:

	$ contour --help

The field is either seeded Perlin noise or the luminance of a heightmap image:

	package main

	import (
		"log"

		"github.com/esimov/contour"
	)

	func main() {
		p := contour.NewProcessor()
		p.LayerCount = 8
		p.Seed = 42

		if _, _, err := p.Process(nil, "contours.png"); err != nil {
			log.Fatalf("Error generating contours: %v", err)
		}
	}

Using the Drawer interface the result can be exposed either as raster, vector
or terminal preview:

	res, err := p.Generate(p.Field(nil))
	if err != nil {
		log.Fatal(err)
	}
	svg := &contour.SVG{Processor: *p}
	if err := svg.Draw(w, res); err != nil {
		log.Fatal(err)
	}

The lower level Grid type gives access to the isolines without rendering:

	grid, err := contour.NewGrid(100, contour.Pt(0, 0), contour.Pt(1, 1), contour.RadialField())
	if err != nil {
		log.Fatal(err)
	}
	layer, err := grid.Isolines(0.5, contour.Options{Interpolate: true})
*/
package contour
