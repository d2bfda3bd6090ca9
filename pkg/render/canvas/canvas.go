package canvas

import "github.com/quadrat-art/quadrat/pkg/quad"

// Canvas is the drawable projection of one subdivision model.
type Canvas struct {
	// ID is the drawing identity, unique per drawing and stable across
	// steps. It doubles as the SVG root element ID and as a filename base
	// for exports.
	ID string

	FrameWidth  float64
	FrameHeight float64

	Shapes []Shape
}

// Shape is a single rectangle ready for rendering.
type Shape struct {
	ID         string
	X, Y, W, H float64
	Fill       string
	// Pending marks regions still awaiting a split decision, so styles can
	// draw in-progress regions differently during animation.
	Pending bool
}

// FromModel projects every current region, finalized and pending alike,
// into shapes. Finalized leaves come first in finalization order.
func FromModel(m quad.Model) Canvas {
	vp := m.Viewport()
	c := Canvas{
		ID:          m.ID(),
		FrameWidth:  vp.Width,
		FrameHeight: vp.Height,
	}

	for _, r := range m.Leaves() {
		c.Shapes = append(c.Shapes, shapeFrom(r, false))
	}
	for _, r := range m.Pending() {
		c.Shapes = append(c.Shapes, shapeFrom(r, true))
	}
	return c
}

func shapeFrom(r quad.Region, pending bool) Shape {
	return Shape{
		ID:      r.ID,
		X:       r.Left,
		Y:       r.Top,
		W:       r.Width(),
		H:       r.Height(),
		Fill:    r.Fill,
		Pending: pending,
	}
}
