package quad

// Viewport is the bounding rectangle for a whole subdivision, in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Area returns the viewport surface in square pixels.
func (v Viewport) Area() float64 { return v.Width * v.Height }

// clamp enforces positive dimensions. Callers are expected to validate
// input at the boundary; this is the last line of defense so the engine
// never carries a degenerate rectangle.
func (v Viewport) clamp() Viewport {
	if v.Width < 1 {
		v.Width = 1
	}
	if v.Height < 1 {
		v.Height = 1
	}
	return v
}

// Region is a single axis-aligned rectangle tracked by the engine.
// Coordinates are screen-oriented: y grows downward, so Top <= Bottom.
// ID, Fill, ParentID and Depth are assigned once at creation and never
// change afterwards.
type Region struct {
	ID       string
	ParentID string // empty for the root region
	Depth    int    // 0 for the root region

	Left, Right float64
	Top, Bottom float64

	Fill string // hex color, e.g. "#1356a2"
}

// Width returns the horizontal span of the region.
func (r Region) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the region.
func (r Region) Height() float64 { return r.Bottom - r.Top }

// Area returns the region surface in square pixels.
func (r Region) Area() float64 { return r.Width() * r.Height() }

// CenterX returns the horizontal center point of the region.
func (r Region) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center point of the region.
func (r Region) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Overlaps reports whether two regions share any interior area.
// Regions that merely touch along an edge do not overlap.
func (r Region) Overlaps(o Region) bool {
	return r.Left < o.Right && o.Left < r.Right &&
		r.Top < o.Bottom && o.Top < r.Bottom
}
