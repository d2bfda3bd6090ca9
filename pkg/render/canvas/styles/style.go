// Package styles defines the visual appearance of rendered drawings.
package styles

import "bytes"

// Style controls how a drawing's rectangles are serialized to SVG.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderRect writes the SVG for a single region rectangle.
	RenderRect(buf *bytes.Buffer, r Rect)
}

// Rect contains all data needed to render a single region.
type Rect struct {
	ID         string  // region identifier, used as the SVG element ID
	X, Y, W, H float64 // position and dimensions
	Fill       string  // fill color
	Pending    bool    // region not yet finalized (drawn muted mid-animation)
}
