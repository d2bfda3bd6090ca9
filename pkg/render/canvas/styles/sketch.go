package styles

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"
)

const (
	// wobble is the maximum corner displacement in pixels.
	wobble = 2.5
	// inkColor is the stroke used for sketched outlines.
	inkColor = "#1d1d1b"
)

// Sketch renders rectangles as hand-drawn quadrilaterals: corners are
// displaced by a small seeded jitter and edges bow slightly, so the same
// seed always reproduces the same wobble.
type Sketch struct {
	seed uint64
}

// NewSketch creates a sketch style. The seed only shapes the jitter; two
// renders of the same drawing with the same seed are byte-identical.
func NewSketch(seed uint64) Sketch {
	return Sketch{seed: seed}
}

func (Sketch) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <filter id="paper-grain"><feTurbulence type="fractalNoise" baseFrequency="0.9" numOctaves="2" result="noise"/><feColorMatrix in="noise" type="matrix" values="0 0 0 0 0  0 0 0 0 0  0 0 0 0 0  0 0 0 0.02 0"/><feComposite operator="over" in2="SourceGraphic"/></filter>` + "\n")
	buf.WriteString("  </defs>\n")
}

func (s Sketch) RenderRect(buf *bytes.Buffer, r Rect) {
	path := wobbledRect(r.X, r.Y, r.W, r.H, s.seed, r.ID)
	fmt.Fprintf(buf, `  <path id=%q d=%q fill=%q stroke=%q stroke-width="1.5" stroke-linejoin="round"`,
		r.ID, path, r.Fill, inkColor)
	if r.Pending {
		fmt.Fprintf(buf, ` fill-opacity="%.2f" stroke-dasharray="4 3"`, pendingOpacity)
	}
	buf.WriteString(" />\n")
}

// wobbledRect builds a closed path for the rectangle with jittered corners
// and slightly bowed edges. The jitter stream is derived from the seed and
// the shape ID, so it is deterministic per shape and independent of render
// order.
func wobbledRect(x, y, w, h float64, seed uint64, id string) string {
	rng := shapeRNG(seed, id)

	// Jitter amplitude shrinks with the rectangle so small regions are not
	// deformed out of shape.
	amp := min(wobble, min(w, h)/8)
	j := func() float64 { return (rng.Float64()*2 - 1) * amp }

	x0, y0 := x+j(), y+j()
	x1, y1 := x+w+j(), y+j()
	x2, y2 := x+w+j(), y+h+j()
	x3, y3 := x+j(), y+h+j()

	var b strings.Builder
	fmt.Fprintf(&b, "M%.2f,%.2f", x0, y0)
	bow(&b, rng, amp, x0, y0, x1, y1)
	bow(&b, rng, amp, x1, y1, x2, y2)
	bow(&b, rng, amp, x2, y2, x3, y3)
	bow(&b, rng, amp, x3, y3, x0, y0)
	b.WriteString("Z")
	return b.String()
}

// bow appends a quadratic bezier whose control point sits near the edge
// midpoint, offset perpendicular to the edge direction.
func bow(b *strings.Builder, rng *rand.Rand, amp, x0, y0, x1, y1 float64) {
	mx, my := (x0+x1)/2, (y0+y1)/2
	off := (rng.Float64()*2 - 1) * amp
	// Perpendicular offset: swap the edge deltas.
	dx, dy := y1-y0, x0-x1
	norm := max(1e-9, abs(dx)+abs(dy))
	fmt.Fprintf(b, " Q%.2f,%.2f %.2f,%.2f", mx+off*dx/norm, my+off*dy/norm, x1, y1)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// shapeRNG derives a per-shape generator from the style seed and shape ID.
func shapeRNG(seed uint64, id string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(id))
	return rand.New(rand.NewPCG(seed, h.Sum64()))
}

var _ Style = Sketch{}
