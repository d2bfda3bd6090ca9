package styles

import (
	"bytes"
	"fmt"
)

// pendingOpacity mutes regions that are still on the work list so an
// animation frame reads as unfinished.
const pendingOpacity = 0.35

// Flat renders plain filled rectangles with crisp edges.
type Flat struct{}

func (Flat) RenderDefs(buf *bytes.Buffer) {}

func (Flat) RenderRect(buf *bytes.Buffer, r Rect) {
	fmt.Fprintf(buf, `  <rect id=%q x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill=%q`,
		r.ID, r.X, r.Y, r.W, r.H, r.Fill)
	if r.Pending {
		fmt.Fprintf(buf, ` fill-opacity="%.2f"`, pendingOpacity)
	}
	buf.WriteString(" />\n")
}

var _ Style = Flat{}
