package sink

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/quadrat-art/quadrat/pkg/render/canvas"
	"github.com/quadrat-art/quadrat/pkg/render/canvas/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	background string
}

// WithStyle selects the visual style. The default is styles.Flat.
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithBackground sets the frame background color. An empty color leaves the
// frame transparent.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// RenderSVG serializes the canvas as a standalone SVG document. The root
// element carries the drawing identity, and every region becomes one child
// element with its region ID, so exports are stable and diffable.
func RenderSVG(c canvas.Canvas, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Flat{}, background: "#ffffff"}
	for _, opt := range opts {
		opt(&r)
	}

	shapes := slices.Clone(c.Shapes)
	slices.SortFunc(shapes, func(a, b canvas.Shape) int {
		return cmp.Compare(a.ID, b.ID)
	})

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" id=%q viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.ID, c.FrameWidth, c.FrameHeight, c.FrameWidth, c.FrameHeight)

	r.style.RenderDefs(&buf)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect id="background" width="%.1f" height="%.1f" fill=%q />`+"\n",
			c.FrameWidth, c.FrameHeight, r.background)
	}

	for _, s := range shapes {
		r.style.RenderRect(&buf, styles.Rect{
			ID: s.ID,
			X:  s.X, Y: s.Y, W: s.W, H: s.H,
			Fill:    s.Fill,
			Pending: s.Pending,
		})
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
