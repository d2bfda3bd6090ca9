package quadtree

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/quadrat-art/quadrat/pkg/quad"
	"github.com/quadrat-art/quadrat/pkg/render"
)

// ToDOT converts a model's split history to Graphviz DOT format. Interior
// nodes (split parents) are drawn dashed; current regions are filled with
// their assigned color. The resulting DOT string can be rendered with
// [RenderSVG] or [RenderPNG].
func ToDOT(m quad.Model) string {
	var buf bytes.Buffer
	buf.WriteString("digraph quadtree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	for _, s := range m.Splits() {
		p := s.Parent
		fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n",
			p.ID, nodeLabel(p))
	}
	for _, r := range m.Regions() {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", r.ID, nodeLabel(r), r.Fill)
	}

	buf.WriteString("\n")
	for _, s := range m.Splits() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", s.Parent.ID, s.ChildA)
		fmt.Fprintf(&buf, "  %q -> %q;\n", s.Parent.ID, s.ChildB)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(r quad.Region) string {
	return fmt.Sprintf("%s\n%.0f x %.0f", r.ID, r.Width(), r.Height())
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG renders a DOT graph to PNG by converting the Graphviz SVG with
// the given scale factor.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
