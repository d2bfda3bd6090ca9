// Package render provides visualization output for quadrat drawings.
//
// # Overview
//
// This package contains the rendering pipeline that turns a finished or
// in-progress drawing into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Canvas projection and styles (in [canvas] subpackage)
//   - Split-ancestry diagrams (in [quadtree] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). They are used by both the
// canvas sinks and the quadtree renderer.
//
//	svg := sink.RenderSVG(c, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Canvas Rendering
//
// The [canvas] subpackage projects a quad.Model onto drawable shapes and
// renders them through pluggable styles (flat, sketch) and sinks (SVG,
// JSON, PNG, PDF).
//
// # Split-Ancestry Diagrams
//
// The [quadtree] subpackage renders the drawing's split history as a
// Graphviz tree, mainly as a debugging aid for the subdivision policy.
//
//	dot := quadtree.ToDOT(m)
//	svg, err := quadtree.RenderSVG(dot)
//
// [canvas]: github.com/quadrat-art/quadrat/pkg/render/canvas
// [quadtree]: github.com/quadrat-art/quadrat/pkg/render/quadtree
package render
