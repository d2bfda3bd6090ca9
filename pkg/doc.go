// Package pkg provides the core libraries for quadrat drawing generation.
//
// # Overview
//
// Quadrat recursively partitions a viewport into nested rectangles in the
// spirit of De Stijl compositions. The pkg directory is organized into
// four main areas:
//
//  1. [quad] - The subdivision engine (regions, settings, stepping)
//  2. [render] - Projection and output (canvas, styles, sinks, tree debug)
//  3. [cache] - Artifact caching (file, Redis, null backends)
//  4. [errors] / [buildinfo] - Structured errors and version metadata
//
// # Architecture
//
// The typical data flow through quadrat:
//
//	seed + viewport + settings
//	         ↓
//	    [quad] package (steppable subdivision)
//	         ↓
//	    [render/canvas] package (projection to drawable shapes)
//	         ↓
//	    [render/canvas/sink] package (SVG/JSON/PNG/PDF output)
//
// # Quick Start
//
// Run a drawing to completion and render it as SVG:
//
//	import (
//	    "github.com/quadrat-art/quadrat/pkg/quad"
//	    "github.com/quadrat-art/quadrat/pkg/render/canvas"
//	    "github.com/quadrat-art/quadrat/pkg/render/canvas/sink"
//	)
//
//	m := quad.New(42, quad.Viewport{Width: 800, Height: 600}, quad.DefaultSettings)
//	for !m.Done() {
//	    m = m.Step()
//	}
//	svg := sink.RenderSVG(canvas.FromModel(m))
//
// Render with the hand-drawn style:
//
//	svg := sink.RenderSVG(canvas.FromModel(m),
//	    sink.WithStyle(styles.NewSketch(42)))
//
// # Main Packages
//
// [quad] - The engine. A Model carries the viewport, settings, seeded RNG,
// pending and finalized regions; Step advances one split or finalization at
// a time so callers can animate the process. Same seed, same drawing.
//
// [render/canvas] - Projects a Model onto an ordered list of drawable
// shapes. [render/canvas/styles] provides the flat and sketch styles;
// [render/canvas/sink] writes SVG, JSON, PNG, and PDF.
//
// [render/quadtree] - Debug visualization of the split ancestry as a
// Graphviz tree.
//
// [cache] - Caching for rendered artifacts keyed by the full parameter
// set, with file, Redis, and null backends.
//
// [quad]: https://pkg.go.dev/github.com/quadrat-art/quadrat/pkg/quad
// [render]: https://pkg.go.dev/github.com/quadrat-art/quadrat/pkg/render
// [render/canvas]: https://pkg.go.dev/github.com/quadrat-art/quadrat/pkg/render/canvas
// [render/canvas/sink]: https://pkg.go.dev/github.com/quadrat-art/quadrat/pkg/render/canvas/sink
// [render/quadtree]: https://pkg.go.dev/github.com/quadrat-art/quadrat/pkg/render/quadtree
// [cache]: https://pkg.go.dev/github.com/quadrat-art/quadrat/pkg/cache
// [errors]: https://pkg.go.dev/github.com/quadrat-art/quadrat/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/quadrat-art/quadrat/pkg/buildinfo
package pkg
