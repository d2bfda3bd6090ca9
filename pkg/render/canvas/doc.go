// Package canvas projects a quad-division model into renderable geometry.
//
// A Canvas is the flat, render-ready view of a drawing: the stable drawing
// identity, the frame size, and one Shape per region. Sinks under
// canvas/sink serialize a Canvas to SVG, JSON, PNG, or PDF without ever
// touching the engine.
package canvas
