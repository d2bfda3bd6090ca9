// Package sink serializes a canvas to output formats: SVG, JSON, PNG, PDF.
//
// SVG is rendered natively; PNG and PDF are produced by converting the SVG
// with rsvg-convert. JSON exports the raw geometry for external tooling.
package sink
