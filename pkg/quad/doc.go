// Package quad implements the recursive quad-division engine behind quadrat.
//
// The engine owns a flat work list of rectangular regions. Starting from a
// single region covering the whole viewport, each call to [Model.Step]
// consumes one pending region and either finalizes it as a leaf or splits it
// into two smaller pending regions separated by a configurable gap. The
// stopping rule is probabilistic and guided by a soft quantity target, so
// repeated runs produce organic, non-uniform partitions rather than grids.
//
// Models are values: every operation returns a new Model and never mutates
// regions already finalized. Randomness is seeded and carried inside the
// Model, so replaying the same seed and step sequence reproduces the same
// drawing.
//
// # Usage
//
//	m := quad.New(42, quad.Viewport{Width: 800, Height: 600}, quad.Settings{
//	    Separation: 5,
//	    Quantity:   50,
//	})
//	for !m.Done() {
//	    m = m.Step()
//	}
//	leaves := m.Leaves()
package quad
