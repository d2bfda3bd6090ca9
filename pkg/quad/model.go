package quad

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
)

// rngSalt decorrelates the two PCG state words derived from one seed.
const rngSalt = 0x9e3779b97f4a7c15

// Model is the complete state of one subdivision run: the viewport, the
// settings in effect, the seeded random source, and the flat collections of
// pending and finalized regions. Operations return a new Model; the only
// shared state between the old and new value is the random source, which
// advances with each draw so that a seed plus a step sequence is replayable.
type Model struct {
	viewport Viewport
	settings Settings

	// id is the stable identity of the whole drawing, used as the SVG root
	// element ID and as a filename base for exports.
	id string

	seed uint64
	rng  *rand.Rand
	seq  int

	pending []Region
	leaves  []Region
	splits  []Split
}

// New creates a model with a single pending region covering the viewport.
// Non-positive viewport dimensions are clamped to 1 pixel and out-of-range
// settings are clamped to their nearest legal value.
func New(seed uint64, vp Viewport, s Settings) Model {
	m := Model{
		viewport: vp.clamp(),
		settings: s.normalize(),
		id:       uuid.NewString(),
		seed:     seed,
		rng:      rand.New(rand.NewPCG(seed, seed^rngSalt)),
	}
	m.pending = []Region{m.newRegion("", 0, 0, m.viewport.Width, 0, m.viewport.Height)}
	return m
}

// newRegion mints a region with a fresh sequential ID and a fill color drawn
// from the palette. Both are fixed for the lifetime of the region.
func (m *Model) newRegion(parentID string, depth int, left, right, top, bottom float64) Region {
	m.seq++
	return Region{
		ID:       fmt.Sprintf("region-%04d", m.seq),
		ParentID: parentID,
		Depth:    depth,
		Left:     left,
		Right:    right,
		Top:      top,
		Bottom:   bottom,
		Fill:     Palette[m.rng.IntN(len(Palette))],
	}
}

// ID returns the stable drawing identity.
func (m Model) ID() string { return m.id }

// Seed returns the seed the current generator was built from.
func (m Model) Seed() uint64 { return m.seed }

// Viewport returns the current bounding rectangle.
func (m Model) Viewport() Viewport { return m.viewport }

// Settings returns the settings currently in effect.
func (m Model) Settings() Settings { return m.settings }

// Done reports whether subdivision has finished: no pending regions remain.
func (m Model) Done() bool { return len(m.pending) == 0 }

// Pending returns the regions still eligible for splitting, in the order
// they will be consumed.
func (m Model) Pending() []Region { return slices.Clone(m.pending) }

// Leaves returns the finalized regions in finalization order.
func (m Model) Leaves() []Region { return slices.Clone(m.leaves) }

// Regions returns every current region, leaves first, then pending.
func (m Model) Regions() []Region {
	out := make([]Region, 0, len(m.leaves)+len(m.pending))
	out = append(out, m.leaves...)
	return append(out, m.pending...)
}

// LeafCount returns the number of finalized regions.
func (m Model) LeafCount() int { return len(m.leaves) }

// Resize replaces the bounding viewport and restarts subdivision from a
// single pending region sized to it. Settings, drawing identity, and the
// current random state carry over, so a resize continues the same drawing
// session rather than replaying it.
func (m Model) Resize(vp Viewport) Model {
	m.viewport = vp.clamp()
	m.leaves = nil
	m.splits = nil
	m.pending = []Region{m.newRegion("", 0, 0, m.viewport.Width, 0, m.viewport.Height)}
	return m
}

// Restart discards all regions, re-installs the random source from the
// current seed, and begins a fresh run with the same viewport and settings.
// The restarted model is a new drawing and gets a new identity.
func (m Model) Restart() Model {
	m.id = uuid.NewString()
	m.rng = rand.New(rand.NewPCG(m.seed, m.seed^rngSalt))
	m.seq = 0
	m.leaves = nil
	m.splits = nil
	m.pending = []Region{m.newRegion("", 0, 0, m.viewport.Width, 0, m.viewport.Height)}
	return m
}

// Reseed installs a fresh random source. The shell calls this once at
// startup when a real random seed becomes available; until then the model
// runs on its fixed placeholder seed so the first frame is deterministic.
// Reseed does not discard regions; follow with Restart to replay from the
// new seed.
func (m Model) Reseed(seed uint64) Model {
	m.seed = seed
	m.rng = rand.New(rand.NewPCG(seed, seed^rngSalt))
	return m
}

// SetSeparation updates the gap used by future splits. Already finalized
// regions are unaffected. If the model is already Done this does not resume
// subdivision; call Restart to see the new value take effect structurally.
func (m Model) SetSeparation(sep float64) Model {
	m.settings.Separation = sep
	m.settings = m.settings.normalize()
	return m
}

// SetQuantity updates the soft leaf target for future split decisions, with
// the same done-model semantics as SetSeparation.
func (m Model) SetQuantity(q int) Model {
	m.settings.Quantity = q
	m.settings = m.settings.normalize()
	return m
}
