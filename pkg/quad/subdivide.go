package quad

import "slices"

const (
	// minChildDim is the smallest edge a split may give a child. Regions
	// that cannot yield two children this large are finalized instead.
	minChildDim = 2.0

	// aspectBias is how much longer one dimension must be before the split
	// axis is forced along it. Regions closer to square than this pick the
	// axis at random.
	aspectBias = 1.15
)

// Split records one subdivision event. The parent rectangle is kept so the
// full lineage can be reconstructed after the parent leaves the work list.
type Split struct {
	Parent Region
	ChildA string
	ChildB string
}

// Splits returns every subdivision event so far, in order.
func (m Model) Splits() []Split { return slices.Clone(m.splits) }

// Step performs one unit of work: it consumes the oldest pending region and
// either finalizes it as a leaf or splits it into two pending children.
// Calling Step on a Done model returns the model unchanged, so a trailing
// tick after completion is harmless.
func (m Model) Step() Model {
	if m.Done() {
		return m
	}

	region := m.pending[0]
	m.pending = slices.Clone(m.pending[1:])

	if m.shouldSplit(region) {
		if a, b, ok := m.split(region); ok {
			m.splits = append(slices.Clone(m.splits), Split{Parent: region, ChildA: a.ID, ChildB: b.ID})
			m.pending = append(m.pending, a, b)
			return m
		}
	}

	m.leaves = append(slices.Clone(m.leaves), region)
	return m
}

// shouldSplit decides between splitting and finalizing. The region's share
// of the remaining unfinalized area, scaled by the leaf budget still open,
// gives the number of leaves this region is "expected" to contain. Regions
// expected to hold two or more leaves always split; regions expected to
// hold between one and two split with proportional probability; anything
// smaller becomes a leaf.
func (m *Model) shouldSplit(r Region) bool {
	remaining := m.settings.Quantity - len(m.leaves)
	if remaining <= 1 {
		return false
	}

	unfinalized := r.Area()
	for _, p := range m.pending {
		unfinalized += p.Area()
	}
	if unfinalized <= 0 {
		return false
	}

	expected := float64(remaining) * r.Area() / unfinalized
	switch {
	case expected >= 2:
		return true
	case expected > 1:
		return m.rng.Float64() < expected-1
	default:
		return false
	}
}

// split cuts a region in two along its longer dimension, reserving the
// separation gap between the children. The cut position is drawn from the
// middle third of the axis so neither child degenerates into a sliver.
// ok is false when no axis can produce two children of at least minChildDim,
// in which case the caller must finalize the region instead.
func (m *Model) split(r Region) (a, b Region, ok bool) {
	sep := m.settings.Separation
	canV := r.Width()-sep >= 2*minChildDim
	canH := r.Height()-sep >= 2*minChildDim

	var vertical bool
	switch {
	case !canV && !canH:
		return Region{}, Region{}, false
	case canV && !canH:
		vertical = true
	case canH && !canV:
		vertical = false
	case r.Width() > r.Height()*aspectBias:
		vertical = true
	case r.Height() > r.Width()*aspectBias:
		vertical = false
	default:
		vertical = m.rng.IntN(2) == 0
	}

	// Fraction of the divisible span given to the first child.
	frac := (1 + m.rng.Float64()) / 3

	depth := r.Depth + 1
	if vertical {
		cut := r.Left + frac*(r.Width()-sep)
		a = m.newRegion(r.ID, depth, r.Left, cut, r.Top, r.Bottom)
		b = m.newRegion(r.ID, depth, cut+sep, r.Right, r.Top, r.Bottom)
	} else {
		cut := r.Top + frac*(r.Height()-sep)
		a = m.newRegion(r.ID, depth, r.Left, r.Right, r.Top, cut)
		b = m.newRegion(r.ID, depth, r.Left, r.Right, cut+sep, r.Bottom)
	}
	return a, b, true
}
