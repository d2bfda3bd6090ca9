package quad

// Settings are the engine-facing knobs read on every split decision.
// Changing them mid-run only affects future splits; regions already
// finalized keep their rectangles.
type Settings struct {
	// Separation is the gap, in pixels, left between the two children of a
	// split. Zero means siblings touch.
	Separation float64

	// Quantity is the soft target for the number of leaf regions in the
	// finished drawing. The stopping rule is probabilistic, so the final
	// count lands near the target rather than exactly on it.
	Quantity int
}

// DefaultSettings are the values used when the caller passes a zero Settings.
var DefaultSettings = Settings{Separation: 5, Quantity: 50}

// normalize clamps out-of-range values instead of erroring: the engine
// accepts any non-negative separation and any positive quantity, and UI
// layers are free to restrict choices further.
func (s Settings) normalize() Settings {
	if s.Separation < 0 {
		s.Separation = 0
	}
	if s.Quantity < 1 {
		s.Quantity = 1
	}
	return s
}
