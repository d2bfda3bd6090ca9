package cli

import (
	"github.com/spf13/cobra"

	"github.com/quadrat-art/quadrat/internal/config"
	"github.com/quadrat-art/quadrat/pkg/errors"
	"github.com/quadrat-art/quadrat/pkg/quad"
	"github.com/quadrat-art/quadrat/pkg/render/canvas/styles"
)

// defaultSeed keeps unseeded drawings reproducible across runs.
const defaultSeed = 42

// drawingOpts holds the drawing parameters shared by the render and tree
// commands. Defaults come from the config file.
type drawingOpts struct {
	seed       uint64
	width      float64
	height     float64
	separation float64
	quantity   int
	style      string
}

// addDrawingFlags registers the shared drawing parameter flags on cmd.
func addDrawingFlags(cmd *cobra.Command, opts *drawingOpts, cfg config.DrawingConfig) {
	opts.width = cfg.Width
	opts.height = cfg.Height
	opts.separation = cfg.Separation
	opts.quantity = cfg.Quantity
	opts.style = cfg.Style

	cmd.Flags().Uint64Var(&opts.seed, "seed", defaultSeed, "random seed for reproducible drawings")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "viewport width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "viewport height")
	cmd.Flags().Float64Var(&opts.separation, "separation", opts.separation, "gap between regions")
	cmd.Flags().IntVar(&opts.quantity, "quantity", opts.quantity, "target number of regions")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "visual style: flat, sketch")
}

// validate checks all drawing parameters.
func (o *drawingOpts) validate() error {
	if err := errors.ValidateViewport(o.width, o.height); err != nil {
		return err
	}
	if err := errors.ValidateSettings(o.separation, o.quantity); err != nil {
		return err
	}
	return errors.ValidateStyle(o.style)
}

// draw runs the subdivision to completion.
func (o *drawingOpts) draw() quad.Model {
	m := quad.New(o.seed, quad.Viewport{Width: o.width, Height: o.height}, quad.Settings{
		Separation: o.separation,
		Quantity:   o.quantity,
	})
	// Hard cap in case a pathological parameter set never settles.
	limit := 100*o.quantity + 1000
	for i := 0; !m.Done() && i < limit; i++ {
		m = m.Step()
	}
	return m
}

// styleFor maps a validated style name to a renderer.
func (o *drawingOpts) styleFor() styles.Style {
	if o.style == "sketch" {
		return styles.NewSketch(o.seed)
	}
	return styles.Flat{}
}
