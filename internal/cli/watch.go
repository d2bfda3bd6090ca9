package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quadrat-art/quadrat/internal/config"
	"github.com/quadrat-art/quadrat/pkg/errors"
	"github.com/quadrat-art/quadrat/pkg/quad"
)

// newWatchCmd creates the watch command, an interactive terminal animation
// of the subdivision. The drawing starts from a fixed seed so the first
// frame is deterministic, then reseeds once from the clock unless --seed
// was given explicitly.
func newWatchCmd(cfg config.Config) *cobra.Command {
	var opts drawingOpts
	var tickMs int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Animate a drawing interactively in the terminal",
		Long: `Watch animates the subdivision step by step in your terminal.

Keys:
  space  pause/resume
  r      restart with the same seed
  s / S  cycle separation presets down/up
  n / N  cycle quantity presets down/up
  + / -  speed up / slow down
  e      export the current state as SVG
  q      quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateSettings(opts.separation, opts.quantity); err != nil {
				return err
			}
			if err := errors.ValidateStyle(opts.style); err != nil {
				return err
			}
			if tickMs < 1 {
				return errors.New(errors.ErrCodeInvalidSetting, "tick interval must be at least 1ms, got %d", tickMs)
			}

			reseed := !cmd.Flags().Changed("seed")
			model := newStudioModel(opts.seed, quad.Settings{
				Separation: opts.separation,
				Quantity:   opts.quantity,
			}, opts.style, time.Duration(tickMs)*time.Millisecond, reseed)

			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", defaultSeed, "fixed seed (disables the startup reseed)")
	cmd.Flags().Float64Var(&opts.separation, "separation", cfg.Drawing.Separation, "gap between regions")
	cmd.Flags().IntVar(&opts.quantity, "quantity", cfg.Drawing.Quantity, "target number of regions")
	cmd.Flags().StringVar(&opts.style, "style", cfg.Drawing.Style, "export style: flat, sketch")
	cmd.Flags().IntVar(&tickMs, "tick", cfg.Watch.TickMillis, "animation tick interval in milliseconds")

	return cmd
}
