package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quadrat-art/quadrat/internal/config"
	"github.com/quadrat-art/quadrat/pkg/errors"
	"github.com/quadrat-art/quadrat/pkg/render/quadtree"
)

// newTreeCmd creates the tree command for visualizing the split ancestry
// of a drawing (debug tool).
func newTreeCmd(cfg config.Config) *cobra.Command {
	var opts drawingOpts
	var format, output string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Render the split ancestry of a drawing (debug tool)",
		Long: `Tree runs a drawing to completion and renders its split ancestry
as a Graphviz tree: split parents as dashed boxes, final regions filled
with their drawing color.`,
		Example: `  # DOT source to stdout
  quadrat tree --seed 7

  # SVG tree diagram
  quadrat tree --seed 7 -f svg -o tree.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "dot" && format != "svg" && format != "png" {
				return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be 'dot', 'svg', or 'png')", format)
			}
			if err := opts.validate(); err != nil {
				return err
			}
			return runTree(cmd, &opts, format, output)
		},
	}

	addDrawingFlags(cmd, &opts, cfg.Drawing)
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout for dot)")

	return cmd
}

func runTree(cmd *cobra.Command, opts *drawingOpts, format, output string) error {
	logger := loggerFromContext(cmd.Context())

	m := opts.draw()
	logger.Debugf("Drawing %s: %d splits, %d regions", m.ID(), len(m.Splits()), m.LeafCount())

	dot := quadtree.ToDOT(m)

	var data []byte
	var err error
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = quadtree.RenderSVG(dot)
	case "png":
		data, err = quadtree.RenderPNG(dot, 2.0)
	}
	if err != nil {
		return err
	}

	if output == "" {
		if format != "dot" {
			output = fmt.Sprintf("%s_tree.%s", appName, format)
		} else {
			fmt.Print(string(data))
			return nil
		}
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}
	printSuccess("Generated split tree")
	printFile(output)
	return nil
}
