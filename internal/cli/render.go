package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quadrat-art/quadrat/internal/config"
	"github.com/quadrat-art/quadrat/pkg/errors"
	"github.com/quadrat-art/quadrat/pkg/render/canvas"
	"github.com/quadrat-art/quadrat/pkg/render/canvas/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	drawingOpts
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "svg", "json", "png", "pdf"
}

// newRenderCmd creates the render command for one-shot drawing generation.
// It runs the subdivision to completion and writes the requested artifacts.
func newRenderCmd(cfg config.Config) *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a drawing to SVG, JSON, PNG, or PDF",
		Example: `  # Default drawing as SVG
  quadrat render -o art.svg

  # Reproducible sketch-style PNG
  quadrat render --seed 7 --style sketch -f png -o art.png

  # Several formats at once (art.svg, art.json, art.pdf)
  quadrat render -f svg,json,pdf -o art`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			for _, f := range opts.formats {
				if err := errors.ValidateFormat(f); err != nil {
					return err
				}
			}
			if err := opts.validate(); err != nil {
				return err
			}
			return runRender(cmd, &opts)
		},
	}

	addDrawingFlags(cmd, &opts.drawingOpts, cfg.Drawing)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path for multi-format output.
// A known format extension on the output path is stripped so that
// "-f svg,json -o art.svg" writes art.svg and art.json.
func basePath(output string) string {
	if output == "" {
		return appName
	}
	ext := filepath.Ext(output)
	switch strings.TrimPrefix(ext, ".") {
	case "svg", "json", "png", "pdf":
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender runs the subdivision and writes all requested artifacts.
func runRender(cmd *cobra.Command, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	m := opts.draw()
	c := canvas.FromModel(m)
	logger.Debugf("Drawing %s: %d regions", m.ID(), m.LeafCount())

	if len(opts.formats) == 1 {
		path := opts.output
		if path == "" {
			path = fmt.Sprintf("%s.%s", appName, opts.formats[0])
		}
		if err := writeArtifact(c, opts, opts.formats[0], path); err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Rendered %d regions", m.LeafCount()))
		printSuccess("Generated drawing %s", m.ID())
		printFile(path)
		return nil
	}

	base := basePath(opts.output)
	var paths []string
	for _, format := range opts.formats {
		path := fmt.Sprintf("%s.%s", base, format)
		if err := writeArtifact(c, opts, format, path); err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		paths = append(paths, path)
	}

	prog.done(fmt.Sprintf("Rendered %d regions", m.LeafCount()))
	printSuccess("Generated drawing %s", m.ID())
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifact renders the canvas in the given format and writes it to path.
func writeArtifact(c canvas.Canvas, opts *renderOpts, format, path string) error {
	var data []byte
	var err error

	switch format {
	case "svg":
		data = sink.RenderSVG(c, sink.WithStyle(opts.styleFor()))
	case "json":
		data, err = sink.RenderJSON(c)
	case "png":
		data, err = sink.RenderPNG(c, sink.WithPNGSVGOptions(sink.WithStyle(opts.styleFor())))
	case "pdf":
		data, err = sink.RenderPDF(c, sink.WithPDFSVGOptions(sink.WithStyle(opts.styleFor())))
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
