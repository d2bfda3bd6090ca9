package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quadrat-art/quadrat/pkg/quad"
	"github.com/quadrat-art/quadrat/pkg/render/canvas"
	"github.com/quadrat-art/quadrat/pkg/render/canvas/sink"
	"github.com/quadrat-art/quadrat/pkg/render/canvas/styles"
)

// statusBarHeight is the number of terminal rows reserved below the canvas.
const statusBarHeight = 2

// Preset cycles for live settings changes.
var (
	separationPresets = []float64{1, 2, 5, 10}
	quantityPresets   = []int{20, 50, 100, 200}
	intervalPresets   = []time.Duration{25 * time.Millisecond, 100 * time.Millisecond, 500 * time.Millisecond}
)

// tickMsg advances the subdivision by one step.
type tickMsg time.Time

// seedMsg delivers the startup reseed exactly once.
type seedMsg uint64

// tick schedules the next animation step.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// studioModel is the bubbletea model for the watch command.
// The embedded quad.Model is a value; every update replaces it wholesale.
type studioModel struct {
	drawing  quad.Model
	style    string
	interval time.Duration
	paused   bool
	reseed   bool   // deliver a time-derived seed on startup
	status   string // transient status line (export results)
	ready    bool   // first WindowSizeMsg received
}

// newStudioModel creates the watch TUI model. The initial viewport is a
// placeholder; the first WindowSizeMsg resizes to the real terminal.
func newStudioModel(seed uint64, settings quad.Settings, style string, interval time.Duration, reseed bool) studioModel {
	return studioModel{
		drawing:  quad.New(seed, quad.Viewport{Width: 80, Height: 24}, settings),
		style:    style,
		interval: interval,
		reseed:   reseed,
	}
}

func (m studioModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tick(m.interval)}
	if m.reseed {
		cmds = append(cmds, func() tea.Msg {
			return seedMsg(time.Now().UnixNano())
		})
	}
	return tea.Batch(cmds...)
}

func (m studioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused && !m.drawing.Done() {
			m.drawing = m.drawing.Step()
		}
		return m, tick(m.interval)

	case seedMsg:
		m.drawing = m.drawing.Reseed(uint64(msg)).Restart()
		return m, nil

	case tea.WindowSizeMsg:
		m.ready = true
		w := msg.Width
		h := msg.Height - statusBarHeight
		if w < 2 {
			w = 2
		}
		if h < 2 {
			h = 2
		}
		m.drawing = m.drawing.Resize(quad.Viewport{Width: float64(w), Height: float64(h)})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m studioModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "r":
		m.drawing = m.drawing.Restart()
		m.status = ""
	case "s":
		m.drawing = m.drawing.SetSeparation(prevFloat(separationPresets, m.drawing.Settings().Separation))
	case "S":
		m.drawing = m.drawing.SetSeparation(nextFloat(separationPresets, m.drawing.Settings().Separation))
	case "n":
		m.drawing = m.drawing.SetQuantity(prevInt(quantityPresets, m.drawing.Settings().Quantity))
	case "N":
		m.drawing = m.drawing.SetQuantity(nextInt(quantityPresets, m.drawing.Settings().Quantity))
	case "+", "=":
		m.interval = prevDuration(intervalPresets, m.interval)
	case "-":
		m.interval = nextDuration(intervalPresets, m.interval)
	case "e":
		m.status = m.export()
	}
	return m, nil
}

// export writes the current drawing as an SVG next to the working directory.
func (m studioModel) export() string {
	var style styles.Style = styles.Flat{}
	if m.style == "sketch" {
		style = styles.NewSketch(m.drawing.Seed())
	}
	data := sink.RenderSVG(canvas.FromModel(m.drawing), sink.WithStyle(style))
	path := m.drawing.ID() + ".svg"
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "export failed: " + err.Error()
	}
	return "exported " + path
}

func (m studioModel) View() string {
	if !m.ready {
		return StyleDim.Render("waiting for terminal size...")
	}

	vp := m.drawing.Viewport()
	w, h := int(vp.Width), int(vp.Height)

	// Paint regions into a per-cell fill buffer, then emit runs of equal
	// color as background-styled spaces.
	fills := make([]string, w*h)
	for _, r := range m.drawing.Regions() {
		x0, x1 := clampCell(r.Left, w), clampCell(r.Right, w)
		y0, y1 := clampCell(r.Top, h), clampCell(r.Bottom, h)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				fills[y*w+x] = r.Fill
			}
		}
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; {
			fill := fills[y*w+x]
			run := 1
			for x+run < w && fills[y*w+x+run] == fill {
				run++
			}
			cells := strings.Repeat(" ", run)
			if fill == "" {
				b.WriteString(cells)
			} else {
				b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(fill)).Render(cells))
			}
			x += run
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.statusBar())
	return b.String()
}

// statusBar renders the two-line footer with state and key hints.
func (m studioModel) statusBar() string {
	state := StyleHighlight.Render("drawing")
	if m.drawing.Done() {
		state = styleDone.Render("done")
	}
	if m.paused {
		state = stylePaused.Render("paused")
	}

	s := m.drawing.Settings()
	info := fmt.Sprintf("%s  %d/%d regions  sep %g  tick %s",
		state, m.drawing.LeafCount(), s.Quantity, s.Separation, m.interval)
	if m.status != "" {
		info += "  " + StyleSuccess.Render(m.status)
	}

	keys := "space pause · r restart · s/S separation · n/N quantity · +/- speed · e export · q quit"
	return styleStatusBar.Render(info) + "\n" + styleStatusKey.Render(keys)
}

// clampCell converts a region coordinate to a cell index in [0, max].
func clampCell(v float64, max int) int {
	i := int(v)
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

// Preset cycling helpers. Values between presets snap to the next one in
// the direction of travel.

func nextFloat(presets []float64, cur float64) float64 {
	for _, p := range presets {
		if p > cur {
			return p
		}
	}
	return presets[len(presets)-1]
}

func prevFloat(presets []float64, cur float64) float64 {
	for i := len(presets) - 1; i >= 0; i-- {
		if presets[i] < cur {
			return presets[i]
		}
	}
	return presets[0]
}

func nextInt(presets []int, cur int) int {
	for _, p := range presets {
		if p > cur {
			return p
		}
	}
	return presets[len(presets)-1]
}

func prevInt(presets []int, cur int) int {
	for i := len(presets) - 1; i >= 0; i-- {
		if presets[i] < cur {
			return presets[i]
		}
	}
	return presets[0]
}

func nextDuration(presets []time.Duration, cur time.Duration) time.Duration {
	for _, p := range presets {
		if p > cur {
			return p
		}
	}
	return presets[len(presets)-1]
}

func prevDuration(presets []time.Duration, cur time.Duration) time.Duration {
	for i := len(presets) - 1; i >= 0; i-- {
		if presets[i] < cur {
			return presets[i]
		}
	}
	return presets[0]
}
