package sink

import (
	"encoding/json"

	"github.com/quadrat-art/quadrat/pkg/render/canvas"
)

type jsonDrawing struct {
	ID     string      `json:"id"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Fill    string  `json:"fill"`
	Pending bool    `json:"pending,omitempty"`
}

// RenderJSON exports the canvas geometry for external tooling. Shape order
// follows the canvas (finalized regions first), not element IDs.
func RenderJSON(c canvas.Canvas) ([]byte, error) {
	out := jsonDrawing{
		ID:     c.ID,
		Width:  c.FrameWidth,
		Height: c.FrameHeight,
		Shapes: make([]jsonShape, len(c.Shapes)),
	}
	for i, s := range c.Shapes {
		out.Shapes[i] = jsonShape{
			ID: s.ID,
			X:  s.X, Y: s.Y,
			Width: s.W, Height: s.H,
			Fill:    s.Fill,
			Pending: s.Pending,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
