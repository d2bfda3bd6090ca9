package sink

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/quadrat-art/quadrat/pkg/render/canvas"
	"github.com/quadrat-art/quadrat/pkg/render/canvas/styles"
)

func testCanvas() canvas.Canvas {
	return canvas.Canvas{
		ID:          "drawing-test",
		FrameWidth:  200,
		FrameHeight: 100,
		Shapes: []canvas.Shape{
			{ID: "region-0002", X: 105, Y: 0, W: 95, H: 100, Fill: "#1356a2"},
			{ID: "region-0001", X: 0, Y: 0, W: 100, H: 100, Fill: "#d40920"},
			{ID: "region-0003", X: 0, Y: 50, W: 50, H: 50, Fill: "#f7d842", Pending: true},
		},
	}
}

func TestRenderSVG(t *testing.T) {
	svg := RenderSVG(testCanvas())

	for _, want := range []string{
		`id="drawing-test"`,
		`viewBox="0 0 200.0 100.0"`,
		`id="region-0001"`,
		`id="region-0002"`,
		`id="region-0003"`,
		`id="background"`,
		`fill="#d40920"`,
	} {
		if !bytes.Contains(svg, []byte(want)) {
			t.Errorf("SVG missing %q:\n%s", want, svg)
		}
	}

	if !bytes.HasSuffix(bytes.TrimSpace(svg), []byte("</svg>")) {
		t.Error("SVG not closed")
	}

	// Elements are emitted in ID order regardless of canvas order.
	out := string(svg)
	if strings.Index(out, "region-0001") > strings.Index(out, "region-0002") {
		t.Error("shapes not sorted by ID")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	c := testCanvas()
	a := RenderSVG(c, WithStyle(styles.NewSketch(42)))
	b := RenderSVG(c, WithStyle(styles.NewSketch(42)))
	if !bytes.Equal(a, b) {
		t.Error("same canvas and seed should render identical SVG")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	c := testCanvas()

	noBG := RenderSVG(c, WithBackground(""))
	if bytes.Contains(noBG, []byte(`id="background"`)) {
		t.Error("empty background should omit the background rect")
	}

	sketch := RenderSVG(c, WithStyle(styles.NewSketch(7)))
	if !bytes.Contains(sketch, []byte("<path")) {
		t.Error("sketch style should emit paths")
	}
	if !bytes.Contains(sketch, []byte("<defs>")) {
		t.Error("sketch style should emit defs")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testCanvas())
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	for _, want := range []string{
		`"id": "drawing-test"`,
		`"width": 200`,
		`"region-0003"`,
		`"pending": true`,
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("JSON missing %q:\n%s", want, data)
		}
	}
}

func ExampleRenderSVG() {
	c := canvas.Canvas{
		ID:          "drawing-example",
		FrameWidth:  100,
		FrameHeight: 100,
		Shapes: []canvas.Shape{
			{ID: "region-0001", X: 0, Y: 0, W: 100, H: 100, Fill: "#f2f5f1"},
		},
	}
	svg := RenderSVG(c, WithBackground(""))
	fmt.Println(string(svg))
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" id="drawing-example" viewBox="0 0 100.0 100.0" width="100" height="100">
	//   <rect id="region-0001" x="0.00" y="0.00" width="100.00" height="100.00" fill="#f2f5f1" />
	// </svg>
}
