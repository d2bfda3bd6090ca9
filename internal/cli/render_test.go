package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/quadrat-art/quadrat/pkg/render/canvas"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,json,pdf", []string{"svg", "json", "pdf"}},
	}

	for _, tt := range tests {
		if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"", "quadrat"},
		{"art", "art"},
		{"art.svg", "art"},
		{"art.png", "art"},
		{"dir/art.pdf", "dir/art"},
		{"art.backup", "art.backup"}, // unknown extension kept
	}

	for _, tt := range tests {
		if got := basePath(tt.output); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}

func TestDrawingOptsValidate(t *testing.T) {
	valid := drawingOpts{seed: 1, width: 800, height: 600, separation: 5, quantity: 50, style: "flat"}
	if err := valid.validate(); err != nil {
		t.Errorf("valid opts rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*drawingOpts)
	}{
		{"zero width", func(o *drawingOpts) { o.width = 0 }},
		{"negative separation", func(o *drawingOpts) { o.separation = -1 }},
		{"zero quantity", func(o *drawingOpts) { o.quantity = 0 }},
		{"bad style", func(o *drawingOpts) { o.style = "neon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)
			if err := o.validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDrawIsDeterministic(t *testing.T) {
	opts := drawingOpts{seed: 42, width: 400, height: 300, separation: 2, quantity: 20, style: "flat"}

	a, b := opts.draw(), opts.draw()
	if !a.Done() {
		t.Fatal("draw should run to completion")
	}
	if a.LeafCount() != b.LeafCount() {
		t.Errorf("leaf counts differ: %d vs %d", a.LeafCount(), b.LeafCount())
	}
	la, lb := a.Leaves(), b.Leaves()
	for i := range la {
		if la[i].Fill != lb[i].Fill || la[i].Left != lb[i].Left {
			t.Fatalf("leaf %d differs between runs", i)
		}
	}
}

func TestWriteArtifact(t *testing.T) {
	opts := &renderOpts{
		drawingOpts: drawingOpts{seed: 7, width: 200, height: 200, separation: 1, quantity: 10, style: "flat"},
	}
	c := canvas.FromModel(opts.draw())
	dir := t.TempDir()

	svgPath := filepath.Join(dir, "out.svg")
	if err := writeArtifact(c, opts, "svg", svgPath); err != nil {
		t.Fatalf("writeArtifact svg: %v", err)
	}
	svg, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(svg), "<svg") {
		t.Errorf("unexpected SVG prefix: %.30s", svg)
	}

	jsonPath := filepath.Join(dir, "out.json")
	if err := writeArtifact(c, opts, "json", jsonPath); err != nil {
		t.Fatalf("writeArtifact json: %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Error("json artifact should be valid JSON")
	}

	if err := writeArtifact(c, opts, "gif", filepath.Join(dir, "out.gif")); err == nil {
		t.Error("unknown format should error")
	}
}
