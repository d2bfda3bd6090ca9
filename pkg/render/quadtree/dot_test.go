package quadtree

import (
	"strings"
	"testing"

	"github.com/quadrat-art/quadrat/pkg/quad"
)

func TestToDOTSingleRegion(t *testing.T) {
	m := quad.New(1, quad.Viewport{Width: 100, Height: 100}, quad.Settings{Quantity: 1})
	m = m.Step()

	dot := ToDOT(m)
	if !strings.HasPrefix(dot, "digraph quadtree {") {
		t.Errorf("unexpected DOT prefix: %s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("drawing without splits should have no edges")
	}
	if !strings.Contains(dot, "region-0001") {
		t.Error("missing root region node")
	}
}

func TestToDOTEdgesMatchSplits(t *testing.T) {
	m := quad.New(42, quad.Viewport{Width: 800, Height: 600}, quad.Settings{Separation: 5, Quantity: 20})
	for !m.Done() {
		m = m.Step()
	}

	dot := ToDOT(m)
	splits := m.Splits()
	if got, want := strings.Count(dot, "->"), 2*len(splits); got != want {
		t.Errorf("edge count = %d, want %d (two per split)", got, want)
	}

	for _, s := range splits {
		if !strings.Contains(dot, s.Parent.ID) {
			t.Errorf("missing split parent %s", s.Parent.ID)
		}
	}
	for _, r := range m.Leaves() {
		if !strings.Contains(dot, r.Fill) {
			t.Errorf("leaf %s fill %s not used", r.ID, r.Fill)
		}
	}
}
