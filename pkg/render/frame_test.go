package render

import (
	"testing"

	"github.com/matzehuels/flowline/pkg/flow"
	"github.com/matzehuels/flowline/pkg/geometry"
	"github.com/matzehuels/flowline/pkg/scene"
)

func testScene() *scene.Scene {
	return &scene.Scene{
		Title: "demo",
		Items: []scene.Item{
			{ID: "a", Label: "A", Width: 50, Height: 20, Color: "#FF0000"},
			{ID: "b", Label: "B", Width: 50, Height: 30},
			{ID: "c", Label: "C", Width: 50, Height: 20},
		},
	}
}

func TestBuild(t *testing.T) {
	s := testScene()
	eng := flow.New(flow.WithAlignment(flow.AlignTopLeading))
	src := s.Source()

	p := geometry.ProposeWidth(120)
	_, fit := eng.Measure(p, src)
	placements := eng.Arrange(geometry.Rect{Size: fit}, p, src)

	f := Build(s, fit, eng.Alignment(), placements)

	if f.Title != "demo" {
		t.Errorf("Title = %q", f.Title)
	}
	if f.Alignment != string(flow.AlignTopLeading) {
		t.Errorf("Alignment = %q", f.Alignment)
	}
	if len(f.Blocks) != 3 {
		t.Fatalf("len(Blocks) = %d, want 3", len(f.Blocks))
	}
	if f.Width != fit.Width || f.Height != fit.Height {
		t.Errorf("frame size = %gx%g, want %gx%g", f.Width, f.Height, fit.Width, fit.Height)
	}

	// Scene metadata carried through to blocks
	if f.Blocks[0].ID != "a" || f.Blocks[0].Color != "#FF0000" {
		t.Errorf("block 0 = %+v", f.Blocks[0])
	}

	// Two items of 50 plus a 10 gap fit into 120; the third wraps.
	if f.Rows != 2 {
		t.Errorf("Rows = %d, want 2", f.Rows)
	}
	if f.Blocks[2].Row != 1 {
		t.Errorf("block c row = %d, want 1", f.Blocks[2].Row)
	}
}

func TestFrameRoundTrip(t *testing.T) {
	f := Frame{
		Title:     "demo",
		Width:     120,
		Height:    55,
		Alignment: "center",
		Rows:      2,
		Blocks: []Block{
			{ID: "a", Label: "A", X: 0, Y: 5, Width: 50, Height: 20, Row: 0},
			{ID: "b", X: 60, Y: 0, Width: 50, Height: 30, Row: 0, Color: "#00FF00"},
		},
	}

	data, err := f.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got.Title != f.Title || got.Rows != f.Rows || len(got.Blocks) != len(f.Blocks) {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Blocks[1] != f.Blocks[1] {
		t.Errorf("block mismatch: %+v", got.Blocks[1])
	}
}

func TestFrameHash(t *testing.T) {
	f := Frame{Width: 100, Blocks: []Block{{ID: "a", Width: 10, Height: 10}}}
	g := Frame{Width: 100, Blocks: []Block{{ID: "a", Width: 10, Height: 10}}}
	if f.Hash() != g.Hash() {
		t.Error("identical frames should hash identically")
	}
	g.Blocks[0].X = 5
	if f.Hash() == g.Hash() {
		t.Error("moved block should change the hash")
	}
}
