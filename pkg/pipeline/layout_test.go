package pipeline

import (
	"testing"

	"github.com/matzehuels/flowline/pkg/scene"
)

func threeItems() *scene.Scene {
	return &scene.Scene{
		Title: "three",
		Items: []scene.Item{
			{ID: "a", Width: 50, Height: 20},
			{ID: "b", Width: 50, Height: 30},
			{ID: "c", Width: 50, Height: 20},
		},
	}
}

func TestGenerateFrame(t *testing.T) {
	// Width 120 fits a and b (50+10+50); c wraps to row 1.
	frame, err := GenerateFrame(threeItems(), Options{MaxWidth: 120, Alignment: "top-leading"})
	if err != nil {
		t.Fatalf("GenerateFrame error: %v", err)
	}

	if frame.Rows != 2 {
		t.Fatalf("Rows = %d, want 2", frame.Rows)
	}
	// Packed width 110, widened to the proposed 120.
	if frame.Width != 120 {
		t.Errorf("Width = %g, want 120", frame.Width)
	}
	// Row 0 height 30, default row gap 5, row 1 height 20.
	if frame.Height != 55 {
		t.Errorf("Height = %g, want 55", frame.Height)
	}

	if frame.Blocks[1].X != 60 || frame.Blocks[1].Y != 0 {
		t.Errorf("block b at (%g,%g), want (60,0)", frame.Blocks[1].X, frame.Blocks[1].Y)
	}
	if frame.Blocks[2].Y != 35 {
		t.Errorf("block c Y = %g, want 35", frame.Blocks[2].Y)
	}
}

func TestGenerateFrameOversizedItem(t *testing.T) {
	s := &scene.Scene{
		Title: "oversized",
		Items: []scene.Item{
			{ID: "a", Width: 30, Height: 10},
			{ID: "b", Width: 200, Height: 10},
			{ID: "c", Width: 30, Height: 10},
		},
	}

	// Width 100 is narrower than item b; b still gets a row of its own and
	// every item ends up in the frame.
	frame, err := GenerateFrame(s, Options{MaxWidth: 100, Alignment: "top-leading"})
	if err != nil {
		t.Fatalf("GenerateFrame error: %v", err)
	}

	if len(frame.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(frame.Blocks))
	}
	if frame.Rows != 3 {
		t.Errorf("Rows = %d, want 3", frame.Rows)
	}
	if frame.Width != 200 {
		t.Errorf("Width = %g, want the oversized row's 200", frame.Width)
	}
	if frame.Blocks[1].Row != 1 || frame.Blocks[1].X != 0 {
		t.Errorf("block b row %d at x=%g, want alone in row 1 at x=0",
			frame.Blocks[1].Row, frame.Blocks[1].X)
	}
}

func TestGenerateFrameUnbounded(t *testing.T) {
	frame, err := GenerateFrame(threeItems(), Options{Unbounded: true})
	if err != nil {
		t.Fatalf("GenerateFrame error: %v", err)
	}
	if frame.Rows != 1 {
		t.Errorf("Rows = %d, want 1 (no width constraint)", frame.Rows)
	}
	if frame.Width != 170 {
		t.Errorf("Width = %g, want 170", frame.Width)
	}
}

func TestGenerateFrameGapOverride(t *testing.T) {
	// Zero gaps: three 50s fit exactly into 150.
	frame, err := GenerateFrame(threeItems(), Options{MaxWidth: 150, Gap: ptr(0), RowGap: ptr(0)})
	if err != nil {
		t.Fatalf("GenerateFrame error: %v", err)
	}
	if frame.Rows != 1 {
		t.Errorf("Rows = %d, want 1", frame.Rows)
	}
	if frame.Width != 150 {
		t.Errorf("Width = %g, want 150", frame.Width)
	}
}

func TestGenerateFrameInvalidOptions(t *testing.T) {
	if _, err := GenerateFrame(threeItems(), Options{Alignment: "diagonal"}); err == nil {
		t.Error("invalid alignment should fail")
	}
}
