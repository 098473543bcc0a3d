package flow

import (
	"math"
	"testing"

	"github.com/matzehuels/flowline/pkg/geometry"
)

func sizesOf(widths ...float64) []geometry.Size {
	sizes := make([]geometry.Size, len(widths))
	for i, w := range widths {
		sizes[i] = geometry.Size{Width: w, Height: 10}
	}
	return sizes
}

func constGap(v float64) gapFunc {
	return func(int, int) float64 { return v }
}

func rowIndices(rows []row) [][]int {
	out := make([][]int, len(rows))
	for i, r := range rows {
		for _, it := range r.items {
			out[i] = append(out[i], it.index)
		}
	}
	return out
}

func TestPackRows(t *testing.T) {
	tests := []struct {
		name   string
		widths []float64
		limit  float64
		gap    float64
		want   [][]int
	}{
		{
			name:   "three items wrap after two",
			widths: []float64{50, 50, 50},
			limit:  120,
			gap:    10,
			want:   [][]int{{0, 1}, {2}},
		},
		{
			name:   "exact fit does not wrap",
			widths: []float64{50, 50},
			limit:  110,
			gap:    10,
			want:   [][]int{{0, 1}},
		},
		{
			name:   "one unit short wraps",
			widths: []float64{50, 50},
			limit:  109,
			gap:    10,
			want:   [][]int{{0}, {1}},
		},
		{
			name:   "oversized item isolated mid-stream",
			widths: []float64{30, 200, 30},
			limit:  100,
			gap:    10,
			want:   [][]int{{0}, {1}, {2}},
		},
		{
			name:   "oversized item isolated at start",
			widths: []float64{200, 30, 30},
			limit:  100,
			gap:    10,
			want:   [][]int{{0}, {1, 2}},
		},
		{
			name:   "unconstrained keeps one row",
			widths: []float64{50, 50, 50, 50},
			limit:  math.Inf(1),
			gap:    10,
			want:   [][]int{{0, 1, 2, 3}},
		},
		{
			name:   "zero gap packs tighter",
			widths: []float64{60, 60},
			limit:  120,
			gap:    0,
			want:   [][]int{{0, 1}},
		},
		{
			name:   "empty input",
			widths: nil,
			limit:  100,
			gap:    10,
			want:   [][]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := packRows(sizesOf(tt.widths...), tt.limit, constGap(tt.gap))
			got := rowIndices(rows)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rows %v, want %d rows %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if len(got[i]) != len(tt.want[i]) {
					t.Fatalf("row %d = %v, want %v", i, got[i], tt.want[i])
				}
				for j := range got[i] {
					if got[i][j] != tt.want[i][j] {
						t.Errorf("row %d = %v, want %v", i, got[i], tt.want[i])
						break
					}
				}
			}
		})
	}
}

func TestPackRowsOffsets(t *testing.T) {
	rows := packRows(sizesOf(50, 50, 50), 120, constGap(10))

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].width != 110 {
		t.Errorf("row 0 width = %v, want 110", rows[0].width)
	}
	if rows[1].width != 50 {
		t.Errorf("row 1 width = %v, want 50", rows[1].width)
	}
	if x := rows[0].items[0].x; x != 0 {
		t.Errorf("item 0 x = %v, want 0", x)
	}
	if x := rows[0].items[1].x; x != 60 {
		t.Errorf("item 1 x = %v, want 60", x)
	}
	if x := rows[1].items[0].x; x != 0 {
		t.Errorf("item 2 x = %v, want 0 in its own row", x)
	}
}

func TestPackRowsOversizedWidth(t *testing.T) {
	rows := packRows(sizesOf(30, 200, 30), 100, constGap(10))

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	// The oversized row keeps its full width even though it exceeds the limit.
	if rows[1].width != 200 {
		t.Errorf("oversized row width = %v, want 200", rows[1].width)
	}
}

func TestPackRowsPairwiseGap(t *testing.T) {
	// The gap function sees original collection indices, and only for
	// adjacent pairs within a row.
	var pairs [][2]int
	gap := func(prev, next int) float64 {
		pairs = append(pairs, [2]int{prev, next})
		return 10
	}

	packRows(sizesOf(50, 50, 50), 120, gap)

	// Pair (0,1) shares a row; pair (1,2) is queried once before item 2
	// wraps, and the wrap discards the gap.
	for _, p := range pairs {
		if p[1] != p[0]+1 {
			t.Errorf("gap queried for non-adjacent pair %v", p)
		}
	}
}

func TestPackRowsPreservesOrder(t *testing.T) {
	rows := packRows(sizesOf(40, 80, 20, 60, 30), 100, constGap(5))

	next := 0
	for _, r := range rows {
		for _, it := range r.items {
			if it.index != next {
				t.Fatalf("item order broken: got index %d, want %d", it.index, next)
			}
			next++
		}
	}
	if next != 5 {
		t.Errorf("placed %d items, want 5", next)
	}
}
