package flow

import "github.com/matzehuels/flowline/pkg/geometry"

// gapFunc resolves the spacing between two adjacent items, identified by
// their indices in the original collection.
type gapFunc func(prev, next int) float64

// rowItem is one placed item within a row. x is the horizontal offset from
// the row's own origin; the stacker and aligner turn it into an absolute
// position later.
type rowItem struct {
	index int
	size  geometry.Size
	x     float64
}

// row is an ordered run of items sharing a baseline. width is the packed
// width (item widths plus intervening gaps). height, y, and tallest are
// filled in by the stacker.
type row struct {
	items   []rowItem
	width   float64
	height  float64
	y       float64
	tallest int // index (into the original collection) of the tallest item
}

// packRows groups sizes into rows in a single left-to-right pass.
//
// limit is the available width, +Inf when unconstrained. Items never reorder:
// row order and in-row order match the input order exactly, and every item
// lands in exactly one row. A row's width may exceed limit only when its sole
// item is wider than the container by itself.
func packRows(sizes []geometry.Size, limit float64, hgap gapFunc) []row {
	var rows []row
	var cur row
	cursor := 0.0

	closeRow := func() {
		if len(cur.items) == 0 {
			return
		}
		cur.width = cursor
		rows = append(rows, cur)
		cur = row{}
		cursor = 0
	}

	for i, size := range sizes {
		gap := 0.0
		if n := len(cur.items); n > 0 {
			gap = hgap(cur.items[n-1].index, i)
		}

		// An item wider than the container never shares a row: flush anything
		// already placed so it starts alone.
		if size.Width > limit && len(cur.items) > 0 {
			closeRow()
			gap = 0
		}

		// Wrap when the item no longer fits after its leading gap.
		if cursor+gap+size.Width > limit && len(cur.items) > 0 {
			closeRow()
			gap = 0
		}

		cur.items = append(cur.items, rowItem{index: i, size: size, x: cursor + gap})
		cursor += size.Width + gap

		// An oversized item keeps its own row even when it was placed into an
		// empty one, so the next item starts fresh and is never blocked.
		if size.Width > limit {
			closeRow()
		}
	}
	closeRow()

	return rows
}
