package flow

import "github.com/matzehuels/flowline/pkg/geometry"

// stackRows assigns vertical offsets to rows and returns the overall content
// size. Vertical gaps are resolved between the tallest items of consecutive
// rows, not between rows as a whole, so per-item spacing preferences are
// respected. When two items in a row share the maximum height, the first
// occurrence wins; that item is the one whose spacing preference is consulted.
//
// The content width is the maximum packed row width, widened to the proposed
// width when the proposal is larger: the layout fills available space when
// asked to without ever shrinking below its natural packed width.
func stackRows(rows []row, width geometry.Length, vgap gapFunc) geometry.Size {
	if len(rows) == 0 {
		return geometry.Size{}
	}

	y := 0.0
	prevTallest := -1
	maxWidth := 0.0

	for idx := range rows {
		r := &rows[idx]

		tallest := 0
		for j := 1; j < len(r.items); j++ {
			if r.items[j].size.Height > r.items[tallest].size.Height {
				tallest = j
			}
		}
		r.tallest = r.items[tallest].index
		r.height = r.items[tallest].size.Height

		gap := 0.0
		if prevTallest >= 0 {
			gap = vgap(prevTallest, r.tallest)
		}
		r.y = y + gap
		y = r.y + r.height
		prevTallest = r.tallest

		if r.width > maxWidth {
			maxWidth = r.width
		}
	}

	if w, ok := width.Value(); ok && w > maxWidth {
		maxWidth = w
	}
	return geometry.Size{Width: maxWidth, Height: y}
}
