package flow

import "github.com/matzehuels/flowline/pkg/geometry"

// Axis selects a layout direction for pairwise gap queries.
type Axis int

const (
	// Horizontal is the axis along a row.
	Horizontal Axis = iota
	// Vertical is the axis between rows.
	Vertical
)

// Source supplies the engine with the items of one layout pass.
//
// SizeThatFits is the host's sizing function and is treated as a black box:
// it may be expensive, so the engine invokes it at most once per item per
// pass and captures the results before packing begins. Gap reports the
// preferred spacing between two adjacent items along an axis; it is equally
// opaque and may depend on item metadata the engine does not interpret.
//
// Implementations must be stable for the duration of a pass: each pass is a
// pure function of a snapshot of sizes.
type Source interface {
	// Len returns the number of items.
	Len() int

	// SizeThatFits returns item i's natural size under the proposal. Both
	// components of the result must be non-negative and finite.
	SizeThatFits(i int, p geometry.Proposal) geometry.Size

	// Gap returns the preferred spacing between adjacent items prev and next
	// along the given axis. Along Vertical, prev and next are the tallest
	// items of two consecutive rows.
	Gap(axis Axis, prev, next int) float64
}

// Sizes is a fixed-size Source backed by a slice of measured sizes with
// constant per-axis gaps. It ignores the proposal, which models items whose
// natural size does not depend on the constraint (images, fixed boxes).
type Sizes struct {
	Items []geometry.Size
	HGap  float64
	VGap  float64
}

// Len returns the number of items.
func (s Sizes) Len() int { return len(s.Items) }

// SizeThatFits returns the intrinsic size of item i regardless of proposal.
func (s Sizes) SizeThatFits(i int, _ geometry.Proposal) geometry.Size {
	return s.Items[i]
}

// Gap returns the constant gap for the axis.
func (s Sizes) Gap(axis Axis, _, _ int) float64 {
	if axis == Vertical {
		return s.VGap
	}
	return s.HGap
}

var _ Source = Sizes{}
