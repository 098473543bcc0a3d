// Package geometry provides the primitive size, position, and proposal types
// shared by the flow layout engine and its renderers.
//
// All coordinates are in user units (typically pixels in SVG output), with
// the origin at the top-left corner and Y growing downward.
//
// The one non-obvious type is [Length]: a single axis of a layout proposal
// that is either a finite non-negative value or unconstrained. Modeling this
// as an explicit sum type (instead of relying on IEEE infinity at the API
// boundary) keeps infinities from silently propagating through arithmetic;
// callers that want an infinity for comparisons ask for one explicitly via
// [Length.Limit].
package geometry

import "math"

// =============================================================================
// Size
// =============================================================================

// Size is a width/height pair in user units. Both components are non-negative.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Max returns the componentwise maximum of s and other.
func (s Size) Max(other Size) Size {
	return Size{
		Width:  math.Max(s.Width, other.Width),
		Height: math.Max(s.Height, other.Height),
	}
}

// IsZero reports whether both components are zero.
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

// =============================================================================
// Point and Rect
// =============================================================================

// Point is an absolute position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the point translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Origin Point `json:"origin"`
	Size   Size  `json:"size"`
}

// RectOf creates a rectangle from its top-left corner and dimensions.
func RectOf(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// =============================================================================
// Length - finite value or unconstrained
// =============================================================================

// Length is one axis of a layout proposal: either a finite non-negative value
// or unconstrained. The zero value is a finite zero length.
type Length struct {
	value    float64
	infinite bool
}

// Fixed creates a finite length. Negative inputs are clamped to zero.
func Fixed(v float64) Length {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	if math.IsInf(v, 1) {
		return Unconstrained()
	}
	return Length{value: v}
}

// Unconstrained creates an unconstrained length.
func Unconstrained() Length { return Length{infinite: true} }

// IsFinite reports whether the length holds a finite value.
func (l Length) IsFinite() bool { return !l.infinite }

// Value returns the finite value and true, or (0, false) when unconstrained.
func (l Length) Value() (float64, bool) {
	if l.infinite {
		return 0, false
	}
	return l.value, true
}

// Or returns the finite value, or def when unconstrained.
func (l Length) Or(def float64) float64 {
	if l.infinite {
		return def
	}
	return l.value
}

// Limit returns the finite value, or +Inf when unconstrained. This is the
// form the packer compares cursor positions against.
func (l Length) Limit() float64 {
	if l.infinite {
		return math.Inf(1)
	}
	return l.value
}

// =============================================================================
// Proposal
// =============================================================================

// Proposal is a size constraint proposed to the layout engine: each axis is
// independently finite or unconstrained. The zero value proposes zero on both
// axes, which is how minimum sizes are probed.
type Proposal struct {
	Width  Length
	Height Length
}

// Propose creates a proposal with two finite axes.
func Propose(w, h float64) Proposal {
	return Proposal{Width: Fixed(w), Height: Fixed(h)}
}

// ProposeWidth creates a proposal with a finite width and an unconstrained
// height, the common case for wrapping row layout.
func ProposeWidth(w float64) Proposal {
	return Proposal{Width: Fixed(w), Height: Unconstrained()}
}

// UnconstrainedProposal creates a proposal with both axes unconstrained.
func UnconstrainedProposal() Proposal {
	return Proposal{Width: Unconstrained(), Height: Unconstrained()}
}
