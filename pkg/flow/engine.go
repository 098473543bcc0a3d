package flow

import (
	"github.com/matzehuels/flowline/pkg/geometry"
	"github.com/matzehuels/flowline/pkg/observability"
)

// Engine computes wrapping row layouts. It owns a single-entry cache of the
// last packed result, so it persists across passes for the lifetime of the
// host view; see the package documentation for the concurrency contract.
type Engine struct {
	alignment Alignment
	hGap      *float64 // scalar override; nil = ask the source per pair
	vGap      *float64
	cache     cacheEntry
}

// Option configures an Engine.
type Option func(*Engine)

// WithAlignment sets the anchor used to redistribute leftover space.
// The default is AlignCenter.
func WithAlignment(a Alignment) Option {
	return func(e *Engine) { e.alignment = a }
}

// WithHorizontalGap overrides the per-pair horizontal gap with a constant.
// Without it the engine asks the source for each adjacent pair.
func WithHorizontalGap(v float64) Option {
	return func(e *Engine) { e.hGap = &v }
}

// WithVerticalGap overrides the per-pair vertical gap with a constant.
func WithVerticalGap(v float64) Option {
	return func(e *Engine) { e.vGap = &v }
}

// New creates an engine. The zero configuration centers rows and items and
// resolves all gaps through the source.
func New(opts ...Option) *Engine {
	e := &Engine{alignment: AlignCenter}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Alignment returns the engine's configured alignment.
func (e *Engine) Alignment() Alignment { return e.alignment }

// Placement is the final position of one item, reported back to the host.
// Position is the item's top-left corner relative to the arrange origin, and
// Proposal is the constraint the item was measured under, so the host can
// re-propose it when rendering the underlying element.
type Placement struct {
	Index    int
	Row      int
	Position geometry.Point
	Size     geometry.Size
	Proposal geometry.Proposal
}

// MinSize measures every item against a zero proposal and returns the
// componentwise maximum: the smallest size that contains every item without
// any row overflowing.
func (e *Engine) MinSize(src Source) geometry.Size {
	min, _ := measureFloor(src)
	return min
}

// Measure reports the minimum size and the best-fit content size for the
// proposal. When the proposal is degenerate (narrower than every item, or
// shorter than the tallest) no packing is attempted and the minimum is
// returned as the fit.
func (e *Engine) Measure(p geometry.Proposal, src Source) (min, fit geometry.Size) {
	min, floor := measureFloor(src)
	if belowFloor(p, floor) {
		return min, min
	}
	_, content := e.rowsFor(p, e.captureSizes(p, src), src)
	return min, content
}

// Arrange computes one Placement per item within bounds. Items appear in
// input order; every input item is placed exactly once, even an item wider
// than the available width, which gets a row of its own. A degenerate
// proposal yields no placements for the pass.
//
// Alignment is resolved here, not during packing: each row is shifted within
// the container width by the anchor's X fraction of the leftover space, and
// each item within its row's height by the anchor's Y fraction.
func (e *Engine) Arrange(bounds geometry.Rect, p geometry.Proposal, src Source) []Placement {
	_, floor := measureFloor(src)
	if belowFloor(p, floor) {
		return nil
	}

	rows, _ := e.rowsFor(p, e.captureSizes(p, src), src)
	anchor := AnchorOf(e.alignment)
	container := bounds.Size.Width

	var placements []Placement
	for ri, r := range rows {
		rowShift := anchor.X * (container - r.width)
		for _, it := range r.items {
			placements = append(placements, Placement{
				Index: it.index,
				Row:   ri,
				Position: geometry.Point{
					X: bounds.Origin.X + it.x + rowShift,
					Y: bounds.Origin.Y + r.y + anchor.Y*(r.height-it.size.Height),
				},
				Size:     it.size,
				Proposal: p,
			})
		}
	}
	return placements
}

// captureSizes invokes the host sizing function once per item and snapshots
// the results, keeping the (possibly expensive) calls out of the packing loop.
func (e *Engine) captureSizes(p geometry.Proposal, src Source) []geometry.Size {
	sizes := make([]geometry.Size, src.Len())
	for i := range sizes {
		sizes[i] = src.SizeThatFits(i, p)
	}
	return sizes
}

// rowsFor returns the packed rows and content size for the pass, consulting
// the single-entry cache first. On a hit the packer and stacker are skipped
// entirely; on a miss the fresh result overwrites the entry.
func (e *Engine) rowsFor(p geometry.Proposal, sizes []geometry.Size, src Source) ([]row, geometry.Size) {
	key := fingerprint(p, sizes)
	if e.cache.valid && e.cache.key == key {
		observability.Engine().OnLayoutCacheHit()
		return e.cache.rows, e.cache.content
	}
	observability.Engine().OnLayoutCacheMiss()

	rows := packRows(sizes, p.Width.Limit(), e.gapAlong(Horizontal, src))
	content := stackRows(rows, p.Width, e.gapAlong(Vertical, src))
	observability.Engine().OnPack(len(sizes), len(rows))

	e.cache = cacheEntry{key: key, rows: rows, content: content, valid: true}
	return rows, content
}

// gapAlong resolves the gap policy for one axis: the scalar override when
// configured, otherwise the source's pairwise preference.
func (e *Engine) gapAlong(axis Axis, src Source) gapFunc {
	override := e.hGap
	if axis == Vertical {
		override = e.vGap
	}
	if override != nil {
		v := *override
		return func(int, int) float64 { return v }
	}
	return func(prev, next int) float64 { return src.Gap(axis, prev, next) }
}

// measureFloor probes every item once with a zero proposal. min is the
// componentwise maximum, reported to the host as the minimum size. floor is
// the threshold below which a pass degenerates to an empty layout: the
// narrowest item's width and the tallest item's height. The floor width is
// not min.Width, because an item wider than the container still gets a row
// of its own; only a container narrower than every item holds nothing.
func measureFloor(src Source) (min, floor geometry.Size) {
	for i := 0; i < src.Len(); i++ {
		s := src.SizeThatFits(i, geometry.Proposal{})
		min = min.Max(s)
		if i == 0 || s.Width < floor.Width {
			floor.Width = s.Width
		}
	}
	floor.Height = min.Height
	return min, floor
}

// belowFloor reports whether the proposal is under the floor in either
// finite dimension. The degenerate pass never touches the layout cache.
func belowFloor(p geometry.Proposal, floor geometry.Size) bool {
	if w, ok := p.Width.Value(); ok && w < floor.Width {
		return true
	}
	if h, ok := p.Height.Value(); ok && h < floor.Height {
		return true
	}
	return false
}
