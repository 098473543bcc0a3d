package pipeline

import (
	"github.com/matzehuels/flowline/pkg/flow"
	"github.com/matzehuels/flowline/pkg/geometry"
	"github.com/matzehuels/flowline/pkg/render"
	"github.com/matzehuels/flowline/pkg/scene"
)

// =============================================================================
// Frame Generation
// =============================================================================

// GenerateFrame arranges a scene into a frame. This is the pure computation
// behind the arrange stage: no caching, no I/O.
func GenerateFrame(s *scene.Scene, opts Options) (render.Frame, error) {
	if err := opts.ValidateForArrange(); err != nil {
		return render.Frame{}, err
	}

	eng := buildEngine(opts)
	src := s.Source()
	p := proposalFor(opts)

	_, fit := eng.Measure(p, src)
	placements := eng.Arrange(geometry.Rect{Size: fit}, p, src)

	return render.Build(s, fit, eng.Alignment(), placements), nil
}

// buildEngine translates pipeline options into an engine configuration.
func buildEngine(opts Options) *flow.Engine {
	engOpts := []flow.Option{flow.WithAlignment(flow.Alignment(opts.Alignment))}
	if opts.Gap != nil {
		engOpts = append(engOpts, flow.WithHorizontalGap(*opts.Gap))
	}
	if opts.RowGap != nil {
		engOpts = append(engOpts, flow.WithVerticalGap(*opts.RowGap))
	}
	return flow.New(engOpts...)
}

// proposalFor builds the width constraint: MaxWidth with unconstrained
// height, or fully unconstrained when Unbounded is set.
func proposalFor(opts Options) geometry.Proposal {
	if opts.Unbounded {
		return geometry.UnconstrainedProposal()
	}
	return geometry.ProposeWidth(opts.MaxWidth)
}
