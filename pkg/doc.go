// Package pkg provides the core libraries for Flowline scene layout and rendering.
//
// # Overview
//
// Flowline arranges rectangular items into wrapped rows inside a constrained
// width and renders the result as SVG, PNG, or JSON. The pkg directory is
// organized into five main areas:
//
//  1. [flow] - The layout engine (row packing, stacking, alignment, caching)
//  2. [geometry] - Primitive types (sizes, points, rects, layout proposals)
//  3. [scene] - Scene inputs (TOML/JSON manifests, image directories)
//  4. [render] - Frame model and output sinks (SVG, PNG, JSON)
//  5. [pipeline] - Orchestration (load → arrange → render) used by the CLI
//
// # Architecture
//
// The typical data flow through Flowline:
//
//	Manifest / Image Directory
//	         ↓
//	    [scene] package (parse + validate items)
//	         ↓
//	    [flow] package (measure + arrange into rows)
//	         ↓
//	    [render] package (frame model)
//	         ↓
//	    SVG/PNG/JSON output
//
// # Quick Start
//
// Arrange a scene and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/flowline/pkg/flow"
//	    "github.com/matzehuels/flowline/pkg/geometry"
//	    "github.com/matzehuels/flowline/pkg/render"
//	    "github.com/matzehuels/flowline/pkg/render/sink"
//	    "github.com/matzehuels/flowline/pkg/scene"
//	)
//
//	// 1. Load the scene
//	s, _ := scene.Load("scene.toml")
//
//	// 2. Arrange items into rows
//	engine := flow.New(flow.WithAlignment(flow.AlignCenter))
//	proposal := geometry.ProposeWidth(800)
//	_, fit := engine.Measure(proposal, s.Source())
//	placements := engine.Arrange(geometry.Rect{Size: fit}, proposal, s.Source())
//
//	// 3. Build the frame and render
//	frame := render.Build(s, fit, engine.Alignment(), placements)
//	svg := sink.RenderSVG(frame)
//
// # Main Packages
//
// [flow] - The layout engine. A single left-to-right pass packs items into
// rows against the proposed width, rows are stacked with per-pair vertical
// gaps, and a nine-anchor alignment resolver positions items within their
// rows. A single-entry cache keyed by a fingerprint of the proposal and item
// sizes makes repeated measure/arrange calls cheap.
//
// [geometry] - Sizes, points, rects, and the [geometry.Proposal] type used to
// communicate constrained and unconstrained dimensions to the engine.
//
// [scene] - Scene inputs. Load items from TOML or JSON manifests, or build a
// scene from a directory of images sized by their pixel dimensions.
//
// [render] - The serializable [render.Frame] model produced from placements,
// plus output sinks for SVG, PNG, and JSON under [render/sink].
//
// [pipeline] - The complete load → arrange → render pipeline with per-stage
// disk caching, used by the CLI. Ensures consistent behavior across entry
// points.
//
// [cache] - Content-addressed file cache and key derivation for arrangement
// and artifact caching.
//
// [observability] - Pluggable hooks for pipeline, cache, and engine events.
//
// [errors] - Structured errors with machine-readable codes.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/flow/...     # Layout engine only
//	go test -run Example       # Examples only
//
// [flow]: https://pkg.go.dev/github.com/matzehuels/flowline/pkg/flow
// [geometry]: https://pkg.go.dev/github.com/matzehuels/flowline/pkg/geometry
// [geometry.Proposal]: https://pkg.go.dev/github.com/matzehuels/flowline/pkg/geometry#Proposal
// [scene]: https://pkg.go.dev/github.com/matzehuels/flowline/pkg/scene
// [render]: https://pkg.go.dev/github.com/matzehuels/flowline/pkg/render
// [render.Frame]: https://pkg.go.dev/github.com/matzehuels/flowline/pkg/render#Frame
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/flowline/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/flowline/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/flowline/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/flowline/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/flowline/pkg/errors
package pkg
