// Package render provides the serializable frame model for arranged scenes.
//
// # Overview
//
// A [Frame] is the bridge between the layout engine and the output sinks: it
// captures every placed block with its absolute position, dimensions, row,
// and presentation attributes. Frames round-trip through JSON, which is how
// the pipeline caches arrangements on disk.
//
//	frame := render.Build(scene, content, alignment, placements)
//	data, err := frame.Marshal()
//	key := frame.Hash()
//
// # Output Sinks
//
// The [sink] subpackage turns frames into artifacts:
//
//   - [sink.RenderSVG]: vector output with optional row guides
//   - [sink.RenderPNG]: raster output at a configurable scale
//   - [sink.RenderJSON]: the frame itself, pretty or compact
//
// [sink]: github.com/matzehuels/flowline/pkg/render/sink
// [sink.RenderSVG]: github.com/matzehuels/flowline/pkg/render/sink#RenderSVG
// [sink.RenderPNG]: github.com/matzehuels/flowline/pkg/render/sink#RenderPNG
// [sink.RenderJSON]: github.com/matzehuels/flowline/pkg/render/sink#RenderJSON
package render
