// Package sink provides output format renderers for arranged frames.
//
// A "sink" transforms a computed [render.Frame] into a final output format.
// This package provides renderers for:
//
//   - SVG: vector output with optional row guides
//   - PNG: raster output via fogleman/gg, with image-backed blocks
//   - JSON: frame data export for external tools and caching
//
// Basic usage:
//
//	svg := sink.RenderSVG(frame, sink.WithGuides())
//	png, err := sink.RenderPNG(frame, sink.WithPNGScale(2))
//	data, err := sink.RenderJSON(frame)
//
// To add a new output format:
//
//  1. Create a renderer function: func RenderFoo(f render.Frame, opts ...FooOption) ([]byte, error)
//  2. Define option types for configuration
//  3. Access f.Blocks for positioned blocks
//  4. Register the format in the pipeline's ValidFormats and the CLI
//
// [render.Frame]: github.com/matzehuels/flowline/pkg/render.Frame
package sink
