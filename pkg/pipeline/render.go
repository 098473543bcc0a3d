package pipeline

import (
	"github.com/matzehuels/flowline/pkg/errors"
	"github.com/matzehuels/flowline/pkg/render"
	"github.com/matzehuels/flowline/pkg/render/sink"
)

// =============================================================================
// Artifact Rendering
// =============================================================================

// RenderFromFrame renders all requested formats from a computed frame.
// This is the pure computation behind the render stage: no caching.
func RenderFromFrame(frame render.Frame, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(frame, format, opts)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(frame render.Frame, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		var svgOpts []sink.SVGOption
		if opts.Guides {
			svgOpts = append(svgOpts, sink.WithGuides())
		}
		return sink.RenderSVG(frame, svgOpts...), nil
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithPNGScale(opts.Scale)}
		if opts.Guides {
			pngOpts = append(pngOpts, sink.WithPNGGuides())
		}
		return sink.RenderPNG(frame, pngOpts...)
	case FormatJSON:
		return sink.RenderJSON(frame)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}
