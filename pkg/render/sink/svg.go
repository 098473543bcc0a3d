package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/flowline/pkg/render"
)

const (
	defaultFill   = "#E2E8F0"
	defaultStroke = "#475569"
	labelColor    = "#1E293B"
	guideColor    = "#CBD5E1"
	fontSize      = 12.0
	margin        = 16.0
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	guides     bool
	background string
}

// WithGuides draws a dashed line along the top of every row, which helps when
// checking alignment behavior by eye.
func WithGuides() SVGOption { return func(r *svgRenderer) { r.guides = true } }

// WithBackground sets a background fill. The default is transparent.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG renders the frame as a standalone SVG document. Blocks are drawn
// in frame order with their labels centered; image-backed blocks reference
// their image file instead of a fill.
func RenderSVG(f render.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	width := f.Width + 2*margin
	height := f.Height + 2*margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.background)
	}

	if r.guides {
		renderGuides(&buf, f)
	}

	for _, b := range f.Blocks {
		renderBlock(&buf, b)
	}
	for _, b := range f.Blocks {
		if b.Label != "" {
			renderLabel(&buf, b)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBlock(buf *bytes.Buffer, b render.Block) {
	if b.Image != "" {
		fmt.Fprintf(buf, `  <image id="block-%s" href="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
			escapeXML(b.ID), escapeXML(b.Image), margin+b.X, margin+b.Y, b.Width, b.Height)
		return
	}
	fill := b.Color
	if fill == "" {
		fill = defaultFill
	}
	fmt.Fprintf(buf, `  <rect id="block-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" rx="2"/>`+"\n",
		escapeXML(b.ID), margin+b.X, margin+b.Y, b.Width, b.Height, fill, defaultStroke)
}

func renderLabel(buf *bytes.Buffer, b render.Block) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		margin+b.X+b.Width/2, margin+b.Y+b.Height/2, fontSize, labelColor, escapeXML(b.Label))
}

func renderGuides(buf *bytes.Buffer, f render.Frame) {
	// One guide per row at the row's topmost block edge.
	tops := make(map[int]float64)
	for _, b := range f.Blocks {
		y, ok := tops[b.Row]
		if !ok || b.Y < y {
			tops[b.Row] = b.Y
		}
	}
	for row := 0; row < f.Rows; row++ {
		y, ok := tops[row]
		if !ok {
			continue
		}
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="4 4"/>`+"\n",
			margin, margin+y, margin+f.Width, margin+y, guideColor)
	}
}

// escapeXML escapes s for use in element text or attribute values. IDs,
// labels, and image paths all come from user input.
func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
