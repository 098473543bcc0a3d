// Package render defines the Frame model, the bridge between the layout
// engine and the output sinks: resolved block positions plus the metadata a
// sink needs to draw them.
package render

import (
	"encoding/json"

	"github.com/matzehuels/flowline/pkg/cache"
	"github.com/matzehuels/flowline/pkg/flow"
	"github.com/matzehuels/flowline/pkg/geometry"
	"github.com/matzehuels/flowline/pkg/scene"
)

// Block is one positioned rectangle in a frame. X and Y are the top-left
// corner in frame coordinates.
type Block struct {
	ID     string  `json:"id"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Row    int     `json:"row"`
	Color  string  `json:"color,omitempty"`
	Image  string  `json:"image,omitempty"`
}

// Frame is a fully arranged scene: the content size and every block's final
// position. Frames round-trip through JSON, which is also how they are stored
// in the arrangement cache.
type Frame struct {
	Title     string  `json:"title,omitempty"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Alignment string  `json:"alignment,omitempty"`
	Rows      int     `json:"rows"`
	Blocks    []Block `json:"blocks"`
}

// Build assembles a frame from a scene and the engine's placements. Blocks
// appear in placement order, which matches scene item order.
func Build(s *scene.Scene, content geometry.Size, alignment flow.Alignment, placements []flow.Placement) Frame {
	f := Frame{
		Title:     s.Title,
		Width:     content.Width,
		Height:    content.Height,
		Alignment: string(alignment),
	}
	for _, p := range placements {
		it := s.Items[p.Index]
		f.Blocks = append(f.Blocks, Block{
			ID:     it.ID,
			Label:  it.Label,
			X:      p.Position.X,
			Y:      p.Position.Y,
			Width:  p.Size.Width,
			Height: p.Size.Height,
			Row:    p.Row,
			Color:  it.Color,
			Image:  it.Image,
		})
		if p.Row+1 > f.Rows {
			f.Rows = p.Row + 1
		}
	}
	return f
}

// Marshal serializes the frame as indented JSON.
func (f *Frame) Marshal() ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

// Unmarshal deserializes a frame produced by Marshal.
func Unmarshal(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Hash returns a stable content hash of the frame, used as the base of
// artifact cache keys.
func (f *Frame) Hash() string {
	data, _ := json.Marshal(f)
	return cache.Hash(data)
}
