// Package scene defines the input model for the arrangement pipeline: a flat
// list of rectangular items plus spacing defaults, loaded from a manifest
// file or from a directory of images.
package scene

import (
	"encoding/json"

	"github.com/matzehuels/flowline/pkg/cache"
	"github.com/matzehuels/flowline/pkg/errors"
	"github.com/matzehuels/flowline/pkg/flow"
	"github.com/matzehuels/flowline/pkg/geometry"
)

// Spacing defaults applied when a scene leaves them unset.
const (
	DefaultGap    = 10.0
	DefaultRowGap = 5.0
)

// Item is one rectangle to arrange.
type Item struct {
	ID     string   `json:"id" toml:"id"`
	Label  string   `json:"label,omitempty" toml:"label"`
	Width  float64  `json:"width" toml:"width"`
	Height float64  `json:"height" toml:"height"`
	Gap    *float64 `json:"gap,omitempty" toml:"gap"`   // preferred gap to horizontal neighbors
	Color  string   `json:"color,omitempty" toml:"color"` // hex fill for rendered output
	Image  string   `json:"image,omitempty" toml:"image"` // path to a backing image file
}

// Defaults are scene-wide spacing values, used wherever items do not state a
// preference of their own.
type Defaults struct {
	Gap    *float64 `json:"gap,omitempty" toml:"gap"`
	RowGap *float64 `json:"row_gap,omitempty" toml:"row_gap"`
}

// Scene is an ordered collection of items with shared defaults.
type Scene struct {
	Title    string   `json:"title,omitempty" toml:"title"`
	Defaults Defaults `json:"defaults" toml:"defaults"`
	Items    []Item   `json:"items" toml:"items"`
}

// Gap returns the scene-wide horizontal gap.
func (s *Scene) Gap() float64 {
	if s.Defaults.Gap != nil {
		return *s.Defaults.Gap
	}
	return DefaultGap
}

// RowGap returns the scene-wide vertical gap between rows.
func (s *Scene) RowGap() float64 {
	if s.Defaults.RowGap != nil {
		return *s.Defaults.RowGap
	}
	return DefaultRowGap
}

// Validate checks the scene for structural problems: duplicate or empty IDs,
// non-positive dimensions, negative gaps.
func (s *Scene) Validate() error {
	if len(s.Items) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "scene has no items")
	}
	seen := make(map[string]bool, len(s.Items))
	for i, it := range s.Items {
		if it.ID == "" {
			return errors.New(errors.ErrCodeInvalidManifest, "item %d has no id", i)
		}
		if seen[it.ID] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
		if it.Width <= 0 || it.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidManifest, "item %q has non-positive size %gx%g", it.ID, it.Width, it.Height)
		}
		if it.Gap != nil && *it.Gap < 0 {
			return errors.New(errors.ErrCodeInvalidManifest, "item %q has negative gap %g", it.ID, *it.Gap)
		}
	}
	if s.Defaults.Gap != nil && *s.Defaults.Gap < 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "negative default gap %g", *s.Defaults.Gap)
	}
	if s.Defaults.RowGap != nil && *s.Defaults.RowGap < 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "negative default row gap %g", *s.Defaults.RowGap)
	}
	return nil
}

// ContentHash returns a stable hash of the scene's content, used as the base
// of arrangement cache keys.
func (s *Scene) ContentHash() string {
	data, _ := json.Marshal(s)
	return cache.Hash(data)
}

// Source adapts the scene to the layout engine's item interface.
func (s *Scene) Source() flow.Source {
	return &sceneSource{scene: s}
}

type sceneSource struct {
	scene *Scene
}

func (ss *sceneSource) Len() int { return len(ss.scene.Items) }

// SizeThatFits reports the item's fixed size. Scene items do not flex, so the
// proposal is ignored.
func (ss *sceneSource) SizeThatFits(i int, _ geometry.Proposal) geometry.Size {
	it := ss.scene.Items[i]
	return geometry.Size{Width: it.Width, Height: it.Height}
}

// Gap resolves spacing between a pair of items. Horizontally, when either
// item states a preferred gap the larger preference wins; otherwise the scene
// default applies. Vertically the scene row gap always applies.
func (ss *sceneSource) Gap(axis flow.Axis, prev, next int) float64 {
	if axis == flow.Vertical {
		return ss.scene.RowGap()
	}
	a := ss.scene.Items[prev].Gap
	b := ss.scene.Items[next].Gap
	switch {
	case a != nil && b != nil:
		if *a > *b {
			return *a
		}
		return *b
	case a != nil:
		return *a
	case b != nil:
		return *b
	}
	return ss.scene.Gap()
}
