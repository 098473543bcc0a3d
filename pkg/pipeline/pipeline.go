// Package pipeline provides the core arrangement pipeline for flowline.
//
// This package implements the complete load → arrange → render pipeline that
// can be used by CLI and embedding components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a scene from a manifest file or image directory
//  2. Arrange: Pack the scene's items into rows within the width constraint
//  3. Render: Generate output in various formats (SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Manifest: "scene.toml",
//	    MaxWidth: 800,
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	s, err := runner.Load(ctx, opts)
//
//	// Arrange with an existing scene
//	frame, err := runner.GenerateFrame(ctx, s, opts)
//
//	// Render with an existing frame
//	artifacts, err := runner.Render(ctx, frame, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowline/pkg/cache"
	"github.com/matzehuels/flowline/pkg/errors"
	"github.com/matzehuels/flowline/pkg/flow"
	"github.com/matzehuels/flowline/pkg/render"
	"github.com/matzehuels/flowline/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Embedders
// =============================================================================

const (
	// DefaultMaxWidth is the default arrangement width in scene units.
	DefaultMaxWidth = 800.0

	// DefaultScale is the default raster scale factor for PNG output.
	DefaultScale = 2.0
)

// DefaultAlignment is the default anchor for distributing leftover space.
const DefaultAlignment = flow.AlignCenter

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the arrangement pipeline.
// This struct supports JSON serialization for embedding in tools.
type Options struct {
	// Load options
	Manifest  string `json:"manifest,omitempty"`
	ImagesDir string `json:"images_dir,omitempty"`

	// Arrange options
	MaxWidth  float64  `json:"max_width,omitempty"`
	Unbounded bool     `json:"unbounded,omitempty"` // no width constraint: everything on one row
	Alignment string   `json:"alignment,omitempty"`
	Gap       *float64 `json:"gap,omitempty"`     // overrides the scene's horizontal gap
	RowGap    *float64 `json:"row_gap,omitempty"` // overrides the scene's vertical gap

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Guides  bool     `json:"guides,omitempty"`

	// Runtime options (not serialized)
	Refresh bool        `json:"-"` // bypass the disk cache for this run
	Logger  *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution in logs.
	RunID string

	// Scene is the loaded input.
	Scene *scene.Scene

	// SceneHash is the content hash of the scene.
	SceneHash string

	// Frame is the computed arrangement.
	Frame render.Frame

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the disk cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount   int
	RowCount    int
	LoadTime    time.Duration
	ArrangeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ArrangeHit bool // Whether the frame came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAlignment checks that an alignment name is one of the nine anchors.
func ValidateAlignment(alignment string) error {
	if !flow.Alignment(alignment).IsValid() {
		return errors.New(errors.ErrCodeInvalidAlignment, "invalid alignment: %q (must be one of: %v)", alignment, flow.Alignments())
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForArrange(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Manifest == "" && o.ImagesDir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "manifest or images_dir is required")
	}
	if o.Manifest != "" && o.ImagesDir != "" {
		return errors.New(errors.ErrCodeInvalidInput, "manifest and images_dir are mutually exclusive")
	}
	o.setLoggerDefault()
	return nil
}

// ValidateForArrange validates and sets defaults for arrangement.
func (o *Options) ValidateForArrange() error {
	if o.MaxWidth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_width must be non-negative, got %g", o.MaxWidth)
	}
	if o.MaxWidth == 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.Alignment == "" {
		o.Alignment = string(DefaultAlignment)
	}
	if o.Gap != nil && *o.Gap < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "gap must be non-negative, got %g", *o.Gap)
	}
	if o.RowGap != nil && *o.RowGap < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "row_gap must be non-negative, got %g", *o.RowGap)
	}
	o.setLoggerDefault()
	return ValidateAlignment(o.Alignment)
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	o.setLoggerDefault()
	return ValidateFormats(o.Formats)
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ArrangementKeyOpts returns cache key options for the arrange stage.
func (o *Options) ArrangementKeyOpts() cache.ArrangementKeyOpts {
	return cache.ArrangementKeyOpts{
		MaxWidth:  o.MaxWidth,
		Unbounded: o.Unbounded,
		Alignment: o.Alignment,
		Gap:       o.Gap,
		RowGap:    o.RowGap,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Scale:  o.Scale,
		Guides: o.Guides,
	}
}
