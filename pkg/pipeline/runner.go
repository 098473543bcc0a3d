package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/flowline/pkg/cache"
	"github.com/matzehuels/flowline/pkg/errors"
	"github.com/matzehuels/flowline/pkg/observability"
	"github.com/matzehuels/flowline/pkg/render"
	"github.com/matzehuels/flowline/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → arrange → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger.With("run_id", result.RunID)

	// Stage 1: Load
	loadStart := time.Now()
	s, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Scene = s
	result.SceneHash = s.ContentHash()
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ItemCount = len(s.Items)

	logger.Info("loaded scene",
		"items", len(s.Items),
		"duration", result.Stats.LoadTime)

	// Stage 2: Arrange
	arrangeStart := time.Now()
	frame, arrangeHit, err := r.GenerateFrameWithCacheInfo(ctx, s, opts)
	if err != nil {
		return nil, err
	}
	result.Frame = frame
	result.Stats.ArrangeTime = time.Since(arrangeStart)
	result.Stats.RowCount = frame.Rows
	result.CacheInfo.ArrangeHit = arrangeHit

	logger.Info("arranged scene",
		"rows", frame.Rows,
		"size", frame.Width,
		"duration", result.Stats.ArrangeTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, frame, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the scene from whichever source the options name. Loading is
// never cached: the file on disk is the source of truth and re-reading it is
// cheap.
func (r *Runner) Load(ctx context.Context, opts Options) (*scene.Scene, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	source := opts.Manifest
	if source == "" {
		source = opts.ImagesDir
	}
	observability.Pipeline().OnLoadStart(ctx, source)

	start := time.Now()
	var s *scene.Scene
	var err error
	if opts.Manifest != "" {
		s, err = scene.Load(opts.Manifest)
	} else {
		s, err = scene.LoadDir(opts.ImagesDir)
	}

	itemCount := 0
	if s != nil {
		itemCount = len(s.Items)
	}
	observability.Pipeline().OnLoadComplete(ctx, source, itemCount, time.Since(start), err)
	return s, err
}

// GenerateFrameWithCacheInfo arranges a scene with caching and returns cache hit info.
func (r *Runner) GenerateFrameWithCacheInfo(ctx context.Context, s *scene.Scene, opts Options) (render.Frame, bool, error) {
	if err := opts.ValidateForArrange(); err != nil {
		return render.Frame{}, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.ArrangementKey(s.ContentHash(), opts.ArrangementKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := render.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "arrangement")
				return *cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
	}
	observability.Cache().OnCacheMiss(ctx, "arrangement")

	observability.Pipeline().OnArrangeStart(ctx, len(s.Items))
	start := time.Now()
	frame, err := GenerateFrame(s, opts)
	observability.Pipeline().OnArrangeComplete(ctx, frame.Rows, time.Since(start), err)
	if err != nil {
		return render.Frame{}, false, err
	}

	// Cache the result
	if data, err := frame.Marshal(); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArrangement)
		observability.Cache().OnCacheSet(ctx, "arrangement", len(data))
	}

	return frame, false, nil
}

// GenerateFrame is a convenience wrapper that calls GenerateFrameWithCacheInfo
// and discards the cache hit info.
func (r *Runner) GenerateFrame(ctx context.Context, s *scene.Scene, opts Options) (render.Frame, error) {
	frame, _, err := r.GenerateFrameWithCacheInfo(ctx, s, opts)
	return frame, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, frame render.Frame, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	frameHash := frame.Hash()

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(frameHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderFromFrame(frame, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(frameHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, frame render.Frame, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, frame, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
