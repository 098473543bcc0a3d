// Package cache provides the disk cache used by the arrangement pipeline.
//
// The pipeline caches two kinds of results: computed arrangements (frames)
// keyed by scene content hash plus layout options, and rendered artifacts
// keyed by frame hash plus render options. Keys are generated by a [Keyer]
// so that CLI and any future embedder agree on the key scheme.
package cache

import (
	"context"
	"time"
)

// Default TTLs per key type. Arrangements and artifacts are pure functions of
// their inputs, so the TTLs exist mainly to bound disk usage.
const (
	// TTLArrangement is the lifetime of cached arrangement frames.
	TTLArrangement = 7 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented cache with TTL expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArrangementKeyOpts are the layout options that participate in arrangement
// cache keys. Two runs with the same scene hash and the same opts produce the
// same frame.
type ArrangementKeyOpts struct {
	MaxWidth  float64 `json:"max_width"`
	Unbounded bool    `json:"unbounded"`
	Alignment string  `json:"alignment"`
	Gap       *float64 `json:"gap,omitempty"`
	RowGap    *float64 `json:"row_gap,omitempty"`
}

// ArtifactKeyOpts are the render options that participate in artifact cache
// keys.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
	Guides bool    `json:"guides,omitempty"`
}

// Keyer generates cache keys for the pipeline's cacheable stages.
type Keyer interface {
	// ArrangementKey generates a key for a computed arrangement.
	ArrangementKey(sceneHash string, opts ArrangementKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(frameHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a type prefix plus a SHA-256 hash
// of the identifying components.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// ArrangementKey generates a key for a computed arrangement.
func (k *DefaultKeyer) ArrangementKey(sceneHash string, opts ArrangementKeyOpts) string {
	return hashKey("arrangement", sceneHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(frameHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", frameHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
