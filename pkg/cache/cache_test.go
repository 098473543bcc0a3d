package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// ArrangementKey should include options in hash
	ak1 := k.ArrangementKey("hash123", ArrangementKeyOpts{MaxWidth: 800, Alignment: "center"})
	ak2 := k.ArrangementKey("hash123", ArrangementKeyOpts{MaxWidth: 400, Alignment: "center"})
	if ak1 == ak2 {
		t.Error("Different ArrangementKeyOpts should produce different keys")
	}

	// Different scene hashes produce different keys
	ak3 := k.ArrangementKey("hash456", ArrangementKeyOpts{MaxWidth: 800, Alignment: "center"})
	if ak1 == ak3 {
		t.Error("Different scene hashes should produce different keys")
	}

	// Gap pointer participates in the key
	gap := 12.0
	ak4 := k.ArrangementKey("hash123", ArrangementKeyOpts{MaxWidth: 800, Alignment: "center", Gap: &gap})
	if ak1 == ak4 {
		t.Error("Gap override should produce a different key")
	}

	// ArtifactKey
	fk1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	fk2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png"})
	if fk1 == fk2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}

	// Keys carry their type prefix
	if ak1[:12] != "arrangement:" {
		t.Errorf("ArrangementKey should be prefixed: %s", ak1)
	}
	if fk1[:9] != "artifact:" {
		t.Errorf("ArtifactKey should be prefixed: %s", fk1)
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "project:dash:")

	key := scoped.ArrangementKey("hash123", ArrangementKeyOpts{MaxWidth: 800})
	if len(key) < 13 || key[:13] != "project:dash:" {
		t.Errorf("ScopedKeyer ArrangementKey should be prefixed: %s", key)
	}

	// Prefix plus inner key, nothing else changed
	plain := inner.ArrangementKey("hash123", ArrangementKeyOpts{MaxWidth: 800})
	if key != "project:dash:"+plain {
		t.Errorf("ScopedKeyer should wrap inner key: %s", key)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.ArtifactKey("hash123", ArtifactKeyOpts{Format: "json"})
	want := "prefix:" + NewDefaultKeyer().ArtifactKey("hash123", ArtifactKeyOpts{Format: "json"})
	if key != want {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get before Set should miss")
	}

	// Round trip
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get after Set should hit")
	}
	if string(data) != "value" {
		t.Errorf("Get data mismatch: %q", data)
	}

	// Delete
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("Get after Delete should miss")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Negative TTL writes an already-expired entry
	if err := c.Set(ctx, "key", []byte("value"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Expired entry should miss")
	}

	// Zero TTL means no expiry
	if err := c.Set(ctx, "forever", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "forever")
	if !hit {
		t.Error("Zero TTL entry should not expire")
	}
}
