package flow

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/matzehuels/flowline/pkg/geometry"
)

// unconstrainedSentinel stands in for an unconstrained axis in fingerprints.
// No valid float64 bit pattern collides with it because sizes are finite.
const unconstrainedSentinel = ^uint64(0)

// fingerprint hashes the proposal and every measured item size, in order.
// Two passes share a fingerprint exactly when packing would produce the same
// rows, so the fingerprint is the cache key for the packed result.
func fingerprint(p geometry.Proposal, sizes []geometry.Size) uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeBits := func(bits uint64) {
		binary.LittleEndian.PutUint64(buf[:], bits)
		_, _ = d.Write(buf[:])
	}
	writeLength := func(l geometry.Length) {
		if v, ok := l.Value(); ok {
			writeBits(math.Float64bits(v))
		} else {
			writeBits(unconstrainedSentinel)
		}
	}

	writeLength(p.Width)
	writeLength(p.Height)
	for _, s := range sizes {
		writeBits(math.Float64bits(s.Width))
		writeBits(math.Float64bits(s.Height))
	}
	return d.Sum64()
}

// cacheEntry is the engine's single-entry layout cache: the most recently
// packed rows and content size, keyed by fingerprint. It is never reused
// across a differing fingerprint and never partially applied; a mismatch
// recomputes and overwrites the whole entry.
type cacheEntry struct {
	key     uint64
	rows    []row
	content geometry.Size
	valid   bool
}
