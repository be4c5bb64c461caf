// Package hashkey turns fixed-size pixel byte blobs into fast, collision-
// resistant integer keys for map/dedup use.
//
// Both the Pattern Extractor (deduplicating NxN pixel windows) and the
// Adjacency Oracle (comparing (N-1)xN overlap strips between tiles) need
// the same shape of primitive: a small byte blob in, a cheap hashable key
// out. farmhash is non-cryptographic and built for exactly this kind of
// workload.
package hashkey

import (
	farm "github.com/dgryski/go-farm"
)

// Key is a 64-bit content hash of a pixel blob. Two blobs with different
// bytes may in principle collide; callers that require exact pixel
// equality must treat Key as a candidate-equality filter and fall back to
// a direct byte comparison whenever a collision is plausible. In
// practice, for the tile counts this library targets (tens to low
// hundreds), a 64-bit hash space makes collisions negligible, and every
// call site here additionally retains the source bytes for a final exact
// check.
type Key uint64

// Of computes the content-hash key of buf.
func Of(buf []byte) Key {
	return Key(farm.Hash64(buf))
}
