package tile

import "github.com/wfcgo/overlap/internal/hashkey"

// stripKind names one of the four overlap strips extracted from a tile:
// its left columns, right columns, top rows, or bottom rows.
type stripKind int

const (
	stripLeft stripKind = iota
	stripRight
	stripTop
	stripBottom
	numStripKinds
)

// ownStrip and matchStrip describe, for a given direction, which strip of
// the source tile and which strip of the candidate neighbour must agree.
// E.g. for RIGHT: A's right strip must equal B's left strip.
var ownStrip = [numDirections]stripKind{
	Up:    stripTop,
	Down:  stripBottom,
	Left:  stripLeft,
	Right: stripRight,
}

var matchStrip = [numDirections]stripKind{
	Up:    stripBottom,
	Down:  stripTop,
	Left:  stripRight,
	Right: stripLeft,
}

// signature is a precomputed overlap strip: its raw bytes (for an exact
// tie-break) and its content-hash key (for fast bucketing).
type signature struct {
	key   hashkey.Key
	bytes []byte
}

// BuildAdjacency computes, for every tile in ts and every direction, the
// set of tiles that may legally sit at that direction under the overlap-
// compatibility rule, and returns a new TileSet with
// Adjacency and ConnectivityWeight populated. ts itself is not mutated.
//
// Self-adjacency is always tested: a tile is compared against itself like
// any other candidate, since an earlier draft of this algorithm that
// skipped A==B was incorrect.
func BuildAdjacency(ts TileSet) TileSet {
	n := ts.N
	numTiles := len(ts.Patterns)

	sigs := make([][numStripKinds]signature, numTiles)
	for id, p := range ts.Patterns {
		sigs[id] = patternSignatures(p, n)
	}

	// Group tile ids by each strip kind's key, so that matching a tile's
	// own strip against candidate neighbours is an O(bucket size) lookup
	// rather than an O(numTiles) scan.
	var groups [numStripKinds]map[hashkey.Key][]int
	for k := stripKind(0); k < numStripKinds; k++ {
		groups[k] = make(map[hashkey.Key][]int)
	}
	for id := 0; id < numTiles; id++ {
		for k := stripKind(0); k < numStripKinds; k++ {
			key := sigs[id][k].key
			groups[k][key] = append(groups[k][key], id)
		}
	}

	adjacency := make([][numDirections]BitSet, numTiles)
	for id := range adjacency {
		for d := range adjacency[id] {
			adjacency[id][d] = NewBitSet(numTiles)
		}
	}

	for a := 0; a < numTiles; a++ {
		for _, d := range directions {
			own := sigs[a][ownStrip[d]]
			for _, b := range groups[matchStrip[d]][own.key] {
				if bytesEqual(own.bytes, sigs[b][matchStrip[d]].bytes) {
					adjacency[a][d].Set(b)
				}
			}
		}
	}

	out := ts
	out.Adjacency = adjacency
	out.ConnectivityWeight = make([]int, numTiles)
	for id := range out.ConnectivityWeight {
		out.ConnectivityWeight[id] = connectivityWeight(adjacency[id])
	}
	return out
}

// patternSignatures computes the four overlap-strip signatures for a
// single pattern. Each strip is (N-1)*N pixels, serialized row-major
// within the strip so identical strips always serialize identically.
func patternSignatures(p Pattern, n int) [numStripKinds]signature {
	var out [numStripKinds]signature
	out[stripLeft] = stripSignature(p, n, 0, n-1, 0, n)
	out[stripRight] = stripSignature(p, n, 1, n, 0, n)
	out[stripTop] = stripSignature(p, n, 0, n, 0, n-1)
	out[stripBottom] = stripSignature(p, n, 0, n, 1, n)
	return out
}

// stripSignature extracts pixels with dx in [x0,x1) and dy in [y0,y1) from
// p, in row-major order, and hashes the resulting byte sequence.
func stripSignature(p Pattern, n, x0, x1, y0, y1 int) signature {
	buf := make([]byte, 0, (x1-x0)*(y1-y0)*4)
	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			px := p.At(dx, dy)
			buf = append(buf, px.R, px.G, px.B, px.A)
		}
	}
	return signature{key: hashkey.Of(buf), bytes: buf}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
