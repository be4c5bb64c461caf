// Package tile implements the first two subsystems of the overlap-model
// Wave Function Collapse core: the Pattern Extractor and the Adjacency
// Oracle.
//
// What:
//
//   - Pixel is a 4-channel (R,G,B,A) colour value with exact equality.
//   - Pattern is an NxN window of Pixels, deduplicated within a TileSet.
//   - TileSet holds the extracted patterns, their sample frequencies, and
//     their precomputed four-directional adjacency (a BitSet of tile ids
//     per direction).
//   - ExtractTiles scans a Sample toroidally and builds a TileSet.
//   - BuildAdjacency derives, for every ordered pair of tiles and every
//     direction, whether the overlap-compatibility rule holds.
//
// Why:
//
//   - Synthesis needs a small, closed alphabet of tiles with known
//     neighbour constraints before any cell can be collapsed; this package
//     is that alphabet's sole producer.
//
// Complexity:
//
//   - ExtractTiles:   O(W*H*N^2), Memory: O(distinct patterns * N^2)
//   - BuildAdjacency: O(n*N^2 + n^2), Memory: O(n^2/64) for the bitsets
//
// Errors:
//
//   - ErrInvalidTileSize: N is outside [1,20].
//   - ErrInvalidSampleSize: sample width or height is not positive.
package tile
