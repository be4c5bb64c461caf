package tile

import "errors"

// Sentinel errors for the tile package. Callers should branch on these via
// errors.Is, never by comparing error strings.
var (
	// ErrInvalidTileSize indicates N was outside the supported range [1,20].
	ErrInvalidTileSize = errors.New("tile: tile size N must be in [1,20]")

	// ErrInvalidSampleSize indicates the sample's width or height was not
	// positive. Toroidal wrap means N may still exceed either dimension.
	ErrInvalidSampleSize = errors.New("tile: sample width and height must be positive")
)
