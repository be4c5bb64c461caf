package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors for the solver package. Callers should branch via
// errors.Is, never by comparing error strings.
var (
	// ErrInvalidGridSize indicates width or height was outside [3,50].
	ErrInvalidGridSize = errors.New("solver: grid width and height must be in [3,50]")

	// ErrEmptyTileSet indicates a TileSet with no patterns was supplied.
	ErrEmptyTileSet = errors.New("solver: tile set has no patterns")

	// ErrGenerationFailed indicates every attempt exhausted its budget
	// without reaching a contradiction-free, fully collapsed grid. See
	// GenerationError for diagnostic detail.
	ErrGenerationFailed = errors.New("solver: generation failed")

	// ErrCancelled indicates the host's cancellation predicate returned
	// true at a yield boundary.
	ErrCancelled = errors.New("solver: cancelled")
)

// GenerationError is returned (wrapped under ErrGenerationFailed) when all
// attempts are exhausted. It carries diagnostic detail: attempts made,
// the grid and tile-set sizes, and the location of the last contradiction
// observed.
type GenerationError struct {
	Attempts         int
	GridWidth        int
	GridHeight       int
	TileCount        int
	LastContra       Coord
	HadContradiction bool
}

func (e *GenerationError) Error() string {
	if e.HadContradiction {
		return fmt.Sprintf(
			"solver: generation failed after %d attempts on a %dx%d grid with %d tiles (last contradiction at %d,%d)",
			e.Attempts, e.GridWidth, e.GridHeight, e.TileCount, e.LastContra.X, e.LastContra.Y,
		)
	}
	return fmt.Sprintf(
		"solver: generation failed after %d attempts on a %dx%d grid with %d tiles",
		e.Attempts, e.GridWidth, e.GridHeight, e.TileCount,
	)
}

// Unwrap lets errors.Is(err, ErrGenerationFailed) succeed for a
// *GenerationError returned by Run.
func (e *GenerationError) Unwrap() error { return ErrGenerationFailed }
