// Package solver implements the third subsystem of the overlap-model Wave
// Function Collapse core: the superposition grid, entropy-driven cell
// selection, weighted collapse with look-ahead, arc-consistency
// propagation, snapshot/backtrack recovery, and the outer attempt
// controller.
//
// What:
//
//   - Grid holds a width*height array of Cells, each a possibility BitSet.
//   - SelectCell picks the next cell to collapse by weighted entropy.
//   - The engine's collapse step commits a cell to one tile, using
//     one-step look-ahead.
//   - Its propagate step restores arc-consistency with respect to
//     collapsed cells.
//   - A history of decisions plus periodic snapshots lets its backtrack
//     step undo an adaptively-chosen number of steps on contradiction.
//   - Run is the outer retry loop: seed, collapse-propagate-backtrack
//     until solved or all attempts are exhausted.
//
// Why:
//
//   - Splitting these concerns keeps each piece independently testable:
//     entropy selection only reads a Grid and a tile.TileSet (plus RNG
//     draws); propagation narrows possibility sets without touching
//     history; collapse appends to history and backtracking truncates it.
//
// Determinism:
//
//   - Every random draw (seed cell choice, tile pick, entropy jitter) flows
//     through the *rand.Rand supplied via WithRNG. No package state is
//     read from an ambient global RNG, so (TileSet, width, height, seed)
//     fully determines the output.
//
// Errors:
//
//   - ErrInvalidGridSize: width or height outside [3,50].
//   - ErrGenerationFailed: every attempt exhausted without a solution.
//   - ErrCancelled: the host's cancellation predicate returned true.
package solver
