package solver

import (
	"math/rand"

	"github.com/wfcgo/overlap/tile"
)

// defaultSnapshotInterval, defaultMaxSnapshots and defaultMaxBacktrackDepth
// are the K=10 / 5 / 32 defaults for snapshot cadence and rollback depth.
const (
	defaultSnapshotInterval  = 10
	defaultMaxSnapshots      = 5
	defaultMaxBacktrackDepth = 32
	defaultDegreeBonus       = -0.1
)

// WeightFunc computes the entropy/collapse weight w(t) for tile t within
// ts. The default blends frequency and connectivity; callers may swap in
// a frequency-only or connectivity-only policy via WithWeightFunc.
type WeightFunc func(t int, ts tile.TileSet) float64

// defaultWeightFunc implements w(t) = (3*freq[t] + connWeight[t]) / 4:
// frequency dominates, connectivity contributes mildly.
func defaultWeightFunc(t int, ts tile.TileSet) float64 {
	return (3*float64(ts.Frequency[t]) + float64(ts.ConnectivityWeight[t])) / 4
}

// Observer receives progress notifications. No hook fires while a
// propagation pass is running, and no hook is handed grid state, so a
// host's hook cannot influence the search. Every field is optional; a nil
// Observer (the default) makes Run behave identically, just silently.
type Observer struct {
	// OnAttempt fires once at the start of each attempt.
	OnAttempt func(attempt, maxAttempts int)
	// OnProgress fires after each successful collapse+propagate step.
	OnProgress func(collapsedCells, totalCells int)
	// OnSnapshot fires whenever a new snapshot is captured. Snapshots are
	// captured as a decision is recorded, so this fires before that
	// decision's propagation pass runs, not after it.
	OnSnapshot func()
}

func (o *Observer) attempt(a, max int) {
	if o != nil && o.OnAttempt != nil {
		o.OnAttempt(a, max)
	}
}

func (o *Observer) progress(collapsed, total int) {
	if o != nil && o.OnProgress != nil {
		o.OnProgress(collapsed, total)
	}
}

func (o *Observer) snapshot() {
	if o != nil && o.OnSnapshot != nil {
		o.OnSnapshot()
	}
}

// config holds the resolved settings for one Run call, built up by Option
// functions the way builder.BuilderOption mutates a builderConfig.
type config struct {
	rng                 *rand.Rand
	weightFunc          WeightFunc
	degreeBonus         float64
	snapshotInterval    int
	maxSnapshots        int
	maxBacktrackDepth   int
	observer            *Observer
	cancel              func() bool
	maxAttemptsOverride int
}

func newConfig() *config {
	return &config{
		rng:               rand.New(rand.NewSource(1)),
		weightFunc:        defaultWeightFunc,
		degreeBonus:       defaultDegreeBonus,
		snapshotInterval:  defaultSnapshotInterval,
		maxSnapshots:      defaultMaxSnapshots,
		maxBacktrackDepth: defaultMaxBacktrackDepth,
	}
}

// Option customizes a Run call by mutating a config instance before
// synthesis begins.
type Option func(*config)

// WithRNG supplies an explicit, pre-seeded RNG. Use this (or WithSeed) so
// that a given (TileSet, width, height, seed) tuple determines the output
// exactly. Panics on nil: a missing RNG is a programmer error, not a
// recoverable condition.
func WithRNG(r *rand.Rand) Option {
	if r == nil {
		panic("solver: WithRNG(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand from seed. This is the normal way to
// call Run: Synthesize(ts, w, h, seed) forwards to WithSeed internally.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFunc overrides the entropy/collapse weighting policy. The
// default weights frequency at least as heavily as connectivity; callers
// opting out of that default take on responsibility for the resulting
// entropy ordering.
func WithWeightFunc(fn WeightFunc) Option {
	if fn == nil {
		panic("solver: WithWeightFunc(nil)")
	}
	return func(c *config) { c.weightFunc = fn }
}

// WithDegreeBonus overrides the -0.1 per-collapsed-orthogonal-neighbour
// entropy adjustment. Setting it to 0 disables the degree heuristic
// entirely (still correct, potentially slower to converge).
func WithDegreeBonus(bonus float64) Option {
	return func(c *config) { c.degreeBonus = bonus }
}

// WithSnapshotInterval overrides K, the number of history entries between
// full-grid snapshots (default 10).
func WithSnapshotInterval(k int) Option {
	return func(c *config) {
		if k > 0 {
			c.snapshotInterval = k
		}
	}
}

// WithMaxSnapshots overrides how many snapshots are retained FIFO-style
// (default 5).
func WithMaxSnapshots(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxSnapshots = n
		}
	}
}

// WithMaxBacktrackDepth overrides the adaptive schedule's ceiling
// (default 32).
func WithMaxBacktrackDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBacktrackDepth = n
		}
	}
}

// WithObserver attaches progress/snapshot hooks. See Observer's doc
// comment for the yield-boundary guarantee.
func WithObserver(o *Observer) Option {
	return func(c *config) { c.observer = o }
}

// WithCancelFunc attaches a cooperative cancellation predicate, checked at
// the same yield boundaries as the Observer. If it returns true, Run
// returns ErrCancelled and discards partial state.
func WithCancelFunc(fn func() bool) Option {
	return func(c *config) { c.cancel = fn }
}

// WithMaxAttempts overrides the computed default
// min(12, ceil(4 + cells/15)).
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxAttemptsOverride = n
		}
	}
}

func (c *config) cancelled() bool {
	return c.cancel != nil && c.cancel()
}
