// Package recommend provides tunable options, error definitions and
// result types for the multi-seed walk aggregator.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/taggraph/pixie/bigraph"
	"github.com/taggraph/pixie/walk"
)

// Sentinel errors for recommendation calls.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("recommend: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("recommend: invalid option supplied")

	// ErrSeedWeight is returned when a seed carries a non-positive or
	// non-finite weight.
	ErrSeedWeight = errors.New("recommend: seed weight must be positive")

	// ErrEmptySeedID is returned when a seed node ID is the empty string.
	ErrEmptySeedID = errors.New("recommend: seed node ID is empty")
)

// Defaults for recommendation options.
const (
	// DefaultWalksPerSeed is the number of walks issued per seed node.
	DefaultWalksPerSeed = 100

	// DefaultTopK is the number of ranked entries returned.
	DefaultTopK = 10

	// batchWalks is the largest number of walks bundled into one parallel
	// task. Each batch owns an independent RNG stream keyed by its index,
	// so results do not depend on scheduling or on the parallelism limit.
	batchWalks = 32
)

// Seed is one weighted query node. Weight is a linear multiplier on the
// node's visit counts; several Seeds naming the same node are additive.
type Seed struct {
	Node   string
	Weight float64
}

// Scored is one ranked entry of a recommendation Result.
type Scored struct {
	Node  string
	Score float64
}

// Result is an ordered recommendation list, best first. Ties are broken
// by ascending node ID so a fixed input always yields the same order.
type Result []Scored

// Option configures Recommend via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of one recommendation call.
type Options struct {
	// Ctx allows cancellation and deadlines across walk batches.
	Ctx context.Context

	// WalksPerSeed is the walk budget per seed node.
	WalksPerSeed int

	// MaxSteps bounds each individual walk.
	MaxSteps int

	// TopK truncates the ranked result.
	TopK int

	// Weight biases edge selection in every walk.
	Weight walk.WeightFunc

	// Seed feeds the deterministic RNG streams (0 ⇒ fixed default seed).
	Seed int64

	// Target is the node class being recommended.
	Target bigraph.Side

	// Parallelism caps concurrently running walk batches.
	Parallelism int

	// DegreeScaling reallocates the total walk budget across seeds
	// proportionally to deg·(maxDeg − log₂deg), the Pixie allocation.
	DegreeScaling bool

	// Boost replaces linear count aggregation with the Pixie multi-hit
	// booster: per-seed contributions enter as weight·√count and the
	// combined score is squared, favoring nodes reached from several seeds.
	Boost bool

	// ExcludeSeeds drops the seed nodes themselves from the result.
	ExcludeSeeds bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns recommendation Options with sane defaults:
//   - Background context
//   - DefaultWalksPerSeed walks of walk.DefaultMaxSteps steps per seed
//   - DefaultTopK entries returned
//   - uniform weighting, SideRight targets
//   - one walk batch per CPU in flight
//   - plain linear aggregation (no degree scaling, no boosting).
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		WalksPerSeed: DefaultWalksPerSeed,
		MaxSteps:     walk.DefaultMaxSteps,
		TopK:         DefaultTopK,
		Weight:       walk.UniformWeight,
		Seed:         0,
		Target:       bigraph.SideRight,
		Parallelism:  runtime.NumCPU(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWalksPerSeed sets the walk budget per seed node (must be >= 1).
func WithWalksPerSeed(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: WalksPerSeed must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.WalksPerSeed = n
	}
}

// WithMaxSteps bounds each walk to n edge traversals (must be >= 1).
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxSteps must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithTopK truncates the result to the k best entries (must be >= 1).
func WithTopK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: TopK must be >= 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.TopK = k
	}
}

// WithWeightFunc installs a caller-supplied edge-bias policy.
func WithWeightFunc(fn walk.WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithSeed fixes the RNG seed; identical calls then return identical
// results. Seed 0 selects the stable default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithTargetSide selects which node class is recommended.
func WithTargetSide(side bigraph.Side) Option {
	return func(o *Options) {
		o.Target = side
	}
}

// WithParallelism caps the number of walk batches in flight (must be >= 1).
// Parallelism never affects the result, only wall-clock time.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Parallelism must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}

// WithDegreeScaling enables the Pixie walk-budget allocation: seeds with
// higher degree receive a larger share of the total walk budget.
func WithDegreeScaling() Option {
	return func(o *Options) { o.DegreeScaling = true }
}

// WithBoost enables the Pixie multi-hit booster, rewarding nodes reached
// from several distinct seeds over nodes hammered by a single one.
//
// Note: boosting is deliberately non-linear; the plain linear-weighting
// guarantee does not apply when it is on.
func WithBoost() Option {
	return func(o *Options) { o.Boost = true }
}

// WithoutSeeds drops the seed nodes themselves from the ranked result.
// Only relevant when the target side can contain seeds (e.g. right-side
// seeds with the default right-side target).
func WithoutSeeds() Option {
	return func(o *Options) { o.ExcludeSeeds = true }
}
