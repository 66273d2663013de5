// Package walk provides tunable options and error definitions for the
// biased random walker over a bigraph.Graph.
package walk

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/taggraph/pixie/bigraph"
)

// Sentinel errors for walk execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
)

// DefaultMaxSteps bounds a walk when no explicit limit is configured.
const DefaultMaxSteps = 100

// WeightFunc assigns a sampling weight to the candidate edge e when the
// walk stands on node from. It is the central extensibility point of the
// recommender: the walker itself never inspects edge attributes.
//
// Contract: return a non-negative, finite value. Zero marks the edge
// unselectable for this step; if every candidate weighs zero the walk
// terminates (dead end). Negative, NaN and infinite returns are clamped
// to zero rather than propagated.
type WeightFunc func(from string, e bigraph.Edge) float64

// Option configures walk behavior via functional arguments.
// If an Option is invalid (e.g. non-positive MaxSteps), it is recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds the parameters of a single walk.
type Options struct {
	// MaxSteps bounds the number of edge traversals.
	MaxSteps int

	// Weight biases edge selection at every step.
	Weight WeightFunc

	// Rand is the random source; nil means the deterministic default
	// stream (seed 0 policy, see RandFromSeed).
	Rand *rand.Rand

	// Target is the node class whose visits are tallied.
	Target bigraph.Side

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns walk Options with sane defaults:
//   - MaxSteps = DefaultMaxSteps
//   - UniformWeight (unbiased walk)
//   - deterministic default RNG stream
//   - SideRight as the tallied class.
func DefaultOptions() Options {
	return Options{
		MaxSteps: DefaultMaxSteps,
		Weight:   UniformWeight,
		Rand:     nil,
		Target:   bigraph.SideRight,
		err:      nil,
	}
}

// WithMaxSteps bounds the walk to n edge traversals.
//
//	n >= 1: limit to n steps
//	n < 1:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxSteps must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithWeightFunc installs a caller-supplied edge-bias policy.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithRand injects a random source. The walker consumes one Float64 per
// step; sharing a source across goroutines is the caller's bug to avoid.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithSeed is shorthand for WithRand(RandFromSeed(seed)).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = RandFromSeed(seed)
	}
}

// WithTargetSide selects which node class has its visits recorded.
func WithTargetSide(side bigraph.Side) Option {
	return func(o *Options) {
		o.Target = side
	}
}

// Result holds the outcome of one walk:
//   - Visits: target-class node ID → number of times the walk landed on it.
//   - Steps: edge traversals actually performed (≤ MaxSteps; fewer on a
//     dead end).
type Result struct {
	Visits map[string]int
	Steps  int
}
