package walk

import (
	"math"
	"math/rand"

	"github.com/taggraph/pixie/bigraph"
)

// Walk performs one biased random walk on g starting from startID,
// applying any number of functional Options.
//
// The walk alternates between the two node classes: at each step it
// enumerates the incident edges of the current node, asks the WeightFunc
// for a weight per candidate, picks one edge with probability
// proportional to its weight, and moves. Every time the walk lands on a
// node of the target class, that visit is tallied. The walk stops after
// MaxSteps traversals or as soon as no candidate has positive weight
// (dead end). Edges may be re-traversed; this is a walk with
// replacement, not a self-avoiding walk.
//
// A start node that is absent from the graph, or has no edges, yields an
// empty Result and no error.
//
// Returns ErrGraphNil for a nil graph and ErrOptionViolation for bad
// options; nothing else can fail.
// Complexity: O(MaxSteps · d log d) for maximum degree d.
func Walk(g *bigraph.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rng := o.Rand
	if rng == nil {
		rng = RandFromSeed(0)
	}

	res := &Result{Visits: make(map[string]int)}

	// An unknown start contributes nothing (zero edges, zero visits).
	side, ok := g.Side(startID)
	if !ok {
		return res, nil
	}

	cur := startID
	for step := 0; step < o.MaxSteps; step++ {
		next, ok := sample(rng, cur, g.Neighbors(cur), o.Weight)
		if !ok {
			break // dead end
		}
		cur = next
		side = side.Opposite()
		res.Steps++
		if side == o.Target {
			res.Visits[cur]++
		}
	}

	return res, nil
}

// sample picks one edge with probability proportional to fn's weight,
// clamping ill-behaved weights to zero. Returns false when no candidate
// has positive weight.
func sample(rng *rand.Rand, from string, edges []bigraph.Edge, fn WeightFunc) (string, bool) {
	if len(edges) == 0 {
		return "", false
	}

	weights := make([]float64, len(edges))
	var total float64
	for i, e := range edges {
		w := clampWeight(fn(from, e))
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return "", false
	}

	// Cumulative scan; goal ∈ [0, total).
	goal := rng.Float64() * total
	for i, e := range edges {
		goal -= weights[i]
		if goal < 0 {
			return e.To, true
		}
	}

	// Float round-off can exhaust goal without selecting; the last
	// positive-weight candidate is the correct pick then.
	for i := len(edges) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return edges[i].To, true
		}
	}

	return "", false
}

// clampWeight maps negative, NaN and infinite weights to zero so a
// misbehaving WeightFunc degrades to a dead end instead of skewing the
// cumulative scan.
func clampWeight(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0
	}

	return w
}
