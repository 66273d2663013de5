// Package walk performs single biased random walks over a
// bigraph.Graph, the sampling primitive underneath the recommender.
//
// What
//
//   - Walk(g, start, ...opts) runs one bounded walk alternating between
//     the two node classes, tallying every landing on the target class.
//   - Edge selection is proportional to a pluggable WeightFunc; the
//     package ships UniformWeight (unbiased) and CountWeight
//     (interaction-count biased).
//   - RandFromSeed / DeriveRand give deterministic, independently
//     seedable random streams for reproducible and parallel use.
//
// Why
//
//   - Short random walks from a seed node estimate its proximity
//     distribution over the opposite class; the recommend package
//     aggregates many of them into a ranked recommendation list.
//
// Determinism
//
//	A fixed graph, fixed options and a fixed seed reproduce the walk
//	exactly: bigraph.Neighbors returns edges sorted by neighbor ID and
//	the walker consumes exactly one Float64 per step.
//
// Dead ends
//
//	A node with no edges, or whose candidates all weigh zero, terminates
//	the walk early. That is a normal outcome, not an error; the Result
//	simply carries fewer Steps.
//
// Complexity (d = maximum degree on the walk's path)
//
//   - Time:   O(MaxSteps · d log d)  (neighbor sort dominates)
//   - Memory: O(d) per step plus the visit tally
//
// Usage
//
//	res, err := walk.Walk(g, "movie:rocky",
//	    walk.WithMaxSteps(50),
//	    walk.WithWeightFunc(walk.CountWeight),
//	    walk.WithSeed(42),
//	)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrOptionViolation if an option is invalid (e.g. MaxSteps < 1).
//
// An unknown start node is NOT an error: the walk visits nothing.
package walk
