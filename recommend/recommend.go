package recommend

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/taggraph/pixie/bigraph"
	"github.com/taggraph/pixie/walk"
)

// Recommend runs walk.Walk fan-outs from every seed node, aggregates the
// weight-scaled visit tallies and returns the TopK target-class nodes.
//
// All validation happens before any walk is issued: a nil graph returns
// ErrGraphNil, a bad option ErrOptionViolation, an empty seed ID
// ErrEmptySeedID and a non-positive (or NaN/Inf) seed weight
// ErrSeedWeight. An empty seed slice is valid and yields an empty Result.
// Seed nodes absent from the graph simply contribute zero visits.
//
// With a fixed Seed option the call is fully deterministic: every walk
// batch draws from an RNG stream derived from (seed index, batch index),
// and tallies are merged in fixed order, so neither goroutine scheduling
// nor the Parallelism limit can change the Result.
// Complexity: O(seeds · WalksPerSeed · MaxSteps · d log d + T log T) for
// maximum degree d and tally size T.
func Recommend(g *bigraph.Graph, seeds []Seed, opts ...Option) (Result, error) {
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
	if err := validateSeeds(seeds); err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return Result{}, nil
	}

	folded := foldSeeds(seeds)
	budgets := walkBudgets(g, folded, o)

	tallies, err := runBatches(g, folded, budgets, o)
	if err != nil {
		return nil, err
	}

	return rank(combine(folded, tallies, o), folded, o), nil
}

// validateSeeds rejects empty IDs and non-positive weights up front, so
// no partial work happens on invalid input.
func validateSeeds(seeds []Seed) error {
	for _, s := range seeds {
		if s.Node == "" {
			return ErrEmptySeedID
		}
		if !(s.Weight > 0) || math.IsInf(s.Weight, 1) {
			return fmt.Errorf("%w: %q has weight %v", ErrSeedWeight, s.Node, s.Weight)
		}
	}

	return nil
}

// foldSeeds merges duplicate seed nodes additively and orders seeds by
// node ID, giving every seed a stable index for RNG stream derivation.
func foldSeeds(seeds []Seed) []Seed {
	byNode := make(map[string]float64, len(seeds))
	for _, s := range seeds {
		byNode[s.Node] += s.Weight
	}

	folded := make([]Seed, 0, len(byNode))
	for node, w := range byNode {
		folded = append(folded, Seed{Node: node, Weight: w})
	}
	sort.Slice(folded, func(i, j int) bool { return folded[i].Node < folded[j].Node })

	return folded
}

// walkBudgets returns the number of walks allotted to each folded seed.
// Plain mode gives every seed WalksPerSeed; degree scaling redistributes
// the same total proportionally to deg·(maxDeg − log₂deg).
func walkBudgets(g *bigraph.Graph, folded []Seed, o Options) []int {
	budgets := make([]int, len(folded))
	if !o.DegreeScaling {
		for i := range budgets {
			budgets[i] = o.WalksPerSeed
		}

		return budgets
	}

	factors := make([]float64, len(folded))
	var totalFactor float64
	maxDeg := float64(g.MaxDegree())
	for i, s := range folded {
		deg := float64(g.Degree(s.Node))
		if deg > 0 {
			factors[i] = deg * (maxDeg - math.Log2(deg))
		}
		totalFactor += factors[i]
	}
	if totalFactor == 0 {
		return budgets // every seed isolated or unknown: nothing to walk
	}

	totalWalks := float64(o.WalksPerSeed * len(folded))
	for i := range budgets {
		budgets[i] = int(math.Round(totalWalks * factors[i] / totalFactor))
	}

	return budgets
}

// batch is one parallel unit of work: a run of walks for a single seed,
// with its own RNG stream.
type batch struct {
	seedIdx int
	walks   int
	stream  uint64
}

// runBatches executes every seed's walk budget in batches of at most
// batchWalks, bounded by o.Parallelism concurrent goroutines, and returns
// one visit tally per folded seed.
func runBatches(g *bigraph.Graph, folded []Seed, budgets []int, o Options) ([]map[string]int, error) {
	var batches []batch
	for i := range folded {
		for done, b := 0, uint64(0); done < budgets[i]; b++ {
			n := budgets[i] - done
			if n > batchWalks {
				n = batchWalks
			}
			batches = append(batches, batch{
				seedIdx: i,
				walks:   n,
				stream:  uint64(i)<<32 | b,
			})
			done += n
		}
	}

	local := make([]map[string]int, len(batches))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Parallelism)
	for bi := range batches {
		bi := bi
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bt := batches[bi]
			rng := walk.DeriveRand(o.Seed, bt.stream)
			tally := make(map[string]int)
			for w := 0; w < bt.walks; w++ {
				res, err := walk.Walk(g, folded[bt.seedIdx].Node,
					walk.WithMaxSteps(o.MaxSteps),
					walk.WithWeightFunc(o.Weight),
					walk.WithRand(rng),
					walk.WithTargetSide(o.Target),
				)
				if err != nil {
					return err
				}
				for id, c := range res.Visits {
					tally[id] += c
				}
			}
			local[bi] = tally

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Fold batch tallies into per-seed tallies in batch order; integer
	// addition keeps this independent of goroutine completion order.
	perSeed := make([]map[string]int, len(folded))
	for i := range perSeed {
		perSeed[i] = make(map[string]int)
	}
	for bi, bt := range batches {
		for id, c := range local[bi] {
			perSeed[bt.seedIdx][id] += c
		}
	}

	return perSeed, nil
}

// combine scales each seed's tally by its weight and sums across seeds.
// Boost mode applies the Pixie booster: √count per seed, squared total.
func combine(folded []Seed, perSeed []map[string]int, o Options) map[string]float64 {
	combined := make(map[string]float64)
	for i, s := range folded {
		for id, c := range perSeed[i] {
			if o.Boost {
				combined[id] += s.Weight * math.Sqrt(float64(c))
			} else {
				combined[id] += s.Weight * float64(c)
			}
		}
	}
	if o.Boost {
		for id, v := range combined {
			combined[id] = v * v
		}
	}

	return combined
}

// rank sorts the combined tally (score descending, node ID ascending on
// ties) and truncates to TopK, optionally dropping the seeds themselves.
func rank(combined map[string]float64, folded []Seed, o Options) Result {
	if o.ExcludeSeeds {
		for _, s := range folded {
			delete(combined, s.Node)
		}
	}

	out := make(Result, 0, len(combined))
	for id, score := range combined {
		out = append(out, Scored{Node: id, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Node < out[j].Node
	})
	if len(out) > o.TopK {
		out = out[:o.TopK]
	}

	return out
}
