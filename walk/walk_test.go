package walk_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/taggraph/pixie/bigraph"
	"github.com/taggraph/pixie/walk"
)

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	if _, err := walk.Walk(nil, "A"); !errors.Is(err, walk.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := bigraph.New()
	if _, err := walk.Walk(g, "A", walk.WithMaxSteps(0)); !errors.Is(err, walk.ErrOptionViolation) {
		t.Errorf("MaxSteps=0: want ErrOptionViolation, got %v", err)
	}
	if _, err := walk.Walk(g, "A", walk.WithMaxSteps(-3)); !errors.Is(err, walk.ErrOptionViolation) {
		t.Errorf("MaxSteps=-3: want ErrOptionViolation, got %v", err)
	}
}

// TestWalk_UnknownStart covers a start node absent from the graph:
// the walk contributes nothing, without error.
func TestWalk_UnknownStart(t *testing.T) {
	g := bigraph.New()
	g.AddEdge("A", "X", 1)

	res, err := walk.Walk(g, "ghost", walk.WithMaxSteps(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Visits) != 0 || res.Steps != 0 {
		t.Errorf("unknown start: want empty result, got %+v", res)
	}
}

// TestWalk_IsolatedStart covers a registered node with no edges.
func TestWalk_IsolatedStart(t *testing.T) {
	g := bigraph.New()
	g.AddNode("loner", bigraph.SideLeft)

	res, err := walk.Walk(g, "loner", walk.WithMaxSteps(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Visits) != 0 || res.Steps != 0 {
		t.Errorf("isolated start: want empty result, got %+v", res)
	}
}

// TestWalk_ChainIsExact pins down the walk on a two-node chain, where
// every step has exactly one candidate and no randomness is involved:
// L-R-L-R-... with the right node visited on every odd step.
func TestWalk_ChainIsExact(t *testing.T) {
	g := bigraph.New()
	g.AddEdge("L", "R", 1)

	res, err := walk.Walk(g, "L", walk.WithMaxSteps(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Steps != 4 {
		t.Errorf("Steps = %d; want 4", res.Steps)
	}
	if got := res.Visits["R"]; got != 2 {
		t.Errorf("Visits[R] = %d; want 2", got)
	}
	if len(res.Visits) != 1 {
		t.Errorf("Visits = %v; want only R", res.Visits)
	}
}

// TestWalk_TargetSideLeft flips the tallied class: on the same chain the
// left node is now the one recorded, on every even step.
func TestWalk_TargetSideLeft(t *testing.T) {
	g := bigraph.New()
	g.AddEdge("L", "R", 1)

	res, err := walk.Walk(g, "L",
		walk.WithMaxSteps(4),
		walk.WithTargetSide(bigraph.SideLeft),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Visits["L"]; got != 2 {
		t.Errorf("Visits[L] = %d; want 2", got)
	}
	if _, ok := res.Visits["R"]; ok {
		t.Errorf("Visits contains R; right side must not be tallied")
	}
}

// TestWalk_AllZeroWeightsIsDeadEnd verifies that a weight function
// marking every candidate unselectable terminates the walk immediately.
func TestWalk_AllZeroWeightsIsDeadEnd(t *testing.T) {
	g := bigraph.New()
	g.AddEdge("L", "R1", 1)
	g.AddEdge("L", "R2", 1)

	zero := func(string, bigraph.Edge) float64 { return 0 }
	res, err := walk.Walk(g, "L", walk.WithMaxSteps(10), walk.WithWeightFunc(zero))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Steps != 0 || len(res.Visits) != 0 {
		t.Errorf("zero weights: want immediate dead end, got %+v", res)
	}
}

// TestWalk_IllBehavedWeightsClamped verifies that negative and non-finite
// weights are treated as zero instead of corrupting the sampling.
func TestWalk_IllBehavedWeightsClamped(t *testing.T) {
	g := bigraph.New()
	g.AddEdge("L", "bad", 1)
	g.AddEdge("L", "good", 1)

	// "bad" is weighted negative, so every right-side landing must be "good".
	fn := func(_ string, e bigraph.Edge) float64 {
		if e.To == "bad" || e.To == "L" {
			return -1
		}

		return 1
	}
	res, err := walk.Walk(g, "L", walk.WithMaxSteps(7), walk.WithWeightFunc(fn), walk.WithSeed(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.Visits["bad"]; ok {
		t.Errorf("negative-weight edge was sampled: %v", res.Visits)
	}
	// From "good" the only way back weighs -1, so the walk dead-ends after one step.
	if res.Steps != 1 || res.Visits["good"] != 1 {
		t.Errorf("want 1 step onto good, got %+v", res)
	}
}

// TestWalk_SeedDeterminism checks that identical seeds reproduce the walk
// exactly on a branching graph.
func TestWalk_SeedDeterminism(t *testing.T) {
	g := bigraph.New()
	g.AddEdge("A", "X", 1)
	g.AddEdge("A", "Y", 1)
	g.AddEdge("B", "Y", 1)
	g.AddEdge("B", "Z", 1)

	first, err := walk.Walk(g, "A", walk.WithMaxSteps(64), walk.WithSeed(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := walk.Walk(g, "A", walk.WithMaxSteps(64), walk.WithSeed(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// TestWalk_CountWeightBias runs a long walk on a star where one edge has
// triple the interaction count and checks the visit ratio leans its way.
func TestWalk_CountWeightBias(t *testing.T) {
	g := bigraph.New()
	g.AddEdge("L", "rare", 1)
	g.AddEdge("L", "popular", 3)

	res, err := walk.Walk(g, "L",
		walk.WithMaxSteps(10000),
		walk.WithWeightFunc(walk.CountWeight),
		walk.WithSeed(7),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rare, popular := res.Visits["rare"], res.Visits["popular"]
	if rare+popular != 5000 {
		t.Fatalf("right-side landings = %d; want 5000", rare+popular)
	}
	// Expected split is 1:3; demand at least 2:1 to stay far from noise.
	if popular < 2*rare {
		t.Errorf("bias not honored: rare=%d popular=%d", rare, popular)
	}
}

// TestWalk_VisitsBoundedByMaxSteps checks the Σvisits ≤ MaxSteps invariant
// on a denser graph.
func TestWalk_VisitsBoundedByMaxSteps(t *testing.T) {
	g := bigraph.New()
	g.AddEdge("A", "X", 1)
	g.AddEdge("A", "Y", 1)
	g.AddEdge("B", "X", 1)

	const maxSteps = 33
	res, err := walk.Walk(g, "A", walk.WithMaxSteps(maxSteps), walk.WithSeed(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := 0
	for _, c := range res.Visits {
		total += c
	}
	if total > maxSteps || res.Steps > maxSteps {
		t.Errorf("walk exceeded bound: visits=%d steps=%d max=%d", total, res.Steps, maxSteps)
	}
}
