package recommend_test

import (
	"fmt"
	"testing"

	"github.com/taggraph/pixie/bigraph"
	"github.com/taggraph/pixie/recommend"
)

// benchGraph builds a dense-ish bipartite graph: nLeft objects, nRight
// tags, fanout tags per object in a deterministic stride pattern.
func benchGraph(nLeft, nRight, fanout int) *bigraph.Graph {
	g := bigraph.New()
	for i := 0; i < nLeft; i++ {
		l := fmt.Sprintf("obj%d", i)
		for f := 0; f < fanout; f++ {
			r := fmt.Sprintf("tag%d", (i*7+f*13)%nRight)
			_ = g.AddEdge(l, r, 1)
		}
	}

	return g
}

// BenchmarkRecommend_SingleSeed measures the common one-seed query.
func BenchmarkRecommend_SingleSeed(b *testing.B) {
	g := benchGraph(2000, 200, 8)
	seeds := []recommend.Seed{{Node: "obj0", Weight: 1}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = recommend.Recommend(g, seeds,
			recommend.WithWalksPerSeed(100),
			recommend.WithMaxSteps(20),
			recommend.WithTopK(10),
			recommend.WithSeed(1),
		)
	}
}

// BenchmarkRecommend_MultiSeed measures an eight-seed query with the
// Pixie refinements enabled.
func BenchmarkRecommend_MultiSeed(b *testing.B) {
	g := benchGraph(2000, 200, 8)
	seeds := make([]recommend.Seed, 8)
	for i := range seeds {
		seeds[i] = recommend.Seed{Node: fmt.Sprintf("obj%d", i*11), Weight: float64(i + 1)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = recommend.Recommend(g, seeds,
			recommend.WithWalksPerSeed(100),
			recommend.WithMaxSteps(20),
			recommend.WithTopK(10),
			recommend.WithSeed(1),
			recommend.WithDegreeScaling(),
			recommend.WithBoost(),
		)
	}
}
