package walk

import "github.com/taggraph/pixie/bigraph"

// UniformWeight weighs every candidate edge at 1, reproducing an
// unbiased random walk. This is the reference WeightFunc and the
// default in both walk and recommend options.
// Complexity: O(1). Never returns a negative value.
func UniformWeight(_ string, _ bigraph.Edge) float64 {
	return 1
}

// CountWeight weighs a candidate edge by its accumulated interaction
// count, so associations observed more often attract proportionally
// more walk traffic.
// Complexity: O(1).
func CountWeight(_ string, e bigraph.Edge) float64 {
	return float64(e.Count)
}
