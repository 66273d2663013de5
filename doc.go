// Package pixie implements personalized recommendations over a bipartite
// interaction graph using biased random-walk sampling, after Pinterest's
// Pixie recommender.
//
// 🚀 What is taggraph/pixie?
//
//	A small, deterministic, thread-safe recommendation core:
//		• bigraph/   — bipartite graph of two node classes (objects ↔ tags)
//		               with interaction-counted edges
//		• walk/      — single biased random walks with pluggable edge
//		               weighting and injectable, derivable RNG streams
//		• recommend/ — multi-seed aggregation: weighted tallies, optional
//		               Pixie degree scaling and multi-hit boosting, ranked
//		               top-K results
//		• cmd/pixie  — demo CLI over a movie/genre toy dataset
//
// ✨ Why choose it?
//
//   - Reproducible – every random choice flows from one injectable seed,
//     so results are identical across runs, platforms and parallelism levels
//   - Pluggable – any per-edge signal can bias walks via walk.WeightFunc
//   - Parallel – walk batches fan out across CPUs with no locking on the graph
//
// Quick ASCII example:
//
//	    movies        genres
//	    Rocky ────────Action──── The Raid
//	      └───Drama
//
//	walks seeded at Rocky visit Action often, pulling The Raid up the ranking.
//
// Start with recommend.Recommend; see each package's doc.go for details.
//
//	go get github.com/taggraph/pixie
package pixie
