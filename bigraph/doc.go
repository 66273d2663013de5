// Package bigraph provides the bipartite interaction graph underlying
// the random-walk recommender.
//
// What
//
//   - Two node classes, SideLeft and SideRight (e.g. movies and genres,
//     pins and boards). Every edge connects one node of each class.
//   - Edges carry an accumulated interaction Count; repeated AddEdge
//     calls for the same pair reinforce the association instead of
//     creating parallel edges.
//   - Neighbors(id) lists a node's incident edges sorted by neighbor ID,
//     so iteration order is fully reproducible.
//   - Degree and MaxDegree accessors feed the per-seed walk-budget
//     scaling used by recommend.WithDegreeScaling.
//
// Why
//
//   - A plain adjacency map keyed by node ID keeps the weight-function
//     interface unconstrained: any per-edge signal (Count, endpoint IDs,
//     external metadata looked up by ID) can bias a walk. A compressed
//     edge-vector layout was deliberately rejected for that reason.
//
// Determinism
//
//	Neighbors and Nodes return sorted slices; two identical construction
//	sequences produce graphs that are indistinguishable through the read
//	API.
//
// Concurrency
//
//	All methods are safe for concurrent use (RWMutex). The recommender
//	only reads, so any number of recommendation calls may share one Graph.
//
// Complexity (V = nodes, E = distinct pairs, d = degree)
//
//   - AddNode / AddEdge: O(1) amortized
//   - Neighbors: O(d log d)
//   - Nodes: O(V log V)
//
// Errors
//
//   - ErrEmptyNodeID  - empty node ID.
//   - ErrSideConflict - node used on both sides.
//   - ErrBadCount     - AddEdge with count < 1.
//
// Looking up an absent node is NOT an error anywhere in the read API:
// it simply has no side, no neighbors and degree zero.
package bigraph
