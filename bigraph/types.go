// Package bigraph defines the bipartite Graph type, its Side and Edge
// primitives, and the sentinel errors shared by the construction API.
//
// This file declares Side, Edge, Graph, sentinel errors, and the New
// constructor.
//
// Errors:
//
//	ErrEmptyNodeID  - node ID is the empty string.
//	ErrSideConflict - node referenced with a side it does not belong to.
//	ErrBadCount     - edge interaction count below 1.
package bigraph

import (
	"errors"
	"sync"
)

// Sentinel errors for bipartite graph construction.
var (
	// ErrEmptyNodeID indicates an operation received an empty node ID.
	ErrEmptyNodeID = errors.New("bigraph: node ID is empty")

	// ErrSideConflict indicates a node was referenced on the side opposite
	// to the one it was first registered with, or an edge endpoint would
	// have to sit on both sides at once.
	ErrSideConflict = errors.New("bigraph: node side conflict")

	// ErrBadCount indicates an edge interaction count below 1.
	ErrBadCount = errors.New("bigraph: edge count must be >= 1")
)

// Side identifies which of the two node classes a node belongs to.
type Side uint8

const (
	// SideLeft is the class of query-side nodes (e.g. objects, pins, movies).
	SideLeft Side = iota

	// SideRight is the class of target-side nodes (e.g. tags, boards, genres).
	SideRight
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}

	return "right"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}

	return SideLeft
}

// Edge is one incident edge of a node, pointing to the opposite class.
//
// Count is an optional interaction-count attribute (how many times the
// association was observed). The walker never reads it; only weight
// functions do.
type Edge struct {
	// From is the node the edge was listed from.
	From string

	// To is the neighbor on the opposite side.
	To string

	// Count is the accumulated interaction count, always >= 1.
	Count int64
}

// Graph is an undirected bipartite adjacency structure.
//
// Mutation (AddNode, AddEdge) is guarded by an RWMutex; reads take the
// shared lock, so a fully built Graph can be queried concurrently from
// any number of goroutines. Recommendation code treats a Graph as
// read-only for the duration of a call.
type Graph struct {
	mu sync.RWMutex

	// sides maps node ID → Side for every registered node.
	sides map[string]Side

	// adj[from][to] = accumulated interaction count; mirrored for both
	// endpoints, so every edge is stored twice.
	adj map[string]map[string]int64

	maxDegree int
	edgeCount int
}

// New creates an empty bipartite graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		sides: make(map[string]Side),
		adj:   make(map[string]map[string]int64),
	}
}
