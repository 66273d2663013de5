package bigraph

import (
	"fmt"
	"sort"
)

// AddNode registers id on the given side.
// Adding an existing node on the same side is a no-op; adding it on the
// other side returns ErrSideConflict.
// Complexity: O(1).
func (g *Graph) AddNode(id string, side Side) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ensureNode(id, side)
}

// AddEdge records (or reinforces) the association between a left-side
// node and a right-side node. Missing endpoints are created. Repeated
// calls for the same pair accumulate count into Edge.Count.
//
// Returns ErrEmptyNodeID, ErrBadCount (count < 1), or ErrSideConflict
// (endpoint already registered on the opposite side, or left == right).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(left, right string, count int64) error {
	if left == "" || right == "" {
		return ErrEmptyNodeID
	}
	if count < 1 {
		return fmt.Errorf("%w: got %d", ErrBadCount, count)
	}
	if left == right {
		return fmt.Errorf("%w: %q cannot be on both sides", ErrSideConflict, left)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.ensureNode(left, SideLeft); err != nil {
		return err
	}
	if err := g.ensureNode(right, SideRight); err != nil {
		return err
	}

	// Mirror the edge on both endpoints; count a pair once.
	if _, seen := g.adj[left][right]; !seen {
		g.edgeCount++
	}
	g.adj[left][right] += count
	g.adj[right][left] += count

	// Track the largest degree for walk-budget scaling.
	if d := len(g.adj[left]); d > g.maxDegree {
		g.maxDegree = d
	}
	if d := len(g.adj[right]); d > g.maxDegree {
		g.maxDegree = d
	}

	return nil
}

// ensureNode registers id on side, or verifies the existing registration.
// Callers must hold the write lock.
func (g *Graph) ensureNode(id string, side Side) error {
	if have, ok := g.sides[id]; ok {
		if have != side {
			return fmt.Errorf("%w: %q is %s, not %s", ErrSideConflict, id, have, side)
		}

		return nil
	}
	g.sides[id] = side
	g.adj[id] = make(map[string]int64)

	return nil
}

// Neighbors returns the incident edges of id, sorted by neighbor ID for
// deterministic iteration. An absent or isolated node yields nil; absence
// is not an error.
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs := g.adj[id]
	if len(nbrs) == 0 {
		return nil
	}

	edges := make([]Edge, 0, len(nbrs))
	for to, count := range nbrs {
		edges = append(edges, Edge{From: id, To: to, Count: count})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges
}

// Side reports which class id belongs to, and whether it is registered.
// Complexity: O(1).
func (g *Graph) Side(id string) (Side, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.sides[id]

	return s, ok
}

// HasNode reports whether id is registered.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.Side(id)

	return ok
}

// Degree returns the number of distinct neighbors of id (0 if absent).
// Complexity: O(1).
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[id])
}

// MaxDegree returns the largest degree seen in the graph.
// Complexity: O(1).
func (g *Graph) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxDegree
}

// Nodes returns the IDs registered on side, sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes(side Side) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var ids []string
	for id, s := range g.sides {
		if s == side {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the total number of registered nodes on both sides.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.sides)
}

// EdgeCount returns the number of distinct left-right pairs.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
