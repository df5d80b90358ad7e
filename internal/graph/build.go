package graph

import (
	"github.com/brogergvhs/questgraph/internal/questreq"
)

// FromAdjacency builds the graph for a merged requirement list. Every key
// and child becomes a node; each (quest, prerequisite) pair becomes an edge
// prerequisite -> quest. Self-references are kept aside and reported by
// Cycles.
func FromAdjacency(adj questreq.Adjacency) *Graph {
	g := New()

	g.mutex.Lock()
	for _, quest := range adj.Keys() {
		g.addNode(quest)
		for _, req := range adj[quest] {
			g.addNode(req)
		}
	}
	g.mutex.Unlock()

	for _, quest := range adj.Keys() {
		for _, req := range adj[quest] {
			if req == quest {
				g.mutex.Lock()
				g.loops[quest] = true
				g.mutex.Unlock()
				continue
			}
			// both nodes were added above
			_ = g.AddEdge(req, quest)
		}
	}

	return g
}
