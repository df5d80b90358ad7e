package graph

import (
	"github.com/brogergvhs/questgraph/internal/questreq"
)

// Prerequisites returns the subgraph made of id and everything it depends
// on, directly or not.
func (g *Graph) Prerequisites(id string) (*Graph, error) {
	ancestors, err := g.Ancestors(id)
	if err != nil {
		return nil, err
	}

	sub := New()
	sub.AddNode(id)
	for _, a := range ancestors {
		sub.AddNode(a)
	}

	for _, e := range g.Edges() {
		if sub.Has(e.From) && sub.Has(e.To) {
			_ = sub.AddEdge(e.From, e.To)
		}
	}

	return sub, nil
}

// Restrict keeps the entries of adj whose quest is a node of g, with their
// prerequisites filtered the same way.
func (g *Graph) Restrict(adj questreq.Adjacency) questreq.Adjacency {
	out := questreq.Adjacency{}
	for quest, reqs := range adj {
		if !g.Has(quest) {
			continue
		}

		kept := []string{}
		for _, r := range reqs {
			if g.Has(r) {
				kept = append(kept, r)
			}
		}
		out[quest] = kept
	}
	return out
}
