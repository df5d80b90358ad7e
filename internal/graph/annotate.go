package graph

import (
	"github.com/brogergvhs/questgraph/internal/status"
)

// Annotated is a node with its quest state.
type Annotated struct {
	ID     string
	State  status.State
	Colour string
}

func (g *Graph) Annotate(s *status.Statuses) []Annotated {
	ids := g.Nodes()
	out := make([]Annotated, 0, len(ids))
	for _, id := range ids {
		st := s.State(id)
		out = append(out, Annotated{ID: id, State: st, Colour: st.Colour()})
	}
	return out
}

// Available returns quests the player has not completed whose known
// prerequisites are all completed. Only nodes the status feed knows count
// as quests; prerequisites it does not know (skills, point totals) are
// ignored.
func (g *Graph) Available(s *status.Statuses) []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var out []string
	for _, id := range sortedKeys(g.nodes) {
		st := s.State(id)
		if st == status.Completed || st == status.Unknown {
			continue
		}

		ready := true
		for depID := range g.nodes[id].deps {
			if ds := s.State(depID); ds != status.Unknown && ds != status.Completed {
				ready = false
				break
			}
		}
		if ready {
			out = append(out, id)
		}
	}
	return out
}
