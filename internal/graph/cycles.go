package graph

import "sort"

// Cycles returns the sorted IDs of nodes that lie on a cycle, including
// quests that require themselves. A cycle means the wiki data is
// inconsistent; the graph is still usable.
func (g *Graph) Cycles() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	found := map[string]bool{}
	for id := range g.loops {
		found[id] = true
	}

	for _, c := range g.stronglyConnected() {
		if len(c) > 1 {
			for _, id := range c {
				found[id] = true
			}
		}
	}

	out := make([]string, 0, len(found))
	for id := range found {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

type frame struct {
	n    *node
	next []string
}

// stronglyConnected is Tarjan's algorithm with an explicit stack. Caller
// holds the read lock.
func (g *Graph) stronglyConnected() [][]string {
	index := map[string]int{}
	low := map[string]int{}
	onStack := map[string]bool{}
	var stack []string
	var out [][]string
	counter := 0

	for _, rootID := range sortedKeys(g.nodes) {
		if _, seen := index[rootID]; seen {
			continue
		}

		visit := func(n *node) frame {
			index[n.id] = counter
			low[n.id] = counter
			counter++
			stack = append(stack, n.id)
			onStack[n.id] = true
			return frame{n: n, next: sortedKeys(n.dependents)}
		}

		call := []frame{visit(g.nodes[rootID])}
		for len(call) > 0 {
			top := &call[len(call)-1]

			if len(top.next) > 0 {
				childID := top.next[0]
				top.next = top.next[1:]

				if _, seen := index[childID]; !seen {
					call = append(call, visit(g.nodes[childID]))
				} else if onStack[childID] {
					low[top.n.id] = min(low[top.n.id], index[childID])
				}
				continue
			}

			id := top.n.id
			if low[id] == index[id] {
				var comp []string
				for {
					last := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[last] = false
					comp = append(comp, last)
					if last == id {
						break
					}
				}
				out = append(out, comp)
			}

			call = call[:len(call)-1]
			if len(call) > 0 {
				parent := call[len(call)-1].n.id
				low[parent] = min(low[parent], low[id])
			}
		}
	}

	return out
}
