package questreq

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Adjacency maps every label to the labels of its direct children. Leaves
// map to an empty, non-nil slice.
type Adjacency map[string][]string

// Keys returns the labels in sorted order.
func (a Adjacency) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Edges returns the number of (item, prerequisite) pairs.
func (a Adjacency) Edges() int {
	n := 0
	for _, v := range a {
		n += len(v)
	}
	return n
}

// Duplicate records a label listed twice on one page with different
// children. Both lists are kept in the adjacency.
type Duplicate struct {
	Label  string
	First  []string
	Second []string
}

// absorb stores children for label. A label seen again with a different
// non-empty set of children gets the union, and the difference is reported.
func (a Adjacency) absorb(label string, children []string) (Duplicate, bool) {
	existing, ok := a[label]
	if !ok || len(existing) == 0 {
		a[label] = children
		return Duplicate{}, false
	}

	if len(children) == 0 || mapset.NewThreadUnsafeSet(existing...).Equal(mapset.NewThreadUnsafeSet(children...)) {
		return Duplicate{}, false
	}

	seen := mapset.NewThreadUnsafeSet(existing...)
	merged := append([]string{}, existing...)
	for _, c := range children {
		if seen.Add(c) {
			merged = append(merged, c)
		}
	}
	a[label] = merged

	return Duplicate{Label: label, First: existing, Second: children}, true
}

// Simplify flattens a tree breadth-first into an adjacency list. Each level
// of nesting becomes its own set of keys.
func Simplify(t *Tree) Adjacency {
	adj, _ := SimplifyDuplicates(t)
	return adj
}

// SimplifyDuplicates is Simplify that also returns the labels listed more
// than once with different children, in the order they were met.
func SimplifyDuplicates(t *Tree) (Adjacency, []Duplicate) {
	adj := Adjacency{}
	if t == nil {
		return adj, nil
	}

	var dups []Duplicate
	queue := append([]int(nil), t.roots...)
	for len(queue) > 0 {
		n := t.nodes[queue[0]]
		queue = queue[1:]

		if d, ok := adj.absorb(n.Label, t.Labels(n.Children)); ok {
			dups = append(dups, d)
		}
		queue = append(queue, n.Children...)
	}

	return adj, dups
}
