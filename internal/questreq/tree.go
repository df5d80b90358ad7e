package questreq

// Kind tags a tree node as a leaf or a branch. A branch may have no
// children when its nested list is empty.
type Kind uint8

const (
	Leaf Kind = iota
	Branch
)

func (k Kind) String() string {
	if k == Branch {
		return "branch"
	}
	return "leaf"
}

// Node is one list item. Children index into the owning Tree.
type Node struct {
	Label    string
	Kind     Kind
	Children []int
}

// Anomaly records a list item whose label came out empty.
type Anomaly struct {
	Parent   string // label of the enclosing item, "" at top level
	Position int    // zero-based index among its siblings
}

// Tree is an arena of list items in the order they were discovered.
type Tree struct {
	nodes     []Node
	roots     []int
	anomalies []Anomaly
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) Node(i int) Node {
	return t.nodes[i]
}

func (t *Tree) Roots() []int {
	return t.roots
}

func (t *Tree) Anomalies() []Anomaly {
	return t.anomalies
}

func (t *Tree) add(parent int, n Node) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, n)

	if parent < 0 {
		t.roots = append(t.roots, idx)
	} else {
		t.nodes[parent].Children = append(t.nodes[parent].Children, idx)
	}

	return idx
}

// Labels returns the labels of the given node indices.
func (t *Tree) Labels(idx []int) []string {
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, t.nodes[i].Label)
	}
	return out
}
