package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/brogergvhs/questgraph/internal/graph"
)

type DotExporter struct{}

func NewDotExporter() Exporter {
	return &DotExporter{}
}

func (e *DotExporter) Ext() string { return "dot" }

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func dotID(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// Export writes a Graphviz digraph with edges from prerequisite to quest and
// nodes filled by quest state. Render with `dot -Tsvg`.
func (e *DotExporter) Export(w io.Writer, d Data) error {
	g := d.Graph
	if g == nil {
		g = graph.FromAdjacency(d.Adjacency)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph quests {")
	fmt.Fprintln(bw, "  rankdir=TB;")
	fmt.Fprintln(bw, `  node [shape=box, style="filled", fontsize=8];`)

	for _, n := range g.Annotate(d.Statuses) {
		fmt.Fprintf(bw, "  %s [fillcolor=%s];\n", dotID(n.ID), n.Colour)
	}
	for _, edge := range g.Edges() {
		fmt.Fprintf(bw, "  %s -> %s;\n", dotID(edge.From), dotID(edge.To))
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
