package export

import (
	"io"

	"github.com/brogergvhs/questgraph/internal/graph"

	"github.com/gocarina/gocsv"
)

type EdgeRow struct {
	Prerequisite string `csv:"prerequisite"`
	Quest        string `csv:"quest"`
	Status       string `csv:"prerequisite_status"`
}

type CSVExporter struct{}

func NewCSVExporter() Exporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Ext() string { return "csv" }

// Export writes one row per prerequisite -> quest edge.
func (e *CSVExporter) Export(w io.Writer, d Data) error {
	g := d.Graph
	if g == nil {
		g = graph.FromAdjacency(d.Adjacency)
	}

	rows := []*EdgeRow{}
	for _, edge := range g.Edges() {
		rows = append(rows, &EdgeRow{
			Prerequisite: edge.From,
			Quest:        edge.To,
			Status:       d.Statuses.State(edge.From).String(),
		})
	}

	return gocsv.Marshal(&rows, w)
}
