package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/brogergvhs/questgraph/internal/graph"
	"github.com/brogergvhs/questgraph/internal/questreq"
	"github.com/brogergvhs/questgraph/internal/status"
	"github.com/brogergvhs/questgraph/internal/util"
)

// Data is everything an exporter may draw on. Statuses may be nil.
type Data struct {
	Adjacency questreq.Adjacency
	Graph     *graph.Graph
	Statuses  *status.Statuses
}

type Exporter interface {
	// Export writes the data to w
	Export(w io.Writer, d Data) error
	// Ext is the default file extension, without the dot
	Ext() string
}

var Formats = []string{"dot", "json", "yaml", "csv"}

func New(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "dot", "":
		return NewDotExporter(), nil
	case "json":
		return NewJSONExporter(), nil
	case "yaml", "yml":
		return NewYAMLExporter(), nil
	case "csv":
		return NewCSVExporter(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// WriteFile renders d and writes it atomically to path.
func WriteFile(path string, e Exporter, d Data) error {
	var buf bytes.Buffer
	if err := e.Export(&buf, d); err != nil {
		return err
	}
	return util.WriteFileAtomic(path, buf.Bytes())
}
