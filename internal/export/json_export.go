package export

import (
	"encoding/json"
	"io"
)

type JSONExporter struct{}

func NewJSONExporter() Exporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Ext() string { return "json" }

// Export writes the adjacency list as an object keyed by quest.
func (e *JSONExporter) Export(w io.Writer, d Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(d.Adjacency)
}
