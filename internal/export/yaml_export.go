package export

import (
	"io"

	"gopkg.in/yaml.v3"
)

type YAMLExporter struct{}

func NewYAMLExporter() Exporter {
	return &YAMLExporter{}
}

func (e *YAMLExporter) Ext() string { return "yaml" }

func (e *YAMLExporter) Export(w io.Writer, d Data) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]string(d.Adjacency)); err != nil {
		return err
	}
	return enc.Close()
}
