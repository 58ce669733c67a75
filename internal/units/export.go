// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// Tables returns every table in category order.
func Tables() []Table {
	cats := Categories()
	tables := make([]Table, len(cats))
	for i, c := range cats {
		tables[i] = registry[c]
	}
	return tables
}

// ExportYAML writes all unit tables to w as YAML.
func ExportYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Tables()); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes all unit tables to w as indented JSON.
func ExportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Tables()); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}
