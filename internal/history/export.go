// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes up to limit recent runs to w as YAML.
func (s *Store) ExportYAML(w io.Writer, limit int) error {
	records, err := s.Recent(limit)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes up to limit recent runs to w as indented JSON.
func (s *Store) ExportJSON(w io.Writer, limit int) error {
	records, err := s.Recent(limit)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
