// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes an aggregate Report as YAML, JSON, or a
// directory of CSV tables, and prints a terminal summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-trends/pkg/types"
)

const (
	yamlFile = "report.yaml"
	jsonFile = "report.json"
)

// Export writes r to cfg.OutputDir in cfg.Format and returns the paths
// written. A "wrote <path>" line per file goes to w.
func Export(r types.Report, cfg types.ExportConfig, w io.Writer) ([]string, error) {
	cfg = cfg.WithDefaults()
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var (
		paths []string
		err   error
	)
	switch cfg.Format {
	case types.ExportYAML:
		path := filepath.Join(cfg.OutputDir, yamlFile)
		err = writeFile(path, r, WriteYAML)
		paths = []string{path}
	case types.ExportJSON:
		path := filepath.Join(cfg.OutputDir, jsonFile)
		err = writeFile(path, r, WriteJSON)
		paths = []string{path}
	case types.ExportCSV:
		paths, err = WriteCSVTables(cfg.OutputDir, r)
	default:
		return nil, fmt.Errorf("unknown export format %q", cfg.Format)
	}
	if err != nil {
		return nil, err
	}

	for _, p := range paths {
		fmt.Fprintf(w, "wrote %s\n", p)
	}
	return paths, nil
}

// WriteYAML encodes r as YAML to w.
func WriteYAML(w io.Writer, r types.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// WriteJSON encodes r as indented JSON to w.
func WriteJSON(w io.Writer, r types.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

func writeFile(path string, r types.Report, encode func(io.Writer, types.Report) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := encode(f, r); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
