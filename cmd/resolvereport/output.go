package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	orchestrators "github.com/ochairo/resolvereport/internal/domain-orchestrators"
	"github.com/ochairo/resolvereport/internal/domain/entities"
	"github.com/ochairo/resolvereport/internal/external-adapters/yaml"
)

// OutputFormat selects how command results are written
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

var allOutputFormats = []OutputFormat{OutputTable, OutputJSON, OutputYAML}

func outputFormatNames() string {
	names := make([]string, len(allOutputFormats))
	for i, f := range allOutputFormats {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}

func parseOutputFormat(s string) (OutputFormat, error) {
	for _, f := range allOutputFormats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format: %q (want %s)", s, outputFormatNames())
}

type jsonArtifact struct {
	Organisation    string `json:"organisation"`
	Module          string `json:"module"`
	Revision        string `json:"revision"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Ext             string `json:"ext"`
	PublicationDate string `json:"pubdate,omitempty"`
	Path            string `json:"path,omitempty"`
}

type jsonRevision struct {
	Organisation string `json:"organisation"`
	Module       string `json:"module"`
	Revision     string `json:"revision"`
}

func writeArtifacts(w io.Writer, format OutputFormat, artifacts []entities.Artifact) error {
	return writeArtifactsWithPaths(w, format, artifacts, nil)
}

// writeCachedArtifacts writes artifacts with their cache file; missing files get an empty path
func writeCachedArtifacts(w io.Writer, format OutputFormat, files []orchestrators.CachedArtifact) error {
	artifacts := make([]entities.Artifact, 0, len(files))
	paths := make([]string, 0, len(files))
	for _, f := range files {
		artifacts = append(artifacts, f.Artifact)
		if f.Missing {
			paths = append(paths, "")
		} else {
			paths = append(paths, f.Path)
		}
	}
	return writeArtifactsWithPaths(w, format, artifacts, paths)
}

// writeArtifactsWithPaths writes artifacts; paths, when non-nil, is indexed like artifacts
func writeArtifactsWithPaths(w io.Writer, format OutputFormat, artifacts []entities.Artifact, paths []string) error {
	pathOf := func(i int) string {
		if i < len(paths) {
			return paths[i]
		}
		return ""
	}

	switch format {
	case OutputJSON:
		out := make([]jsonArtifact, 0, len(artifacts))
		for i, a := range artifacts {
			out = append(out, jsonArtifact{
				Organisation:    a.Revision.Organisation,
				Module:          a.Revision.Name,
				Revision:        a.Revision.Revision,
				Name:            a.Name,
				Type:            a.Type,
				Ext:             a.Ext,
				PublicationDate: formatPubdate(a),
				Path:            pathOf(i),
			})
		}
		return writeJSON(w, out)
	case OutputYAML:
		return yaml.EncodeArtifacts(w, artifacts, paths)
	default:
		t := newTable(w)
		header := table.Row{"Organisation", "Module", "Revision", "Artifact", "Type", "Ext", "Published"}
		if paths != nil {
			header = append(header, "Path")
		}
		t.AppendHeader(header)
		for i, a := range artifacts {
			row := table.Row{a.Revision.Organisation, a.Revision.Name, a.Revision.Revision, a.Name, a.Type, a.Ext, formatPubdate(a)}
			if paths != nil {
				row = append(row, pathOf(i))
			}
			t.AppendRow(row)
		}
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, AutoMerge: true},
			{Number: 2, AutoMerge: true},
		})
		t.Render()
		return nil
	}
}

func writeRevisions(w io.Writer, format OutputFormat, revisions []entities.ModuleRevisionID) error {
	switch format {
	case OutputJSON:
		out := make([]jsonRevision, 0, len(revisions))
		for _, r := range revisions {
			out = append(out, jsonRevision{Organisation: r.Organisation, Module: r.Name, Revision: r.Revision})
		}
		return writeJSON(w, out)
	case OutputYAML:
		return yaml.EncodeRevisions(w, revisions)
	default:
		t := newTable(w)
		t.AppendHeader(table.Row{"Organisation", "Module", "Revision"})
		for _, r := range revisions {
			t.AppendRow(table.Row{r.Organisation, r.Name, r.Revision})
		}
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, AutoMerge: true},
		})
		t.Render()
		return nil
	}
}

func formatPubdate(a entities.Artifact) string {
	if a.PublicationDate.IsZero() {
		return ""
	}
	return a.PublicationDate.Format(entities.PublicationDateLayout)
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	return t
}
