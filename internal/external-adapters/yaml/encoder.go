package yaml

import (
	"fmt"
	"io"

	"github.com/ochairo/resolvereport/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

type yamlArtifact struct {
	Organisation    string `yaml:"organisation"`
	Module          string `yaml:"module"`
	Revision        string `yaml:"revision"`
	Name            string `yaml:"name"`
	Type            string `yaml:"type"`
	Ext             string `yaml:"ext"`
	PublicationDate string `yaml:"pubdate,omitempty"`
	Path            string `yaml:"path,omitempty"`
}

type yamlRevision struct {
	Organisation string `yaml:"organisation"`
	Module       string `yaml:"module"`
	Revision     string `yaml:"revision"`
}

// EncodeArtifacts writes artifacts as a YAML sequence.
// paths, when non-nil, is indexed like artifacts and adds the cache file of each entry.
func EncodeArtifacts(w io.Writer, artifacts []entities.Artifact, paths []string) error {
	out := make([]yamlArtifact, 0, len(artifacts))
	for i, a := range artifacts {
		ya := yamlArtifact{
			Organisation: a.Revision.Organisation,
			Module:       a.Revision.Name,
			Revision:     a.Revision.Revision,
			Name:         a.Name,
			Type:         a.Type,
			Ext:          a.Ext,
		}
		if !a.PublicationDate.IsZero() {
			ya.PublicationDate = a.PublicationDate.Format(entities.PublicationDateLayout)
		}
		if i < len(paths) {
			ya.Path = paths[i]
		}
		out = append(out, ya)
	}
	return encode(w, out)
}

// EncodeRevisions writes module revisions as a YAML sequence
func EncodeRevisions(w io.Writer, revisions []entities.ModuleRevisionID) error {
	out := make([]yamlRevision, 0, len(revisions))
	for _, r := range revisions {
		out = append(out, yamlRevision{Organisation: r.Organisation, Module: r.Name, Revision: r.Revision})
	}
	return encode(w, out)
}

func encode(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
