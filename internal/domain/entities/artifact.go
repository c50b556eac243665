// Package entities defines core domain models and data structures.
package entities

import (
	"fmt"
	"time"
)

// Artifact represents a single retrievable file published by a module revision
type Artifact struct {
	Revision        ModuleRevisionID
	PublicationDate time.Time
	Name            string
	Type            string // "jar", "source", "javadoc", "bundle", etc.
	Ext             string
}

// ArtifactKey is the identity used to de-duplicate artifacts across configurations
type ArtifactKey struct {
	Revision ModuleRevisionID
	Name     string
	Type     string
	Ext      string
}

// Key returns the artifact identity without its publication date
func (a Artifact) Key() ArtifactKey {
	return ArtifactKey{
		Revision: a.Revision,
		Name:     a.Name,
		Type:     a.Type,
		Ext:      a.Ext,
	}
}

// Equal reports whether every field of both artifacts matches
func (a Artifact) Equal(other Artifact) bool {
	return a.Key() == other.Key() && a.PublicationDate.Equal(other.PublicationDate)
}

func (a Artifact) String() string {
	return fmt.Sprintf("%s!%s.%s(%s)", a.Revision, a.Name, a.Ext, a.Type)
}
