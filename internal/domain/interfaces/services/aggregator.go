// Package services defines interfaces for domain service contracts.
package services

import (
	"context"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

// ArtifactFilter selects artifacts kept by an aggregation
type ArtifactFilter interface {
	Accept(artifact entities.Artifact) bool
}

// ArtifactAggregator merges resolution data across configurations
type ArtifactAggregator interface {
	// CollectArtifacts unions the artifacts of every configuration and keeps those accepted by filter
	CollectArtifacts(ctx context.Context, confs []string, filter ArtifactFilter) ([]entities.Artifact, error)

	// CollectRevisions unions the selected revision collection of every configuration
	CollectRevisions(ctx context.Context, confs []string, kind entities.RevisionKind) ([]entities.ModuleRevisionID, error)
}
