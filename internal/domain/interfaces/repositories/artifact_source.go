// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

// ArtifactSource provides the resolved artifacts of a configuration.
// Implementations read either an in-process resolution result or a persisted report.
type ArtifactSource interface {
	// ConfigurationArtifacts returns the artifacts resolved for a configuration, in report order
	ConfigurationArtifacts(ctx context.Context, conf string) ([]entities.Artifact, error)
}

// ReportRepository defines access to persisted resolution reports
type ReportRepository interface {
	ArtifactSource

	// GetReport parses the persisted report of a configuration
	GetReport(ctx context.Context, conf string) (*entities.ParsedReport, error)

	// ListConfigurations returns the configurations that have a persisted report
	ListConfigurations(ctx context.Context) ([]string, error)
}
