// Package services implements domain business logic and use cases.
package services

import (
	"context"
	"fmt"

	"github.com/ochairo/resolvereport/internal/domain/entities"
	"github.com/ochairo/resolvereport/internal/domain/interfaces"
	"github.com/ochairo/resolvereport/internal/domain/interfaces/repositories"
	"github.com/ochairo/resolvereport/internal/domain/interfaces/services"
)

// artifactAggregator implements services.ArtifactAggregator
type artifactAggregator struct {
	persisted repositories.ReportRepository
	live      repositories.ArtifactSource
	logger    interfaces.Logger
}

// NewArtifactAggregator creates a new aggregator.
// live may be nil, in which case artifacts are read from persisted reports.
func NewArtifactAggregator(persisted repositories.ReportRepository, live repositories.ArtifactSource, logger interfaces.Logger) services.ArtifactAggregator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &artifactAggregator{
		persisted: persisted,
		live:      live,
		logger:    logger,
	}
}

func (a *artifactAggregator) artifactSource() repositories.ArtifactSource {
	if a.live != nil {
		a.logger.Debug("using internal report instance to get artifacts list")
		return a.live
	}
	a.logger.Debug("using stored report to get artifacts list")
	return a.persisted
}

// CollectArtifacts unions the artifacts of confs in first-seen order and keeps those accepted by filter.
// A nil filter keeps everything.
func (a *artifactAggregator) CollectArtifacts(ctx context.Context, confs []string, filter services.ArtifactFilter) ([]entities.Artifact, error) {
	source := a.artifactSource()
	if filter == nil {
		filter = AcceptAll()
	}

	seen := make(map[entities.ArtifactKey]struct{})
	union := make([]entities.Artifact, 0)
	for _, conf := range confs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		artifacts, err := source.ConfigurationArtifacts(ctx, conf)
		if err != nil {
			return nil, fmt.Errorf("failed to collect artifacts of configuration %s: %w", conf, err)
		}

		for _, artifact := range artifacts {
			key := artifact.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			union = append(union, artifact)
		}
	}

	kept := make([]entities.Artifact, 0, len(union))
	for _, artifact := range union {
		if filter.Accept(artifact) {
			kept = append(kept, artifact)
		}
	}

	a.logger.Debug("collected artifacts",
		interfaces.F("confs", confs),
		interfaces.F("total", len(union)),
		interfaces.F("kept", len(kept)))

	return kept, nil
}

// CollectRevisions unions the selected revision collection of every persisted report
func (a *artifactAggregator) CollectRevisions(ctx context.Context, confs []string, kind entities.RevisionKind) ([]entities.ModuleRevisionID, error) {
	seen := make(map[entities.ModuleRevisionID]struct{})
	revisions := make([]entities.ModuleRevisionID, 0)
	for _, conf := range confs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		report, err := a.persisted.GetReport(ctx, conf)
		if err != nil {
			return nil, fmt.Errorf("failed to collect revisions of configuration %s: %w", conf, err)
		}

		for _, mrid := range report.Revisions(kind) {
			if _, dup := seen[mrid]; dup {
				continue
			}
			seen[mrid] = struct{}{}
			revisions = append(revisions, mrid)
		}
	}
	return revisions, nil
}
