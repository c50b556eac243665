package gateways

import (
	"context"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

// LiveArtifactSource serves artifacts from an in-process resolution result
type LiveArtifactSource struct {
	report *entities.ResolveReport
}

// NewLiveArtifactSource wraps a resolution result that was just computed
func NewLiveArtifactSource(report *entities.ResolveReport) *LiveArtifactSource {
	return &LiveArtifactSource{report: report}
}

// ConfigurationArtifacts returns the artifacts of every non-failed download of a configuration
func (s *LiveArtifactSource) ConfigurationArtifacts(ctx context.Context, conf string) ([]entities.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	confReport, ok := s.report.ConfigurationReport(conf)
	if !ok {
		return nil, &entities.UnknownConfigurationError{
			Configuration: conf,
			Known:         s.report.ConfigurationNames(),
		}
	}

	artifacts := make([]entities.Artifact, 0)
	for _, mrid := range confReport.Revisions {
		for _, download := range confReport.DownloadReports(mrid) {
			if download.Status == entities.DownloadFailed {
				continue
			}
			artifacts = append(artifacts, download.Artifact)
		}
	}

	return artifacts, nil
}
