// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"os"
	"strings"

	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"

	"github.com/ochairo/resolvereport/internal/domain/entities"
	"github.com/ochairo/resolvereport/internal/domain/interfaces"
	"github.com/ochairo/resolvereport/internal/domain/interfaces/gateways"
	"github.com/ochairo/resolvereport/internal/domain/interfaces/services"
)

// CachedArtifact is an aggregated artifact together with its file in the cache
type CachedArtifact struct {
	Artifact entities.Artifact
	Path     string
	Missing  bool
}

// DigestResult is the outcome of hashing one cached artifact.
// Checked is set when the file was compared with a published checksum.
type DigestResult struct {
	CachedArtifact
	Digest  digest.Digest
	Checked bool
	Err     error
}

// CacheOrchestrator maps aggregated artifacts onto the files of a local cache
type CacheOrchestrator struct {
	aggregator services.ArtifactAggregator
	locator    gateways.ArtifactLocator
	digests    gateways.DigestVerifier
	cacheDir   string
	logger     interfaces.Logger
}

// CacheOrchestratorConfig holds configuration for the orchestrator
type CacheOrchestratorConfig struct {
	CacheDir string
	Logger   interfaces.Logger
}

// NewCacheOrchestrator creates a new cache orchestrator
func NewCacheOrchestrator(
	aggregator services.ArtifactAggregator,
	locator gateways.ArtifactLocator,
	digests gateways.DigestVerifier,
	config CacheOrchestratorConfig,
) *CacheOrchestrator {
	logger := config.Logger
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &CacheOrchestrator{
		aggregator: aggregator,
		locator:    locator,
		digests:    digests,
		cacheDir:   config.CacheDir,
		logger:     logger,
	}
}

// ResolveFiles aggregates the artifacts of confs and locates each one in the cache
func (o *CacheOrchestrator) ResolveFiles(ctx context.Context, confs []string, filter services.ArtifactFilter) ([]CachedArtifact, error) {
	artifacts, err := o.aggregator.CollectArtifacts(ctx, confs, filter)
	if err != nil {
		return nil, err
	}

	files := make([]CachedArtifact, 0, len(artifacts))
	for _, artifact := range artifacts {
		path := o.locator.ArtifactPath(o.cacheDir, artifact)
		missing := !o.locator.Exists(path)
		if missing {
			o.logger.Warn("artifact not found in cache",
				interfaces.F("artifact", artifact.String()),
				interfaces.F("path", path))
		}
		files = append(files, CachedArtifact{Artifact: artifact, Path: path, Missing: missing})
	}

	return files, nil
}

// VerifyFiles computes the digest of every present file using at most workers goroutines.
// Files with a published checksum are checked against it.
// Results keep the order of files. Per-file failures are reported in DigestResult.Err.
func (o *CacheOrchestrator) VerifyFiles(ctx context.Context, files []CachedArtifact, algorithm digest.Algorithm, workers int) ([]DigestResult, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]DigestResult, len(files))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		results[i].CachedArtifact = file
		if file.Missing {
			continue
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i].Digest, results[i].Checked, results[i].Err = o.digestOf(gCtx, file.Path, algorithm)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.logger.Debug("verified cached artifacts",
		interfaces.F("files", len(files)),
		interfaces.F("algorithm", algorithm.String()),
		interfaces.F("workers", workers))

	return results, nil
}

func (o *CacheOrchestrator) digestOf(ctx context.Context, path string, algorithm digest.Algorithm) (digest.Digest, bool, error) {
	expected, found, err := o.digests.ExpectedDigest(path, algorithm)
	if err != nil {
		return "", false, err
	}
	if !found {
		dgst, err := o.digests.CalculateDigest(ctx, path, algorithm)
		return dgst, false, err
	}

	if err := o.digests.VerifyDigest(ctx, path, expected); err != nil {
		return "", true, err
	}
	return expected, true, nil
}

// BuildPath joins the present files into a path list
func BuildPath(files []CachedArtifact) string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		if !f.Missing {
			paths = append(paths, f.Path)
		}
	}
	return strings.Join(paths, string(os.PathListSeparator))
}

// AddToPath appends additions to an existing path list, or prepends them when first is set.
// Empty elements are dropped.
func AddToPath(existing string, additions []string, first bool) string {
	current := splitPath(existing)
	added := make([]string, 0, len(additions))
	for _, a := range additions {
		added = append(added, splitPath(a)...)
	}

	var elements []string
	if first {
		elements = append(added, current...)
	} else {
		elements = append(current, added...)
	}
	return strings.Join(elements, string(os.PathListSeparator))
}

func splitPath(path string) []string {
	elements := make([]string, 0)
	for _, e := range strings.Split(path, string(os.PathListSeparator)) {
		if e != "" {
			elements = append(elements, e)
		}
	}
	return elements
}
