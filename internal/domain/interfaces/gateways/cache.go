// Package gateways defines interfaces for external service adapters.
package gateways

import (
	"context"

	"github.com/opencontainers/go-digest"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

// ReportLocator computes where persisted reports live in a cache
type ReportLocator interface {
	// Locate returns the report path for a module configuration; the result is deterministic
	Locate(moduleID entities.ModuleID, conf, cacheRoot string) string

	// Exists reports whether a file exists at path
	Exists(path string) bool

	// Configurations lists the configurations having a report for the module
	Configurations(moduleID entities.ModuleID, cacheRoot string) ([]string, error)
}

// ArtifactLocator maps artifacts to their files in a cache
type ArtifactLocator interface {
	ArtifactPath(cacheRoot string, artifact entities.Artifact) string
	Exists(path string) bool
}

// SignatureVerifier checks detached signatures of persisted files
type SignatureVerifier interface {
	// VerifyDetached verifies filePath against its detached signature sigPath
	VerifyDetached(filePath, sigPath string) error
}

// DigestCalculator computes content digests of cached files
type DigestCalculator interface {
	CalculateDigest(ctx context.Context, filePath string, algorithm digest.Algorithm) (digest.Digest, error)
}

// DigestVerifier checks cached files against the checksum files published next to them
type DigestVerifier interface {
	DigestCalculator

	// ExpectedDigest reads the checksum file of filePath for algorithm; found is false when there is none
	ExpectedDigest(filePath string, algorithm digest.Algorithm) (expected digest.Digest, found bool, err error)

	VerifyDigest(ctx context.Context, filePath string, expected digest.Digest) error
}
