// Package gateways implements domain gateway contracts over the local cache.
package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

// DefaultArtifactPattern lays out cached artifacts by module and type
const DefaultArtifactPattern = "[organisation]/[module]/[type]s/[artifact]-[revision].[ext]"

const reportExt = ".xml"

// CacheLocator computes report and artifact locations inside a cache directory
type CacheLocator struct {
	artifactPattern string
}

// NewCacheLocator creates a locator; an empty pattern selects DefaultArtifactPattern
func NewCacheLocator(artifactPattern string) *CacheLocator {
	if artifactPattern == "" {
		artifactPattern = DefaultArtifactPattern
	}
	return &CacheLocator{artifactPattern: artifactPattern}
}

// ReportFileName returns the file name of the report of a module configuration
func ReportFileName(moduleID entities.ModuleID, conf string) string {
	return reportPrefix(moduleID) + conf + reportExt
}

func reportPrefix(moduleID entities.ModuleID) string {
	return fmt.Sprintf("%s-%s-", moduleID.Organisation, moduleID.Name)
}

// Locate returns the path of the report of a module configuration
func (l *CacheLocator) Locate(moduleID entities.ModuleID, conf, cacheRoot string) string {
	return filepath.Join(cacheRoot, ReportFileName(moduleID, conf))
}

// Exists reports whether a regular file exists at path
func (l *CacheLocator) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Configurations lists the configurations with a report for moduleID, sorted by name
func (l *CacheLocator) Configurations(moduleID entities.ModuleID, cacheRoot string) ([]string, error) {
	entries, err := os.ReadDir(cacheRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("cache directory does not exist: %s", cacheRoot)
		}
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	prefix := reportPrefix(moduleID)
	confs := make([]string, 0)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, reportExt) {
			continue
		}
		conf := strings.TrimSuffix(strings.TrimPrefix(name, prefix), reportExt)
		if conf == "" {
			continue
		}
		confs = append(confs, conf)
	}

	return confs, nil
}

// ArtifactPath returns the cache file of an artifact by substituting the pattern tokens
func (l *CacheLocator) ArtifactPath(cacheRoot string, artifact entities.Artifact) string {
	replacer := strings.NewReplacer(
		"[organisation]", artifact.Revision.Organisation,
		"[module]", artifact.Revision.Name,
		"[revision]", artifact.Revision.Revision,
		"[artifact]", artifact.Name,
		"[type]", artifact.Type,
		"[ext]", artifact.Ext,
	)
	return filepath.Join(cacheRoot, filepath.FromSlash(replacer.Replace(l.artifactPattern)))
}
