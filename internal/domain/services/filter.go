package services

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/gobwas/glob"

	"github.com/ochairo/resolvereport/internal/domain/entities"
	"github.com/ochairo/resolvereport/internal/domain/interfaces/services"
)

// AllTypes accepts every artifact type in a type filter
const AllTypes = "*"

// FilterFunc adapts a plain function to services.ArtifactFilter
type FilterFunc func(entities.Artifact) bool

// Accept calls f
func (f FilterFunc) Accept(artifact entities.Artifact) bool {
	return f(artifact)
}

// AcceptAll returns a filter keeping every artifact
func AcceptAll() services.ArtifactFilter {
	return FilterFunc(func(entities.Artifact) bool { return true })
}

// RejectAll returns a filter dropping every artifact
func RejectAll() services.ArtifactFilter {
	return FilterFunc(func(entities.Artifact) bool { return false })
}

// And returns a filter accepting artifacts accepted by all of filters
func And(filters ...services.ArtifactFilter) services.ArtifactFilter {
	return FilterFunc(func(artifact entities.Artifact) bool {
		for _, f := range filters {
			if !f.Accept(artifact) {
				return false
			}
		}
		return true
	})
}

// TypeFilter accepts artifacts whose type is listed. An empty list or "*" accepts all.
func TypeFilter(types []string) services.ArtifactFilter {
	allowed := make(map[string]struct{}, len(types))
	for _, t := range types {
		if t == AllTypes {
			return AcceptAll()
		}
		allowed[t] = struct{}{}
	}
	if len(allowed) == 0 {
		return AcceptAll()
	}
	return FilterFunc(func(artifact entities.Artifact) bool {
		_, ok := allowed[artifact.Type]
		return ok
	})
}

// NameFilter accepts artifacts whose name matches one of includes and none of excludes.
// An empty includes list matches every name.
func NameFilter(includes, excludes []string) (services.ArtifactFilter, error) {
	inc, err := compileGlobs(includes)
	if err != nil {
		return nil, err
	}
	exc, err := compileGlobs(excludes)
	if err != nil {
		return nil, err
	}

	return FilterFunc(func(artifact entities.Artifact) bool {
		if len(inc) > 0 && !matchAny(inc, artifact.Name) {
			return false
		}
		return !matchAny(exc, artifact.Name)
	}), nil
}

// RevisionFilter accepts artifacts whose revision satisfies a semver constraint.
// Revisions that are not semantic versions never satisfy it.
func RevisionFilter(constraint string) (services.ArtifactFilter, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("invalid revision constraint %q: %w", constraint, err)
	}

	return FilterFunc(func(artifact entities.Artifact) bool {
		v, err := semver.NewVersion(artifact.Revision.Revision)
		if err != nil {
			return false
		}
		return c.Check(v)
	}), nil
}

// NewArtifactFilter builds the filter described by cfg
func NewArtifactFilter(cfg entities.FilterConfig) (services.ArtifactFilter, error) {
	filters := []services.ArtifactFilter{TypeFilter(cfg.Types)}

	if len(cfg.Names) > 0 || len(cfg.ExcludeNames) > 0 {
		names, err := NameFilter(cfg.Names, cfg.ExcludeNames)
		if err != nil {
			return nil, err
		}
		filters = append(filters, names)
	}

	if cfg.Revision != "" {
		revisions, err := RevisionFilter(cfg.Revision)
		if err != nil {
			return nil, err
		}
		filters = append(filters, revisions)
	}

	return And(filters...), nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid name pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
