package services

import (
	"cmp"
	"slices"

	"github.com/Masterminds/semver/v3"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

// SortRevisions orders revisions by organisation and module, then newest revision first.
// Revisions that are not semantic versions sort after the others, lexically.
func SortRevisions(revisions []entities.ModuleRevisionID) {
	slices.SortStableFunc(revisions, func(a, b entities.ModuleRevisionID) int {
		if c := cmp.Compare(a.Organisation, b.Organisation); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return compareRevisions(a.Revision, b.Revision)
	})
}

func compareRevisions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		return vb.Compare(va)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
