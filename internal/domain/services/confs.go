package services

import (
	"context"
	"strings"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

// ConfigurationLister lists known configurations
type ConfigurationLister interface {
	ListConfigurations(ctx context.Context) ([]string, error)
}

// SplitConfs splits a comma separated configuration list, dropping blank entries
func SplitConfs(conf string) []string {
	confs := make([]string, 0)
	for _, c := range strings.Split(conf, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			confs = append(confs, c)
		}
	}
	return confs
}

// ExpandConfs replaces entities.AllConfigurations with the configurations known to lister.
// Order is kept and duplicates are dropped.
func ExpandConfs(ctx context.Context, confs []string, lister ConfigurationLister) ([]string, error) {
	seen := make(map[string]struct{}, len(confs))
	expanded := make([]string, 0, len(confs))
	add := func(c string) {
		if _, dup := seen[c]; dup {
			return
		}
		seen[c] = struct{}{}
		expanded = append(expanded, c)
	}

	for _, c := range confs {
		if c != entities.AllConfigurations {
			add(c)
			continue
		}
		all, err := lister.ListConfigurations(ctx)
		if err != nil {
			return nil, err
		}
		for _, a := range all {
			add(a)
		}
	}
	return expanded, nil
}
