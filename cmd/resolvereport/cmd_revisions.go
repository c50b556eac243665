package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ochairo/resolvereport/internal/domain/entities"
	"github.com/ochairo/resolvereport/internal/domain/services"
)

func newRevisionsCmd(opts *globalOptions) *cobra.Command {
	var (
		conf   string
		kind   string
		sorted bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "revisions",
		Short: "List resolved dependency revisions across configurations",
		Long: `List the dependency revisions recorded in persisted reports.

--kind default lists revisions resolved without a module descriptor,
--kind real lists those that have one.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			revisionKind, err := parseRevisionKind(kind)
			if err != nil {
				return err
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			confs, err := a.confs(ctx, conf)
			if err != nil {
				return err
			}

			revisions, err := a.aggregator.CollectRevisions(ctx, confs, revisionKind)
			if err != nil {
				return err
			}
			if sorted {
				services.SortRevisions(revisions)
			}

			return writeRevisions(cmd.OutOrStdout(), format, revisions)
		},
	}

	f := cmd.Flags()
	f.StringVar(&conf, "conf", "", "Comma separated configurations, \"*\" for all (default: from configuration file)")
	f.StringVar(&kind, "kind", string(entities.RevisionsAll), "Revisions to list (all, default, real)")
	f.BoolVar(&sorted, "sort", false, "Sort by module, newest revision first")
	f.StringVarP(&output, "output", "o", string(OutputTable), "Output format ("+outputFormatNames()+")")

	return cmd
}

func parseRevisionKind(s string) (entities.RevisionKind, error) {
	switch kind := entities.RevisionKind(s); kind {
	case entities.RevisionsAll, entities.RevisionsDefault, entities.RevisionsReal:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown revision kind: %q (want all, default or real)", s)
	}
}
