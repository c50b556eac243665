package main

import (
	"github.com/spf13/cobra"
)

var artifactsLong = `List the artifacts resolved for one or more configurations.

Artifacts are read from the persisted reports in the cache. When several
configurations are given, their artifacts are merged and each artifact is
listed once, in the order it first appears.`

func newArtifactsCmd(opts *globalOptions) *cobra.Command {
	var (
		conf    string
		output  string
		filters filterFlags
	)

	cmd := &cobra.Command{
		Use:   "artifacts",
		Short: "List resolved artifacts across configurations",
		Long:  artifactsLong,
		Example: `  resolvereport artifacts --organisation org --module app --conf compile,runtime
  resolvereport artifacts --conf '*' --type jar --exclude '*-tests' -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			filter, err := filters.filter(a.cfg.Filter)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			confs, err := a.confs(ctx, conf)
			if err != nil {
				return err
			}

			artifacts, err := a.aggregator.CollectArtifacts(ctx, confs, filter)
			if err != nil {
				return err
			}

			return writeArtifacts(cmd.OutOrStdout(), format, artifacts)
		},
	}

	cmd.Flags().StringVar(&conf, "conf", "", "Comma separated configurations, \"*\" for all (default: from configuration file)")
	cmd.Flags().StringVarP(&output, "output", "o", string(OutputTable), "Output format ("+outputFormatNames()+")")
	filters.register(cmd)

	return cmd
}
