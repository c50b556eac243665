package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigurationsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "configurations",
		Aliases: []string{"confs"},
		Short:   "List the configurations that have a persisted report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			confs, err := a.reports.ListConfigurations(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range confs {
				fmt.Fprintln(out, c)
			}
			return nil
		},
	}
}
