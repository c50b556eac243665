package main

import (
	"github.com/spf13/cobra"
)

// globalOptions holds the flags shared by every command
type globalOptions struct {
	configPath   string
	cacheDir     string
	organisation string
	module       string
	logLevel     string
	logFormat    string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "resolvereport",
		Short: "Read persisted dependency resolution reports",
		Long: "resolvereport reads the resolution reports persisted in a dependency cache\n" +
			"and aggregates artifacts and revisions across configurations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Configuration file (default: .resolvereport.yml in the working directory)")
	pf.StringVar(&opts.cacheDir, "cache", "", "Cache directory holding the reports")
	pf.StringVar(&opts.organisation, "organisation", "", "Organisation of the resolved module")
	pf.StringVar(&opts.module, "module", "", "Name of the resolved module")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")

	cmd.AddCommand(
		newArtifactsCmd(opts),
		newRevisionsCmd(opts),
		newPathCmd(opts),
		newVerifyCmd(opts),
		newConfigurationsCmd(opts),
	)

	return cmd
}
