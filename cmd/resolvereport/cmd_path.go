package main

import (
	"fmt"

	"github.com/spf13/cobra"

	orchestrators "github.com/ochairo/resolvereport/internal/domain-orchestrators"
	"github.com/ochairo/resolvereport/internal/domain/interfaces"
)

func newPathCmd(opts *globalOptions) *cobra.Command {
	var (
		conf    string
		toPath  string
		first   bool
		fileset bool
		output  string
		filters filterFlags
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the cached files of resolved artifacts as a path list",
		Long: `Print the cache files of the resolved artifacts joined with the OS path list separator.

With --topath the files are added to an existing path list, at its end or,
with --first, at its start. With --fileset one file is printed per line.
With --output the artifacts are listed together with their cache files.
Artifacts missing from the cache are skipped with a warning.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var format OutputFormat
			if output != "" {
				f, err := parseOutputFormat(output)
				if err != nil {
					return err
				}
				format = f
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

			files, err := a.cacheOrchestrator().ResolveFiles(ctx, confs, filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format != "" {
				return writeCachedArtifacts(out, format, files)
			}
			if fileset {
				for _, f := range files {
					if !f.Missing {
						fmt.Fprintln(out, f.Path)
					}
				}
				return nil
			}

			path := orchestrators.AddToPath(toPath, []string{orchestrators.BuildPath(files)}, first)
			a.logger.Debug("built path", interfaces.F("files", len(files)), interfaces.F("first", first))
			fmt.Fprintln(out, path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&conf, "conf", "", "Comma separated configurations, \"*\" for all (default: from configuration file)")
	f.StringVar(&toPath, "topath", "", "Existing path list to add the files to")
	f.BoolVar(&first, "first", false, "Put the files before the existing path elements")
	f.BoolVar(&fileset, "fileset", false, "Print one file per line instead of a path list")
	f.StringVarP(&output, "output", "o", "", "List artifacts with their cache files ("+outputFormatNames()+")")
	filters.register(cmd)
	cmd.MarkFlagsMutuallyExclusive("fileset", "output")

	return cmd
}
