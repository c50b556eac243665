package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ochairo/resolvereport/internal/domain-adapters/gateways"
)

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	var (
		conf      string
		algorithm string
		workers   int
		filters   filterFlags
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that resolved artifacts are present in the cache and print their digests",
		Long: `Check that resolved artifacts are present in the cache and print their digests.

When a checksum file named after the artifact and the algorithm exists,
for example commons-lang-2.6.jar.sha256, the artifact must match it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			if algorithm == "" {
				algorithm = a.cfg.Verify.DigestAlgorithm
			}
			algo, err := gateways.ParseDigestAlgorithm(algorithm)
			if err != nil {
				return err
			}
			if workers == 0 {
				workers = a.cfg.Verify.Workers
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

			orch := a.cacheOrchestrator()
			files, err := orch.ResolveFiles(ctx, confs, filter)
			if err != nil {
				return err
			}

			results, err := orch.VerifyFiles(ctx, files, algo, workers)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Artifact", "Path", "Status", "Digest"})
			failed := 0
			for _, r := range results {
				status := "ok"
				switch {
				case r.Checked && r.Err == nil:
					status = "verified"
				case r.Missing:
					status = "missing"
					failed++
				case r.Err != nil:
					status = r.Err.Error()
					failed++
				}
				t.AppendRow(table.Row{r.Artifact.String(), r.Path, status, r.Digest.String()})
			}
			t.Render()

			if failed > 0 {
				return fmt.Errorf("%d of %d artifacts could not be verified", failed, len(results))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&conf, "conf", "", "Comma separated configurations, \"*\" for all (default: from configuration file)")
	f.StringVar(&algorithm, "algorithm", "", "Digest algorithm (sha256, sha512) (default: from configuration file)")
	f.IntVar(&workers, "workers", 0, "Number of files hashed concurrently (default: from configuration file)")
	filters.register(cmd)

	return cmd
}
