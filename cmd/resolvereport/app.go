package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ochairo/resolvereport/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/resolvereport/internal/domain-orchestrators"
	"github.com/ochairo/resolvereport/internal/domain/entities"
	"github.com/ochairo/resolvereport/internal/domain/interfaces"
	iservices "github.com/ochairo/resolvereport/internal/domain/interfaces/services"
	"github.com/ochairo/resolvereport/internal/domain/services"
	"github.com/ochairo/resolvereport/internal/external-adapters/xml"
	"github.com/ochairo/resolvereport/internal/external-adapters/yaml"
)

// app wires the components used by the commands
type app struct {
	cfg        *entities.Config
	logger     interfaces.Logger
	locator    *gateways.CacheLocator
	reports    *xml.ReportRepository
	aggregator iservices.ArtifactAggregator
}

func newApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := yaml.NewConfigRepository(workDir).Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	opts.applyTo(cfg)

	if err := yaml.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := interfaces.NewSlogLoggerFor(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	locator := gateways.NewCacheLocator(cfg.ArtifactPattern)
	reports := xml.NewReportRepository(cfg.CacheDir, cfg.Module, locator, logger)

	if cfg.Verify.Signatures {
		verifier, err := gateways.NewGPGVerifier(cfg.Verify.Keyring)
		if err != nil {
			return nil, fmt.Errorf("failed to load keyring: %w", err)
		}
		logger.Debug("report signatures enabled",
			interfaces.F("keyring", cfg.Verify.Keyring),
			interfaces.F("keys", verifier.GetKeyringSize()))
		reports.WithSignatureVerifier(verifier)
	}

	return &app{
		cfg:        cfg,
		logger:     logger,
		locator:    locator,
		reports:    reports,
		aggregator: services.NewArtifactAggregator(reports, nil, logger),
	}, nil
}

// applyTo overrides configuration values with the flags that were set
func (o *globalOptions) applyTo(cfg *entities.Config) {
	if o.cacheDir != "" {
		cfg.CacheDir = o.cacheDir
	}
	if o.organisation != "" {
		cfg.Module.Organisation = o.organisation
	}
	if o.module != "" {
		cfg.Module.Name = o.module
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
}

// confs returns the configurations named by a --conf value, or the configured ones, with "*" expanded
func (a *app) confs(ctx context.Context, conf string) ([]string, error) {
	confs := a.cfg.Configurations
	if conf != "" {
		confs = services.SplitConfs(conf)
	}

	expanded, err := services.ExpandConfs(ctx, confs, a.reports)
	if err != nil {
		return nil, err
	}
	if len(expanded) == 0 {
		return nil, fmt.Errorf("no configuration found for %s", a.cfg.Module)
	}
	return expanded, nil
}

func (a *app) cacheOrchestrator() *orchestrators.CacheOrchestrator {
	return orchestrators.NewCacheOrchestrator(
		a.aggregator,
		a.locator,
		gateways.NewDigestVerifier(),
		orchestrators.CacheOrchestratorConfig{CacheDir: a.cfg.CacheDir, Logger: a.logger},
	)
}

// filterFlags are the artifact selection flags shared by several commands
type filterFlags struct {
	types    []string
	names    []string
	excludes []string
	revision string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringSliceVar(&f.types, "type", nil, "Artifact types to keep, \"*\" for all (comma separated)")
	fl.StringSliceVar(&f.names, "name", nil, "Glob patterns of artifact names to keep")
	fl.StringSliceVar(&f.excludes, "exclude", nil, "Glob patterns of artifact names to drop")
	fl.StringVar(&f.revision, "revision", "", "Semantic version constraint on artifact revisions")
}

// filter merges the flags over the configured filter
func (f *filterFlags) filter(cfg entities.FilterConfig) (iservices.ArtifactFilter, error) {
	if len(f.types) > 0 {
		cfg.Types = f.types
	}
	if len(f.names) > 0 {
		cfg.Names = f.names
	}
	if len(f.excludes) > 0 {
		cfg.ExcludeNames = f.excludes
	}
	if f.revision != "" {
		cfg.Revision = f.revision
	}
	return services.NewArtifactFilter(cfg)
}
