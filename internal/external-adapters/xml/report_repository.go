package xml

import (
	"context"

	"github.com/ochairo/resolvereport/internal/domain/entities"
	"github.com/ochairo/resolvereport/internal/domain/interfaces"
	"github.com/ochairo/resolvereport/internal/domain/interfaces/gateways"
)

// SignatureSuffix is appended to a report path to find its detached signature
const SignatureSuffix = ".asc"

// ReportRepository implements repositories.ReportRepository over persisted report files
type ReportRepository struct {
	cacheDir string
	module   entities.ModuleID
	locator  gateways.ReportLocator
	parser   *ReportParser
	verifier gateways.SignatureVerifier
	logger   interfaces.Logger
}

// NewReportRepository creates a repository reading the reports of module from cacheDir
func NewReportRepository(cacheDir string, module entities.ModuleID, locator gateways.ReportLocator, logger interfaces.Logger) *ReportRepository {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &ReportRepository{
		cacheDir: cacheDir,
		module:   module,
		locator:  locator,
		parser:   NewReportParser(),
		logger:   logger,
	}
}

// WithSignatureVerifier requires every report to carry a valid detached signature
func (r *ReportRepository) WithSignatureVerifier(verifier gateways.SignatureVerifier) *ReportRepository {
	r.verifier = verifier
	return r
}

// GetReport parses the persisted report of a configuration
func (r *ReportRepository) GetReport(ctx context.Context, conf string) (*entities.ParsedReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := r.locator.Locate(r.module, conf, r.cacheDir)
	if !r.locator.Exists(path) {
		return nil, &entities.ReportNotFoundError{
			Module:        r.module,
			Configuration: conf,
			Path:          path,
		}
	}

	if r.verifier != nil {
		if err := r.verifier.VerifyDetached(path, path+SignatureSuffix); err != nil {
			return nil, &entities.ReportSignatureError{Path: path, Err: err}
		}
		r.logger.Debug("report signature verified", interfaces.F("path", path))
	}

	r.logger.Debug("parsing stored report",
		interfaces.F("module", r.module.String()),
		interfaces.F("conf", conf),
		interfaces.F("path", path))

	return r.parser.ParseFile(path)
}

// ConfigurationArtifacts returns the artifacts listed in the stored report of a configuration
func (r *ReportRepository) ConfigurationArtifacts(ctx context.Context, conf string) ([]entities.Artifact, error) {
	report, err := r.GetReport(ctx, conf)
	if err != nil {
		return nil, err
	}
	return report.Artifacts, nil
}

// DependencyRevisionIDs returns every resolved revision of a configuration
func (r *ReportRepository) DependencyRevisionIDs(ctx context.Context, conf string) ([]entities.ModuleRevisionID, error) {
	report, err := r.GetReport(ctx, conf)
	if err != nil {
		return nil, err
	}
	return report.AllRevisions, nil
}

// RealDependencyRevisionIDs returns the resolved revisions that have a real module descriptor
func (r *ReportRepository) RealDependencyRevisionIDs(ctx context.Context, conf string) ([]entities.ModuleRevisionID, error) {
	report, err := r.GetReport(ctx, conf)
	if err != nil {
		return nil, err
	}
	return report.RealRevisions, nil
}

// ListConfigurations returns the configurations that have a stored report
func (r *ReportRepository) ListConfigurations(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.locator.Configurations(r.module, r.cacheDir)
}
