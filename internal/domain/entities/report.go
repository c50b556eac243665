package entities

// PublicationDateLayout is the fixed layout of revision publication dates in persisted reports
const PublicationDateLayout = "20060102150405"

// ParsedReport is the content of one persisted resolution report.
// AllRevisions is partitioned into DefaultRevisions and RealRevisions.
type ParsedReport struct {
	AllRevisions     []ModuleRevisionID
	DefaultRevisions []ModuleRevisionID
	RealRevisions    []ModuleRevisionID
	Artifacts        []Artifact
}

// NewParsedReport creates an empty report with non-nil collections
func NewParsedReport() *ParsedReport {
	return &ParsedReport{
		AllRevisions:     make([]ModuleRevisionID, 0),
		DefaultRevisions: make([]ModuleRevisionID, 0),
		RealRevisions:    make([]ModuleRevisionID, 0),
		Artifacts:        make([]Artifact, 0),
	}
}

// AddRevision records a resolved revision in the matching partition
func (r *ParsedReport) AddRevision(mrid ModuleRevisionID, isDefault bool) {
	r.AllRevisions = append(r.AllRevisions, mrid)
	if isDefault {
		r.DefaultRevisions = append(r.DefaultRevisions, mrid)
	} else {
		r.RealRevisions = append(r.RealRevisions, mrid)
	}
}

// RevisionKind selects one of the revision collections of a report
type RevisionKind string

const (
	RevisionsAll     RevisionKind = "all"
	RevisionsDefault RevisionKind = "default"
	RevisionsReal    RevisionKind = "real"
)

// Revisions returns the collection selected by kind
func (r *ParsedReport) Revisions(kind RevisionKind) []ModuleRevisionID {
	switch kind {
	case RevisionsDefault:
		return r.DefaultRevisions
	case RevisionsReal:
		return r.RealRevisions
	default:
		return r.AllRevisions
	}
}

// DownloadStatus is the outcome of retrieving one artifact during resolution
type DownloadStatus string

const (
	DownloadSuccessful DownloadStatus = "successful"
	DownloadNoChange   DownloadStatus = "no" // already present in cache
	DownloadFailed     DownloadStatus = "failed"
)

// ArtifactDownloadReport records what happened to one artifact of a resolved revision
type ArtifactDownloadReport struct {
	Artifact  Artifact
	Status    DownloadStatus
	LocalFile string
}

// ConfigurationReport is the live resolution result of a single configuration
type ConfigurationReport struct {
	Name      string
	Revisions []ModuleRevisionID
	Downloads map[ModuleRevisionID][]ArtifactDownloadReport
}

// DownloadReports returns the download outcomes for a resolved revision
func (c *ConfigurationReport) DownloadReports(mrid ModuleRevisionID) []ArtifactDownloadReport {
	return c.Downloads[mrid]
}

// ResolveReport is an in-process resolution result covering several configurations
type ResolveReport struct {
	Module         ModuleID
	Configurations []*ConfigurationReport
}

// ConfigurationReport looks up the report of a configuration by name
func (r *ResolveReport) ConfigurationReport(name string) (*ConfigurationReport, bool) {
	for _, conf := range r.Configurations {
		if conf.Name == name {
			return conf, true
		}
	}
	return nil, false
}

// ConfigurationNames lists the configurations present in the result
func (r *ResolveReport) ConfigurationNames() []string {
	names := make([]string, 0, len(r.Configurations))
	for _, conf := range r.Configurations {
		names = append(names, conf.Name)
	}
	return names
}
