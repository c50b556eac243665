package entities

// AllConfigurations stands for every configuration with a persisted report
const AllConfigurations = "*"

// Config represents the tool configuration loaded from YAML and flags
type Config struct {
	CacheDir        string
	Module          ModuleID
	Configurations  []string
	ArtifactPattern string
	Filter          FilterConfig
	Verify          VerifyConfig
	Log             LogConfig
}

// FilterConfig selects which aggregated artifacts are kept
type FilterConfig struct {
	Types        []string // "*" or empty accepts every type
	Names        []string // glob patterns; empty accepts every name
	ExcludeNames []string // glob patterns
	Revision     string   // semver constraint, e.g. ">= 1.2, < 2"
}

// VerifyConfig represents integrity verification settings
type VerifyConfig struct {
	Signatures      bool
	Keyring         string
	DigestAlgorithm string
	Workers         int
}

// LogConfig represents logging settings
type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}
