// Package yaml provides YAML-based configuration loading and result encoding.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ochairo/resolvereport/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// Default configuration values
const (
	DefaultDigestAlgorithm = "sha256"
	DefaultWorkers         = 4
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	CacheDir        string     `yaml:"cache_dir"`
	Organisation    string     `yaml:"organisation"`
	Module          string     `yaml:"module"`
	Configurations  []string   `yaml:"configurations"`
	ArtifactPattern string     `yaml:"artifact_pattern"`
	Filter          yamlFilter `yaml:"filter"`
	Verify          yamlVerify `yaml:"verify"`
	Log             yamlLog    `yaml:"log"`
}

type yamlFilter struct {
	Types        []string `yaml:"types"`
	Names        []string `yaml:"names"`
	ExcludeNames []string `yaml:"exclude_names"`
	Revision     string   `yaml:"revision"`
}

type yamlVerify struct {
	Signatures      bool   `yaml:"signatures"`
	Keyring         string `yaml:"keyring"`
	DigestAlgorithm string `yaml:"digest_algorithm"`
	Workers         int    `yaml:"workers"`
}

type yamlLog struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ConfigParser parses YAML configuration files
type ConfigParser struct{}

// NewConfigParser creates a new YAML configuration parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML configuration file into a Config entity
func (p *ConfigParser) ParseFile(filePath string) (*entities.Config, error) {
	//nolint:gosec // G304: filePath is the user-provided configuration file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	cfg, err := p.Parse(data)
	if err != nil {
		return nil, err
	}

	// relative paths in a config file are relative to the file
	baseDir := filepath.Dir(filePath)
	cfg.CacheDir = resolvePath(baseDir, cfg.CacheDir)
	if cfg.Verify.Keyring != "" {
		cfg.Verify.Keyring = resolvePath(baseDir, cfg.Verify.Keyring)
	}

	return cfg, nil
}

// Parse parses YAML bytes into a Config entity with defaults applied
func (p *ConfigParser) Parse(data []byte) (*entities.Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if raw.Verify.Workers < 0 {
		return nil, fmt.Errorf("verify.workers must not be negative, got %d", raw.Verify.Workers)
	}

	cfg := &entities.Config{
		CacheDir:        raw.CacheDir,
		Module:          entities.NewModuleID(raw.Organisation, raw.Module),
		Configurations:  raw.Configurations,
		ArtifactPattern: raw.ArtifactPattern,
		Filter:          convertFilter(raw.Filter),
		Verify:          convertVerify(raw.Verify),
		Log:             convertLog(raw.Log),
	}
	ApplyDefaults(cfg)

	return cfg, nil
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *entities.Config {
	cfg := &entities.Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every unset field with its default value
func ApplyDefaults(cfg *entities.Config) {
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir()
	}
	if len(cfg.Configurations) == 0 {
		cfg.Configurations = []string{entities.AllConfigurations}
	}
	if cfg.Verify.DigestAlgorithm == "" {
		cfg.Verify.DigestAlgorithm = DefaultDigestAlgorithm
	}
	if cfg.Verify.Workers == 0 {
		cfg.Verify.Workers = DefaultWorkers
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// Validate checks that a configuration can be used to read reports
func Validate(cfg *entities.Config) error {
	var errs []error
	if cfg.Module.Organisation == "" {
		errs = append(errs, errors.New("organisation is required"))
	}
	if cfg.Module.Name == "" {
		errs = append(errs, errors.New("module is required"))
	}
	if cfg.Verify.Signatures && cfg.Verify.Keyring == "" {
		errs = append(errs, errors.New("verify.keyring is required when verify.signatures is enabled"))
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", cfg.Log.Format))
	}
	return errors.Join(errs...)
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".ivy2", "cache")
	}
	return filepath.Join(home, ".ivy2", "cache")
}

func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return filepath.Join(baseDir, path)
}

func convertFilter(yf yamlFilter) entities.FilterConfig {
	return entities.FilterConfig{
		Types:        yf.Types,
		Names:        yf.Names,
		ExcludeNames: yf.ExcludeNames,
		Revision:     yf.Revision,
	}
}

func convertVerify(yv yamlVerify) entities.VerifyConfig {
	return entities.VerifyConfig{
		Signatures:      yv.Signatures,
		Keyring:         yv.Keyring,
		DigestAlgorithm: yv.DigestAlgorithm,
		Workers:         yv.Workers,
	}
}

func convertLog(yl yamlLog) entities.LogConfig {
	return entities.LogConfig{
		Level:  yl.Level,
		Format: yl.Format,
	}
}
