package yaml

import (
	"os"
	"path/filepath"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

// DefaultConfigNames are looked up, in order, when no configuration file is given
var DefaultConfigNames = []string{".resolvereport.yml", ".resolvereport.yaml", "resolvereport.yml"}

// ConfigRepository locates and loads the configuration file
type ConfigRepository struct {
	workDir string
	parser  *ConfigParser
}

// NewConfigRepository creates a repository searching workDir for default config names
func NewConfigRepository(workDir string) *ConfigRepository {
	return &ConfigRepository{
		workDir: workDir,
		parser:  NewConfigParser(),
	}
}

// Load parses the explicit path when given, otherwise the first default file found in
// the working directory, otherwise returns the default configuration
func (r *ConfigRepository) Load(path string) (*entities.Config, error) {
	if path != "" {
		return r.parser.ParseFile(path)
	}

	for _, name := range DefaultConfigNames {
		candidate := filepath.Join(r.workDir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return r.parser.ParseFile(candidate)
		}
	}

	return DefaultConfig(), nil
}
