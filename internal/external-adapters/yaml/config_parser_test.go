package yaml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

func TestConfigParser_Parse_Valid(t *testing.T) {
	parser := NewConfigParser()
	yamlData := []byte(`cache_dir: /var/cache/ivy
organisation: acme
module: app
configurations:
  - compile
  - runtime
artifact_pattern: "[organisation]/[module]/[artifact]-[revision].[ext]"
filter:
  types: [jar, bundle]
  names: ["commons-*"]
  exclude_names: ["*-sources"]
  revision: ">= 1.0"
verify:
  signatures: true
  keyring: /etc/keys.asc
  digest_algorithm: sha512
  workers: 8
log:
  level: debug
  format: json
`)

	cfg, err := parser.Parse(yamlData)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := &entities.Config{
		CacheDir:        "/var/cache/ivy",
		Module:          entities.NewModuleID("acme", "app"),
		Configurations:  []string{"compile", "runtime"},
		ArtifactPattern: "[organisation]/[module]/[artifact]-[revision].[ext]",
		Filter: entities.FilterConfig{
			Types:        []string{"jar", "bundle"},
			Names:        []string{"commons-*"},
			ExcludeNames: []string{"*-sources"},
			Revision:     ">= 1.0",
		},
		Verify: entities.VerifyConfig{
			Signatures:      true,
			Keyring:         "/etc/keys.asc",
			DigestAlgorithm: "sha512",
			Workers:         8,
		},
		Log: entities.LogConfig{Level: "debug", Format: "json"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigParser_Parse_Defaults(t *testing.T) {
	cfg, err := NewConfigParser().Parse([]byte(`organisation: acme
module: app
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.CacheDir == "" {
		t.Error("CacheDir should default to the user cache")
	}
	if diff := cmp.Diff([]string{entities.AllConfigurations}, cfg.Configurations); diff != "" {
		t.Errorf("Configurations mismatch (-want +got):\n%s", diff)
	}
	if cfg.Verify.DigestAlgorithm != DefaultDigestAlgorithm {
		t.Errorf("DigestAlgorithm = %v, want %v", cfg.Verify.DigestAlgorithm, DefaultDigestAlgorithm)
	}
	if cfg.Verify.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want %d", cfg.Verify.Workers, DefaultWorkers)
	}
	if cfg.Log.Level != DefaultLogLevel || cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log = %+v, want defaults", cfg.Log)
	}
}

func TestConfigParser_Parse_InvalidYAML(t *testing.T) {
	_, err := NewConfigParser().Parse([]byte(`organisation: acme
  invalid: [broken yaml
`))
	if err == nil {
		t.Error("Parse() should return error for invalid YAML")
	}
}

func TestConfigParser_Parse_NegativeWorkers(t *testing.T) {
	_, err := NewConfigParser().Parse([]byte("verify:\n  workers: -1\n"))
	if err == nil || !strings.Contains(err.Error(), "workers") {
		t.Errorf("Parse() error = %v, want workers error", err)
	}
}

func TestConfigParser_ParseFile_RelativePaths(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "resolvereport.yml")
	content := []byte(`cache_dir: cache
organisation: acme
module: app
verify:
  keyring: keys/trusted.asc
`)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	cfg, err := NewConfigParser().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	if want := filepath.Join(tmpDir, "cache"); cfg.CacheDir != want {
		t.Errorf("CacheDir = %v, want %v", cfg.CacheDir, want)
	}
	if want := filepath.Join(tmpDir, "keys", "trusted.asc"); cfg.Verify.Keyring != want {
		t.Errorf("Keyring = %v, want %v", cfg.Verify.Keyring, want)
	}
}

func TestConfigParser_ParseFile_NotFound(t *testing.T) {
	_, err := NewConfigParser().ParseFile("/nonexistent/path/resolvereport.yml")
	if err == nil {
		t.Error("ParseFile() should return error for nonexistent file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *entities.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(_ *entities.Config) {}},
		{name: "missing organisation", mutate: func(cfg *entities.Config) { cfg.Module.Organisation = "" }, wantErr: "organisation is required"},
		{name: "missing module", mutate: func(cfg *entities.Config) { cfg.Module.Name = "" }, wantErr: "module is required"},
		{name: "signatures without keyring", mutate: func(cfg *entities.Config) { cfg.Verify.Signatures = true }, wantErr: "verify.keyring"},
		{name: "bad log format", mutate: func(cfg *entities.Config) { cfg.Log.Format = "xml" }, wantErr: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Module = entities.NewModuleID("acme", "app")
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
