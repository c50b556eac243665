package gateways

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

func TestCacheLocator_Locate(t *testing.T) {
	locator := NewCacheLocator("")
	module := entities.NewModuleID("acme", "app")

	got := locator.Locate(module, "compile", "/cache")
	want := filepath.Join("/cache", "acme-app-compile.xml")
	if got != want {
		t.Errorf("Locate() = %v, want %v", got, want)
	}

	if again := locator.Locate(module, "compile", "/cache"); again != got {
		t.Errorf("Locate() is not deterministic: %v != %v", again, got)
	}
}

func TestCacheLocator_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	locator := NewCacheLocator("")

	file := filepath.Join(tmpDir, "acme-app-compile.xml")
	if err := os.WriteFile(file, []byte("<ivy-report/>"), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if !locator.Exists(file) {
		t.Error("Exists() = false for existing file")
	}
	if locator.Exists(filepath.Join(tmpDir, "missing.xml")) {
		t.Error("Exists() = true for missing file")
	}
	if locator.Exists(tmpDir) {
		t.Error("Exists() = true for a directory")
	}
}

func TestCacheLocator_Configurations(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{
		"acme-app-runtime.xml",
		"acme-app-compile.xml",
		"acme-app-test.xml.asc",
		"acme-other-compile.xml",
		"readme.txt",
	} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0600); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "acme-app-dir.xml"), 0750); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	confs, err := NewCacheLocator("").Configurations(entities.NewModuleID("acme", "app"), tmpDir)
	if err != nil {
		t.Fatalf("Configurations() error = %v", err)
	}

	if diff := cmp.Diff([]string{"compile", "runtime"}, confs); diff != "" {
		t.Errorf("Configurations() mismatch (-want +got):\n%s", diff)
	}
}

func TestCacheLocator_Configurations_MissingCache(t *testing.T) {
	_, err := NewCacheLocator("").Configurations(entities.NewModuleID("acme", "app"), "/nonexistent/cache")
	if err == nil {
		t.Error("Configurations() should return error for missing cache directory")
	}
}

func TestCacheLocator_ArtifactPath(t *testing.T) {
	artifact := entities.Artifact{
		Revision: entities.NewModuleRevisionID("org.apache", "commons-lang", "2.6"),
		Name:     "commons-lang",
		Type:     "jar",
		Ext:      "jar",
	}

	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{
			name:    "default pattern",
			pattern: "",
			want:    filepath.Join("/cache", "org.apache", "commons-lang", "jars", "commons-lang-2.6.jar"),
		},
		{
			name:    "flat pattern",
			pattern: "lib/[artifact]-[revision].[ext]",
			want:    filepath.Join("/cache", "lib", "commons-lang-2.6.jar"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCacheLocator(tt.pattern).ArtifactPath("/cache", artifact)
			if got != tt.want {
				t.Errorf("ArtifactPath() = %v, want %v", got, tt.want)
			}
		})
	}
}
