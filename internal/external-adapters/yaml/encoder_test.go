package yaml

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

func TestEncodeArtifacts(t *testing.T) {
	mrid := entities.NewModuleRevisionID("org.apache", "commons-lang", "2.6")
	artifacts := []entities.Artifact{
		{Revision: mrid, PublicationDate: time.Date(2011, 1, 16, 12, 0, 0, 0, time.UTC), Name: "commons-lang", Type: "jar", Ext: "jar"},
		{Revision: mrid, Name: "commons-lang", Type: "source", Ext: "jar"},
	}

	var buf bytes.Buffer
	if err := EncodeArtifacts(&buf, artifacts, []string{"/cache/commons-lang-2.6.jar"}); err != nil {
		t.Fatalf("EncodeArtifacts() error = %v", err)
	}

	var decoded []map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(decoded))
	}
	if decoded[0]["pubdate"] != "20110116120000" || decoded[0]["path"] != "/cache/commons-lang-2.6.jar" {
		t.Errorf("first entry = %v", decoded[0])
	}
	if _, ok := decoded[1]["pubdate"]; ok {
		t.Errorf("zero pubdate should be omitted, got %v", decoded[1])
	}
	if _, ok := decoded[1]["path"]; ok {
		t.Errorf("missing path should be omitted, got %v", decoded[1])
	}
}

func TestEncodeRevisions(t *testing.T) {
	var buf bytes.Buffer
	revisions := []entities.ModuleRevisionID{entities.NewModuleRevisionID("g", "m", "1.0")}
	if err := EncodeRevisions(&buf, revisions); err != nil {
		t.Fatalf("EncodeRevisions() error = %v", err)
	}

	var decoded []map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	want := map[string]string{"organisation": "g", "module": "m", "revision": "1.0"}
	if len(decoded) != 1 || !reflect.DeepEqual(decoded[0], want) {
		t.Errorf("EncodeRevisions() decoded = %v, want [%v]", decoded, want)
	}
}
