package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

// fakeRepository is an in-memory persisted report store
type fakeRepository struct {
	reports map[string]*entities.ParsedReport
	calls   []string
}

func (f *fakeRepository) GetReport(_ context.Context, conf string) (*entities.ParsedReport, error) {
	f.calls = append(f.calls, conf)
	report, ok := f.reports[conf]
	if !ok {
		return nil, &entities.ReportNotFoundError{
			Module:        entities.NewModuleID("org", "app"),
			Configuration: conf,
			Path:          "/cache/org-app-" + conf + ".xml",
		}
	}
	return report, nil
}

func (f *fakeRepository) ConfigurationArtifacts(ctx context.Context, conf string) ([]entities.Artifact, error) {
	report, err := f.GetReport(ctx, conf)
	if err != nil {
		return nil, err
	}
	return report.Artifacts, nil
}

func (f *fakeRepository) ListConfigurations(_ context.Context) ([]string, error) {
	confs := make([]string, 0, len(f.reports))
	for _, c := range []string{"compile", "runtime", "test"} {
		if _, ok := f.reports[c]; ok {
			confs = append(confs, c)
		}
	}
	return confs, nil
}

// fakeLive serves fixed artifacts per configuration
type fakeLive struct {
	artifacts map[string][]entities.Artifact
}

func (f *fakeLive) ConfigurationArtifacts(_ context.Context, conf string) ([]entities.Artifact, error) {
	artifacts, ok := f.artifacts[conf]
	if !ok {
		return nil, &entities.UnknownConfigurationError{Configuration: conf, Known: []string{"default"}}
	}
	return artifacts, nil
}

var pubdate = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func artifact(org, module, rev, name, typ string) entities.Artifact {
	return entities.Artifact{
		Revision:        entities.NewModuleRevisionID(org, module, rev),
		PublicationDate: pubdate,
		Name:            name,
		Type:            typ,
		Ext:             "jar",
	}
}

func reportWith(artifacts ...entities.Artifact) *entities.ParsedReport {
	report := entities.NewParsedReport()
	for _, a := range artifacts {
		report.AddRevision(a.Revision, false)
	}
	report.Artifacts = append(report.Artifacts, artifacts...)
	return report
}

func TestCollectArtifacts_UnionKeepsFirstOccurrence(t *testing.T) {
	a := artifact("G", "M", "1.0", "m", "jar")
	b := artifact("G", "N", "2.0", "n", "jar")
	c := artifact("G", "O", "3.0", "o", "source")

	repo := &fakeRepository{reports: map[string]*entities.ParsedReport{
		"compile": reportWith(a, b),
		"test":    reportWith(b, c, a),
	}}

	agg := NewArtifactAggregator(repo, nil, nil)
	got, err := agg.CollectArtifacts(context.Background(), []string{"compile", "test"}, AcceptAll())
	require.NoError(t, err)

	want := []entities.Artifact{a, b, c}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CollectArtifacts() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectArtifacts_DedupIgnoresPublicationDate(t *testing.T) {
	first := artifact("G", "M", "1.0", "m", "jar")
	later := first
	later.PublicationDate = pubdate.Add(time.Hour)

	repo := &fakeRepository{reports: map[string]*entities.ParsedReport{
		"compile": reportWith(first),
		"runtime": reportWith(later),
	}}

	got, err := NewArtifactAggregator(repo, nil, nil).
		CollectArtifacts(context.Background(), []string{"compile", "runtime"}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(first))
}

func TestCollectArtifacts_Filter(t *testing.T) {
	jar := artifact("G", "M", "1.0", "m", "jar")
	src := artifact("G", "M", "1.0", "m-sources", "source")

	repo := &fakeRepository{reports: map[string]*entities.ParsedReport{
		"compile": reportWith(jar, src),
	}}
	agg := NewArtifactAggregator(repo, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter FilterFunc
		want   []entities.Artifact
	}{
		{
			name:   "accept all",
			filter: func(entities.Artifact) bool { return true },
			want:   []entities.Artifact{jar, src},
		},
		{
			name:   "reject all",
			filter: func(entities.Artifact) bool { return false },
			want:   []entities.Artifact{},
		},
		{
			name:   "jars only",
			filter: func(a entities.Artifact) bool { return a.Type == "jar" },
			want:   []entities.Artifact{jar},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := agg.CollectArtifacts(ctx, []string{"compile"}, tt.filter)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CollectArtifacts() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollectArtifacts_MissingReportAborts(t *testing.T) {
	repo := &fakeRepository{reports: map[string]*entities.ParsedReport{
		"compile": reportWith(artifact("G", "M", "1.0", "m", "jar")),
	}}

	got, err := NewArtifactAggregator(repo, nil, nil).
		CollectArtifacts(context.Background(), []string{"compile", "missing"}, AcceptAll())
	require.Error(t, err)
	assert.Nil(t, got)

	var notFound *entities.ReportNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Configuration)
}

func TestCollectArtifacts_PrefersLiveSource(t *testing.T) {
	stored := artifact("G", "M", "1.0", "stored", "jar")
	live := artifact("G", "M", "1.0", "live", "jar")

	repo := &fakeRepository{reports: map[string]*entities.ParsedReport{
		"default": reportWith(stored),
	}}
	source := &fakeLive{artifacts: map[string][]entities.Artifact{
		"default": {live},
	}}

	got, err := NewArtifactAggregator(repo, source, nil).
		CollectArtifacts(context.Background(), []string{"default"}, AcceptAll())
	require.NoError(t, err)
	assert.Equal(t, []entities.Artifact{live}, got)
	assert.Empty(t, repo.calls, "persisted reports must not be read when a live result exists")
}

func TestCollectArtifacts_UnknownLiveConfiguration(t *testing.T) {
	source := &fakeLive{artifacts: map[string][]entities.Artifact{"default": {}}}

	_, err := NewArtifactAggregator(&fakeRepository{}, source, nil).
		CollectArtifacts(context.Background(), []string{"nope"}, AcceptAll())

	var unknown *entities.UnknownConfigurationError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Configuration)
	assert.Equal(t, []string{"default"}, unknown.Known)
}

func TestCollectArtifacts_CanceledContext(t *testing.T) {
	repo := &fakeRepository{reports: map[string]*entities.ParsedReport{
		"compile": reportWith(),
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewArtifactAggregator(repo, nil, nil).CollectArtifacts(ctx, []string{"compile"}, nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, repo.calls)
}

func TestCollectRevisions(t *testing.T) {
	m1 := entities.NewModuleRevisionID("G", "M", "1.0")
	n2 := entities.NewModuleRevisionID("G", "N", "2.0")
	o3 := entities.NewModuleRevisionID("G", "O", "3.0")

	compile := entities.NewParsedReport()
	compile.AddRevision(m1, false)
	compile.AddRevision(n2, true)
	test := entities.NewParsedReport()
	test.AddRevision(n2, true)
	test.AddRevision(o3, false)

	agg := NewArtifactAggregator(&fakeRepository{reports: map[string]*entities.ParsedReport{
		"compile": compile,
		"test":    test,
	}}, nil, nil)

	tests := []struct {
		kind entities.RevisionKind
		want []entities.ModuleRevisionID
	}{
		{entities.RevisionsAll, []entities.ModuleRevisionID{m1, n2, o3}},
		{entities.RevisionsDefault, []entities.ModuleRevisionID{n2}},
		{entities.RevisionsReal, []entities.ModuleRevisionID{m1, o3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := agg.CollectRevisions(context.Background(), []string{"compile", "test"}, tt.kind)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CollectRevisions(%s) mismatch (-want +got):\n%s", tt.kind, diff)
			}
		})
	}
}

func TestCollectArtifacts_Idempotent(t *testing.T) {
	a := artifact("G", "M", "1.0", "m", "jar")
	b := artifact("G", "N", "2.0", "n", "jar")
	c := artifact("G", "O", "3.0", "o", "source")
	confs := []string{"compile", "test", "compile"}
	ctx := context.Background()

	t.Run("persisted", func(t *testing.T) {
		repo := &fakeRepository{reports: map[string]*entities.ParsedReport{
			"compile": reportWith(a, b),
			"test":    reportWith(b, c),
		}}
		agg := NewArtifactAggregator(repo, nil, nil)

		first, err := agg.CollectArtifacts(ctx, confs, AcceptAll())
		require.NoError(t, err)
		second, err := agg.CollectArtifacts(ctx, confs, AcceptAll())
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("CollectArtifacts() differs between calls (-first +second):\n%s", diff)
		}
		assert.Equal(t, []string{"compile", "test", "compile", "compile", "test", "compile"}, repo.calls,
			"every call reads the reports again")
	})

	t.Run("live", func(t *testing.T) {
		source := &fakeLive{artifacts: map[string][]entities.Artifact{
			"compile": {a, b},
			"test":    {b, c},
		}}
		repo := &fakeRepository{}
		agg := NewArtifactAggregator(repo, source, nil)

		first, err := agg.CollectArtifacts(ctx, confs, AcceptAll())
		require.NoError(t, err)
		second, err := agg.CollectArtifacts(ctx, confs, AcceptAll())
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("CollectArtifacts() differs between calls (-first +second):\n%s", diff)
		}
		assert.Equal(t, []entities.Artifact{a, b, c}, first)
		assert.Empty(t, repo.calls)
	})
}
