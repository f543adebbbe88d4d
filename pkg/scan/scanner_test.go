package scan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagescout/pagescout/pkg/errors"
	"github.com/pagescout/pagescout/pkg/logging"
)

// fakeClient is an in-memory Client exposing the same capability set as the
// real API client: list repositories, resolve pages, fetch topics.
type fakeClient struct {
	repos     []Repository
	pages     map[string]string // repo name -> URL
	pagesErr  map[string]error  // repo name -> non-404 failure
	topics    map[string][]string
	topicsErr map[string]error
}

func (f *fakeClient) ListRepositories(_ context.Context, _ string) ([]Repository, error) {
	return f.repos, nil
}

func (f *fakeClient) PagesURL(_ context.Context, _, repo string) (string, error) {
	if err, ok := f.pagesErr[repo]; ok {
		return "", err
	}
	url, ok := f.pages[repo]
	if !ok {
		return "", errors.NewNotFoundError("pages", repo)
	}
	return url, nil
}

func (f *fakeClient) Topics(_ context.Context, _, repo string) ([]string, error) {
	if err, ok := f.topicsErr[repo]; ok {
		return nil, err
	}
	return f.topics[repo], nil
}

type failingLister struct{ fakeClient }

func (f *failingLister) ListRepositories(_ context.Context, _ string) ([]Repository, error) {
	return nil, errors.NewAPIError("/users/octocat/repos", 500, "boom")
}

func testConfig() Config {
	return Config{Owner: "octocat", Token: "token"}
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, testConfig().Validate())

	err := Config{Token: "token"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrOwnerRequired)

	err = Config{Owner: "octocat"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrTokenRequired)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(&fakeClient{}, Config{})
	assert.Error(t, err)
}

func TestForksAndArchivedAreSkipped(t *testing.T) {
	client := &fakeClient{
		repos: []Repository{
			{Name: "fork", FullName: "octocat/fork", Fork: true},
			{Name: "archived", FullName: "octocat/archived", Archived: true},
		},
		// Even with a pages site configured, these never produce records.
		pages: map[string]string{
			"fork":     "https://octocat.github.io/fork/",
			"archived": "https://octocat.github.io/archived/",
		},
	}

	scanner, err := New(client, testConfig(), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	manifest, report, err := scanner.Run(t.Context())
	require.NoError(t, err)
	assert.Empty(t, manifest)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 0, report.Included)
}

func TestRepositoriesWithoutPagesAreExcluded(t *testing.T) {
	client := &fakeClient{
		repos: []Repository{
			{Name: "site", FullName: "octocat/site"},
			{Name: "library", FullName: "octocat/library"},
		},
		pages: map[string]string{"site": "https://octocat.github.io/site/"},
	}

	scanner, err := New(client, testConfig(), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	manifest, report, err := scanner.Run(t.Context())
	require.NoError(t, err)
	require.Len(t, manifest, 1)
	assert.Equal(t, "octocat/site", manifest[0].Repo)
	assert.Equal(t, 1, report.Excluded)
	assert.Equal(t, 1, report.Included)
}

func TestPagesFailureIsIsolatedAndReported(t *testing.T) {
	client := &fakeClient{
		repos: []Repository{
			{Name: "flaky", FullName: "octocat/flaky"},
			{Name: "site", FullName: "octocat/site"},
		},
		pages:    map[string]string{"site": "https://octocat.github.io/site/"},
		pagesErr: map[string]error{"flaky": errors.NewAPIError("/repos/octocat/flaky/pages", 500, "boom")},
	}

	log := logging.CaptureLoggingForTest(t)
	scanner, err := New(client, testConfig(), WithLogger(log.Logger))
	require.NoError(t, err)

	manifest, report, err := scanner.Run(t.Context())
	require.NoError(t, err, "a single repository failure must not abort the run")
	require.Len(t, manifest, 1)
	assert.Equal(t, "octocat/site", manifest[0].Repo)
	assert.Equal(t, 1, report.Failed)
	assert.True(t, log.Contains("Failed to resolve pages configuration"))
}

func TestTopicFailureDegradesToEmptyList(t *testing.T) {
	client := &fakeClient{
		repos:     []Repository{{Name: "site", FullName: "octocat/site"}},
		pages:     map[string]string{"site": "https://octocat.github.io/site/"},
		topicsErr: map[string]error{"site": errors.NewAPIError("/repos/octocat/site/topics", 500, "boom")},
	}

	log := logging.CaptureLoggingForTest(t)
	scanner, err := New(client, testConfig(), WithLogger(log.Logger))
	require.NoError(t, err)

	manifest, report, err := scanner.Run(t.Context())
	require.NoError(t, err)
	require.Len(t, manifest, 1, "topic failure must not exclude the record")
	assert.Equal(t, []string{}, manifest[0].Topics)
	assert.Equal(t, 1, report.TopicFailures)
	assert.Equal(t, 1, report.Included)
	assert.True(t, log.Contains("Failed to fetch topics"))
}

func TestManifestSortedByDateDescending(t *testing.T) {
	client := &fakeClient{
		repos: []Repository{
			{Name: "old", FullName: "octocat/old", PushedAt: at("2021-01-01T00:00:00Z")},
			{Name: "new", FullName: "octocat/new", PushedAt: at("2024-01-01T00:00:00Z")},
			{Name: "mid", FullName: "octocat/mid", PushedAt: at("2022-06-01T00:00:00Z")},
		},
		pages: map[string]string{
			"old": "https://octocat.github.io/old/",
			"new": "https://octocat.github.io/new/",
			"mid": "https://octocat.github.io/mid/",
		},
	}

	scanner, err := New(client, testConfig(), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	manifest, _, err := scanner.Run(t.Context())
	require.NoError(t, err)
	require.Len(t, manifest, 3)
	assert.Equal(t, "octocat/new", manifest[0].Repo)
	assert.Equal(t, "octocat/mid", manifest[1].Repo)
	assert.Equal(t, "octocat/old", manifest[2].Repo)

	for i := 0; i < len(manifest)-1; i++ {
		assert.False(t, manifest[i].Date.Before(manifest[i+1].Date))
	}
}

func TestRecordAssembly(t *testing.T) {
	client := &fakeClient{
		repos: []Repository{{
			Name:        "site",
			FullName:    "octocat/site",
			Description: "My site",
			PushedAt:    at("2023-06-01T10:00:00Z"),
		}},
		pages:  map[string]string{"site": "https://octocat.github.io/site/"},
		topics: map[string][]string{"site": {"web", "go"}},
	}

	scanner, err := New(client, testConfig(), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	manifest, _, err := scanner.Run(t.Context())
	require.NoError(t, err)
	require.Len(t, manifest, 1)

	p := manifest[0]
	assert.Equal(t, "site", p.Name)
	assert.Equal(t, "octocat/site", p.Repo)
	assert.Equal(t, "https://octocat.github.io/site/", p.URL)
	assert.Equal(t, "My site", p.Description)
	assert.Equal(t, []string{"web", "go"}, p.Topics)
	assert.Equal(t, at("2023-06-01T10:00:00Z"), p.Date.Time)
	assert.Empty(t, p.Screenshot, "screenshot is populated out of band")
}

func TestEmptyDescriptionFallsBackToEmptyString(t *testing.T) {
	client := &fakeClient{
		repos: []Repository{{Name: "site", FullName: "octocat/site"}},
		pages: map[string]string{"site": "https://octocat.github.io/site/"},
	}

	scanner, err := New(client, testConfig(), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	manifest, _, err := scanner.Run(t.Context())
	require.NoError(t, err)
	require.Len(t, manifest, 1)
	assert.Equal(t, "", manifest[0].Description)
}

func TestListFailureIsFatal(t *testing.T) {
	scanner, err := New(&failingLister{}, testConfig(), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	_, _, err = scanner.Run(t.Context())
	assert.Error(t, err)
}

func TestRunIsDeterministic(t *testing.T) {
	d := at("2023-01-01T00:00:00Z")
	client := &fakeClient{
		repos: []Repository{
			{Name: "a", FullName: "octocat/a", PushedAt: d},
			{Name: "b", FullName: "octocat/b", PushedAt: d},
		},
		pages: map[string]string{
			"a": "https://octocat.github.io/a/",
			"b": "https://octocat.github.io/b/",
		},
	}

	scanner, err := New(client, testConfig(), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	first, _, err := scanner.Run(t.Context())
	require.NoError(t, err)
	second, _, err := scanner.Run(t.Context())
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical upstream data must produce identical manifests")
}

func TestReportString(t *testing.T) {
	r := &Report{}
	r.record(Outcome{Repo: "o/a", Disposition: Included})
	r.record(Outcome{Repo: "o/b", Disposition: Excluded})
	r.record(Outcome{Repo: "o/c", Disposition: Skipped})

	assert.Equal(t, "1 included, 1 excluded, 1 skipped, 0 failed", r.String())
}
