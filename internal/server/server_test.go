package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagescout/pagescout/pkg/logging"
	"github.com/pagescout/pagescout/pkg/portfolio"
)

func date(s string) utc.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return utc.Time{Time: t}
}

func testServer(t *testing.T, m portfolio.Manifest) *httptest.Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, m.Save(path))

	srv := New(Config{ManifestPath: path}, WithLogger(logging.NewNopLogger()))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getProjects(t *testing.T, ts *httptest.Server, query string) []portfolio.Project {
	t.Helper()

	resp, err := http.Get(ts.URL + "/api/projects" + query)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var projects []portfolio.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&projects))
	return projects
}

func contractManifest() portfolio.Manifest {
	return portfolio.Manifest{
		{Name: "A", Repo: "o/a", URL: "https://o.github.io/a/", Date: date("2023-01-01T00:00:00Z"), Topics: []string{"x"}},
		{Name: "B", Repo: "o/b", URL: "https://o.github.io/b/", Date: date("2023-06-01T00:00:00Z"), Topics: []string{"y"}},
	}
}

func TestProjectsEndpointContract(t *testing.T) {
	ts := testServer(t, contractManifest())

	t.Run("search is case-insensitive", func(t *testing.T) {
		projects := getProjects(t, ts, "?q=a")
		require.Len(t, projects, 1)
		assert.Equal(t, "A", projects[0].Name)
	})

	t.Run("tag filter is exact", func(t *testing.T) {
		projects := getProjects(t, ts, "?tag=y")
		require.Len(t, projects, 1)
		assert.Equal(t, "B", projects[0].Name)
	})

	t.Run("ascending order", func(t *testing.T) {
		projects := getProjects(t, ts, "?sort=asc")
		require.Len(t, projects, 2)
		assert.Equal(t, "A", projects[0].Name)
		assert.Equal(t, "B", projects[1].Name)
	})

	t.Run("descending is the default", func(t *testing.T) {
		projects := getProjects(t, ts, "")
		require.Len(t, projects, 2)
		assert.Equal(t, "B", projects[0].Name)
		assert.Equal(t, "A", projects[1].Name)
	})
}

func TestProjectsEndpointNeverReturnsNull(t *testing.T) {
	ts := testServer(t, portfolio.Manifest{})

	resp, err := http.Get(ts.URL + "/api/projects")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var body json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.JSONEq(t, "[]", string(body))
}

func TestTagsEndpoint(t *testing.T) {
	ts := testServer(t, contractManifest())

	resp, err := http.Get(ts.URL + "/api/tags")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var tags []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tags))
	assert.Equal(t, []string{"x", "y"}, tags)
}

func TestHealthEndpoint(t *testing.T) {
	ts := testServer(t, portfolio.Manifest{})

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestManifestServedFromDisk(t *testing.T) {
	ts := testServer(t, contractManifest())

	resp, err := http.Get(ts.URL + "/projects.json")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var projects []portfolio.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&projects))
	assert.Len(t, projects, 2)
}

func TestMissingManifestServesEmptyCatalogAnd404File(t *testing.T) {
	srv := New(Config{ManifestPath: filepath.Join(t.TempDir(), "missing.json")},
		WithLogger(logging.NewNopLogger()))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/projects.json")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	projects := getProjects(t, ts, "")
	assert.Empty(t, projects)
}

func TestEmbeddedAssetsServed(t *testing.T) {
	ts := testServer(t, portfolio.Manifest{})

	for _, path := range []string{"/index.html", "/app.js", "/style.css", "/placeholder.svg"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "asset %s", path)
	}
}

func TestAssetsDirOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>custom</html>"), 0o644))

	manifestPath := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, portfolio.Manifest{}.Save(manifestPath))

	srv := New(Config{ManifestPath: manifestPath, AssetsDir: dir},
		WithLogger(logging.NewNopLogger()))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/index.html")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestManifestReloadedPerRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, portfolio.Manifest{}.Save(path))

	srv := New(Config{ManifestPath: path}, WithLogger(logging.NewNopLogger()))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	assert.Empty(t, getProjects(t, ts, ""))

	require.NoError(t, contractManifest().Save(path))
	assert.Len(t, getProjects(t, ts, ""), 2, "a regenerated manifest is picked up without restart")
}
