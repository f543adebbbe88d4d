package github

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagescout/pagescout/pkg/errors"
)

func TestListRepositoriesWalksAllPages(t *testing.T) {
	const pageSize = 3
	total := 7 // two full pages plus a short one

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/octocat/repos", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		require.Greater(t, page, 0)

		start := (page - 1) * pageSize
		var batch []map[string]any
		for i := start; i < start+pageSize && i < total; i++ {
			batch = append(batch, map[string]any{
				"name":      fmt.Sprintf("repo-%d", i),
				"full_name": fmt.Sprintf("octocat/repo-%d", i),
				"pushed_at": "2023-06-01T10:00:00Z",
			})
		}
		_ = json.NewEncoder(w).Encode(batch)
	}))
	defer server.Close()

	client := NewClient("secret", WithBaseURL(server.URL), WithPageSize(pageSize))

	repos, err := client.ListRepositories(t.Context(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, total)
	assert.Equal(t, "octocat/repo-0", repos[0].FullName)
	assert.Equal(t, "octocat/repo-6", repos[6].FullName)
	assert.False(t, repos[0].PushedAt.IsZero())
}

func TestListRepositoriesDecodesFlags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"name":"fork","full_name":"octocat/fork","fork":true},
			{"name":"attic","full_name":"octocat/attic","archived":true,"description":null}
		]`))
	}))
	defer server.Close()

	client := NewClient("secret", WithBaseURL(server.URL))

	repos, err := client.ListRepositories(t.Context(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.True(t, repos[0].Fork)
	assert.True(t, repos[1].Archived)
	assert.Equal(t, "", repos[1].Description, "null description decodes to empty string")
}

func TestListRepositoriesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Bad credentials"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("bad", WithBaseURL(server.URL))

	_, err := client.ListRepositories(t.Context(), "octocat")
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestPagesURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/site/pages":
			_, _ = w.Write([]byte(`{"url":"https://api.github.com/repos/octocat/site/pages","status":"built","html_url":"https://octocat.github.io/site/"}`))
		case "/repos/octocat/library/pages":
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewClient("secret", WithBaseURL(server.URL))

	t.Run("resolves configured site", func(t *testing.T) {
		url, err := client.PagesURL(t.Context(), "octocat", "site")
		require.NoError(t, err)
		assert.Equal(t, "https://octocat.github.io/site/", url)
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		_, err := client.PagesURL(t.Context(), "octocat", "library")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("other failures are not ErrNotFound", func(t *testing.T) {
		_, err := client.PagesURL(t.Context(), "octocat", "flaky")
		require.Error(t, err)
		assert.False(t, errors.IsNotFound(err))
	})
}

func TestTopics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/octocat/site/topics", r.URL.Path)
		_, _ = w.Write([]byte(`{"names":["web","go","portfolio"]}`))
	}))
	defer server.Close()

	client := NewClient("secret", WithBaseURL(server.URL))

	topics, err := client.Topics(t.Context(), "octocat", "site")
	require.NoError(t, err)
	assert.Equal(t, []string{"web", "go", "portfolio"}, topics)
}
