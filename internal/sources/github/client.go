// Package github provides a client for the GitHub REST API implementing the
// scan.Client capability set: list an owner's repositories, resolve Pages
// configurations, and fetch topic labels.
package github

import (
	"context"
	"fmt"

	"github.com/pagescout/pagescout/internal/transport"
	"github.com/pagescout/pagescout/pkg/constants"
	"github.com/pagescout/pagescout/pkg/errors"
	"github.com/pagescout/pagescout/pkg/scan"
)

const (
	defaultBaseURL = "https://api.github.com"

	acceptHeader  = "application/vnd.github+json"
	versionHeader = "2022-11-28"
)

// Client implements scan.Client against the GitHub REST API.
type Client struct {
	transport *transport.Client
	baseURL   string
	pageSize  int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests and GitHub
// Enterprise installations.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithPageSize overrides how many repositories are requested per page.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewClient creates a GitHub API client authenticated with the given token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		transport: transport.New(&transport.BearerAuth{},
			transport.WithToken(token),
			transport.WithHeader("Accept", acceptHeader),
			transport.WithHeader("X-GitHub-Api-Version", versionHeader),
		),
		baseURL:  defaultBaseURL,
		pageSize: constants.RepositoryPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListRepositories returns every repository owned by the account, walking
// result pages until a short page signals the end.
func (c *Client) ListRepositories(ctx context.Context, owner string) ([]scan.Repository, error) {
	var repos []scan.Repository

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/users/%s/repos?type=owner&per_page=%d&page=%d",
			c.baseURL, owner, c.pageSize, page)

		resp, err := c.transport.Get(ctx, url)
		if err != nil {
			return nil, errors.WrapResource("fetch", "repositories", owner, err)
		}

		var batch []repositoryResponse
		if err := transport.DecodeResponse(resp, &batch); err != nil {
			return nil, err
		}

		for _, r := range batch {
			repos = append(repos, scan.Repository{
				Name:        r.Name,
				FullName:    r.FullName,
				Description: r.Description,
				Fork:        r.Fork,
				Archived:    r.Archived,
				PushedAt:    r.PushedAt,
			})
		}

		if len(batch) < c.pageSize {
			return repos, nil
		}
	}
}

// PagesURL resolves the repository's GitHub Pages URL. A repository without
// a Pages site yields an error matching errors.ErrNotFound.
func (c *Client) PagesURL(ctx context.Context, owner, repo string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/pages", c.baseURL, owner, repo)

	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		return "", errors.WrapResource("fetch", "pages", owner+"/"+repo, err)
	}

	var pages pagesResponse
	if err := transport.DecodeResponse(resp, &pages); err != nil {
		return "", err
	}

	return pages.HTMLURL, nil
}

// Topics returns the repository's topic labels.
func (c *Client) Topics(ctx context.Context, owner, repo string) ([]string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/topics", c.baseURL, owner, repo)

	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, errors.WrapResource("fetch", "topics", owner+"/"+repo, err)
	}

	var topics topicsResponse
	if err := transport.DecodeResponse(resp, &topics); err != nil {
		return nil, err
	}

	return topics.Names, nil
}

// Interface check: the client must satisfy the scanner's capability set.
var _ scan.Client = (*Client)(nil)
