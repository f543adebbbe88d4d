// Package scan implements the manifest generation policy: enumerate an
// account's repositories, decide per repository whether it belongs in the
// catalog, and assemble the resulting manifest. The network mechanism lives
// behind the Client interface so the decision policy is testable without a
// live API.
package scan

import (
	"context"
	"time"
)

// Repository is the subset of upstream repository metadata the scanner
// needs to make its decisions.
type Repository struct {
	// Name is the short repository name.
	Name string

	// FullName is the owner-qualified identifier (owner/name).
	FullName string

	// Description may be empty.
	Description string

	// Fork marks repositories forked from elsewhere; always excluded.
	Fork bool

	// Archived marks read-only repositories; always excluded.
	Archived bool

	// PushedAt is the last-updated timestamp used for manifest ordering.
	PushedAt time.Time
}

// Client is the capability set the scanner needs from the repository
// hosting API: list repositories, resolve the hosted-page configuration,
// and fetch topic labels.
type Client interface {
	// ListRepositories returns every repository owned by the account,
	// across all result pages.
	ListRepositories(ctx context.Context, owner string) ([]Repository, error)

	// PagesURL resolves the repository's hosted-page URL. It returns an
	// error matching errors.ErrNotFound when the repository has no hosted
	// page configured.
	PagesURL(ctx context.Context, owner, repo string) (string, error)

	// Topics returns the repository's topic labels.
	Topics(ctx context.Context, owner, repo string) ([]string, error)
}
