package scan

import (
	"context"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/pagescout/pagescout/pkg/errors"
	"github.com/pagescout/pagescout/pkg/logging"
	"github.com/pagescout/pagescout/pkg/portfolio"
)

// Config holds the required inputs for a scan.
type Config struct {
	// Owner is the account whose repositories are scanned.
	Owner string

	// Token is the API access token. The scanner itself never uses it but
	// validates its presence so a misconfigured run fails before any
	// network call.
	Token string
}

// Validate checks that the required credentials are present.
func (c Config) Validate() error {
	if c.Owner == "" {
		return &errors.ConfigError{
			Component: "scan",
			Message:   "account owner is required (set --owner or GITHUB_OWNER)",
			Err:       errors.ErrOwnerRequired,
		}
	}
	if c.Token == "" {
		return &errors.ConfigError{
			Component: "scan",
			Message:   "access token is required (set GITHUB_TOKEN)",
			Err:       errors.ErrTokenRequired,
		}
	}
	return nil
}

// Scanner assembles a manifest from one pass over a repository API.
type Scanner struct {
	client Client
	config Config
	logger *zerolog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger used for per-repository warnings.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New creates a Scanner for the given client and configuration.
func New(client Client, config Config, opts ...Option) (*Scanner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Scanner{
		client: client,
		config: config,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run performs one scan: list, filter, resolve, enrich, assemble, sort.
// Repositories are processed sequentially, one at a time. A failure on any
// single repository never aborts the run; only the initial listing is fatal.
func (s *Scanner) Run(ctx context.Context) (portfolio.Manifest, *Report, error) {
	repos, err := s.client.ListRepositories(ctx, s.config.Owner)
	if err != nil {
		return nil, nil, errors.WrapResource("list", "repositories", s.config.Owner, err)
	}

	s.logger.Info().
		Str("owner", s.config.Owner).
		Int("repositories", len(repos)).
		Msg("Enumerated repositories")

	manifest := make(portfolio.Manifest, 0, len(repos))
	report := &Report{}

	for _, repo := range repos {
		outcome, project := s.process(ctx, repo, report)
		report.record(outcome)
		if outcome.Disposition == Included {
			manifest = append(manifest, project)
		}
	}

	manifest.Sort()

	s.logger.Info().
		Int("included", report.Included).
		Int("excluded", report.Excluded).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Msg("Scan complete")

	return manifest, report, nil
}

// process decides the disposition of a single repository and, when included,
// assembles its manifest record.
func (s *Scanner) process(ctx context.Context, repo Repository, report *Report) (Outcome, portfolio.Project) {
	if repo.Fork || repo.Archived {
		return Outcome{Repo: repo.FullName, Disposition: Skipped}, portfolio.Project{}
	}

	pageURL, err := s.client.PagesURL(ctx, s.config.Owner, repo.Name)
	if err != nil {
		if errors.IsNotFound(err) {
			// No hosted page; the quiet, expected case.
			return Outcome{Repo: repo.FullName, Disposition: Excluded}, portfolio.Project{}
		}
		s.logger.Warn().
			Err(err).
			Str("repo", repo.FullName).
			Msg("Failed to resolve pages configuration, skipping repository")
		return Outcome{Repo: repo.FullName, Disposition: Failed, Err: err}, portfolio.Project{}
	}

	topics, err := s.client.Topics(ctx, s.config.Owner, repo.Name)
	if err != nil {
		// Topic failure degrades, it never excludes.
		s.logger.Warn().
			Err(err).
			Str("repo", repo.FullName).
			Msg("Failed to fetch topics, continuing with an empty topic list")
		report.TopicFailures++
		topics = nil
	}
	if topics == nil {
		topics = []string{}
	}

	name := repo.Name
	if name == "" {
		name = repo.FullName
	}

	project := portfolio.Project{
		Name:        name,
		Repo:        repo.FullName,
		URL:         pageURL,
		Description: repo.Description,
		Topics:      topics,
		Date:        utc.Time{Time: repo.PushedAt.UTC()},
		Screenshot:  "", // populated out of band
	}

	return Outcome{Repo: repo.FullName, Disposition: Included}, project
}
