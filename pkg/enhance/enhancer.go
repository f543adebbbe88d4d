// Package enhance provides an optional enrichment pass over a manifest:
// projects that the repository API left without a description get a short
// generated one. Enhancement is strictly best-effort; a failure keeps the
// original record untouched and never fails the run.
package enhance

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/pagescout/pagescout/pkg/errors"
	"github.com/pagescout/pagescout/pkg/logging"
	"github.com/pagescout/pagescout/pkg/portfolio"
)

// defaultModel is the Gemini model used to draft descriptions.
const defaultModel = "gemini-2.0-flash"

// Generator produces a short text completion for a prompt. It exists so the
// enhancement policy is testable without the Gemini API.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator implements Generator using the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed generator. The API key is required.
func NewGemini(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, &errors.AuthenticationError{
			Method:  "api_key",
			Message: "GEMINI_API_KEY is required for description enhancement",
			Err:     errors.ErrTokenRequired,
		}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, errors.WrapResource("create", "gemini client", "", err)
	}

	return &GeminiGenerator{client: client, model: defaultModel}, nil
}

// Generate implements the Generator interface.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.WrapResource("generate", "description", g.model, err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// Enhancer fills in missing project descriptions.
type Enhancer struct {
	generator Generator
	logger    *zerolog.Logger
}

// Option configures an Enhancer.
type Option func(*Enhancer)

// WithLogger sets the logger used for per-project warnings.
func WithLogger(logger *zerolog.Logger) Option {
	return func(e *Enhancer) {
		e.logger = logger
	}
}

// New creates an Enhancer backed by the given generator.
func New(generator Generator, opts ...Option) *Enhancer {
	e := &Enhancer{
		generator: generator,
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CanEnhance reports whether a project needs enhancement.
func (e *Enhancer) CanEnhance(p portfolio.Project) bool {
	return p.Description == ""
}

// Enhance returns a copy of the project with a generated description. The
// input project is returned unchanged on failure.
func (e *Enhancer) Enhance(ctx context.Context, p portfolio.Project) (portfolio.Project, error) {
	if !e.CanEnhance(p) {
		return p, nil
	}

	description, err := e.generator.Generate(ctx, prompt(p))
	if err != nil {
		return p, err
	}
	if description == "" {
		return p, nil
	}

	p.Description = description
	return p, nil
}

// Batch enhances every eligible project in the manifest in place, warning
// and moving on when a single project fails.
func (e *Enhancer) Batch(ctx context.Context, m portfolio.Manifest) portfolio.Manifest {
	for i, p := range m {
		if !e.CanEnhance(p) {
			continue
		}

		enhanced, err := e.Enhance(ctx, p)
		if err != nil {
			e.logger.Warn().
				Err(err).
				Str("repo", p.Repo).
				Msg("Description enhancement failed, keeping empty description")
			continue
		}
		m[i] = enhanced
	}
	return m
}

// prompt builds the generation prompt for a project.
func prompt(p portfolio.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write one plain sentence (under 20 words) describing a website project named %q", p.Name)
	if p.Repo != "" {
		fmt.Fprintf(&b, " from the repository %s", p.Repo)
	}
	if len(p.Topics) > 0 {
		fmt.Fprintf(&b, ", tagged: %s", strings.Join(p.Topics, ", "))
	}
	b.WriteString(". Respond with the sentence only.")
	return b.String()
}
