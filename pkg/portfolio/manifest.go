package portfolio

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pagescout/pagescout/pkg/errors"
)

// Manifest is an ordered collection of project records. The serialized form
// is the sole interface between the generator and the browser catalog.
type Manifest []Project

// Sort orders the manifest by date descending, most recent first. Records
// with a zero date sort last. The sort is stable, so records with equal
// dates keep their input order and regeneration from identical upstream
// data is reproducible.
func (m Manifest) Sort() {
	sort.SliceStable(m, func(i, j int) bool {
		a, b := m[i].Date, m[j].Date
		switch {
		case a.IsZero():
			return false
		case b.IsZero():
			return true
		default:
			return a.After(b)
		}
	})
}

// Topics returns the distinct topic strings across all records, sorted
// lexicographically. This is the filter vocabulary offered to visitors,
// alongside the implicit "all" choice.
func (m Manifest) Topics() []string {
	seen := make(map[string]struct{})
	topics := make([]string, 0)
	for _, p := range m {
		for _, t := range p.Topics {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			topics = append(topics, t)
		}
	}
	collate.New(language.Und).SortStrings(topics)
	return topics
}

// Validate checks the manifest invariants: every record names a repository,
// carries a hosted-page URL, and has a non-nil topic list.
func (m Manifest) Validate() error {
	for i, p := range m {
		if p.Repo == "" {
			return &errors.ValidationError{
				Field:   "repo",
				Message: fmt.Sprintf("record %d has no repository identifier", i),
			}
		}
		if p.URL == "" {
			return &errors.ValidationError{
				Field:   "url",
				Value:   p.Repo,
				Message: fmt.Sprintf("record for %s has no hosted-page URL", p.Repo),
			}
		}
		if p.Topics == nil {
			return &errors.ValidationError{
				Field:   "topics",
				Value:   p.Repo,
				Message: fmt.Sprintf("record for %s has a null topic list", p.Repo),
			}
		}
	}
	return nil
}
