// Package portfolio defines the project manifest: the JSON document shared
// between the generator and the browser catalog. A manifest is an ordered
// array of Project records, written in full on every generation run.
package portfolio

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/agentstation/utc"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Project is a single manifest record describing one hosted site.
type Project struct {
	// Name is the display name. Falls back to the repository name.
	Name string `json:"name" yaml:"name"`

	// Repo is the repository identifier (owner/name).
	Repo string `json:"repo" yaml:"repo"`

	// URL is the resolved hosted-page URL, empty if unresolved.
	URL string `json:"url" yaml:"url"`

	// Description of the repository, empty string when the source has none.
	Description string `json:"description" yaml:"description"`

	// Topics are the repository's topic labels, used as filter tags.
	// Always an array in JSON, never null.
	Topics []string `json:"topics" yaml:"topics"`

	// Date is the last-updated timestamp. A zero date sorts last.
	Date utc.Time `json:"date" yaml:"date"`

	// Screenshot is a URL or empty. The generator always emits it empty;
	// it is populated out of band. An empty value triggers a placeholder
	// image client-side.
	Screenshot string `json:"screenshot" yaml:"screenshot"`
}

// wireProject is the wire form of Project. The date travels as a plain
// string so an absent or unparseable value degrades to a zero date instead
// of failing the whole manifest.
type wireProject struct {
	Name        string   `json:"name" yaml:"name"`
	Repo        string   `json:"repo" yaml:"repo"`
	URL         string   `json:"url" yaml:"url"`
	Description string   `json:"description" yaml:"description"`
	Topics      []string `json:"topics" yaml:"topics"`
	Date        string   `json:"date" yaml:"date"`
	Screenshot  string   `json:"screenshot" yaml:"screenshot"`
}

// toWire converts a Project to its wire form. Topics are never null and a
// zero date becomes an empty string.
func (p Project) toWire() wireProject {
	w := wireProject{
		Name:        p.Name,
		Repo:        p.Repo,
		URL:         p.URL,
		Description: p.Description,
		Topics:      p.Topics,
		Screenshot:  p.Screenshot,
	}
	if w.Topics == nil {
		w.Topics = []string{}
	}
	if !p.Date.IsZero() {
		w.Date = p.Date.UTC().Format(time.RFC3339)
	}
	return w
}

// fromWire fills a Project from its wire form. A missing or unparseable
// date leaves the zero value, which sorts last.
func (p *Project) fromWire(w wireProject) {
	p.Name = w.Name
	p.Repo = w.Repo
	p.URL = w.URL
	p.Description = w.Description
	p.Screenshot = w.Screenshot
	p.Topics = w.Topics
	if p.Topics == nil {
		p.Topics = []string{}
	}
	p.Date = utc.Time{}
	if w.Date != "" {
		if t, err := time.Parse(time.RFC3339, w.Date); err == nil {
			p.Date = utc.Time{Time: t.UTC()}
		}
	}
}

// MarshalJSON implements json.Marshaler.
func (p Project) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toWire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Project) UnmarshalJSON(data []byte) error {
	var w wireProject
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.fromWire(w)
	return nil
}

// HasTopic reports whether the project carries the given topic exactly.
// Topic values are preserved literally; no case or whitespace normalization.
func (p Project) HasTopic(topic string) bool {
	for _, t := range p.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// Matches reports whether the project matches a case-insensitive substring
// query against its name or description. An empty query matches everything.
func (p Project) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

var titleCaser = cases.Title(language.English)

// FallbackName derives a display name from a repository slug, e.g.
// "my-cool-site" becomes "My Cool Site".
func FallbackName(repo string) string {
	name := repo
	if i := strings.LastIndex(repo, "/"); i >= 0 {
		name = repo[i+1:]
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titleCaser.String(name)
}
