// Package view implements the catalog's filter and sort contract as an
// explicit, immutable view state applied functionally to a manifest. The
// browser assets implement the same contract client-side; this package backs
// the JSON API and makes the render predicate testable without a DOM.
package view

import (
	"sort"
	"strings"

	"github.com/pagescout/pagescout/pkg/portfolio"
)

// Order is the two-valued sort-order control.
type Order string

// Sort orders.
const (
	Descending Order = "desc"
	Ascending  Order = "asc"
)

// ParseOrder parses a sort-order value. Anything other than "asc" means
// descending, the default.
func ParseOrder(s string) Order {
	if s == string(Ascending) {
		return Ascending
	}
	return Descending
}

// AllTag is the implicit tag choice that matches every record.
const AllTag = "all"

// State captures one complete set of visitor selections. The zero value
// shows everything, most recent first.
type State struct {
	// Query is free search text, matched case-insensitively against
	// record names and descriptions after trimming surrounding
	// whitespace. Empty matches everything.
	Query string

	// Tag is the selected topic. Empty or "all" matches everything;
	// otherwise the record's topic list must contain it exactly.
	Tag string

	// Order sorts the visible set by date.
	Order Order
}

// matches is the render predicate: a record is shown when both the query
// and the tag selection hold. Surrounding whitespace in the query is
// ignored, as it is in the browser controls.
func (s State) matches(p portfolio.Project) bool {
	if !p.Matches(strings.TrimSpace(s.Query)) {
		return false
	}
	if s.Tag == "" || s.Tag == AllTag {
		return true
	}
	return p.HasTopic(s.Tag)
}

// Apply recomputes the visible set from the complete record list. The input
// manifest is never mutated. The sort is stable; records with a zero date
// sort last under either order.
func Apply(m portfolio.Manifest, s State) []portfolio.Project {
	visible := make([]portfolio.Project, 0, len(m))
	for _, p := range m {
		if s.matches(p) {
			visible = append(visible, p)
		}
	}

	ascending := s.Order == Ascending
	sort.SliceStable(visible, func(i, j int) bool {
		a, b := visible[i].Date, visible[j].Date
		switch {
		case a.IsZero():
			return false
		case b.IsZero():
			return true
		case ascending:
			return a.Before(b)
		default:
			return a.After(b)
		}
	})

	return visible
}

// Vocabulary returns the distinct topics across all records in lexicographic
// order: the discrete filter choices offered alongside the implicit "all".
func Vocabulary(m portfolio.Manifest) []string {
	return m.Topics()
}
