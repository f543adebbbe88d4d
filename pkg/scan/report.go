package scan

import "fmt"

// Disposition is the per-repository outcome of a scan. Making the outcome an
// explicit value keeps the skip-on-404 / warn-on-failure policy unit-testable.
type Disposition int

// Per-repository dispositions.
const (
	// Included means the repository has a hosted page and produced a record.
	Included Disposition = iota

	// Skipped means the repository was a fork or archived and was never
	// considered.
	Skipped

	// Excluded means the repository has no hosted-page configuration.
	// This is the quiet, expected case.
	Excluded

	// Failed means resolving the hosted page failed for some other reason.
	// The repository is left out and the failure is reported.
	Failed
)

// String returns the disposition name.
func (d Disposition) String() string {
	switch d {
	case Included:
		return "included"
	case Skipped:
		return "skipped"
	case Excluded:
		return "excluded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records what happened to one repository during a scan.
type Outcome struct {
	Repo        string
	Disposition Disposition

	// Err is set only for Failed outcomes.
	Err error
}

// Report summarizes a full scan run.
type Report struct {
	Outcomes []Outcome

	// Included is the number of records in the generated manifest.
	Included int

	// Skipped counts forked and archived repositories.
	Skipped int

	// Excluded counts repositories with no hosted page.
	Excluded int

	// Failed counts repositories dropped because of an unexpected error.
	Failed int

	// TopicFailures counts included repositories whose topic fetch failed
	// and degraded to an empty topic list.
	TopicFailures int
}

// record appends an outcome and bumps the matching counter.
func (r *Report) record(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Disposition {
	case Included:
		r.Included++
	case Skipped:
		r.Skipped++
	case Excluded:
		r.Excluded++
	case Failed:
		r.Failed++
	}
}

// String renders a one-line summary suitable for the end of a run.
func (r *Report) String() string {
	return fmt.Sprintf("%d included, %d excluded, %d skipped, %d failed",
		r.Included, r.Excluded, r.Skipped, r.Failed)
}
