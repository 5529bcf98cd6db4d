// Package ledger records generator runs so a data set can be traced back
// to the seed and inputs that produced it.
package ledger

import (
	"errors"
	"slices"

	"pkg.jsn.cam/likegen/pkg/likegen"
)

// ErrRunNotFound is returned by Get for an unknown run ID
var ErrRunNotFound = errors.New("run not found")

// Ledger persists run reports
type Ledger interface {
	// Record stores a report, replacing any report with the same run ID
	Record(report *likegen.Report) error

	// Runs returns every recorded report, newest first
	Runs() ([]*likegen.Report, error)

	// Get returns the report for runID
	Get(runID string) (*likegen.Report, error)

	Close() error
}

func sortNewestFirst(runs []*likegen.Report) {
	slices.SortStableFunc(runs, func(a, b *likegen.Report) int {
		return b.StartedAt.Compare(a.StartedAt)
	})
}
