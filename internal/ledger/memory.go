package ledger

import (
	"fmt"
	"sync"

	"pkg.jsn.cam/likegen/pkg/likegen"
)

// MemoryLedger keeps reports for the life of the process.
// It backs runs started without a ledger path.
type MemoryLedger struct {
	mu   sync.RWMutex
	runs map[string]likegen.Report
}

// NewMemory creates an empty in-memory ledger
func NewMemory() *MemoryLedger {
	return &MemoryLedger{runs: make(map[string]likegen.Report)}
}

// Record stores a copy of report
func (l *MemoryLedger) Record(report *likegen.Report) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.runs[report.RunID] = *report
	return nil
}

// Runs returns copies of all reports, newest first
func (l *MemoryLedger) Runs() ([]*likegen.Report, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	runs := make([]*likegen.Report, 0, len(l.runs))
	for _, report := range l.runs {
		runs = append(runs, &report)
	}

	sortNewestFirst(runs)
	return runs, nil
}

// Get returns a copy of one report
func (l *MemoryLedger) Get(runID string) (*likegen.Report, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	report, ok := l.runs[runID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return &report, nil
}

// Close is a no-op
func (l *MemoryLedger) Close() error {
	return nil
}
