// Package history keeps a ledger of past verification runs so drive
// health can be tracked between sessions.
package history

import "time"

// Outcome is one backup's result within a run. Failure is set when
// the backup could not be compared at all; the counts are then zero.
type Outcome struct {
	Backup   string
	Missing  int
	Modified int
	Extra    int
	Failure  string
}

// Run is one verification run.
type Run struct {
	ID          int64
	Started     time.Time
	Master      string
	MasterFiles int
	Report      string
	Outcomes    []Outcome
}

// Ledger stores and retrieves verification runs.
type Ledger interface {
	Init() error
	AddRun(run *Run) error
	Runs(limit int) ([]*Run, error)
	Close() error
}
