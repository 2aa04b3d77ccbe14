package listing

import (
	"bufio"
	"io"
	"strings"
)

// ProgressEvery is how many emitted records pass between progress
// callbacks.
const ProgressEvery = 10000

// Scanner streams canonical records out of a raw directory listing,
// one line at a time. Usage mirrors bufio.Scanner: Scan then Record.
type Scanner struct {
	scanner *bufio.Scanner
	tracker *Tracker
	opts    Options
	record  Record
	emitted int
	skipped int
}

func NewScanner(r io.Reader, opts Options) *Scanner {
	return &Scanner{
		scanner: bufio.NewScanner(r),
		tracker: NewTracker(opts),
		opts:    opts,
	}
}

// Scan advances to the next record. It returns false at end of input
// or on a read error. Malformed lines are counted and skipped, never
// fatal.
func (s *Scanner) Scan() bool {
	for s.scanner.Scan() {
		line, err := ParseLine(strings.TrimSpace(s.scanner.Text()))
		if err != nil {
			s.skipped++
			continue
		}
		rec, ok := s.tracker.Feed(line)
		if !ok {
			continue
		}
		s.record = rec
		s.emitted++
		if s.opts.Progress != nil && s.emitted%ProgressEvery == 0 {
			s.opts.Progress(s.emitted)
		}
		return true
	}
	return false
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record { return s.record }

// Skipped returns how many malformed lines were dropped so far.
func (s *Scanner) Skipped() int { return s.skipped }

// Err returns the first read error hit by the underlying scanner.
func (s *Scanner) Err() error { return s.scanner.Err() }
