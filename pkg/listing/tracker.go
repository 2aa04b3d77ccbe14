// Package listing turns raw Windows directory listings into a stream
// of canonical file records: folder headers set the context, file
// entries are normalized against it, everything else is noise.
package listing

import (
	"strings"
	"time"
)

// DefaultMasterRoot is the well-known path the master copy lives
// under. A listing whose first folder header starts with this marker
// is rooted there; any other listing is rooted at its drive letter.
const DefaultMasterRoot = `c:\backup-master`

// Record is one file found in a listing, with its folder already
// normalized relative to the listing's root.
type Record struct {
	Folder    string
	Name      string
	Timestamp time.Time
	Size      int64
}

// Key is the record's identity across listings: folder and filename
// lowercased, so the same file matches regardless of capture casing.
func (r Record) Key() string {
	return strings.ToLower(r.Folder) + `\` + strings.ToLower(r.Name)
}

// Options configure folder normalization for one listing.
type Options struct {
	// RootPrefix, when set, is the exact prefix stripped from every
	// folder header. It disables root auto-detection.
	RootPrefix string
	// MasterRoot overrides DefaultMasterRoot during auto-detection.
	MasterRoot string
	// Progress, when non-nil, is called with the running record count
	// every ProgressEvery records a Scanner emits.
	Progress func(records int)
}

func (o Options) masterRoot() string {
	if o.MasterRoot != "" {
		return strings.TrimRight(o.MasterRoot, `\`)
	}
	return DefaultMasterRoot
}

// nestedSegment is the master root's last path segment, e.g.
// `\backup-master`. Old backups made by copying the master tree
// wholesale still carry it directly under the drive root.
func (o Options) nestedSegment() string {
	root := o.masterRoot()
	if i := strings.LastIndex(root, `\`); i >= 0 {
		return root[i:]
	}
	return `\` + root
}

// State is the tracker's fold state: the root prefix detected for the
// listing and the folder the upcoming file entries belong to.
type State struct {
	Root    string
	Folder  string
	rootSet bool
}

func initialState(opts Options) State {
	if opts.RootPrefix != "" {
		return State{Root: opts.RootPrefix, rootSet: true}
	}
	return State{}
}

// next folds one parsed line into the state and yields the record the
// line produced, if any.
func next(s State, line Line, opts Options) (State, Record, bool) {
	switch line.Kind {
	case KindFolder:
		if !s.rootSet {
			s.Root = detectRoot(line.Folder, opts)
			s.rootSet = true
		}
		folder := strings.TrimPrefix(line.Folder, s.Root)
		folder = strings.TrimPrefix(folder, opts.nestedSegment())
		s.Folder = folder
		return s, Record{}, false
	case KindFile:
		if Excluded(s.Folder) {
			return s, Record{}, false
		}
		rec := Record{
			Folder:    s.Folder,
			Name:      line.Name,
			Timestamp: line.Timestamp,
			Size:      line.Size,
		}
		return s, rec, true
	default:
		return s, Record{}, false
	}
}

// detectRoot picks the root prefix from the first folder header: the
// master root marker when the header sits under it, otherwise the
// drive letter and colon.
func detectRoot(folder string, opts Options) string {
	if strings.HasPrefix(folder, opts.masterRoot()) {
		return opts.masterRoot()
	}
	if len(folder) < 2 {
		return folder
	}
	return folder[:2]
}

// Tracker folds parsed lines in listing order, carrying the folder
// context between them.
type Tracker struct {
	opts  Options
	state State
}

func NewTracker(opts Options) *Tracker {
	return &Tracker{opts: opts, state: initialState(opts)}
}

// Feed advances the tracker by one line and reports the record it
// produced, if any.
func (t *Tracker) Feed(line Line) (Record, bool) {
	state, rec, ok := next(t.state, line, t.opts)
	t.state = state
	return rec, ok
}

// Root returns the root prefix in effect, empty until the first
// folder header has been seen.
func (t *Tracker) Root() string { return t.state.Root }

// Folder returns the folder the next file entry would be filed under.
func (t *Tracker) Folder() string { return t.state.Folder }
