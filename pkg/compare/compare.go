// Package compare classifies a backup store against the master into
// missing, modified and extra file sets.
package compare

import (
	"errors"

	"github.com/dmahugh/backup-verifier/pkg/store"
)

// ErrEmptyMaster aborts a run whose master store holds no records.
// Comparing against it would flag every backup file as extra.
var ErrEmptyMaster = errors.New("master store has no records")

// Result is the outcome of comparing one backup against the master.
// Modified and Extra keep the backup's insertion order, Missing the
// master's.
type Result struct {
	Missing  []string
	Modified []string
	Extra    []string
}

// Clean reports a backup with no differences at all.
func (r Result) Clean() bool {
	return len(r.Missing) == 0 && len(r.Modified) == 0 && len(r.Extra) == 0
}

// Comparator classifies backup stores against a master store using a
// swappable match policy.
type Comparator struct {
	Policy Policy
}

// New returns a comparator with the size-only policy.
func New() *Comparator {
	return &Comparator{Policy: SizeOnly}
}

// Compare walks every key of backup and master once each. Neither
// store is modified.
func (c *Comparator) Compare(master, backup *store.Store) (Result, error) {
	if master.Len() == 0 {
		return Result{}, ErrEmptyMaster
	}

	policy := c.Policy
	if policy == nil {
		policy = SizeOnly
	}

	var res Result
	for _, key := range backup.Keys() {
		backupSig, _ := backup.Get(key)
		masterSig, ok := master.Get(key)
		switch {
		case !ok:
			res.Extra = append(res.Extra, key)
		case !policy(masterSig, backupSig):
			res.Modified = append(res.Modified, key)
		}
	}
	for _, key := range master.Keys() {
		if !backup.Contains(key) {
			res.Missing = append(res.Missing, key)
		}
	}
	return res, nil
}
