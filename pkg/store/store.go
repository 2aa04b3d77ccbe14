// Package store builds keyed record sets out of listings, one store
// per drive, and round-trips them through the normalized CSV format.
package store

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dmahugh/backup-verifier/pkg/listing"
)

// TimeLayout is the timestamp form used by the normalized CSV format.
const TimeLayout = "2006-01-02 15:04:05"

// Signature is the (timestamp, size) pair kept per file, the raw
// material for modification checks.
type Signature struct {
	Timestamp time.Time
	Size      int64
}

// String renders the signature in its legacy concatenated form.
func (s Signature) String() string {
	return s.Timestamp.Format(TimeLayout) + strconv.FormatInt(s.Size, 10)
}

// Store maps record keys to signatures while remembering first
// insertion order, so iteration is deterministic across runs.
type Store struct {
	name string
	keys []string
	sigs map[string]Signature
}

func New(name string) *Store {
	return &Store{name: name, sigs: make(map[string]Signature)}
}

// Name identifies the listing the store was built from.
func (s *Store) Name() string { return s.name }

// Add records one file. A key seen before keeps its original position
// and takes the new signature: last write wins.
func (s *Store) Add(rec listing.Record) {
	key := rec.Key()
	if _, ok := s.sigs[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.sigs[key] = Signature{Timestamp: rec.Timestamp, Size: rec.Size}
}

// Get returns the signature stored under key.
func (s *Store) Get(key string) (Signature, bool) {
	sig, ok := s.sigs[key]
	return sig, ok
}

// Contains reports whether key is present.
func (s *Store) Contains(key string) bool {
	_, ok := s.sigs[key]
	return ok
}

// Len returns the number of distinct keys.
func (s *Store) Len() int { return len(s.keys) }

// Keys returns the store's keys in first-insertion order. The slice
// is the store's own; callers must not modify it.
func (s *Store) Keys() []string { return s.keys }

// FromListing builds a store by streaming a raw directory listing,
// returning the number of malformed lines skipped along the way.
func FromListing(name string, r io.Reader, opts listing.Options) (*Store, int, error) {
	st := New(name)
	sc := listing.NewScanner(r, opts)
	for sc.Scan() {
		st.Add(sc.Record())
	}
	if err := sc.Err(); err != nil {
		return nil, sc.Skipped(), fmt.Errorf("read listing %s: %w", name, err)
	}
	return st, sc.Skipped(), nil
}
