package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmahugh/backup-verifier/pkg/listing"
)

func rec(folder, name string, size int64) listing.Record {
	return listing.Record{
		Folder:    folder,
		Name:      name,
		Timestamp: time.Date(2019, 5, 20, 18, 45, 0, 0, time.UTC),
		Size:      size,
	}
}

func TestStoreInsertionOrder(t *testing.T) {
	st := New("drive2")
	st.Add(rec(`\Photos`, "b.jpg", 2))
	st.Add(rec(`\Photos`, "a.jpg", 1))
	st.Add(rec(`\Docs`, "z.txt", 3))

	assert.Equal(t, []string{`\photos\b.jpg`, `\photos\a.jpg`, `\docs\z.txt`}, st.Keys())
	assert.Equal(t, 3, st.Len())
	assert.Equal(t, "drive2", st.Name())
}

func TestStoreLastWriteWinsKeepsPosition(t *testing.T) {
	st := New("drive2")
	st.Add(rec(`\Photos`, "a.jpg", 1))
	st.Add(rec(`\Photos`, "b.jpg", 2))
	st.Add(rec(`\Photos`, "A.JPG", 99))

	require.Equal(t, 2, st.Len())
	assert.Equal(t, []string{`\photos\a.jpg`, `\photos\b.jpg`}, st.Keys())

	sig, ok := st.Get(`\photos\a.jpg`)
	require.True(t, ok)
	assert.Equal(t, int64(99), sig.Size)
}

func TestStoreCaseInsensitiveLookup(t *testing.T) {
	st := New("drive2")
	st.Add(rec(`\Data`, "File.TXT", 7))

	assert.True(t, st.Contains(`\data\file.txt`))
	_, ok := st.Get(`\DATA\FILE.TXT`)
	assert.False(t, ok, "lookups take canonical lowercased keys")
}

func TestSignatureString(t *testing.T) {
	sig := Signature{
		Timestamp: time.Date(2016, 12, 8, 14, 33, 0, 0, time.UTC),
		Size:      241561,
	}
	assert.Equal(t, "2016-12-08 14:33:00241561", sig.String())
}

func TestFromListing(t *testing.T) {
	text := strings.Join([]string{
		` Directory of d:\Photos`,
		"05/20/2019  06:45 PM         2,097,152 beach.jpg",
		"utter nonsense that is long enough to reach the size column",
		"05/20/2019  06:45 PM               100 dune.jpg",
	}, "\n")

	st, skipped, err := FromListing("drive2", strings.NewReader(text), listing.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, []string{`\photos\beach.jpg`, `\photos\dune.jpg`}, st.Keys())

	sig, ok := st.Get(`\photos\beach.jpg`)
	require.True(t, ok)
	assert.Equal(t, int64(2097152), sig.Size)
}
