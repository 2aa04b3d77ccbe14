package compare

import "github.com/dmahugh/backup-verifier/pkg/store"

// Policy decides whether a backup signature still matches the
// master's.
type Policy func(master, backup store.Signature) bool

// SizeOnly matches on size alone. Capture timestamps drift with OS
// upgrades and DST shifts, so they are carried for reporting but
// never compared.
func SizeOnly(master, backup store.Signature) bool {
	return master.Size == backup.Size
}

// TimestampAndSize is the strict rule: minute-granularity timestamp
// and size must both match.
func TimestampAndSize(master, backup store.Signature) bool {
	return master.Size == backup.Size && master.Timestamp.Equal(backup.Timestamp)
}
