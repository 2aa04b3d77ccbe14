package main

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowHistoryAfterRun(t *testing.T) {
	dir := t.TempDir()
	master := masterListing(t, dir)
	drive1 := cleanBackupListing(t, dir)
	dbpath := filepath.Join(dir, "runs.db")

	require.NoError(t, verify(&Verify{
		Master:    master,
		Backups:   []string{drive1},
		ReportDir: dir,
		HistoryDB: dbpath,
	}))

	require.NoError(t, showHistory(&History{DB: dbpath, Limit: 10}))
}

func TestShowHistoryEmptyLedger(t *testing.T) {
	dbpath := filepath.Join(t.TempDir(), "runs.db")
	require.NoError(t, showHistory(&History{DB: dbpath, Limit: 10}))
}

func TestShowHistoryFromConfig(t *testing.T) {
	dir := t.TempDir()
	dbpath := filepath.Join(dir, "runs.db")
	cfg := writeFile(t, filepath.Join(dir, "verifier.toml"),
		fmt.Sprintf("history_db = %q\n", dbpath))

	require.NoError(t, showHistory(&History{Config: cfg, Limit: 5}))
}

func TestShowHistoryNoLedgerGiven(t *testing.T) {
	err := showHistory(&History{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no history ledger")
}
