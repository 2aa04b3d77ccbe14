package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/dmahugh/backup-verifier/pkg/compare"
	"github.com/dmahugh/backup-verifier/pkg/config"
	"github.com/dmahugh/backup-verifier/pkg/history"
	"github.com/dmahugh/backup-verifier/pkg/listing"
	"github.com/dmahugh/backup-verifier/pkg/report"
	"github.com/dmahugh/backup-verifier/pkg/store"
)

type Verify struct {
	Master  string   `arg:"" optional:"" help:"Master listing, a .dir capture or normalized .csv."`
	Backups []string `arg:"" optional:"" help:"Backup listings to compare against the master."`

	Config     string `short:"c" type:"path" help:"TOML configuration file."`
	RootPrefix string `help:"Exact root prefix stripped from folder paths, disables auto-detection."`
	MasterRoot string `help:"Path marker identifying the master tree during root auto-detection."`
	ReportDir  string `type:"path" help:"Directory the report file is written to."`
	HistoryDB  string `type:"path" help:"SQLite ledger recording run outcomes."`
}

type settings struct {
	master    string
	backups   []string
	opts      listing.Options
	reportDir string
	historyDB string
}

// resolve merges command line values over config file values. Flags
// and arguments always win.
func (params *Verify) resolve() (settings, error) {
	var fileCfg config.Config
	if params.Config != "" {
		var err error
		fileCfg, err = config.Load(params.Config)
		if err != nil {
			return settings{}, err
		}
	}

	s := settings{
		master:    firstOf(params.Master, fileCfg.Master),
		backups:   params.Backups,
		reportDir: firstOf(params.ReportDir, fileCfg.ReportDir, "."),
		historyDB: firstOf(params.HistoryDB, fileCfg.HistoryDB),
	}
	if len(s.backups) == 0 {
		s.backups = fileCfg.Backups
	}
	s.opts = listing.Options{
		RootPrefix: firstOf(params.RootPrefix, fileCfg.RootPrefix),
		MasterRoot: firstOf(params.MasterRoot, fileCfg.MasterRoot),
	}

	if s.master == "" {
		return settings{}, errors.New("no master listing given (argument or config file)")
	}
	if len(s.backups) == 0 {
		return settings{}, errors.New("no backup listings given (arguments or config file)")
	}
	return s, nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func verify(params *Verify) error {
	s, err := params.resolve()
	if err != nil {
		return err
	}

	reportPath := filepath.Join(s.reportDir, reportName(time.Now()))
	reportFile, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("create report %s: %w", reportPath, err)
	}
	defer reportFile.Close()

	rep := report.New(&report.ConsoleSink{W: os.Stdout}, &report.FileSink{W: reportFile})

	rep.Both("log file: " + reportPath)
	rep.File("  MASTER: " + s.master)
	rep.File("  copies: " + strings.Join(s.backups, ", "))
	rep.File(report.Divider())

	rep.Status("creating record store from MASTER COPY ...")
	master, err := buildStore(s.master, s.opts, rep)
	if err != nil {
		return fmt.Errorf("master %s: %w", s.master, err)
	}
	if master.Len() == 0 {
		return fmt.Errorf("master %s: %w", s.master, compare.ErrEmptyMaster)
	}

	rep.Both(report.MasterSummary(sourceName(s.master), master.Len()))
	rep.File(report.Divider())

	run := &history.Run{
		Started:     time.Now(),
		Master:      s.master,
		MasterFiles: master.Len(),
		Report:      reportPath,
	}

	comparator := compare.New()
	for _, backup := range s.backups {
		outcome := verifyBackup(comparator, master, backup, s, rep)
		run.Outcomes = append(run.Outcomes, outcome)
		rep.File(report.Divider())
	}

	if s.historyDB != "" {
		if err := recordRun(s.historyDB, run); err != nil {
			log.Warn().Err(err).Str("db", s.historyDB).Msg("could not record run in history ledger")
		}
	}
	return nil
}

// verifyBackup compares one backup against the master. Failures stay
// confined to this backup: they are reported and the run moves on.
func verifyBackup(comparator *compare.Comparator, master *store.Store, backup string, s settings, rep *report.Report) history.Outcome {
	name := sourceName(backup)
	rep.Status("analyzing " + name + " ...")
	rep.File(">>> " + strings.ToUpper(name) + " <<<")

	backupStore, err := buildStore(backup, s.opts, rep)
	if err == nil {
		var res compare.Result
		res, err = comparator.Compare(master, backupStore)
		if err == nil {
			for _, key := range res.Modified {
				rep.File("modified: " + key)
			}
			for _, key := range res.Extra {
				rep.File("extra: " + key)
			}
			for _, key := range res.Missing {
				rep.File("missing: " + key)
			}
			rep.Outcome(report.Summary(name, sourceName(s.master), res), res.Clean())
			return history.Outcome{
				Backup:   backup,
				Missing:  len(res.Missing),
				Modified: len(res.Modified),
				Extra:    len(res.Extra),
			}
		}
	}

	log.Error().Err(err).Str("backup", backup).Msg("backup comparison failed")
	rep.Failure(fmt.Sprintf("%s -- FAILED: %v", name, err))
	return history.Outcome{Backup: backup, Failure: err.Error()}
}

// buildStore streams one listing into a store, picking the reader by
// file extension: .csv for normalized files, anything else is a raw
// directory listing.
func buildStore(path string, opts listing.Options, rep *report.Report) (*store.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open listing: %w", err)
	}
	defer f.Close()

	name := sourceName(path)
	opts.Progress = func(records int) {
		rep.Status(fmt.Sprintf("%s records parsed from %s ...", humanize.Comma(int64(records)), name))
	}

	var (
		st      *store.Store
		skipped int
	)
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		st, skipped, err = store.FromCSV(name, f)
	} else {
		st, skipped, err = store.FromListing(name, f, opts)
	}
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Warn().Int("lines", skipped).Str("source", path).Msg("skipped malformed lines")
		rep.File(fmt.Sprintf("(%d malformed line(s) skipped in %s)", skipped, name))
	}
	return st, nil
}

func recordRun(dbpath string, run *history.Run) error {
	ledger, err := history.NewSQLite(dbpath)
	if err != nil {
		return err
	}
	defer ledger.Close()

	if err := ledger.Init(); err != nil {
		return err
	}
	return ledger.AddRun(run)
}

// sourceName is a listing's display name in reports and summaries:
// the base name without its extension.
func sourceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func reportName(now time.Time) string {
	return "backups-" + now.Format("2006-01-02-150405") + ".rpt"
}
