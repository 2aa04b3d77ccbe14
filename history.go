package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/dmahugh/backup-verifier/pkg/config"
	"github.com/dmahugh/backup-verifier/pkg/history"
)

type History struct {
	DB     string `short:"d" type:"path" help:"SQLite ledger recording run outcomes."`
	Config string `short:"c" type:"path" help:"TOML configuration file naming the ledger."`
	Limit  int    `short:"n" help:"Show at most this many runs, newest first." default:"10"`
}

func showHistory(params *History) error {
	dbpath := params.DB
	if dbpath == "" && params.Config != "" {
		fileCfg, err := config.Load(params.Config)
		if err != nil {
			return err
		}
		dbpath = fileCfg.HistoryDB
	}
	if dbpath == "" {
		return errors.New("no history ledger given (--db flag or config file)")
	}

	ledger, err := history.NewSQLite(dbpath)
	if err != nil {
		return fmt.Errorf("open history %s: %w", dbpath, err)
	}
	defer ledger.Close()

	if err := ledger.Init(); err != nil {
		return fmt.Errorf("init history %s: %w", dbpath, err)
	}

	runs, err := ledger.Runs(params.Limit)
	if err != nil {
		return fmt.Errorf("read history %s: %w", dbpath, err)
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %s (%s files)\n",
			run.Started.Format("2006-01-02 15:04"),
			sourceName(run.Master),
			humanize.Comma(int64(run.MasterFiles)))
		for _, o := range run.Outcomes {
			switch {
			case o.Failure != "":
				fmt.Printf("    %s: FAILED (%s)\n", sourceName(o.Backup), o.Failure)
			case o.Missing == 0 && o.Modified == 0 && o.Extra == 0:
				fmt.Printf("    %s: clean\n", sourceName(o.Backup))
			default:
				fmt.Printf("    %s: %d missing, %d modified, %d extra\n",
					sourceName(o.Backup), o.Missing, o.Modified, o.Extra)
			}
		}
		fmt.Printf("    report: %s\n", run.Report)
	}
	return nil
}
