package history

import (
	"database/sql"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

func NewSQLite(dbpath string) (*SQLiteLedger, error) {
	rawDB, err := sql.Open("sqlite3", dbpath)
	return &SQLiteLedger{rawDB: rawDB}, err
}

type SQLiteLedger struct {
	rawDB *sql.DB
}

func (db *SQLiteLedger) runStatement(stmt string) (sql.Result, error) {
	statement, err := db.rawDB.Prepare(stmt)
	if err != nil {
		return nil, err
	}
	defer statement.Close()
	return statement.Exec()
}

func (db *SQLiteLedger) Init() error {
	_, err := db.runStatement("PRAGMA foreign_keys = ON")
	if err != nil {
		return err
	}

	_, err = db.runStatement(
		"CREATE TABLE IF NOT EXISTS runs (" +
			"id INTEGER PRIMARY KEY AUTOINCREMENT, " +
			"started INTEGER, " +
			"master TEXT, " +
			"master_files INTEGER, " +
			"report TEXT" +
			")")
	if err != nil {
		return err
	}

	_, err = db.runStatement(
		"CREATE TABLE IF NOT EXISTS run_backups (" +
			"id INTEGER PRIMARY KEY AUTOINCREMENT, " +
			"run_id INTEGER, " +
			"backup TEXT, " +
			"missing INTEGER, " +
			"modified INTEGER, " +
			"extra INTEGER, " +
			"failure TEXT, " +
			"FOREIGN KEY(run_id) REFERENCES runs(id)" +
			")")
	return err
}

func (db *SQLiteLedger) AddRun(run *Run) error {
	result, err := db.rawDB.Exec("INSERT INTO runs (started, master, master_files, report) VALUES(?, ?, ?, ?)",
		run.Started.Unix(), run.Master, run.MasterFiles, run.Report)
	if err != nil {
		return err
	}
	run.ID, err = result.LastInsertId()
	if err != nil {
		return err
	}

	log.Debug().Int64("run", run.ID).Int("backups", len(run.Outcomes)).Msg("recording run")
	for _, outcome := range run.Outcomes {
		_, err := db.rawDB.Exec("INSERT INTO run_backups (run_id, backup, missing, modified, extra, failure) VALUES(?, ?, ?, ?, ?, ?)",
			run.ID, outcome.Backup, outcome.Missing, outcome.Modified, outcome.Extra, outcome.Failure)
		if err != nil {
			return err
		}
	}
	return nil
}

func (db *SQLiteLedger) Runs(limit int) ([]*Run, error) {
	query := "SELECT id, started, master, master_files, report FROM runs ORDER BY started DESC, id DESC"
	if limit > 0 {
		query += " LIMIT " + strconv.Itoa(limit)
	}
	rows, err := db.rawDB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		var started int64
		if err := rows.Scan(&run.ID, &started, &run.Master, &run.MasterFiles, &run.Report); err != nil {
			return nil, err
		}
		run.Started = time.Unix(started, 0)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, run := range runs {
		run.Outcomes, err = db.outcomes(run.ID)
		if err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (db *SQLiteLedger) outcomes(runID int64) ([]Outcome, error) {
	rows, err := db.rawDB.Query("SELECT backup, missing, modified, extra, failure FROM run_backups WHERE run_id = ? ORDER BY id", runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []Outcome
	for rows.Next() {
		var o Outcome
		if err := rows.Scan(&o.Backup, &o.Missing, &o.Modified, &o.Extra, &o.Failure); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}

func (db *SQLiteLedger) Close() error {
	return db.rawDB.Close()
}
