package main

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Run history: a lightweight record of each pipeline run, kept so past
// scrapes and summaries can be inspected without opening the spreadsheet.
type RunRecord struct {
	ID            int64
	StartedAt     time.Time
	SpreadsheetID string
	PatternCount  int
	ProblemCount  int
}

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at     DATETIME NOT NULL,
		spreadsheet_id TEXT NOT NULL,
		pattern_count  INTEGER NOT NULL,
		problem_count  INTEGER NOT NULL,
		created_at     DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);

	CREATE TABLE IF NOT EXISTS run_patterns (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id        INTEGER NOT NULL,
		pattern       TEXT NOT NULL,
		url           TEXT DEFAULT '',
		problem_count INTEGER NOT NULL,
		summary       TEXT DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_run_patterns_run ON run_patterns(run_id);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// RecordRun stores one run plus its per-pattern snapshot in a transaction.
func RecordRun(db *sql.DB, startedAt time.Time, spreadsheetID string, patterns []PatternRecord, summaries map[string]SummaryRecord) (int64, error) {
	problemCount := 0
	for _, p := range patterns {
		problemCount += len(p.Problems)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (started_at, spreadsheet_id, pattern_count, problem_count) VALUES (?, ?, ?, ?)`,
		startedAt, spreadsheetID, len(patterns), problemCount,
	)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO run_patterns (run_id, pattern, url, problem_count, summary) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, p := range patterns {
		summary := ""
		if s, ok := summaries[strings.ToLower(p.Pattern)]; ok {
			summary = s.Summary
		}
		if _, err := stmt.Exec(runID, p.Pattern, p.URL, len(p.Problems), summary); err != nil {
			return 0, err
		}
	}

	return runID, tx.Commit()
}

// RecentRuns returns the newest runs first, capped at limit.
func RecentRuns(db *sql.DB, limit int) ([]RunRecord, error) {
	rows, err := db.Query(
		`SELECT id, started_at, spreadsheet_id, pattern_count, problem_count
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.SpreadsheetID, &r.PatternCount, &r.ProblemCount); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func formatRun(r RunRecord) string {
	return fmt.Sprintf("run=%d started=%s sheet=%s patterns=%d problems=%d",
		r.ID, r.StartedAt.Format(time.RFC3339), r.SpreadsheetID, r.PatternCount, r.ProblemCount)
}
