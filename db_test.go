package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunHistoryRoundTrip(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer db.Close()

	patterns := []PatternRecord{
		{Pattern: "Two Pointers", URL: "https://x/tp", Problems: []ProblemRecord{{Title: "3Sum"}, {Title: "Move Zeroes"}}},
		{Pattern: "Greedy", Problems: []ProblemRecord{{Title: "Jump Game"}}},
	}
	summaries := map[string]SummaryRecord{
		"two pointers": {Pattern: "Two Pointers", Summary: "Walk indices inward."},
	}

	startedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	runID, err := RecordRun(db, startedAt, "sheet-1", patterns, summaries)
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if runID == 0 {
		t.Fatal("run id not assigned")
	}

	runs, err := RecentRuns(db, 10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs len = %d, want 1", len(runs))
	}
	run := runs[0]
	if run.SpreadsheetID != "sheet-1" {
		t.Errorf("SpreadsheetID = %q", run.SpreadsheetID)
	}
	if run.PatternCount != 2 {
		t.Errorf("PatternCount = %d, want 2", run.PatternCount)
	}
	if run.ProblemCount != 3 {
		t.Errorf("ProblemCount = %d, want 3", run.ProblemCount)
	}

	var summary string
	row := db.QueryRow(`SELECT summary FROM run_patterns WHERE run_id = ? AND pattern = ?`, runID, "Two Pointers")
	if err := row.Scan(&summary); err != nil {
		t.Fatalf("reading run_patterns: %v", err)
	}
	if summary != "Walk indices inward." {
		t.Errorf("stored summary = %q", summary)
	}

	row = db.QueryRow(`SELECT summary FROM run_patterns WHERE run_id = ? AND pattern = ?`, runID, "Greedy")
	if err := row.Scan(&summary); err != nil {
		t.Fatalf("reading run_patterns: %v", err)
	}
	if summary != "" {
		t.Errorf("unsummarized pattern stored %q, want empty", summary)
	}
}

func TestRecentRunsOrderAndLimit(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer db.Close()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		patterns := []PatternRecord{{Pattern: "P", Problems: []ProblemRecord{{Title: "T"}}}}
		if _, err := RecordRun(db, base.Add(time.Duration(i)*time.Hour), "sheet", patterns, nil); err != nil {
			t.Fatalf("RecordRun %d failed: %v", i, err)
		}
	}

	runs, err := RecentRuns(db, 3)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("runs len = %d, want limit 3", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].StartedAt.After(runs[i-1].StartedAt) {
			t.Errorf("runs not newest-first: %v before %v", runs[i-1].StartedAt, runs[i].StartedAt)
		}
	}
}

func TestFormatRun(t *testing.T) {
	r := RunRecord{
		ID:            7,
		StartedAt:     time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		SpreadsheetID: "sheet-1",
		PatternCount:  16,
		ProblemCount:  128,
	}
	got := formatRun(r)
	for _, want := range []string{"run=7", "sheet=sheet-1", "patterns=16", "problems=128"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatRun output %q missing %q", got, want)
		}
	}
}

func TestInitDBIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	db1, err := InitDB(path)
	if err != nil {
		t.Fatalf("first InitDB failed: %v", err)
	}
	db1.Close()

	db2, err := InitDB(path)
	if err != nil {
		t.Fatalf("second InitDB failed: %v", err)
	}
	db2.Close()
}
