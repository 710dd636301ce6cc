package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

func main() {
	spreadsheetID := flag.String("spreadsheet-id", "", "Target Google Sheet ID (falls back to SHEET_ID / config)")
	baseURL := flag.String("base-url", "", "Override base site URL")
	history := flag.Bool("history", false, "Print recent runs and exit")
	flag.Parse()

	cfg := LoadConfig()
	if *spreadsheetID != "" {
		cfg.SpreadsheetID = *spreadsheetID
	}
	if *baseURL != "" {
		cfg.BaseSite = *baseURL
	}

	db, err := InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer db.Close()

	if *history {
		runs, err := RecentRuns(db, 20)
		if err != nil {
			log.Fatalf("Failed to read run history: %v", err)
		}
		if len(runs) == 0 {
			fmt.Println("no runs recorded")
			return
		}
		for _, r := range runs {
			fmt.Println(formatRun(r))
		}
		return
	}

	if cfg.SpreadsheetID == "" {
		log.Fatalf("Required config 'spreadsheet_id' is not set (via -spreadsheet-id, SHEET_ID, or config.yaml)")
	}

	if err := run(cfg, db); err != nil {
		log.Printf("run failed: %v", err)
		os.Exit(1)
	}
}

func run(cfg Config, db *sql.DB) error {
	ctx := context.Background()
	startedAt := time.Now()

	client := newHTTPClient(cfg)
	patterns := ScrapePatterns(ctx, client, cfg)
	if len(patterns) == 0 {
		return fmt.Errorf("no patterns could be obtained from any source; nothing to upload")
	}

	summarizer := NewSummarizer(cfg)
	summaries, err := summarizer.SummarizePatterns(ctx, patterns)
	if err != nil {
		return err
	}
	byName := summariesByName(summaries)

	names := make([]string, 0, len(patterns))
	for _, p := range patterns {
		names = append(names, p.Pattern)
	}
	tips, err := summarizer.StudyTips(ctx, names)
	if err != nil {
		// Tips are decorative; the Resources tab keeps its static hints.
		log.Printf("study tips skipped err=%v", err)
		tips = nil
	}

	httpClient, err := newSheetsHTTPClient(ctx, cfg)
	if err != nil {
		return err
	}
	writer, err := NewSheetWriter(ctx, httpClient, cfg.SpreadsheetID)
	if err != nil {
		return err
	}
	if err := writer.PushPatternSheets(ctx, patterns, byName, buildResourcesRows(tips)); err != nil {
		return err
	}

	if _, err := RecordRun(db, startedAt, cfg.SpreadsheetID, patterns, byName); err != nil {
		log.Printf("run history write failed err=%v", err)
	}

	notifyRunComplete(cfg, len(patterns))
	log.Printf("run done patterns=%d elapsed=%s", len(patterns), time.Since(startedAt).Round(time.Millisecond))
	return nil
}
