package main

import "strings"

// PatternRecord is the canonical shape every scraped source is normalized
// into: one named technique with its practice problems.
type PatternRecord struct {
	Pattern  string
	URL      string
	Notes    string
	Problems []ProblemRecord
}

// ProblemRecord is immutable once normalized.
type ProblemRecord struct {
	Title      string
	Difficulty string
	URL        string
}

// SummaryRecord is what the summarizer produces per pattern. Merged back
// onto PatternRecords by case-insensitive pattern name, never by position.
type SummaryRecord struct {
	Pattern     string
	URL         string
	Summary     string
	TopProblems string
}

// rawEntry is a loosely-typed scraped object before normalization. Sources
// disagree on field names, so lookups go through the alias helpers below.
type rawEntry = map[string]any

// stringField returns the first non-empty string under any of the given keys.
func stringField(entry rawEntry, keys ...string) string {
	for _, key := range keys {
		if v, ok := entry[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}

// listField returns the first list value under any of the given keys.
func listField(entry rawEntry, keys ...string) []any {
	for _, key := range keys {
		if v, ok := entry[key]; ok {
			if list, ok := v.([]any); ok {
				return list
			}
		}
	}
	return nil
}

// hasAnyKey reports whether the entry carries at least one of the keys.
func hasAnyKey(entry rawEntry, keys ...string) bool {
	for _, key := range keys {
		if _, ok := entry[key]; ok {
			return true
		}
	}
	return false
}
