package main

import (
	"regexp"
	"strings"
)

// normalizePattern maps a loosely-typed scraped entry onto the canonical
// record shape. Name, URL, notes, and problems each resolve through a list
// of field aliases; the URL is derived from the name's slug when no source
// provided one.
func normalizePattern(entry rawEntry, baseURL string) PatternRecord {
	name := stringField(entry, "pattern", "name", "title")

	url := stringField(entry, "url", "link")
	if url == "" {
		if name != "" {
			url = strings.TrimRight(baseURL, "/") + "/" + slugify(name)
		} else {
			url = baseURL
		}
	}

	notes := stringField(entry, "notes", "description", "summary")
	problems := normalizeProblems(listField(entry, "problems", "questions"))

	return PatternRecord{Pattern: name, URL: url, Notes: notes, Problems: problems}
}

// normalizeProblems never drops an entry: missing fields get defaults and a
// LeetCode-style URL is synthesized from the title slug when absent.
func normalizeProblems(problems []any) []ProblemRecord {
	normalized := make([]ProblemRecord, 0, len(problems))
	for _, p := range problems {
		entry, ok := p.(rawEntry)
		if !ok {
			// Bare strings show up in heuristic scrapes.
			if s, isStr := p.(string); isStr {
				entry = rawEntry{"title": s}
			} else {
				entry = rawEntry{}
			}
		}
		title := stringField(entry, "title", "name", "question")
		if title == "" {
			title = "Unknown Problem"
		}
		difficulty := stringField(entry, "difficulty", "level", "tier")
		if difficulty == "" {
			difficulty = "Unknown"
		}
		url := stringField(entry, "url", "link", "leetcode_url")
		if url == "" {
			url = "https://leetcode.com/problems/" + slugify(title) + "/"
		}
		normalized = append(normalized, ProblemRecord{Title: title, Difficulty: difficulty, URL: url})
	}
	return normalized
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases and collapses every non-alphanumeric run to a single
// hyphen, trimming leading and trailing hyphens. Idempotent.
func slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = slugRe.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}

// dedupePatterns collapses records by case-insensitive name, keeping the
// first occurrence and dropping later ones entirely.
func dedupePatterns(patterns []PatternRecord) []PatternRecord {
	seen := make(map[string]bool, len(patterns))
	deduped := make([]PatternRecord, 0, len(patterns))
	for _, p := range patterns {
		key := strings.ToLower(p.Pattern)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, p)
	}
	return deduped
}
