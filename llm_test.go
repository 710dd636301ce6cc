package main

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildSummaryPrompt(t *testing.T) {
	t.Run("caps listed problems at eight", func(t *testing.T) {
		problems := make([]ProblemRecord, 12)
		for i := range problems {
			problems[i] = ProblemRecord{Title: "Problem " + string(rune('A'+i)), Difficulty: "Easy"}
		}
		prompt := buildSummaryPrompt("Greedy", problems, "notes")
		if strings.Contains(prompt, "Problem I") {
			t.Error("ninth problem leaked into prompt")
		}
		if !strings.Contains(prompt, "Problem H") {
			t.Error("eighth problem missing from prompt")
		}
	})

	t.Run("empty inputs get placeholders", func(t *testing.T) {
		prompt := buildSummaryPrompt("Greedy", nil, "")
		if !strings.Contains(prompt, "- No problems listed.") {
			t.Error("missing problems placeholder")
		}
		if !strings.Contains(prompt, "No extra notes provided.") {
			t.Error("missing notes placeholder")
		}
	})

	t.Run("missing fields filled", func(t *testing.T) {
		prompt := buildSummaryPrompt("Greedy", []ProblemRecord{{}}, "")
		if !strings.Contains(prompt, "- Unknown title (N/A)") {
			t.Errorf("placeholder problem line missing:\n%s", prompt)
		}
	})
}

func TestFormatProblems(t *testing.T) {
	t.Run("caps at three", func(t *testing.T) {
		problems := []ProblemRecord{
			{Title: "A", Difficulty: "Easy", URL: "https://x/a"},
			{Title: "B", Difficulty: "Medium", URL: "https://x/b"},
			{Title: "C", Difficulty: "Hard", URL: "https://x/c"},
			{Title: "D", Difficulty: "Easy", URL: "https://x/d"},
		}
		got := formatProblems(problems)
		if strings.Contains(got, "https://x/d") {
			t.Error("fourth problem leaked into output")
		}
		if lines := strings.Split(got, "\n"); len(lines) != 3 {
			t.Errorf("lines = %d, want 3", len(lines))
		}
	})

	t.Run("empty list renders dash", func(t *testing.T) {
		if got := formatProblems(nil); got != "-" {
			t.Errorf("formatProblems(nil) = %q, want -", got)
		}
	})

	t.Run("line shape", func(t *testing.T) {
		got := formatProblems([]ProblemRecord{{Title: "3Sum", Difficulty: "Medium", URL: "https://x/3sum"}})
		if got != "- 3Sum (Medium) https://x/3sum" {
			t.Errorf("line = %q", got)
		}
	})
}

func TestAlternateModel(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{"claude-sonnet-4-5-20250929", "claude-sonnet-4-5"},
		{"claude-sonnet-4-5", "claude-sonnet-4-5-latest"},
		{"claude-3-haiku-20240307", "claude-3-haiku"},
	}
	for _, tt := range tests {
		if got := alternateModel(tt.model); got != tt.want {
			t.Errorf("alternateModel(%q) = %q, want %q", tt.model, got, tt.want)
		}
	}
}

func TestIsModelNotFound(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("API error: not_found_error model does not exist"), true},
		{errors.New("status 404"), true},
		{errors.New("rate limited"), false},
		{errors.New("overloaded_error"), false},
	}
	for _, tt := range tests {
		if got := isModelNotFound(tt.err); got != tt.want {
			t.Errorf("isModelNotFound(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestSummariesByName(t *testing.T) {
	summaries := []SummaryRecord{
		{Pattern: "Greedy", Summary: "first"},
		{Pattern: "Two Pointers", Summary: "tp"},
		{Pattern: "GREEDY", Summary: "second"},
	}
	byName := summariesByName(summaries)
	if len(byName) != 2 {
		t.Fatalf("map size = %d, want 2", len(byName))
	}
	if byName["greedy"].Summary != "first" {
		t.Errorf("duplicate key did not keep first: %q", byName["greedy"].Summary)
	}
	if _, ok := byName["two pointers"]; !ok {
		t.Error("missing lowercase key for Two Pointers")
	}
}
