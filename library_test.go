package main

import (
	"strings"
	"testing"
)

func TestEnrichProblemLists(t *testing.T) {
	t.Run("tops up to min count with originals first", func(t *testing.T) {
		patterns := []PatternRecord{
			{
				Pattern: "Two Pointers",
				Problems: []ProblemRecord{
					{Title: "Valid Palindrome", Difficulty: "Easy", URL: "https://leetcode.com/problems/valid-palindrome/"},
					{Title: "Sort Colors", Difficulty: "Medium", URL: "https://leetcode.com/problems/sort-colors/"},
				},
			},
		}
		got := enrichProblemLists(patterns, 8)
		if len(got[0].Problems) != 8 {
			t.Fatalf("problems len = %d, want 8", len(got[0].Problems))
		}
		if got[0].Problems[0].Title != "Valid Palindrome" || got[0].Problems[1].Title != "Sort Colors" {
			t.Errorf("original order not preserved: %+v", got[0].Problems[:2])
		}
		if got[0].Problems[2].Title != "Two Sum II - Input Array Is Sorted" {
			t.Errorf("library order not preserved: %q", got[0].Problems[2].Title)
		}
	})

	t.Run("skips case-insensitive duplicates", func(t *testing.T) {
		patterns := []PatternRecord{
			{
				Pattern: "Two Pointers",
				Problems: []ProblemRecord{
					{Title: "3SUM", Difficulty: "Medium"},
				},
			},
		}
		got := enrichProblemLists(patterns, 8)
		count := 0
		for _, pr := range got[0].Problems {
			if strings.EqualFold(pr.Title, "3Sum") {
				count++
			}
		}
		if count != 1 {
			t.Errorf("3Sum appears %d times, want 1", count)
		}
	})

	t.Run("already at min count stays untouched", func(t *testing.T) {
		problems := make([]ProblemRecord, 8)
		for i := range problems {
			problems[i] = ProblemRecord{Title: "P" + string(rune('A'+i)), Difficulty: "Easy"}
		}
		patterns := []PatternRecord{{Pattern: "Greedy", Problems: problems}}
		got := enrichProblemLists(patterns, 8)
		if len(got[0].Problems) != 8 {
			t.Errorf("problems len = %d, want unchanged 8", len(got[0].Problems))
		}
	})

	t.Run("unknown pattern untouched", func(t *testing.T) {
		patterns := []PatternRecord{
			{Pattern: "Quantum Annealing", Problems: []ProblemRecord{{Title: "Only One"}}},
		}
		got := enrichProblemLists(patterns, 8)
		if len(got[0].Problems) != 1 {
			t.Errorf("problems len = %d, want 1 (no library entry)", len(got[0].Problems))
		}
	})

	t.Run("library exhaustion stops short of min count", func(t *testing.T) {
		patterns := []PatternRecord{{Pattern: "Trie"}}
		got := enrichProblemLists(patterns, 50)
		if len(got[0].Problems) != len(problemLibrary["Trie"]) {
			t.Errorf("problems len = %d, want full library entry %d",
				len(got[0].Problems), len(problemLibrary["Trie"]))
		}
	})
}

func TestProblemLibraryShape(t *testing.T) {
	for name, problems := range problemLibrary {
		if len(problems) == 0 {
			t.Errorf("library entry %q is empty", name)
		}
		for _, pr := range problems {
			if pr.Title == "" || pr.Difficulty == "" || pr.URL == "" {
				t.Errorf("library entry %q has incomplete problem: %+v", name, pr)
			}
		}
	}
}
