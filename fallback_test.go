package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFetchFallbackPatterns(t *testing.T) {
	t.Run("json list accepted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"pattern":"Greedy","problems":[{"title":"Jump Game","difficulty":"Medium"}]}]`))
		}))
		defer srv.Close()

		client := newHTTPClient(Config{HTTPTimeoutSeconds: 5, UserAgent: "test"})
		got := fetchFallbackPatterns(context.Background(), client, srv.URL)
		if len(got) != 1 {
			t.Fatalf("entries len = %d, want 1", len(got))
		}
		if stringField(got[0], "pattern") != "Greedy" {
			t.Errorf("pattern = %q", stringField(got[0], "pattern"))
		}
	})

	t.Run("non-list body skipped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"patterns":[]}`))
		}))
		defer srv.Close()

		client := newHTTPClient(Config{HTTPTimeoutSeconds: 5, UserAgent: "test"})
		if got := fetchFallbackPatterns(context.Background(), client, srv.URL); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("server error skipped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := newHTTPClient(Config{HTTPTimeoutSeconds: 5, UserAgent: "test"})
		if got := fetchFallbackPatterns(context.Background(), client, srv.URL); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestLoadLocalFallback(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "patterns.json")
		body := `[{"pattern":"Trie","problems":[{"title":"Replace Words","difficulty":"Medium"}]}]`
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		got := loadLocalFallback(path)
		if len(got) != 1 || stringField(got[0], "pattern") != "Trie" {
			t.Errorf("entries = %v", got)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if got := loadLocalFallback(""); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if got := loadLocalFallback(filepath.Join(t.TempDir(), "nope.json")); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("bad json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
			t.Fatal(err)
		}
		if got := loadLocalFallback(path); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestBuiltinMinimalPatterns(t *testing.T) {
	entries := builtinMinimalPatterns()
	if len(entries) != 16 {
		t.Fatalf("builtin seed len = %d, want 16", len(entries))
	}
	for _, entry := range entries {
		name := stringField(entry, "pattern")
		if name == "" {
			t.Error("seed entry missing pattern name")
		}
		problems := listField(entry, "problems")
		if len(problems) != 3 {
			t.Errorf("seed %q problems len = %d, want 3", name, len(problems))
		}
	}
}

func TestRawFromRecordRoundTrip(t *testing.T) {
	record := PatternRecord{
		Pattern: "Greedy",
		URL:     "https://example.com/greedy",
		Notes:   "pick local optimum",
		Problems: []ProblemRecord{
			{Title: "Jump Game", Difficulty: "Medium", URL: "https://leetcode.com/problems/jump-game/"},
		},
	}
	got := normalizePattern(rawFromRecord(record), "https://base/")
	if got.Pattern != record.Pattern || got.URL != record.URL || got.Notes != record.Notes {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Problems) != 1 || got.Problems[0] != record.Problems[0] {
		t.Errorf("problems mismatch: %+v", got.Problems)
	}
}
