package model

import "testing"

func TestResultSet(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates by url", func(t *testing.T) {
		t.Parallel()

		set := NewResultSet()
		set.Add(SearchResult{Title: "a", URL: "https://example.com/a"})
		set.Add(SearchResult{Title: "b", URL: "https://example.com/b"})
		set.Add(SearchResult{Title: "a2", URL: "https://example.com/a"})

		if set.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", set.Len())
		}
	})

	t.Run("last write wins, first position kept", func(t *testing.T) {
		t.Parallel()

		set := NewResultSet()
		set.Add(SearchResult{Title: "first", URL: "https://example.com/a"})
		set.Add(SearchResult{Title: "other", URL: "https://example.com/b"})
		set.Add(SearchResult{Title: "second", URL: "https://example.com/a"})

		results := set.Results()
		if results[0].URL != "https://example.com/a" {
			t.Errorf("results[0].URL = %q, want first-seen URL", results[0].URL)
		}
		if results[0].Title != "second" {
			t.Errorf("results[0].Title = %q, want later entry to win", results[0].Title)
		}
	})

	t.Run("empty set", func(t *testing.T) {
		t.Parallel()

		set := NewResultSet()
		if set.Len() != 0 || len(set.Results()) != 0 {
			t.Error("new set must be empty")
		}
	})
}
