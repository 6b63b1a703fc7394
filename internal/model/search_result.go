package model

// SearchResult is one entry returned by a search backend.
// Results are produced in the backend's relevance order and never mutated;
// order is significant because downstream stages truncate to "first N".
type SearchResult struct {
	// Title is the result title as shown on the results page.
	Title string `json:"title"`

	// URL is the result link. Backends unwrap redirect wrappers before
	// returning, so this is the destination URL.
	URL string `json:"url"`

	// Snippet is the short description text, possibly empty.
	Snippet string `json:"snippet"`
}

// ResultSet deduplicates search results by URL while preserving the order
// in which URLs were first seen.
//
// Tie-break: when the same URL is added twice, the LATER entry replaces the
// earlier one but keeps the earlier position. Last-write-wins is the
// canonical deduplication rule of the pipeline and callers rely on it.
type ResultSet struct {
	// order holds URLs in first-insertion order.
	order []string

	// byURL maps a URL to its most recently added result.
	byURL map[string]SearchResult
}

// NewResultSet creates an empty ResultSet.
func NewResultSet() *ResultSet {
	return &ResultSet{
		order: make([]string, 0),
		byURL: make(map[string]SearchResult),
	}
}

// Add inserts a result. A duplicate URL overwrites the stored result
// (last write wins) without changing its position.
func (s *ResultSet) Add(r SearchResult) {
	if _, seen := s.byURL[r.URL]; !seen {
		s.order = append(s.order, r.URL)
	}
	s.byURL[r.URL] = r
}

// Results returns the deduplicated results in first-insertion order.
func (s *ResultSet) Results() []SearchResult {
	out := make([]SearchResult, 0, len(s.order))
	for _, u := range s.order {
		out = append(out, s.byURL[u])
	}
	return out
}

// Len returns the number of distinct URLs in the set.
func (s *ResultSet) Len() int {
	return len(s.order)
}
