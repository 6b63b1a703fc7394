package search

import (
	"context"

	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// Backend executes a single query against a web search engine and returns
// ranked results.
//
// Implementations must honor the limit as an upper bound and preserve the
// engine's result order. A failed request returns a non-nil error; an
// empty result page is a successful call with zero results.
type Backend interface {
	// Search runs one query and returns at most limit results.
	Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error)
}
