package scrape

import (
	"net/http"
	"time"
)

// maxIdleConns bounds the shared connection pool. Scans touch many hosts
// once each, so a large pool only holds sockets open for nothing.
const maxIdleConns = 10

// NewHTTPClient creates an HTTP client for scraping with the given timeout.
//
// Design decision: One shared client for search, profile fetching and
// website scanning because:
//  1. Timeout and transport settings stay consistent across components
//  2. Connection reuse works across the whole run
//  3. Tests can swap in a single client backed by httptest
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}
