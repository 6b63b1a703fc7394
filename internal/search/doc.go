// Package search provides web search backends.
//
// The Backend interface abstracts a search engine; DuckDuckGo is the
// default implementation, scraping the engine's HTML-only result page.
// Backends are stateless and safe for reuse across queries.
package search
