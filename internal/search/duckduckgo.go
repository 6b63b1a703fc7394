package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// defaultEndpoint is the HTML-only result page. Unlike the main site it
// renders results server-side, so parsing needs no JavaScript engine.
const defaultEndpoint = "https://html.duckduckgo.com/html/"

// DuckDuckGo queries the DuckDuckGo HTML endpoint and scrapes the result
// page.
//
// Design decision: We scrape the HTML endpoint rather than use an API
// because:
//  1. DuckDuckGo's instant-answer API does not return web results
//  2. The HTML endpoint needs no API key or account
//  3. Result markup has been stable for years (div.result containers)
type DuckDuckGo struct {
	// client performs the HTTP requests. Callers inject it so timeouts
	// and transport settings stay in one place.
	client *http.Client

	// endpoint is the result page URL. Overridable for tests.
	endpoint string

	// userAgent is the User-Agent header to send. The endpoint serves
	// a bot-detection page to clients without a browser-like agent.
	userAgent string
}

// DuckDuckGoOption configures a DuckDuckGo backend.
type DuckDuckGoOption func(*DuckDuckGo)

// WithEndpoint overrides the result page URL.
func WithEndpoint(endpoint string) DuckDuckGoOption {
	return func(d *DuckDuckGo) {
		d.endpoint = endpoint
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) DuckDuckGoOption {
	return func(d *DuckDuckGo) {
		d.userAgent = ua
	}
}

// NewDuckDuckGo creates a DuckDuckGo backend with the given HTTP client.
func NewDuckDuckGo(client *http.Client, opts ...DuckDuckGoOption) *DuckDuckGo {
	d := &DuckDuckGo{
		client:    client,
		endpoint:  defaultEndpoint,
		userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Search runs one query and returns at most limit results in page order.
func (d *DuckDuckGo) Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error) {
	reqURL := d.endpoint + "?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse result page: %w", err)
	}

	results := make([]model.SearchResult, 0, limit)
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if limit > 0 && len(results) >= limit {
			return false
		}

		link := sel.Find("a.result__a").First()
		href, ok := link.Attr("href")
		if !ok {
			return true
		}

		results = append(results, model.SearchResult{
			Title:   strings.TrimSpace(link.Text()),
			URL:     unwrapRedirect(href),
			Snippet: strings.TrimSpace(sel.Find("a.result__snippet").First().Text()),
		})

		return true
	})

	return results, nil
}

// unwrapRedirect extracts the destination from DuckDuckGo's redirect links.
// Result anchors point at //duckduckgo.com/l/?uddg=<encoded-url>&rut=...;
// the real target sits URL-encoded in the uddg parameter. Links that do
// not match the redirect shape pass through unchanged.
func unwrapRedirect(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}

	if !strings.Contains(parsed.Path, "/l/") {
		return href
	}

	target := parsed.Query().Get("uddg")
	if target == "" {
		return href
	}

	return target
}
