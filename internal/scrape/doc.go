// Package scrape fetches and parses web pages for lead enrichment.
//
// It provides two scrapers over one shared HTTP client: ProfileScraper
// pulls structured fields out of public profile pages, WebsiteScanner
// sweeps a company site for contact signals. Both are polite by
// construction only in the sense of honoring context cancellation;
// request pacing is the caller's job.
package scrape
