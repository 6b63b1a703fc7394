package aggregate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// ErrNoInput is returned when a criteria run has neither names nor a
// company to search for.
var ErrNoInput = errors.New("aggregate: criteria contain no names and no company")

// DefaultTitles are the job titles searched when a by-company run does
// not specify its own. Ordered from most to least senior.
var DefaultTitles = []string{"CEO", "CTO", "VP", "Director", "Manager"}

// Defaults for a freshly constructed Aggregator.
const (
	// DefaultMaxQueries caps how many planned queries one run executes.
	DefaultMaxQueries = 3

	// DefaultSearchLimit is how many results to request per query.
	DefaultSearchLimit = 10

	// DefaultProfileMarker identifies profile URLs among search results.
	DefaultProfileMarker = "linkedin.com/in/"

	// DefaultNameScanLimit caps how many non-profile results the by-name
	// flow scans for contacts, per name.
	DefaultNameScanLimit = 3
)

// SearchBackend executes search engine queries. Satisfied by
// search.DuckDuckGo.
type SearchBackend interface {
	Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error)
}

// ProfileFetcher fetches one profile page. Satisfied by
// scrape.ProfileScraper.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, profileURL string) (*model.ProfileRecord, error)
}

// WebsiteScanner sweeps a company site for contact signals. Satisfied by
// scrape.WebsiteScanner.
type WebsiteScanner interface {
	ScanWebsite(ctx context.Context, siteURL string) (*model.ContactInfo, error)
}

// Aggregator drives the search-dedupe-scrape-merge pipeline and owns the
// accumulated lead collection.
//
// An Aggregator is not safe for concurrent use: every run is strictly
// sequential and there is exactly one writer to the collection. Callers
// wanting parallel runs create separate Aggregators.
type Aggregator struct {
	// backend executes search queries.
	backend SearchBackend

	// fetcher fetches profile pages.
	fetcher ProfileFetcher

	// scanner sweeps non-profile result URLs for contact signals.
	// Optional; nil disables website scanning.
	scanner WebsiteScanner

	// limiter paces every outbound request: searches, profile fetches
	// and website scans all share it.
	limiter *rate.Limiter

	// profileMarker is the URL substring that makes a search result a
	// profile candidate.
	profileMarker string

	// maxQueries caps executed queries per run.
	maxQueries int

	// searchLimit is the per-query result limit.
	searchLimit int

	// originalQuery and matchedCriteria are stamped onto every lead the
	// natural-language flow produces. Empty for structured runs.
	originalQuery   string
	matchedCriteria *model.CriteriaSnapshot

	// leads is the accumulated collection, in append order.
	leads []*model.Lead

	// state tracks pipeline progress for logging and tests.
	state State

	// logger receives per-step progress and isolated failures.
	logger *slog.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// WithRequestDelay sets the minimum interval between consecutive outbound
// requests of any kind.
func WithRequestDelay(delay time.Duration) Option {
	return func(a *Aggregator) {
		if delay > 0 {
			a.limiter = rate.NewLimiter(rate.Every(delay), 1)
		}
	}
}

// WithMaxQueries caps how many queries one run executes.
func WithMaxQueries(n int) Option {
	return func(a *Aggregator) {
		a.maxQueries = n
	}
}

// WithSearchLimit sets the per-query result limit.
func WithSearchLimit(n int) Option {
	return func(a *Aggregator) {
		a.searchLimit = n
	}
}

// WithProfileMarker overrides the profile URL marker.
func WithProfileMarker(marker string) Option {
	return func(a *Aggregator) {
		a.profileMarker = marker
	}
}

// WithWebsiteScanner enables contact scanning of non-profile result URLs.
func WithWebsiteScanner(scanner WebsiteScanner) Option {
	return func(a *Aggregator) {
		a.scanner = scanner
	}
}

// WithProvenance stamps the original free-text query and the matched
// criteria onto every lead produced by subsequent runs.
func WithProvenance(query string, snapshot *model.CriteriaSnapshot) Option {
	return func(a *Aggregator) {
		a.originalQuery = query
		a.matchedCriteria = snapshot
	}
}

// New creates an Aggregator with the given collaborators.
//
// Design decision: The backend and fetcher are interfaces declared here,
// on the consuming side, because:
//  1. Tests swap in in-memory fakes without touching the network
//  2. The aggregator states exactly what it needs, nothing more
//  3. New backends plug in without this package changing
func New(backend SearchBackend, fetcher ProfileFetcher, opts ...Option) *Aggregator {
	a := &Aggregator{
		backend:       backend,
		fetcher:       fetcher,
		limiter:       rate.NewLimiter(rate.Inf, 1),
		profileMarker: DefaultProfileMarker,
		maxQueries:    DefaultMaxQueries,
		searchLimit:   DefaultSearchLimit,
		leads:         make([]*model.Lead, 0),
		state:         StateIdle,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// Aggregate runs the full pipeline over the planned queries: execute up
// to the query cap, collapse results to unique URLs, fetch up to
// fetchLimit candidate profiles, and append the resulting leads.
//
// Failures are isolated per item: a query that errors or a profile that
// fails to fetch is logged and skipped, never aborting the run. Only
// context cancellation stops a run early.
//
// Returns the full accumulated collection, including leads appended by
// earlier runs. An empty query list is a valid run that appends nothing
// and returns the existing collection unchanged.
func (a *Aggregator) Aggregate(ctx context.Context, queries []string, fetchLimit int) ([]*model.Lead, error) {
	if len(queries) > a.maxQueries {
		queries = queries[:a.maxQueries]
	}

	a.state = StateSearching
	results := model.NewResultSet()

	for _, q := range queries {
		if err := a.limiter.Wait(ctx); err != nil {
			return a.Leads(), err
		}

		found, err := a.backend.Search(ctx, q, a.searchLimit)
		if err != nil {
			if ctx.Err() != nil {
				return a.Leads(), ctx.Err()
			}
			a.logger.Warn("query failed", "query", q, "error", err)
			continue
		}

		a.logger.Info("query executed", "query", q, "results", len(found))
		for _, r := range found {
			results.Add(r)
		}
	}

	a.state = StateDeduplicating
	profileURLs, siteURLs := a.splitResults(results)
	a.logger.Info("results deduplicated",
		"unique", results.Len(),
		"profiles", len(profileURLs),
		"websites", len(siteURLs))

	if fetchLimit > 0 && len(profileURLs) > fetchLimit {
		profileURLs = profileURLs[:fetchLimit]
	}

	a.state = StateScraping
	appended := 0

	for _, profileURL := range profileURLs {
		if err := a.limiter.Wait(ctx); err != nil {
			return a.Leads(), err
		}

		rec, err := a.fetcher.FetchProfile(ctx, profileURL)
		if err != nil {
			if ctx.Err() != nil {
				return a.Leads(), ctx.Err()
			}
			a.logger.Warn("profile fetch failed", "url", profileURL, "error", err)
			continue
		}

		lead := model.LeadFromProfile(rec)
		a.stampProvenance(lead)
		a.append(lead)
		appended++
	}

	if a.scanner != nil {
		scanned, err := a.scanWebsites(ctx, siteURLs, fetchLimit)
		appended += scanned
		if err != nil {
			return a.Leads(), err
		}
	}

	a.state = StateMerged
	a.logger.Info("aggregation finished", "appended", appended, "total", len(a.leads))

	return a.Leads(), nil
}

// SearchByNames looks up each name and appends one lead per input name.
// Per name it runs a general search and a profile-site search, scrapes
// the first profile hit, then scans a handful of the remaining result
// URLs as generic websites and merges the contacts found into the lead
// before it is appended. The optional company and title narrow both
// queries and pre-fill the corresponding lead fields when the scrape
// left them empty. A name whose profile cannot be found or fetched still
// yields a lead carrying just that name, so every input name appends
// exactly one lead.
//
// Returns the full accumulated collection, like Aggregate.
func (a *Aggregator) SearchByNames(ctx context.Context, names []string, company, title string) ([]*model.Lead, error) {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		lead, err := a.searchByName(ctx, name, company, title)
		if err != nil {
			return a.Leads(), err
		}

		a.stampProvenance(lead)
		a.append(lead)
	}

	return a.Leads(), nil
}

// searchByName builds the lead for one name. Always returns a non-nil
// lead unless the context was cancelled.
func (a *Aggregator) searchByName(ctx context.Context, name, company, title string) (*model.Lead, error) {
	narrowing := strings.TrimSpace(strings.Join([]string{title, company}, " "))

	queries := []string{
		strings.TrimSpace(fmt.Sprintf("%q %s", name, narrowing)),
		strings.TrimSpace(fmt.Sprintf("site:%s %q %s", a.profileMarker, name, narrowing)),
	}

	results := model.NewResultSet()
	for _, q := range queries {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		found, err := a.backend.Search(ctx, q, a.searchLimit)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			a.logger.Warn("query failed", "query", q, "error", err)
			continue
		}
		for _, r := range found {
			results.Add(r)
		}
	}

	profileURLs, siteURLs := a.splitResults(results)

	var lead *model.Lead
	if len(profileURLs) > 0 {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		rec, err := a.fetcher.FetchProfile(ctx, profileURLs[0])
		switch {
		case err == nil:
			lead = model.LeadFromProfile(rec)
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			a.logger.Warn("profile fetch failed", "url", profileURLs[0], "error", err)
		}
	}
	if lead == nil {
		lead = model.NewLead(name)
	}
	if lead.Name == "" {
		lead.Name = name
	}
	if lead.Company == "" {
		lead.Company = company
	}
	if lead.Title == "" {
		lead.Title = title
	}

	// Contacts found on the name's other result pages are merged in
	// before the lead joins the collection.
	if a.scanner != nil {
		if len(siteURLs) > DefaultNameScanLimit {
			siteURLs = siteURLs[:DefaultNameScanLimit]
		}
		for _, siteURL := range siteURLs {
			if err := a.limiter.Wait(ctx); err != nil {
				return nil, err
			}

			info, err := a.scanner.ScanWebsite(ctx, siteURL)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				a.logger.Warn("website scan failed", "url", siteURL, "error", err)
				continue
			}
			lead.MergeContacts(info)
		}
	}

	return lead, nil
}

// SearchByCompany looks up people holding each of the given titles at the
// company. When titles is empty the default title list is used. Titles
// with no matching profile are skipped; unlike the by-name flow there is
// no input identity to preserve.
//
// Returns the full accumulated collection, like Aggregate.
func (a *Aggregator) SearchByCompany(ctx context.Context, company string, titles []string) ([]*model.Lead, error) {
	if len(titles) == 0 {
		titles = DefaultTitles
	}

	for _, title := range titles {
		lead, err := a.lookupProfile(ctx, fmt.Sprintf("site:%s %q %q", a.profileMarker, title, company))
		if err != nil {
			return a.Leads(), err
		}
		if lead == nil {
			continue
		}

		if lead.Title == "" {
			lead.Title = title
		}
		if lead.Company == "" {
			lead.Company = company
		}

		a.stampProvenance(lead)
		a.append(lead)
	}

	return a.Leads(), nil
}

// SearchByCriteria dispatches a structured run: names take precedence
// over company, and a run with neither fails with ErrNoInput. When names
// are present the company and the first title narrow the by-name
// queries instead of selecting the by-company flow.
func (a *Aggregator) SearchByCriteria(ctx context.Context, names []string, company string, titles []string) ([]*model.Lead, error) {
	switch {
	case len(names) > 0:
		title := ""
		if len(titles) > 0 {
			title = titles[0]
		}
		return a.SearchByNames(ctx, names, company, title)
	case company != "":
		return a.SearchByCompany(ctx, company, titles)
	default:
		return nil, ErrNoInput
	}
}

// Leads returns the accumulated collection in append order. The returned
// slice is a copy; the leads themselves are shared.
func (a *Aggregator) Leads() []*model.Lead {
	out := make([]*model.Lead, len(a.leads))
	copy(out, a.leads)
	return out
}

// Clear drops the accumulated collection and resets the state.
func (a *Aggregator) Clear() {
	a.leads = a.leads[:0]
	a.state = StateIdle
}

// State returns the current pipeline state.
func (a *Aggregator) State() State {
	return a.state
}

// lookupProfile runs one query and fetches the first profile result.
// Returns nil without error when no result is a profile URL or the fetch
// fails; only context cancellation is returned as an error.
func (a *Aggregator) lookupProfile(ctx context.Context, query string) (*model.Lead, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	found, err := a.backend.Search(ctx, query, a.searchLimit)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.logger.Warn("query failed", "query", query, "error", err)
		return nil, nil
	}

	var profileURL string
	for _, r := range found {
		if strings.Contains(r.URL, a.profileMarker) {
			profileURL = r.URL
			break
		}
	}
	if profileURL == "" {
		return nil, nil
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	rec, err := a.fetcher.FetchProfile(ctx, profileURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.logger.Warn("profile fetch failed", "url", profileURL, "error", err)
		return nil, nil
	}

	return model.LeadFromProfile(rec), nil
}

// scanWebsites sweeps non-profile result URLs for contact signals. A site
// that yields at least one email becomes a company-level lead: no name,
// no profile URL, just the contacts found. Sites without emails are
// dropped. Returns how many leads were appended.
func (a *Aggregator) scanWebsites(ctx context.Context, siteURLs []string, limit int) (int, error) {
	if limit > 0 && len(siteURLs) > limit {
		siteURLs = siteURLs[:limit]
	}

	appended := 0

	for _, siteURL := range siteURLs {
		if err := a.limiter.Wait(ctx); err != nil {
			return appended, err
		}

		info, err := a.scanner.ScanWebsite(ctx, siteURL)
		if err != nil {
			if ctx.Err() != nil {
				return appended, ctx.Err()
			}
			a.logger.Warn("website scan failed", "url", siteURL, "error", err)
			continue
		}
		if len(info.Emails) == 0 {
			continue
		}

		lead := model.NewLead("")
		lead.MergeContacts(info)
		a.stampProvenance(lead)
		a.append(lead)
		appended++
	}

	return appended, nil
}

// splitResults separates deduplicated results into profile candidates and
// other websites, preserving result order in both lists.
func (a *Aggregator) splitResults(results *model.ResultSet) (profiles, sites []string) {
	for _, r := range results.Results() {
		if strings.Contains(r.URL, a.profileMarker) {
			profiles = append(profiles, r.URL)
		} else {
			sites = append(sites, r.URL)
		}
	}
	return profiles, sites
}

func (a *Aggregator) stampProvenance(lead *model.Lead) {
	lead.SearchQuery = a.originalQuery
	lead.MatchedCriteria = a.matchedCriteria
}

func (a *Aggregator) append(lead *model.Lead) {
	a.leads = append(a.leads, lead)
}
