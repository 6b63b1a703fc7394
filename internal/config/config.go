package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values, chosen to be polite toward the sites
// being scraped.
const (
	// DefaultSearchLimit is the number of results requested per search
	// engine query. Ten matches the typical first results page; more adds
	// little signal because profile hits cluster at the top.
	DefaultSearchLimit = 10

	// DefaultFetchLimit is the maximum number of profiles scraped per run.
	// This bounds run time and keeps request volume modest.
	DefaultFetchLimit = 10

	// DefaultRequestDelay is the pause between consecutive search or fetch
	// requests. Two seconds is a politeness setting; lower values invite
	// rate limiting by the search engine and the profile sites.
	DefaultRequestDelay = 2 * time.Second

	// DefaultTimeout is the per-request HTTP timeout. Profile pages are
	// small; 30 seconds accommodates slow personal sites without hanging
	// the strictly sequential pipeline for long.
	DefaultTimeout = 30 * time.Second

	// DefaultReferenceYear is the "current year" used to resolve relative
	// founding-year phrases like "in the last 2 years". It is configuration
	// rather than wall-clock time so that extraction is deterministic and
	// testable.
	DefaultReferenceYear = 2026

	// DefaultMaxQueriesPerRun caps how many planned queries are actually
	// executed per aggregation run. The planner may emit up to five; only
	// the first three are searched because later combinations mostly
	// rediscover the same profiles.
	DefaultMaxQueriesPerRun = 3

	// DefaultProfileURLMarker identifies individual profile pages by their
	// ".../in/<slug>" path convention. Search results not matching this
	// marker are treated as generic websites.
	DefaultProfileURLMarker = "linkedin.com/in/"

	// DefaultUserAgent is a browser-like User-Agent. Search engines and
	// profile sites serve stripped-down or blocked pages to obvious bots.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultOutputDir is where export files are written.
	DefaultOutputDir = "./output"

	// DefaultOutputName is the base name for export files; a timestamp and
	// format extension are appended.
	DefaultOutputName = "leads"

	// DefaultOutputFormat is the export format when none is requested.
	DefaultOutputFormat = "csv"

	// AppName is the application name used for XDG directory paths.
	AppName = "leadscan"
)

// Config holds all configuration options for the lead scraper.
// It is populated from CLI flags and the optional .leadscan file and passed
// into each component via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (SearchConfig, ExportConfig, ...) for simplicity. The number of options is
// manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// === Search mode ===
	// Exactly one of the natural-language query or the structured fields
	// (Names / Company) is active per invocation.

	// Query is the free-text natural-language query.
	Query string

	// Names is the list of person names for the structured by-name flow.
	Names []string

	// Company is the company filter for the structured flows.
	Company string

	// Titles are job titles for the structured by-company flow.
	Titles []string

	// CriteriaFile is the path to a JSON file supplying the structured
	// fields. It is mutually exclusive with Query.
	CriteriaFile string

	// === Pipeline behavior ===

	// SearchLimit is the number of results requested per search query.
	SearchLimit int

	// FetchLimit is the maximum number of profiles scraped per run.
	FetchLimit int

	// RequestDelay is the pause between consecutive outbound requests.
	RequestDelay time.Duration

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// ReferenceYear resolves relative founding-year phrases. Kept explicit
	// so extraction is deterministic.
	ReferenceYear int

	// ProfileURLMarker is the substring identifying profile page URLs.
	ProfileURLMarker string

	// UserAgent is sent with every HTTP request.
	UserAgent string

	// StrictEmails enables full address-grammar validation of extracted
	// emails. The default trusts the extraction regex.
	StrictEmails bool

	// === Output ===

	// OutputDir is the directory export files are written to.
	OutputDir string

	// OutputName is the base file name for exports.
	OutputName string

	// OutputFormat selects the export format: csv, json, excel or markdown.
	OutputFormat string

	// === Persistence ===

	// DBDir is the directory for the SQLite lead store. Leads are only
	// persisted when SaveToDB is set.
	DBDir string

	// SaveToDB indicates whether session leads are written to the store.
	SaveToDB bool

	// === Logging ===

	// Verbose enables slog.LevelDebug output.
	Verbose bool

	// RedactContacts masks email addresses and similar contact values in
	// log output. Lead data itself is unaffected.
	RedactContacts bool

	// ConfigFilePath is the path to the .leadscan file, when given.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
// Many defaults are non-zero, so relying on zero values would be wrong;
// the constructor also documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		SearchLimit:      DefaultSearchLimit,
		FetchLimit:       DefaultFetchLimit,
		RequestDelay:     DefaultRequestDelay,
		Timeout:          DefaultTimeout,
		ReferenceYear:    DefaultReferenceYear,
		ProfileURLMarker: DefaultProfileURLMarker,
		UserAgent:        DefaultUserAgent,
		OutputDir:        DefaultOutputDir,
		OutputName:       DefaultOutputName,
		OutputFormat:     DefaultOutputFormat,
	}
}

// XDGDataDir returns the XDG data directory for the lead store.
// On Linux: ~/.local/share/leadscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// knownFormats are the accepted export formats.
var knownFormats = map[string]bool{
	"csv":      true,
	"json":     true,
	"excel":    true,
	"markdown": true,
}

// hasStructuredInput reports whether any structured search field is set.
func (c *Config) hasStructuredInput() bool {
	return len(c.Names) > 0 || c.Company != ""
}

// Validate checks if the configuration is valid and returns a specific
// sentinel error describing the first problem found. It is called once
// after CLI parsing, before any searching begins; malformed configuration
// is fatal, unlike per-item scraping failures which only degrade the run.
func (c *Config) Validate() error {
	if c.Query == "" && !c.hasStructuredInput() {
		return ErrNoSearchMode
	}
	if c.Query != "" && c.hasStructuredInput() {
		return ErrConflictingModes
	}
	if c.SearchLimit <= 0 || c.FetchLimit <= 0 {
		return ErrInvalidLimit
	}
	if c.RequestDelay < 0 {
		return ErrInvalidDelay
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.ReferenceYear < 1900 {
		return ErrInvalidReferenceYear
	}
	if !knownFormats[c.OutputFormat] {
		return ErrUnknownFormat
	}
	return nil
}
