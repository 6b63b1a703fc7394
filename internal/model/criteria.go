package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Range is an inclusive integer range with Min <= Max.
// It is used for team sizes and founding-year constraints.
type Range struct {
	// Min is the lower bound (inclusive).
	Min int `json:"min"`

	// Max is the upper bound (inclusive).
	Max int `json:"max"`
}

// IsSingle reports whether the range covers exactly one value.
func (r Range) IsSingle() bool {
	return r.Min == r.Max
}

// String returns "N" for single-value ranges and "N-M" otherwise.
func (r Range) String() string {
	if r.IsSingle() {
		return fmt.Sprintf("%d", r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Criteria holds structured search parameters extracted from a free-text
// query. A Criteria value is built once by the extractor and never mutated
// afterwards.
//
// Design decision: We use an explicit struct rather than a loosely-typed
// map so that missing fields are the zero value rather than a silent key
// typo, and so the merge and planning rules are checkable by the compiler.
type Criteria struct {
	// OriginalQuery is the raw query text the criteria were extracted from.
	OriginalQuery string `json:"original_query"`

	// Positions are canonicalized job-title tokens (e.g. "Founder", "Ceo").
	// Every vocabulary hit is kept; order follows the vocabulary, which
	// makes the query plan deterministic.
	Positions []string `json:"positions,omitempty"`

	// CompanyType is the first matching company-type label, or empty when
	// no keyword matched. One of: startup, enterprise, agency, consulting,
	// saas, ecommerce, fintech, healthtech.
	CompanyType string `json:"company_type,omitempty"`

	// Industry is the first matching entry of the industry vocabulary,
	// or empty.
	Industry string `json:"industry,omitempty"`

	// Location is the first matching entry of the location vocabulary,
	// title-cased ("San Francisco"), or empty.
	Location string `json:"location,omitempty"`

	// TeamSize is the extracted team-size range, nil when absent.
	// Min == Max when a single number was found.
	TeamSize *Range `json:"team_size,omitempty"`

	// FoundingYear is the extracted founding-year range, nil when absent.
	// Relative phrases ("last N years") are resolved against the
	// configured reference year, never the wall clock.
	FoundingYear *Range `json:"founding_year,omitempty"`

	// Keywords are non-stopword tokens of at least three characters,
	// deduplicated in first-occurrence order and capped at ten entries.
	Keywords []string `json:"keywords,omitempty"`

	// CompanyNames are capitalized multi-word phrases that may be company
	// names. The heuristic is deliberately low-precision; sentence-initial
	// words can appear here.
	CompanyNames []string `json:"company_names,omitempty"`
}

// CriteriaSnapshot is the subset of Criteria recorded on a Lead for
// provenance. It captures what the lead was matched against without
// carrying the full extraction result.
type CriteriaSnapshot struct {
	Positions   []string `json:"positions,omitempty"`
	CompanyType string   `json:"company_type,omitempty"`
	Industry    string   `json:"industry,omitempty"`
}

// Snapshot returns the provenance subset of the criteria.
func (c *Criteria) Snapshot() *CriteriaSnapshot {
	return &CriteriaSnapshot{
		Positions:   append([]string(nil), c.Positions...),
		CompanyType: c.CompanyType,
		Industry:    c.Industry,
	}
}

// Summary formats the criteria as a human-readable block for terminal
// display. Empty fields are omitted.
func (c *Criteria) Summary() string {
	title := cases.Title(language.English)

	lines := []string{
		"Extracted Search Criteria:",
		strings.Repeat("-", 50),
	}

	if len(c.Positions) > 0 {
		lines = append(lines, "Positions: "+strings.Join(c.Positions, ", "))
	}
	if c.CompanyType != "" {
		lines = append(lines, "Company Type: "+title.String(c.CompanyType))
	}
	if c.Industry != "" {
		lines = append(lines, "Industry: "+title.String(c.Industry))
	}
	if c.Location != "" {
		lines = append(lines, "Location: "+c.Location)
	}
	if c.TeamSize != nil {
		lines = append(lines, "Team Size: "+c.TeamSize.String()+" members")
	}
	if c.FoundingYear != nil {
		lines = append(lines, "Founded: "+c.FoundingYear.String())
	}
	if len(c.CompanyNames) > 0 {
		lines = append(lines, "Companies: "+strings.Join(c.CompanyNames, ", "))
	}
	if len(c.Keywords) > 0 {
		kw := c.Keywords
		if len(kw) > 5 {
			kw = kw[:5]
		}
		lines = append(lines, "Keywords: "+strings.Join(kw, ", "))
	}

	return strings.Join(lines, "\n")
}
