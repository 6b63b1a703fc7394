package query

import (
	"strings"

	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// Default planning caps. These bound the query plan regardless of how many
// positions or keywords the extractor produced.
const (
	// DefaultMaxPositions is how many extracted positions get their own
	// query. Beyond three the combinations mostly rediscover the same
	// profiles.
	DefaultMaxPositions = 3

	// DefaultMaxQueries caps the final plan length.
	DefaultMaxQueries = 5

	// DefaultMaxFallbackKeywords is how many keywords the fallback query
	// joins when no positions were extracted.
	DefaultMaxFallbackKeywords = 5

	// DefaultProfileSite is the profile-index host used for the
	// site-qualified query variant.
	DefaultProfileSite = "linkedin.com/in/"
)

// Planner turns extracted criteria into an ordered, capped list of search
// engine query strings.
//
// The plan is deterministic: queries appear in position order, the
// site-qualified variant always follows the position queries, and the
// keyword fallback fires only when nothing else was produced. No
// deduplication pass is applied: if the extractor ever produced repeated
// positions the resulting duplicate queries are acceptable, not a bug to
// silently suppress.
type Planner struct {
	maxPositions        int
	maxQueries          int
	maxFallbackKeywords int
	profileSite         string
}

// Option configures a Planner.
type Option func(*Planner)

// WithMaxQueries overrides the plan length cap.
func WithMaxQueries(n int) Option {
	return func(p *Planner) {
		p.maxQueries = n
	}
}

// WithProfileSite overrides the profile-index host for the site-qualified
// query variant.
func WithProfileSite(site string) Option {
	return func(p *Planner) {
		p.profileSite = site
	}
}

// NewPlanner creates a Planner with the default caps.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{
		maxPositions:        DefaultMaxPositions,
		maxQueries:          DefaultMaxQueries,
		maxFallbackKeywords: DefaultMaxFallbackKeywords,
		profileSite:         DefaultProfileSite,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Plan builds the ordered query list for the given criteria.
//
// Construction order:
//  1. One query per extracted position (up to the position cap), each
//     joining position, company type, industry and location, skipping
//     absent fields.
//  2. When both positions and a company type are present, one
//     site-qualified query targeting the profile index, placed after the
//     position queries.
//  3. When nothing was produced and keywords exist, exactly one fallback
//     query of the first keywords space-joined.
//
// The result is truncated to the plan cap.
func (p *Planner) Plan(c *model.Criteria) []string {
	queries := make([]string, 0, p.maxQueries)

	positions := c.Positions
	if len(positions) > p.maxPositions {
		positions = positions[:p.maxPositions]
	}

	for _, position := range positions {
		parts := []string{position}
		if c.CompanyType != "" {
			parts = append(parts, c.CompanyType)
		}
		if c.Industry != "" {
			parts = append(parts, c.Industry)
		}
		if c.Location != "" {
			parts = append(parts, c.Location)
		}
		queries = append(queries, strings.Join(parts, " "))
	}

	// Profile-index targeted variant, always after the position queries.
	if len(c.Positions) > 0 && c.CompanyType != "" {
		parts := []string{"site:" + p.profileSite, c.Positions[0], c.CompanyType}
		if c.Industry != "" {
			parts = append(parts, c.Industry)
		}
		queries = append(queries, strings.Join(parts, " "))
	}

	// Keyword fallback only when the structured construction yielded
	// nothing at all.
	if len(queries) == 0 && len(c.Keywords) > 0 {
		keywords := c.Keywords
		if len(keywords) > p.maxFallbackKeywords {
			keywords = keywords[:p.maxFallbackKeywords]
		}
		queries = append(queries, strings.Join(keywords, " "))
	}

	if len(queries) > p.maxQueries {
		queries = queries[:p.maxQueries]
	}

	return queries
}
