package extract

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chanakaprasadcw/Scraping/internal/config"
	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// maxKeywords caps the number of free keywords kept per query.
const maxKeywords = 10

// Precompiled extraction patterns. Team-size and founding-year patterns are
// tried in a fixed priority order; the first match wins and later patterns
// are not consulted.
var (
	// teamSizePatterns: range with unit, "team of N[-M]", "N to M <unit>",
	// single "N <unit>". The dash alternatives cover the ASCII hyphen and
	// the en dash that word processors substitute.
	teamSizePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)[-–](\d+)\s*(?:employees?|people|team members?|members?)`),
		regexp.MustCompile(`team\s*of\s*(\d+)(?:[-–](\d+))?`),
		regexp.MustCompile(`(\d+)\s*to\s*(\d+)\s*(?:employees?|people)`),
		regexp.MustCompile(`(\d+)\s*(?:employees?|people|team members?)`),
	}

	// lastYearsPattern matches relative phrases: "in the last 2 years",
	// "within 3 years".
	lastYearsPattern = regexp.MustCompile(`(?:in\s+(?:the\s+)?last|within)\s+(\d+)\s+years?`)

	// foundedInPattern matches an exact year: "started in 2020",
	// "founded in 2020".
	foundedInPattern = regexp.MustCompile(`(?:started|founded)\s+in\s+(\d{4})`)

	// sincePattern matches an open range: "since 2020".
	sincePattern = regexp.MustCompile(`since\s+(\d{4})`)

	// keywordPattern matches alphabetic runs of at least three characters
	// in the lowercased query.
	keywordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

	// companyNamePattern matches one to three consecutive capitalized
	// words. This is a heuristic, not named-entity recognition; it will
	// emit sentence-initial words and other non-companies.
	companyNamePattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})\b`)
)

// Extractor parses free-text queries into structured criteria.
// All matching is case-insensitive against the configured vocabulary;
// given a fixed reference year the extractor is fully deterministic.
//
// An Extractor is immutable after construction and safe for concurrent
// use.
type Extractor struct {
	// vocab holds the keyword tables, in priority order.
	vocab *Vocabulary

	// referenceYear anchors relative founding-year phrases. Held as
	// configuration instead of reading the clock so extraction is
	// deterministic and testable.
	referenceYear int

	// positionPatterns are word-boundary regexes per position vocabulary
	// entry, allowing an optional trailing "s" to catch plurals.
	positionPatterns []*regexp.Regexp
}

// titleCase canonicalizes a matched token ("ceo" -> "Ceo",
// "san francisco" -> "San Francisco"). A cases.Caser carries internal
// state and must not be shared across goroutines, so one is built per
// call rather than held on the Extractor.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithVocabulary replaces the default vocabulary tables.
func WithVocabulary(v *Vocabulary) Option {
	return func(e *Extractor) {
		e.vocab = v
	}
}

// WithReferenceYear sets the year that relative founding phrases resolve
// against.
func WithReferenceYear(year int) Option {
	return func(e *Extractor) {
		e.referenceYear = year
	}
}

// NewExtractor creates an Extractor with the default vocabulary and
// reference year. The position word-boundary patterns are compiled once
// here rather than per query.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		vocab:         DefaultVocabulary(),
		referenceYear: config.DefaultReferenceYear,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.positionPatterns = make([]*regexp.Regexp, len(e.vocab.Positions))
	for i, keyword := range e.vocab.Positions {
		e.positionPatterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `s?\b`)
	}

	return e
}

// Extract parses a free-text query into criteria. The result is never an
// error: fields for which nothing matched are simply absent.
func (e *Extractor) Extract(query string) *model.Criteria {
	lower := strings.ToLower(query)

	return &model.Criteria{
		OriginalQuery: query,
		Positions:     e.extractPositions(lower),
		CompanyType:   e.extractCompanyType(lower),
		Industry:      e.extractIndustry(lower),
		Location:      e.extractLocation(lower),
		TeamSize:      extractTeamSize(lower),
		FoundingYear:  e.extractFoundingYear(lower),
		Keywords:      e.extractKeywords(lower),
		CompanyNames:  e.extractCompanyNames(query),
	}
}

// extractPositions returns every vocabulary position found in the text,
// canonicalized and deduplicated, in vocabulary order. Unlike the other
// extractors this one accumulates all hits instead of stopping at the
// first.
func (e *Extractor) extractPositions(text string) []string {
	positions := make([]string, 0)
	seen := make(map[string]bool)

	for i, pattern := range e.positionPatterns {
		if !pattern.MatchString(text) {
			continue
		}
		canonical := titleCase(e.vocab.Positions[i])
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		positions = append(positions, canonical)
	}

	return positions
}

// extractCompanyType returns the first company-type label whose keyword
// group matches, iterating the table in declared order. Empty when nothing
// matches; there is no multi-label support.
func (e *Extractor) extractCompanyType(text string) string {
	for _, entry := range e.vocab.CompanyTypes {
		for _, keyword := range entry.Keywords {
			if strings.Contains(text, keyword) {
				return entry.Type
			}
		}
	}
	return ""
}

// extractIndustry returns the first matching industry token. The
// vocabulary order is the tie-break.
func (e *Extractor) extractIndustry(text string) string {
	for _, industry := range e.vocab.Industries {
		if strings.Contains(text, industry) {
			return industry
		}
	}
	return ""
}

// extractLocation returns the first matching location token, title-cased.
func (e *Extractor) extractLocation(text string) string {
	for _, location := range e.vocab.Locations {
		if strings.Contains(text, location) {
			return titleCase(location)
		}
	}
	return ""
}

// extractTeamSize tries the team-size patterns in priority order and
// converts the first match. Two numeric groups become a range, one becomes
// a single-value range; min <= max holds by construction because the
// patterns capture the smaller number first.
func extractTeamSize(text string) *model.Range {
	for _, pattern := range teamSizePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		nums := make([]int, 0, 2)
		for _, group := range m[1:] {
			if group == "" {
				continue
			}
			n, err := strconv.Atoi(group)
			if err != nil {
				continue
			}
			nums = append(nums, n)
		}

		switch len(nums) {
		case 2:
			return &model.Range{Min: nums[0], Max: nums[1]}
		case 1:
			return &model.Range{Min: nums[0], Max: nums[0]}
		}
	}

	return nil
}

// extractFoundingYear tries the founding-year phrasings in priority order:
// relative ("last N years"), exact ("founded in YYYY"), open ("since
// YYYY"). The first matching pattern wins; multiple year phrases in one
// query are not combined.
func (e *Extractor) extractFoundingYear(text string) *model.Range {
	if m := lastYearsPattern.FindStringSubmatch(text); m != nil {
		yearsAgo, err := strconv.Atoi(m[1])
		if err == nil {
			return &model.Range{Min: e.referenceYear - yearsAgo, Max: e.referenceYear}
		}
	}

	if m := foundedInPattern.FindStringSubmatch(text); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil {
			return &model.Range{Min: year, Max: year}
		}
	}

	if m := sincePattern.FindStringSubmatch(text); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil {
			return &model.Range{Min: year, Max: e.referenceYear}
		}
	}

	return nil
}

// extractKeywords returns non-stopword tokens of at least three characters,
// deduplicated in first-occurrence order and capped at maxKeywords. The
// order carries no meaning but must be deterministic for tests.
func (e *Extractor) extractKeywords(text string) []string {
	stopwords := make(map[string]bool, len(e.vocab.Stopwords))
	for _, w := range e.vocab.Stopwords {
		stopwords[w] = true
	}

	keywords := make([]string, 0)
	seen := make(map[string]bool)

	for _, word := range keywordPattern.FindAllString(text, -1) {
		if stopwords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}

	return keywords
}

// extractCompanyNames applies the capitalized-phrase heuristic to the
// ORIGINAL (case-preserved) query. Duplicate phrases are dropped; the
// short stopword list removes obvious sentence-initial articles. Expect
// false positives; callers treat these as best-effort hints only.
func (e *Extractor) extractCompanyNames(text string) []string {
	stop := make(map[string]bool, len(e.vocab.NameStopwords))
	for _, w := range e.vocab.NameStopwords {
		stop[w] = true
	}

	names := make([]string, 0)
	seen := make(map[string]bool)

	for _, m := range companyNamePattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if stop[name] || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names
}
