package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/chanakaprasadcw/Scraping/internal/contact"
	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// Entry caps for the profile history lists. Older entries add noise, not
// lead signal.
const (
	maxExperienceEntries = 5
	maxEducationEntries  = 3
)

// ProfileScraper fetches public profile pages and extracts the fields a
// lead record needs.
//
// A fetch failure (network error, non-200 status) returns a nil record and
// an error. A page that fetched fine but matched no selectors returns an
// empty record and no error; the two cases mean different things to the
// aggregator and must stay distinguishable.
type ProfileScraper struct {
	// client performs the HTTP requests.
	client *http.Client

	// finder extracts email addresses from the raw page source.
	finder *contact.Finder

	// userAgent is the User-Agent header to send. Profile hosts reject
	// requests without a browser-like agent outright.
	userAgent string

	// maxBodySize limits how much of a response body is read.
	maxBodySize int64
}

// ProfileOption configures a ProfileScraper.
type ProfileOption func(*ProfileScraper)

// WithProfileUserAgent sets a custom User-Agent header.
func WithProfileUserAgent(ua string) ProfileOption {
	return func(p *ProfileScraper) {
		p.userAgent = ua
	}
}

// WithProfileMaxBodySize sets the maximum response body size.
func WithProfileMaxBodySize(size int64) ProfileOption {
	return func(p *ProfileScraper) {
		p.maxBodySize = size
	}
}

// NewProfileScraper creates a ProfileScraper with the given HTTP client
// and email finder.
func NewProfileScraper(client *http.Client, finder *contact.Finder, opts ...ProfileOption) *ProfileScraper {
	p := &ProfileScraper{
		client:      client,
		finder:      finder,
		userAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		maxBodySize: 5 * 1024 * 1024, // 5MB
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// FetchProfile fetches one profile page and extracts its fields.
func (p *ProfileScraper) FetchProfile(ctx context.Context, profileURL string) (*model.ProfileRecord, error) {
	source, err := p.fetch(ctx, profileURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse profile page: %w", err)
	}

	rec := &model.ProfileRecord{URL: profileURL}

	rec.Name = strings.TrimSpace(doc.Find("h1").First().Text())
	rec.Headline = strings.TrimSpace(doc.Find("div.text-body-medium").First().Text())
	rec.Location = strings.TrimSpace(doc.Find("span.text-body-small").First().Text())
	rec.About = strings.TrimSpace(doc.Find("section.summary, div.core-section-container__content p").First().Text())

	rec.CurrentPosition, rec.CurrentCompany = splitHeadline(rec.Headline)

	doc.Find("li.experience-item, ul.experience__list > li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		position := strings.TrimSpace(sel.Find("h3").First().Text())
		company := strings.TrimSpace(sel.Find("h4").First().Text())
		if position == "" && company == "" {
			return true
		}
		rec.Experience = append(rec.Experience, model.Experience{
			Position: position,
			Company:  company,
		})
		return len(rec.Experience) < maxExperienceEntries
	})

	doc.Find("li.education__list-item, ul.education__list > li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		school := strings.TrimSpace(sel.Find("h3").First().Text())
		if school == "" {
			return true
		}
		rec.Education = append(rec.Education, model.Education{School: school})
		return len(rec.Education) < maxEducationEntries
	})

	// First experience entry fills in whatever the headline lacked.
	if len(rec.Experience) > 0 {
		if rec.CurrentPosition == "" {
			rec.CurrentPosition = rec.Experience[0].Position
		}
		if rec.CurrentCompany == "" {
			rec.CurrentCompany = rec.Experience[0].Company
		}
	}

	rec.Emails = p.finder.FindInHTML(source)

	return rec, nil
}

// fetch retrieves the raw page source for the given URL.
func (p *ProfileScraper) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("profile returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read profile body: %w", err)
	}

	return string(body), nil
}

// splitHeadline splits a "Position at Company" headline into its parts.
// Headlines without the separator are treated as a bare position.
func splitHeadline(headline string) (position, company string) {
	if headline == "" {
		return "", ""
	}

	position, company, found := strings.Cut(headline, " at ")
	if !found {
		return strings.TrimSpace(headline), ""
	}

	return strings.TrimSpace(position), strings.TrimSpace(company)
}
