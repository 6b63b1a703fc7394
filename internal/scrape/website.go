package scrape

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/chanakaprasadcw/Scraping/internal/contact"
	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// phonePattern matches international and local phone number shapes with
// optional separators. Matches are digit-count checked afterwards; the
// regex alone accepts too much (dates, IDs, prices).
var phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{7,18}\d`)

// socialPlatforms maps platform names to link patterns, checked in this
// order. The first matching link per platform wins.
var socialPlatforms = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"linkedin", regexp.MustCompile(`https?://(?:[a-z]{2,3}\.)?linkedin\.com/(?:company|in)/[\w-]+`)},
	{"twitter", regexp.MustCompile(`https?://(?:www\.)?(?:twitter|x)\.com/[\w]+`)},
	{"facebook", regexp.MustCompile(`https?://(?:www\.)?facebook\.com/[\w.]+`)},
	{"github", regexp.MustCompile(`https?://(?:www\.)?github\.com/[\w-]+`)},
	{"instagram", regexp.MustCompile(`https?://(?:www\.)?instagram\.com/[\w.]+`)},
}

// contactPageKeywords are tried in priority order when looking for the
// page most likely to carry contact details.
var contactPageKeywords = []string{"contact", "about", "team"}

// Accepted digit counts for a phone candidate. Ten digits covers national
// numbers, fifteen is the E.164 maximum.
const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// WebsiteScanner fetches a company website and collects the contact
// signals on it: email addresses, phone numbers, social media links and
// the contact page URL if one is linked.
type WebsiteScanner struct {
	scraper *ProfileScraper
	finder  *contact.Finder
}

// NewWebsiteScanner creates a WebsiteScanner sharing the given scraper's
// HTTP settings and the given email finder.
func NewWebsiteScanner(scraper *ProfileScraper, finder *contact.Finder) *WebsiteScanner {
	return &WebsiteScanner{
		scraper: scraper,
		finder:  finder,
	}
}

// ScanWebsite fetches one page and extracts its contact signals.
func (w *WebsiteScanner) ScanWebsite(ctx context.Context, siteURL string) (*model.ContactInfo, error) {
	source, err := w.scraper.fetch(ctx, siteURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse website: %w", err)
	}

	info := &model.ContactInfo{
		URL:         siteURL,
		Emails:      w.finder.FindInHTML(source),
		Phones:      extractPhones(source),
		SocialLinks: extractSocialLinks(source),
		ContactPage: findContactPage(doc, siteURL),
	}

	return info, nil
}

// extractPhones collects phone numbers from the page source. Candidates
// pass only when their digit count lands in the plausible phone range.
func extractPhones(source string) []string {
	var phones []string
	seen := make(map[string]bool)

	for _, candidate := range phonePattern.FindAllString(source, -1) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits < minPhoneDigits || digits > maxPhoneDigits {
			continue
		}

		normalized := strings.Join(strings.Fields(candidate), " ")
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		phones = append(phones, normalized)
	}

	return phones
}

// extractSocialLinks finds the first link per known social platform.
func extractSocialLinks(source string) map[string]string {
	links := make(map[string]string)

	for _, platform := range socialPlatforms {
		if match := platform.pattern.FindString(source); match != "" {
			links[platform.name] = match
		}
	}

	return links
}

// findContactPage looks for an anchor pointing at a contact, about or
// team page and resolves it against the site URL. Keywords are tried in
// priority order so a contact link beats an about link regardless of
// document position. Returns empty when no such link exists.
func findContactPage(doc *goquery.Document, siteURL string) string {
	base, err := url.Parse(siteURL)
	if err != nil {
		return ""
	}

	for _, keyword := range contactPageKeywords {
		var page string
		doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			href, _ := sel.Attr("href")
			text := strings.ToLower(sel.Text())

			if !strings.Contains(strings.ToLower(href), keyword) && !strings.Contains(text, keyword) {
				return true
			}

			ref, err := url.Parse(href)
			if err != nil {
				return true
			}

			page = base.ResolveReference(ref).String()
			return false
		})
		if page != "" {
			return page
		}
	}

	return ""
}
