package scrape

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/chanakaprasadcw/Scraping/internal/contact"
)

const companyPage = `<html><body>
<p>Write to info@acme-corp.io or call +49 30 1234 5678.</p>
<a href="https://www.linkedin.com/company/acme-corp">LinkedIn</a>
<a href="https://twitter.com/acmecorp">Twitter</a>
<a href="/contact">Contact us</a>
<p>Order #123 from 2024-01-02.</p>
</body></html>`

func newTestScanner(t *testing.T, handler http.HandlerFunc) (*WebsiteScanner, string) {
	t.Helper()
	scraper, srv := newTestScraper(t, handler)
	return NewWebsiteScanner(scraper, contact.NewFinder()), srv.URL
}

func TestWebsiteScannerScanWebsite(t *testing.T) {
	t.Parallel()

	t.Run("collects contact signals", func(t *testing.T) {
		t.Parallel()

		scanner, base := newTestScanner(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(companyPage))
		})

		info, err := scanner.ScanWebsite(context.Background(), base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(info.Emails) != 1 || info.Emails[0] != "info@acme-corp.io" {
			t.Errorf("Emails = %v", info.Emails)
		}
		if len(info.Phones) != 1 {
			t.Errorf("Phones = %v, want one number", info.Phones)
		}
		if info.SocialLinks["linkedin"] != "https://www.linkedin.com/company/acme-corp" {
			t.Errorf("linkedin link = %q", info.SocialLinks["linkedin"])
		}
		if info.SocialLinks["twitter"] != "https://twitter.com/acmecorp" {
			t.Errorf("twitter link = %q", info.SocialLinks["twitter"])
		}
		if info.ContactPage != base+"/contact" {
			t.Errorf("ContactPage = %q, want resolved /contact", info.ContactPage)
		}
	})

	t.Run("fetch failure is an error", func(t *testing.T) {
		t.Parallel()

		scanner, base := newTestScanner(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		if _, err := scanner.ScanWebsite(context.Background(), base); err != nil {
			return
		}
		t.Error("expected error for 404 response")
	})
}

func TestExtractPhones(t *testing.T) {
	t.Parallel()

	t.Run("accepts plausible numbers", func(t *testing.T) {
		t.Parallel()

		phones := extractPhones("Call +1 (415) 555-0123 today")
		if len(phones) != 1 {
			t.Fatalf("got %v, want one number", phones)
		}
	})

	t.Run("rejects short digit runs", func(t *testing.T) {
		t.Parallel()

		if phones := extractPhones("Room 12-345, est. 1987"); len(phones) != 0 {
			t.Errorf("got %v, want none", phones)
		}
	})

	t.Run("rejects overlong digit runs", func(t *testing.T) {
		t.Parallel()

		if phones := extractPhones("id 12345678901234567890"); len(phones) != 0 {
			t.Errorf("got %v, want none", phones)
		}
	})

	t.Run("deduplicates", func(t *testing.T) {
		t.Parallel()

		phones := extractPhones("+49 30 1234 5678 and again +49 30 1234 5678")
		if len(phones) != 1 {
			t.Errorf("got %v, want one number", phones)
		}
	})
}

func TestExtractSocialLinks(t *testing.T) {
	t.Parallel()

	t.Run("first link per platform wins", func(t *testing.T) {
		t.Parallel()

		source := `<a href="https://twitter.com/first">x</a><a href="https://twitter.com/second">y</a>`
		links := extractSocialLinks(source)
		if links["twitter"] != "https://twitter.com/first" {
			t.Errorf("twitter = %q, want first link", links["twitter"])
		}
	})

	t.Run("x.com counts as twitter", func(t *testing.T) {
		t.Parallel()

		links := extractSocialLinks(`<a href="https://x.com/acme">x</a>`)
		if links["twitter"] == "" {
			t.Error("expected x.com link under twitter")
		}
	})

	t.Run("recognizes github", func(t *testing.T) {
		t.Parallel()

		links := extractSocialLinks(`<a href="https://github.com/acme-corp">code</a>`)
		if links["github"] != "https://github.com/acme-corp" {
			t.Errorf("github = %q", links["github"])
		}
	})
}

func TestFindContactPage(t *testing.T) {
	t.Parallel()

	parse := func(t *testing.T, src string) *goquery.Document {
		t.Helper()
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
		if err != nil {
			t.Fatal(err)
		}
		return doc
	}

	t.Run("contact beats about regardless of position", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<a href="/about">About</a><a href="/contact">Contact</a>`)
		got := findContactPage(doc, "https://acme.example")
		if got != "https://acme.example/contact" {
			t.Errorf("findContactPage() = %q", got)
		}
	})

	t.Run("falls back to team page", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<a href="/our-team">Meet us</a>`)
		got := findContactPage(doc, "https://acme.example")
		if got != "https://acme.example/our-team" {
			t.Errorf("findContactPage() = %q", got)
		}
	})

	t.Run("empty when nothing matches", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<a href="/pricing">Pricing</a>`)
		if got := findContactPage(doc, "https://acme.example"); got != "" {
			t.Errorf("findContactPage() = %q, want empty", got)
		}
	})
}
