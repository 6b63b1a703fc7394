package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chanakaprasadcw/Scraping/internal/contact"
)

const profilePage = `<html><body>
<h1>Jane Doe</h1>
<div class="text-body-medium">CTO at Acme Corp</div>
<span class="text-body-small">Berlin, Germany</span>
<section class="summary">Building payments infrastructure. Reach me at jane@acme-corp.io</section>
<ul class="experience__list">
  <li><h3>CTO</h3><h4>Acme Corp</h4></li>
  <li><h3>Engineer</h3><h4>Globex</h4></li>
</ul>
<ul class="education__list">
  <li class="education__list-item"><h3>TU Berlin</h3></li>
</ul>
</body></html>`

func newTestScraper(t *testing.T, handler http.HandlerFunc) (*ProfileScraper, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	scraper := NewProfileScraper(srv.Client(), contact.NewFinder())
	return scraper, srv
}

func TestProfileScraperFetchProfile(t *testing.T) {
	t.Parallel()

	t.Run("extracts fields", func(t *testing.T) {
		t.Parallel()

		scraper, srv := newTestScraper(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(profilePage))
		})

		rec, err := scraper.FetchProfile(context.Background(), srv.URL+"/in/janedoe")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if rec.Name != "Jane Doe" {
			t.Errorf("Name = %q, want Jane Doe", rec.Name)
		}
		if rec.CurrentPosition != "CTO" || rec.CurrentCompany != "Acme Corp" {
			t.Errorf("position/company = %q/%q, want CTO/Acme Corp",
				rec.CurrentPosition, rec.CurrentCompany)
		}
		if rec.Location != "Berlin, Germany" {
			t.Errorf("Location = %q", rec.Location)
		}
		if len(rec.Experience) != 2 {
			t.Errorf("got %d experience entries, want 2", len(rec.Experience))
		}
		if len(rec.Education) != 1 || rec.Education[0].School != "TU Berlin" {
			t.Errorf("Education = %v", rec.Education)
		}
		if len(rec.Emails) != 1 || rec.Emails[0] != "jane@acme-corp.io" {
			t.Errorf("Emails = %v, want the about-section address", rec.Emails)
		}
	})

	t.Run("empty page is success with empty record", func(t *testing.T) {
		t.Parallel()

		scraper, srv := newTestScraper(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html><body></body></html>"))
		})

		rec, err := scraper.FetchProfile(context.Background(), srv.URL+"/in/ghost")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Name != "" || len(rec.Emails) != 0 {
			t.Errorf("expected empty record, got %+v", rec)
		}
		if rec.URL == "" {
			t.Error("record must carry the requested URL")
		}
	})

	t.Run("caps history lists", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString(`<html><body><ul class="experience__list">`)
		for i := 0; i < 8; i++ {
			fmt.Fprintf(&b, "<li><h3>Role %d</h3><h4>Corp %d</h4></li>", i, i)
		}
		b.WriteString(`</ul><ul class="education__list">`)
		for i := 0; i < 6; i++ {
			fmt.Fprintf(&b, `<li class="education__list-item"><h3>School %d</h3></li>`, i)
		}
		b.WriteString(`</ul></body></html>`)
		page := b.String()

		scraper, srv := newTestScraper(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(page))
		})

		rec, err := scraper.FetchProfile(context.Background(), srv.URL+"/in/veteran")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rec.Experience) != maxExperienceEntries {
			t.Errorf("got %d experience entries, want %d", len(rec.Experience), maxExperienceEntries)
		}
		if len(rec.Education) != maxEducationEntries {
			t.Errorf("got %d education entries, want %d", len(rec.Education), maxEducationEntries)
		}
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		t.Parallel()

		scraper, srv := newTestScraper(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		if _, err := scraper.FetchProfile(context.Background(), srv.URL+"/in/janedoe"); err == nil {
			t.Error("expected error for non-200 status")
		}
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		scraper, srv := newTestScraper(t, func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(profilePage))
		})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		if _, err := scraper.FetchProfile(ctx, srv.URL+"/in/janedoe"); err == nil {
			t.Error("expected error after context deadline")
		}
	})
}

func TestSplitHeadline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		headline     string
		wantPosition string
		wantCompany  string
	}{
		{name: "position at company", headline: "CTO at Acme Corp", wantPosition: "CTO", wantCompany: "Acme Corp"},
		{name: "bare position", headline: "Founder", wantPosition: "Founder", wantCompany: ""},
		{name: "empty", headline: "", wantPosition: "", wantCompany: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			position, company := splitHeadline(tt.headline)
			if position != tt.wantPosition || company != tt.wantCompany {
				t.Errorf("splitHeadline(%q) = %q/%q, want %q/%q",
					tt.headline, position, company, tt.wantPosition, tt.wantCompany)
			}
		})
	}
}
