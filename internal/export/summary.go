package export

import (
	"fmt"
	"strings"

	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// Summary holds the headline statistics of a lead collection.
type Summary struct {
	// Total is the number of leads, including name-only ones.
	Total int

	// WithEmails counts leads carrying at least one email address.
	WithEmails int

	// WithProfileURL counts leads backed by a fetched profile.
	WithProfileURL int

	// UniqueCompanies counts distinct non-empty company names,
	// case-insensitively.
	UniqueCompanies int

	// TotalEmails is the sum of email addresses across all leads.
	TotalEmails int
}

// Summarize computes the statistics for a lead collection.
func Summarize(leads []*model.Lead) Summary {
	var s Summary
	companies := make(map[string]bool)

	for _, lead := range leads {
		s.Total++
		if lead.HasEmails() {
			s.WithEmails++
		}
		if lead.LinkedInURL != "" {
			s.WithProfileURL++
		}
		if lead.Company != "" {
			companies[strings.ToLower(lead.Company)] = true
		}
		s.TotalEmails += len(lead.Emails)
	}

	s.UniqueCompanies = len(companies)
	return s
}

// String renders the summary as the block printed at the end of a run.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total leads:            %d\n", s.Total)
	fmt.Fprintf(&b, "Leads with emails:      %d\n", s.WithEmails)
	fmt.Fprintf(&b, "Leads with profile URL: %d\n", s.WithProfileURL)
	fmt.Fprintf(&b, "Unique companies:       %d\n", s.UniqueCompanies)
	fmt.Fprintf(&b, "Total email addresses:  %d\n", s.TotalEmails)
	return b.String()
}
