package model

import "strings"

// Lead is the canonical aggregated record about one person, built from one
// or more sources during a session.
//
// A Lead is created when a candidate profile URL (or an input name) is first
// selected, mutated in place as each source contributes fields, and never
// deleted within a session. The aggregator exclusively owns the lead
// collection; exporters only read a snapshot.
type Lead struct {
	// === Identity ===

	// Name is the person's name. It may be empty when extraction found
	// nothing; such leads are still kept.
	Name string `json:"name"`

	// LinkedInURL is the profile URL this lead was built from, if known.
	// Once set it is the lead's identity key and must not change.
	LinkedInURL string `json:"linkedin_url,omitempty"`

	// Company is the person's company.
	Company string `json:"company,omitempty"`

	// Title is the person's current job title.
	Title string `json:"title,omitempty"`

	// Location is the person's location.
	Location string `json:"location,omitempty"`

	// === Contact ===

	// Emails is the union of addresses found across all sources touching
	// this lead. Identity is case-insensitive; entries are stored lowercase
	// in first-seen order.
	Emails []string `json:"emails"`

	// SocialLinks maps platform name to profile URL. The first writer for
	// a platform wins; later scans never overwrite an existing entry.
	SocialLinks map[string]string `json:"social_links,omitempty"`

	// === Enrichment ===

	// About is the profile summary text.
	About string `json:"about,omitempty"`

	// Headline is the short self-description from the profile.
	Headline string `json:"headline,omitempty"`

	// Experience holds past positions in source order.
	Experience []Experience `json:"experience,omitempty"`

	// Education holds education entries in source order.
	Education []Education `json:"education,omitempty"`

	// === Provenance ===

	// SearchQuery is the original free-text query that produced this lead,
	// when the lead came from the natural-language flow.
	SearchQuery string `json:"search_query,omitempty"`

	// MatchedCriteria is the criteria subset the lead was matched against.
	MatchedCriteria *CriteriaSnapshot `json:"matched_criteria,omitempty"`
}

// NewLead creates a Lead keyed by the given name.
func NewLead(name string) *Lead {
	return &Lead{
		Name:        name,
		Emails:      make([]string, 0),
		SocialLinks: make(map[string]string),
	}
}

// LeadFromProfile builds a Lead from a fetched profile record.
// The record's URL becomes the lead's identity key.
func LeadFromProfile(rec *ProfileRecord) *Lead {
	lead := NewLead(rec.Name)
	lead.LinkedInURL = rec.URL
	lead.Company = rec.CurrentCompany
	lead.Title = rec.CurrentPosition
	lead.Location = rec.Location
	lead.About = rec.About
	lead.Headline = rec.Headline
	lead.Experience = append(lead.Experience, rec.Experience...)
	lead.Education = append(lead.Education, rec.Education...)
	lead.AddEmails(rec.Emails)
	return lead
}

// Key returns the lead's stable identity: its profile URL when known,
// otherwise the input name it was created with.
func (l *Lead) Key() string {
	if l.LinkedInURL != "" {
		return l.LinkedInURL
	}
	return l.Name
}

// AddEmail inserts an address into the email set. Addresses are
// case-folded to lowercase; duplicates are ignored.
func (l *Lead) AddEmail(email string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return
	}
	for _, existing := range l.Emails {
		if existing == email {
			return
		}
	}
	l.Emails = append(l.Emails, email)
}

// AddEmails unions a batch of addresses into the email set.
func (l *Lead) AddEmails(emails []string) {
	for _, e := range emails {
		l.AddEmail(e)
	}
}

// AddSocialLink records a platform link unless the platform already has
// one. First writer wins; existing entries are never replaced.
func (l *Lead) AddSocialLink(platform, url string) {
	if platform == "" || url == "" {
		return
	}
	if l.SocialLinks == nil {
		l.SocialLinks = make(map[string]string)
	}
	if _, ok := l.SocialLinks[platform]; ok {
		return
	}
	l.SocialLinks[platform] = url
}

// MergeContacts unions contact data from a website scan into the lead:
// emails are unioned and social links are added with first-writer-wins
// semantics. Other ContactInfo fields are ignored.
func (l *Lead) MergeContacts(info *ContactInfo) {
	if info == nil {
		return
	}
	l.AddEmails(info.Emails)
	for platform, url := range info.SocialLinks {
		l.AddSocialLink(platform, url)
	}
}

// HasEmails reports whether at least one email address is known.
func (l *Lead) HasEmails() bool {
	return len(l.Emails) > 0
}
