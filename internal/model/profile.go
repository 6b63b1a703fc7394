package model

// Experience is one entry of a profile's work history.
type Experience struct {
	// Position is the job title for this entry.
	Position string `json:"position,omitempty"`

	// Company is the employer for this entry.
	Company string `json:"company,omitempty"`
}

// Education is one entry of a profile's education history.
type Education struct {
	// School is the institution name.
	School string `json:"school"`
}

// ProfileRecord is the structured result of fetching one profile page.
// A fetch failure is reported as an error by the fetcher; an empty
// ProfileRecord with no error means the page was reachable but yielded
// no extractable data. The aggregator depends on that distinction for
// its no-abort policy.
type ProfileRecord struct {
	// URL is the profile page that was fetched.
	URL string `json:"url"`

	// Name is the person's display name, possibly empty.
	Name string `json:"name,omitempty"`

	// Headline is the short self-description under the name.
	Headline string `json:"headline,omitempty"`

	// Location is the profile's stated location.
	Location string `json:"location,omitempty"`

	// About is the profile summary text.
	About string `json:"about,omitempty"`

	// CurrentPosition is the current job title, usually derived from the
	// headline ("Position at Company").
	CurrentPosition string `json:"current_position,omitempty"`

	// CurrentCompany is the current employer, derived like CurrentPosition.
	CurrentCompany string `json:"current_company,omitempty"`

	// Experience holds past positions in page order.
	Experience []Experience `json:"experience,omitempty"`

	// Education holds education entries in page order.
	Education []Education `json:"education,omitempty"`

	// Emails are addresses found anywhere in the page source.
	Emails []string `json:"emails,omitempty"`
}

// ContactInfo is the result of scanning a generic website for contact data.
type ContactInfo struct {
	// URL is the page that was scanned.
	URL string `json:"url"`

	// Emails are addresses found in the page, already deduplicated.
	Emails []string `json:"emails,omitempty"`

	// Phones are phone numbers found in the page.
	Phones []string `json:"phones,omitempty"`

	// SocialLinks maps platform name (linkedin, twitter, facebook, github,
	// instagram) to the first profile URL seen for that platform.
	SocialLinks map[string]string `json:"social_links,omitempty"`

	// ContactPage is the discovered contact/about page URL, or empty.
	ContactPage string `json:"contact_page,omitempty"`
}
