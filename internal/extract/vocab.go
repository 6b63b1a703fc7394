package extract

// CompanyTypeEntry binds a company-type label to the keywords that imply it.
type CompanyTypeEntry struct {
	// Type is the canonical label, e.g. "startup".
	Type string

	// Keywords are the lowercase substrings that select this type.
	Keywords []string
}

// Vocabulary holds the fixed keyword tables the extractor matches against.
//
// Declared order is a deliberate priority list: company type, industry and
// location extraction return on the FIRST hit, so reordering an entry is a
// visible behavior change, not a cosmetic one. This is why the tables are
// ordered slices rather than sets or maps.
type Vocabulary struct {
	// Positions are job-title tokens. Position extraction keeps every hit,
	// in this order.
	Positions []string

	// CompanyTypes map keyword groups to a closed set of company-type
	// labels. First matching keyword wins; no multi-label support.
	CompanyTypes []CompanyTypeEntry

	// Industries are industry tokens tested in order; first hit wins.
	Industries []string

	// Locations are lowercase location tokens tested in order; first hit
	// wins and is title-cased in the result.
	Locations []string

	// Stopwords are dropped during keyword extraction.
	Stopwords []string

	// NameStopwords are capitalized words excluded from the company-name
	// heuristic (sentence-initial articles and prepositions).
	NameStopwords []string
}

// DefaultVocabulary returns the built-in keyword tables.
// The entries and their order are part of the extraction contract; tests
// depend on this exact priority.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Positions: []string{
			"founder", "co-founder", "ceo", "cto", "cfo", "coo", "president",
			"vp", "vice president", "director", "manager", "lead", "head",
			"engineer", "developer", "designer", "architect", "analyst",
			"executive", "officer", "partner", "owner", "principal",
		},
		CompanyTypes: []CompanyTypeEntry{
			{Type: "startup", Keywords: []string{"startup", "start-up", "startups"}},
			{Type: "enterprise", Keywords: []string{"enterprise", "corporation", "corporate"}},
			{Type: "agency", Keywords: []string{"agency", "agencies"}},
			{Type: "consulting", Keywords: []string{"consulting", "consultancy"}},
			{Type: "saas", Keywords: []string{"saas", "software as a service"}},
			{Type: "ecommerce", Keywords: []string{"e-commerce", "ecommerce", "online store"}},
			{Type: "fintech", Keywords: []string{"fintech", "financial technology"}},
			{Type: "healthtech", Keywords: []string{"healthtech", "health tech", "healthcare technology"}},
		},
		Industries: []string{
			"tech", "technology", "software", "ai", "ml", "machine learning",
			"cloud", "saas", "fintech", "healthcare", "education", "edtech",
			"marketing", "sales", "finance", "hr", "recruiting", "legal",
			"real estate", "construction", "manufacturing", "retail",
			"hospitality", "travel", "entertainment", "media", "gaming",
		},
		Locations: []string{
			"san francisco", "sf", "bay area", "silicon valley", "new york",
			"nyc", "boston", "austin", "seattle", "los angeles", "la",
			"chicago", "denver", "miami", "atlanta", "london", "berlin",
			"singapore", "bangalore", "toronto", "remote", "worldwide",
		},
		Stopwords: []string{
			"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
			"for", "of", "with", "that", "have", "has", "had", "is", "are",
			"was", "were", "be", "been", "being", "this", "these", "those",
		},
		NameStopwords: []string{
			"The", "A", "An", "In", "On", "At", "To", "For",
		},
	}
}
