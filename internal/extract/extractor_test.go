package extract

import (
	"reflect"
	"sync"
	"testing"

	"github.com/chanakaprasadcw/Scraping/internal/model"
)

func TestExtractPositions(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	t.Run("collects all hits in vocabulary order", func(t *testing.T) {
		t.Parallel()

		c := e.Extract("find CTOs and founders at startups")
		want := []string{"Founder", "Cto"}
		if !reflect.DeepEqual(c.Positions, want) {
			t.Errorf("Positions = %v, want %v", c.Positions, want)
		}
	})

	t.Run("matches plural forms", func(t *testing.T) {
		t.Parallel()

		c := e.Extract("looking for engineers")
		want := []string{"Engineer"}
		if !reflect.DeepEqual(c.Positions, want) {
			t.Errorf("Positions = %v, want %v", c.Positions, want)
		}
	})

	t.Run("no positions", func(t *testing.T) {
		t.Parallel()

		c := e.Extract("companies in gaming")
		if len(c.Positions) != 0 {
			t.Errorf("Positions = %v, want none", c.Positions)
		}
	})
}

func TestExtractCompanyTypeAndIndustry(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	t.Run("first table entry wins", func(t *testing.T) {
		t.Parallel()

		c := e.Extract("fintech startups in berlin")
		if c.CompanyType != "startup" {
			t.Errorf("CompanyType = %q, want startup", c.CompanyType)
		}
		// "tech" precedes "fintech" in the industry table and matches as
		// a substring, so it wins. Declared order is the contract.
		if c.Industry != "tech" {
			t.Errorf("Industry = %q, want tech", c.Industry)
		}
	})

	t.Run("keyword variants map to one label", func(t *testing.T) {
		t.Parallel()

		c := e.Extract("e-commerce companies")
		if c.CompanyType != "ecommerce" {
			t.Errorf("CompanyType = %q, want ecommerce", c.CompanyType)
		}
	})
}

func TestExtractLocation(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	c := e.Extract("designers in san francisco")
	if c.Location != "San Francisco" {
		t.Errorf("Location = %q, want San Francisco", c.Location)
	}
}

func TestExtractTeamSize(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	tests := []struct {
		name  string
		query string
		want  *model.Range
	}{
		{
			name:  "explicit range",
			query: "companies with 10-50 employees",
			want:  &model.Range{Min: 10, Max: 50},
		},
		{
			name:  "en dash range",
			query: "companies with 10–50 employees",
			want:  &model.Range{Min: 10, Max: 50},
		},
		{
			name:  "team of single",
			query: "a team of 12",
			want:  &model.Range{Min: 12, Max: 12},
		},
		{
			name:  "to range",
			query: "20 to 40 people",
			want:  &model.Range{Min: 20, Max: 40},
		},
		{
			name:  "single with unit",
			query: "about 30 employees",
			want:  &model.Range{Min: 30, Max: 30},
		},
		{
			name:  "absent",
			query: "fintech startups",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := e.Extract(tt.query).TeamSize
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TeamSize = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractFoundingYear(t *testing.T) {
	t.Parallel()

	e := NewExtractor(WithReferenceYear(2026))

	tests := []struct {
		name  string
		query string
		want  *model.Range
	}{
		{
			name:  "relative resolves against reference year",
			query: "startups founded in the last 3 years",
			want:  &model.Range{Min: 2023, Max: 2026},
		},
		{
			name:  "within phrasing",
			query: "started within 5 years",
			want:  &model.Range{Min: 2021, Max: 2026},
		},
		{
			name:  "exact year",
			query: "companies founded in 2020",
			want:  &model.Range{Min: 2020, Max: 2020},
		},
		{
			name:  "since is open-ended to reference year",
			query: "operating since 2019",
			want:  &model.Range{Min: 2019, Max: 2026},
		},
		{
			name:  "absent",
			query: "fintech startups",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := e.Extract(tt.query).FoundingYear
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FoundingYear = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	t.Run("drops stopwords and short tokens", func(t *testing.T) {
		t.Parallel()

		c := e.Extract("the best ai labs in the world")
		for _, kw := range c.Keywords {
			if kw == "the" || kw == "in" || kw == "ai" {
				t.Errorf("keyword %q should have been filtered", kw)
			}
		}
	})

	t.Run("caps at ten", func(t *testing.T) {
		t.Parallel()

		c := e.Extract("alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima")
		if len(c.Keywords) != 10 {
			t.Errorf("got %d keywords, want 10", len(c.Keywords))
		}
	})
}

func TestExtractCompanyNames(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	c := e.Extract("people at Acme Corp and Globex")
	found := map[string]bool{}
	for _, n := range c.CompanyNames {
		found[n] = true
	}
	if !found["Acme Corp"] || !found["Globex"] {
		t.Errorf("CompanyNames = %v, want Acme Corp and Globex", c.CompanyNames)
	}
}

func TestExtractWithCustomVocabulary(t *testing.T) {
	t.Parallel()

	vocab := DefaultVocabulary()
	vocab.Locations = append(vocab.Locations, "lisbon")
	e := NewExtractor(WithVocabulary(vocab))

	c := e.Extract("founders in lisbon")
	if c.Location != "Lisbon" {
		t.Errorf("Location = %q, want Lisbon", c.Location)
	}
}

func TestExtractFullQuery(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	c := e.Extract("Find startup founders in San Francisco with 2-5 team members")
	if want := []string{"Founder"}; !reflect.DeepEqual(c.Positions, want) {
		t.Errorf("Positions = %v, want %v", c.Positions, want)
	}
	if c.CompanyType != "startup" {
		t.Errorf("CompanyType = %q, want startup", c.CompanyType)
	}
	if c.Location != "San Francisco" {
		t.Errorf("Location = %q, want San Francisco", c.Location)
	}
	if want := (&model.Range{Min: 2, Max: 5}); !reflect.DeepEqual(c.TeamSize, want) {
		t.Errorf("TeamSize = %v, want %v", c.TeamSize, want)
	}
}

func TestExtractConcurrent(t *testing.T) {
	t.Parallel()

	e := NewExtractor()
	queries := []string{
		"find ceos in berlin",
		"startup founders in san francisco",
		"CTOs at fintech companies in new york",
		"designers in london with 10-50 employees",
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for _, q := range queries {
			wg.Add(1)
			go func(q string) {
				defer wg.Done()
				if c := e.Extract(q); c.OriginalQuery != q {
					t.Errorf("OriginalQuery = %q, want %q", c.OriginalQuery, q)
				}
			}(q)
		}
	}
	wg.Wait()

	c := e.Extract("find ceos in berlin")
	if want := []string{"Ceo"}; !reflect.DeepEqual(c.Positions, want) {
		t.Errorf("Positions = %v, want %v", c.Positions, want)
	}
	if c.Location != "Berlin" {
		t.Errorf("Location = %q, want Berlin", c.Location)
	}
}

func TestExtractOriginalQueryPreserved(t *testing.T) {
	t.Parallel()

	e := NewExtractor()
	query := "Find CTOs at Fintech Startups"

	if got := e.Extract(query).OriginalQuery; got != query {
		t.Errorf("OriginalQuery = %q, want original casing kept", got)
	}
}
