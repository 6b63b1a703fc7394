package contact

import (
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
	"golang.org/x/net/html"
)

// Finder extracts email addresses from raw text and HTML.
// It is a pure function of its input: no network or file I/O.
//
// Design decision: We implement extraction as a configured struct rather
// than package functions because the strict-validation mode and the
// exclusion list are per-pipeline settings, and precompiling the regex once
// keeps repeated scans cheap.
type Finder struct {
	// pattern matches local-part@domain.tld candidates.
	pattern *regexp.Regexp

	// strict enables full address-grammar validation of each candidate.
	// The default trusts the regex.
	strict bool
}

// emailPattern matches most valid addresses: ASCII letters, digits and
// ._%+- in the local part, dot-separated domain labels, TLD of at least
// two letters.
const emailPattern = `\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[a-zA-Z]{2,}\b`

// excludeSuffixes are suffix patterns that mark a match as a false
// positive: image file names that embed an "@" (icons, avatars) and known
// placeholder domains. Checked against the whole matched address.
var excludeSuffixes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".svg",
	"example.com", "test.com", "sample.com",
}

// excludeSubstrings are substring patterns marking density-marker artifacts
// ("logo@2x.png") and error-tracker identifiers. Checked against the whole
// matched address, not just the domain.
var excludeSubstrings = []string{
	"@sentry", "@2x.", "@3x.",
}

// entityReplacer decodes the small set of HTML-entity obfuscations used to
// hide addresses from naive scrapers.
var entityReplacer = strings.NewReplacer(
	"&at;", "@",
	"&#64;", "@",
	"&dot;", ".",
	"&#46;", ".",
)

// Option configures a Finder.
type Option func(*Finder)

// WithStrictValidation enables full address-grammar validation.
// Candidates that fail validation are dropped.
func WithStrictValidation(strict bool) Option {
	return func(f *Finder) {
		f.strict = strict
	}
}

// NewFinder creates a Finder. By default only the extraction regex and the
// exclusion list are applied.
func NewFinder(opts ...Option) *Finder {
	f := &Finder{
		pattern: regexp.MustCompile(emailPattern),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Find returns the unique email addresses in text, lowercased, in order of
// first occurrence. Matches hitting an exclusion pattern are dropped.
func (f *Finder) Find(text string) []string {
	if text == "" {
		return []string{}
	}

	matches := f.pattern.FindAllString(text, -1)

	emails := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))

	for _, m := range matches {
		email := strings.ToLower(m)
		if seen[email] {
			continue
		}
		seen[email] = true

		if !f.isAcceptable(email) {
			continue
		}
		emails = append(emails, email)
	}

	return emails
}

// FindInHTML extracts addresses from HTML source. Tags are replaced with a
// single space so that text from adjacent elements cannot concatenate into
// a bogus address, and common entity obfuscations are decoded before the
// text is scanned.
func (f *Finder) FindInHTML(source string) []string {
	if source == "" {
		return []string{}
	}
	return f.Find(entityReplacer.Replace(stripTags(source)))
}

// isAcceptable applies the exclusion list and, in strict mode, full
// grammar validation.
func (f *Finder) isAcceptable(email string) bool {
	for _, suffix := range excludeSuffixes {
		if strings.HasSuffix(email, suffix) {
			return false
		}
	}
	for _, sub := range excludeSubstrings {
		if strings.Contains(email, sub) {
			return false
		}
	}

	if f.strict && !govalidator.IsEmail(email) {
		return false
	}

	return true
}

// stripTags reduces HTML source to its text content, joining text runs
// with single spaces. The tokenizer handles malformed markup and decodes
// standard entities; the nonstandard obfuscation entities survive as text
// and are decoded by the caller.
func stripTags(source string) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(source))

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			// io.EOF or malformed input; either way we keep what we have.
			break
		}
		if tt == html.TextToken {
			text := strings.TrimSpace(tokenizer.Token().Data)
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(text)
		}
	}

	return b.String()
}
