// Package contact extracts contact data, primarily email addresses, from
// raw text and HTML page source.
//
// Extraction is deliberately best-effort: a single regex plus a fixed
// exclusion list of known false positives (image names, placeholder
// domains, density-marker artifacts). An optional strict mode applies full
// address-grammar validation for callers that prefer precision over recall.
package contact
