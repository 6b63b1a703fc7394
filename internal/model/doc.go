// Package model defines the core data structures used throughout the lead
// scraping pipeline.
//
// This package contains the following main types:
//   - Criteria: Structured search parameters extracted from a free-text query
//   - SearchResult / ResultSet: Search backend output and its ordered,
//     last-write-wins deduplication
//   - ProfileRecord / ContactInfo: Structured results of fetching a profile
//     page or scanning a website for contact data
//   - Lead: The canonical aggregated record about one person
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (extract, query, aggregate, export) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for export and
// database storage.
package model
