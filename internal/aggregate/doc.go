// Package aggregate orchestrates the lead pipeline: search, deduplicate,
// scrape, merge.
//
// The Aggregator owns the lead collection for a session and drives its
// collaborators through a fixed state sequence. Collaborators are small
// interfaces declared in this package; the search and scrape packages
// provide the production implementations.
package aggregate
