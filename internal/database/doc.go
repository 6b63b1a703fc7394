// Package database provides SQLite persistence for search runs and leads.
//
// Storage is append-only: every saved run gets its own row set, so the
// database accumulates a history of what was searched and what it found.
// Leads are stored as JSON alongside a few queryable columns.
package database
