// Package query plans search engine queries from structured criteria.
//
// The planner is a pure function over criteria: no network access, no
// state, deterministic output. Callers decide how many of the planned
// queries to actually execute.
package query
