// Package extract turns free-text search requests into structured criteria.
//
// Extraction is vocabulary-driven, not statistical: fixed ordered keyword
// tables decide positions, company type, industry and location, and a small
// set of regexes handles numeric ranges (team size, founding year). The
// vocabularies are the contract, and their declared order is the tie-break
// priority.
package extract
