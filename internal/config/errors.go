package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoSearchMode is returned when neither a natural-language query nor
	// structured criteria (names or a company) were provided.
	ErrNoSearchMode = errors.New("no search input: provide --query, --names, --company, or a criteria file")

	// ErrConflictingModes is returned when both a natural-language query and
	// structured criteria are given. Exactly one mode is active per run.
	ErrConflictingModes = errors.New("conflicting search modes: --query cannot be combined with --names/--company")

	// ErrInvalidLimit is returned when a search or fetch limit is not
	// positive. A limit of zero would mean no work at all.
	ErrInvalidLimit = errors.New("invalid limit: must be positive")

	// ErrInvalidDelay is returned when the request delay is negative.
	// Use 0 for no delay between requests.
	ErrInvalidDelay = errors.New("invalid request delay: must be non-negative")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A zero timeout would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidReferenceYear is returned for implausible reference years.
	// Founding-year extraction needs a sane anchor to resolve against.
	ErrInvalidReferenceYear = errors.New("invalid reference year: must be 1900 or later")

	// ErrUnknownFormat is returned for an unrecognized export format.
	ErrUnknownFormat = errors.New("unknown output format: must be one of csv, json, excel, markdown")
)
