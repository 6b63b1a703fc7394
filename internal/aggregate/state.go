package aggregate

// State describes where an aggregation run currently is. The aggregator
// advances through the states strictly in order for every run; a run over
// zero queries still passes through all of them.
type State int

const (
	// StateIdle means no run is in progress.
	StateIdle State = iota

	// StateSearching means queries are being executed against the
	// search backend.
	StateSearching

	// StateDeduplicating means search results are being collapsed to
	// unique URLs.
	StateDeduplicating

	// StateScraping means candidate profiles are being fetched.
	StateScraping

	// StateMerged means the run finished and its leads were appended
	// to the collection.
	StateMerged
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateDeduplicating:
		return "deduplicating"
	case StateScraping:
		return "scraping"
	case StateMerged:
		return "merged"
	default:
		return "unknown"
	}
}
