package domain

// Status is the state of a hunt.
type Status string

const (
	StatusSearching Status = "searching" // Candidates remain
	StatusFound     Status = "found"     // Engine reported a match
	StatusExhausted Status = "exhausted" // Every candidate was tried or skipped
)

// Outcome summarizes a finished (or interrupted) run.
type Outcome struct {
	Status Status `json:"status"`
	Result Result `json:"result,omitempty"`

	// Total is the size of the candidate space.
	Total uint64 `json:"total"`
	// Attempted counts candidates handed to the engine.
	Attempted uint64 `json:"attempted"`
	// Skipped counts candidates filtered out by the exclusion set.
	Skipped uint64 `json:"skipped"`
}
