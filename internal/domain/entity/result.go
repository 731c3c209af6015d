package entity

// Outcome describes how an election ended
type Outcome string

const (
	OutcomeSingleWinner Outcome = "single"
	OutcomeDraw         Outcome = "draw"
	OutcomeNoWinner     Outcome = "none"
)

// Standing is one nominee's line in the results listing
type Standing struct {
	NomineeID string
	Label     string
	Votes     int
	Percent   float64
	// Resolved is false when the nominee is no longer a guild member
	Resolved bool
}

// ElectionResult is the outcome of processing an election's ballots
type ElectionResult struct {
	Standings    []Standing
	Winners      []Standing
	MaxVotes     int
	TotalVotes   int
	Outcome      Outcome
	Announcement string
	RoleErrors   []error
}
