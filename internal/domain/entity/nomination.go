package entity

// Member is a guild member as seen by the bot
type Member struct {
	ID          string
	DisplayName string
	Bot         bool
}

// Nomination is a candidate nominated in the current cycle
type Nomination struct {
	CandidateID string
	DisplayName string
}

// Ballot is a voter's current choice, replaced by later votes
type Ballot struct {
	VoterID   string
	NomineeID string
}
