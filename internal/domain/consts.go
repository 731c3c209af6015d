package domain

import "time"

// ISO 8601 weekday constants
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// ISOWeekday converts a Go weekday (Sunday = 0) to ISO 8601 (Sunday = 7)
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return Sunday
	}
	return int(d)
}

// Schedule job names, also used as keys of the persisted schedule
const (
	JobNominationStart = "nomination_start"
	JobNominationClose = "nomination_close"
	JobVotingStart     = "voting_start"
	JobVotingEnd       = "voting_end"
	JobNextElection    = "next_election"
)

// JobNames lists every schedule key in cycle order
var JobNames = []string{
	JobNominationStart,
	JobNominationClose,
	JobVotingStart,
	JobVotingEnd,
	JobNextElection,
}

// Default cycle cadence
const (
	NominationOpenDay      = Monday
	NominationCloseDay     = Thursday
	NominationCloseHour    = 23
	NominationCloseMinute  = 59
	DefaultVotingDuration  = 24 * time.Hour
	DefaultCycleInterval   = 10
	DefaultTransitionLimit = 2 * time.Minute
)

// Phase is the current step of the election cycle
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseNominationsOpen
	PhaseVotingOpen
	PhaseTallying
)

func (p Phase) String() string {
	switch p {
	case PhaseNominationsOpen:
		return "nominations open"
	case PhaseVotingOpen:
		return "voting open"
	case PhaseTallying:
		return "tallying"
	default:
		return "closed"
	}
}

// UnknownMemberLabel is shown in results for nominees that left the guild
const UnknownMemberLabel = "Unknown member (%s)"
