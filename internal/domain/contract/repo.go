package contract

import (
	"context"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Nomination() NominationRepo
	Ballot() BallotRepo
	Schedule() ScheduleRepo
}

// NominationRepo defines the contract for the nominee list of the current cycle
type NominationRepo interface {
	// Add appends the nomination unless the candidate is already present
	Add(nomination entity.Nomination) error
	List() ([]entity.Nomination, error)
	Exists(candidateID string) (bool, error)
	Clear() error
}

// BallotRepo defines the contract for the ballots of the current cycle
type BallotRepo interface {
	// Record replaces any previous ballot of the same voter
	Record(ballot entity.Ballot) error
	// Tally counts ballots per nominee. Nominees without votes are absent.
	Tally() (map[string]int, error)
	Clear() error
}

// ScheduleRepo defines the contract for persisted phase transitions
type ScheduleRepo interface {
	// Load returns an empty schedule when nothing valid is persisted
	Load() (entity.Schedule, error)
	Save(schedule entity.Schedule) error
	LastElection() (time.Time, bool, error)
	SetLastElection(at time.Time) error
}
