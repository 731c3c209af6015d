// Package filestore keeps the election records in flat files: one CSV file per
// record set and a JSON document for the schedule.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
)

const (
	NomineesFile     = "nominees.csv"
	VotesFile        = "votes.csv"
	ScheduleFile     = "election_schedule.json"
	LastElectionFile = "last_election.txt"
)

// Store implements DataManager on top of a data directory
type Store struct {
	dir            string
	nominationRepo contract.NominationRepo
	ballotRepo     contract.BallotRepo
	scheduleRepo   contract.ScheduleRepo
}

// New creates the data directory if needed. Files inside it are created lazily.
// Naive timestamps found in the schedule file are read in loc.
func New(dir string, loc *time.Location) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Store{
		dir:            dir,
		nominationRepo: newNominationRepo(filepath.Join(dir, NomineesFile)),
		ballotRepo:     newBallotRepo(filepath.Join(dir, VotesFile)),
		scheduleRepo: newScheduleRepo(
			filepath.Join(dir, ScheduleFile),
			filepath.Join(dir, LastElectionFile),
			loc,
		),
	}, nil
}

func (s *Store) Nomination() contract.NominationRepo {
	return s.nominationRepo
}

func (s *Store) Ballot() contract.BallotRepo {
	return s.ballotRepo
}

func (s *Store) Schedule() contract.ScheduleRepo {
	return s.scheduleRepo
}

// WithTransaction runs fn against the store itself. Files have no rollback; callers
// serialize access through the election service lock.
func (s *Store) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s)
}
