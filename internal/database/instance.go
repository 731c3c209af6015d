package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	loc            *time.Location
	nominationRepo contract.NominationRepo
	ballotRepo     contract.BallotRepo
	scheduleRepo   contract.ScheduleRepo
}

// NewInstance creates a new database instance with all repositories.
// Schedule times are returned in loc.
func NewInstance(db *DB, loc *time.Location) contract.DataManager {
	if loc == nil {
		loc = time.UTC
	}
	instance := &instance{
		db:  db,
		loc: loc,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.nominationRepo = newNominationRepo(i.db.conn)
	i.ballotRepo = newBallotRepo(i.db.conn)
	i.scheduleRepo = newScheduleRepo(i.db.conn, i.loc)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn, loc *time.Location) *instance {
	return &instance{
		loc:            loc,
		nominationRepo: newNominationRepo(db),
		ballotRepo:     newBallotRepo(db),
		scheduleRepo:   newScheduleRepo(db, loc),
	}
}

func (i *instance) Nomination() contract.NominationRepo {
	return i.nominationRepo
}

func (i *instance) Ballot() contract.BallotRepo {
	return i.ballotRepo
}

func (i *instance) Schedule() contract.ScheduleRepo {
	return i.scheduleRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx, i.loc)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
