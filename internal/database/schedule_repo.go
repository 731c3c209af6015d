package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

type scheduleRepo struct {
	db  dbConn
	loc *time.Location
}

func newScheduleRepo(db dbConn, loc *time.Location) contract.ScheduleRepo {
	return &scheduleRepo{db: db, loc: loc}
}

func (r *scheduleRepo) Load() (entity.Schedule, error) {
	query := `SELECT name, run_at FROM schedule_jobs`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	defer rows.Close()

	schedule := entity.Schedule{}
	for rows.Next() {
		var name, runAt string
		if err := rows.Scan(&name, &runAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule job: %w", err)
		}

		t, err := entity.ParseTimestamp(runAt, r.loc)
		if err != nil {
			log.Warn().Err(err).Str("job", name).Str("value", runAt).Msg("Ignoring malformed schedule entry")
			continue
		}
		schedule[name] = t
	}

	return schedule, rows.Err()
}

// Save replaces the whole schedule. Outside a transaction it opens its own.
func (r *scheduleRepo) Save(schedule entity.Schedule) error {
	if beginner, ok := r.db.(txBeginner); ok {
		tx, err := beginner.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		if err := r.save(tx, schedule); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit()
	}

	return r.save(r.db, schedule)
}

func (r *scheduleRepo) save(db dbConn, schedule entity.Schedule) error {
	if _, err := db.Exec(`DELETE FROM schedule_jobs`); err != nil {
		return fmt.Errorf("failed to reset schedule: %w", err)
	}

	query := `INSERT INTO schedule_jobs (name, run_at) VALUES (?, ?)`
	for name, t := range schedule {
		if t.IsZero() {
			continue
		}
		if _, err := db.Exec(query, name, t.In(r.loc).Format(entity.TimestampLayout)); err != nil {
			return fmt.Errorf("failed to save schedule job %s: %w", name, err)
		}
	}

	return nil
}

func (r *scheduleRepo) LastElection() (time.Time, bool, error) {
	query := `SELECT finished_at FROM elections ORDER BY id DESC LIMIT 1`

	var finishedAt string
	err := r.db.QueryRow(query).Scan(&finishedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get last election: %w", err)
	}

	t, err := entity.ParseTimestamp(finishedAt, r.loc)
	if err != nil {
		log.Warn().Err(err).Str("value", finishedAt).Msg("Ignoring malformed last election")
		return time.Time{}, false, nil
	}

	return t, true, nil
}

func (r *scheduleRepo) SetLastElection(at time.Time) error {
	query := `INSERT INTO elections (finished_at) VALUES (?)`

	if _, err := r.db.Exec(query, at.In(r.loc).Format(entity.TimestampLayout)); err != nil {
		return fmt.Errorf("failed to record election: %w", err)
	}

	return nil
}
