package database

import (
	"fmt"

	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
)

type ballotRepo struct {
	db dbConn
}

func newBallotRepo(db dbConn) contract.BallotRepo {
	return &ballotRepo{db: db}
}

func (r *ballotRepo) Record(ballot entity.Ballot) error {
	query := `
		INSERT INTO ballots (voter_id, nominee_id)
		VALUES (?, ?)
		ON CONFLICT (voter_id) DO UPDATE SET
			nominee_id = excluded.nominee_id,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query, ballot.VoterID, ballot.NomineeID)
	if err != nil {
		return fmt.Errorf("failed to record ballot: %w", err)
	}

	return nil
}

func (r *ballotRepo) Tally() (map[string]int, error) {
	query := `
		SELECT nominee_id, COUNT(*)
		FROM ballots
		GROUP BY nominee_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to tally ballots: %w", err)
	}
	defer rows.Close()

	tally := make(map[string]int)
	for rows.Next() {
		var nomineeID string
		var count int
		if err := rows.Scan(&nomineeID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan tally: %w", err)
		}
		tally[nomineeID] = count
	}

	return tally, rows.Err()
}

func (r *ballotRepo) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM ballots`); err != nil {
		return fmt.Errorf("failed to clear ballots: %w", err)
	}

	return nil
}
