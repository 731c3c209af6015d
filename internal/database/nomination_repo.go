package database

import (
	"fmt"

	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
)

type nominationRepo struct {
	db dbConn
}

func newNominationRepo(db dbConn) contract.NominationRepo {
	return &nominationRepo{db: db}
}

func (r *nominationRepo) Add(nomination entity.Nomination) error {
	query := `
		INSERT INTO nominees (candidate_id, display_name)
		VALUES (?, ?)
		ON CONFLICT (candidate_id) DO NOTHING
	`

	_, err := r.db.Exec(query, nomination.CandidateID, nomination.DisplayName)
	if err != nil {
		return fmt.Errorf("failed to add nomination: %w", err)
	}

	return nil
}

func (r *nominationRepo) List() ([]entity.Nomination, error) {
	query := `
		SELECT candidate_id, display_name
		FROM nominees
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list nominations: %w", err)
	}
	defer rows.Close()

	nominations := []entity.Nomination{}
	for rows.Next() {
		var nomination entity.Nomination
		if err := rows.Scan(&nomination.CandidateID, &nomination.DisplayName); err != nil {
			return nil, fmt.Errorf("failed to scan nomination: %w", err)
		}
		nominations = append(nominations, nomination)
	}

	return nominations, rows.Err()
}

func (r *nominationRepo) Exists(candidateID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM nominees WHERE candidate_id = ?)`

	var exists bool
	if err := r.db.QueryRow(query, candidateID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check nomination: %w", err)
	}

	return exists, nil
}

func (r *nominationRepo) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM nominees`); err != nil {
		return fmt.Errorf("failed to clear nominations: %w", err)
	}

	return nil
}
