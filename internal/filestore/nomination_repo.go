package filestore

import (
	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
)

type nominationRepo struct {
	path string
}

func newNominationRepo(path string) contract.NominationRepo {
	return &nominationRepo{path: path}
}

func (r *nominationRepo) Add(nomination entity.Nomination) error {
	exists, err := r.Exists(nomination.CandidateID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return appendRecord(r.path, []string{nomination.CandidateID, nomination.DisplayName})
}

func (r *nominationRepo) List() ([]entity.Nomination, error) {
	rows, err := readRecords(r.path, 2)
	if err != nil {
		return nil, err
	}

	nominations := make([]entity.Nomination, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if seen[row[0]] {
			continue
		}
		seen[row[0]] = true
		nominations = append(nominations, entity.Nomination{
			CandidateID: row[0],
			DisplayName: row[1],
		})
	}

	return nominations, nil
}

func (r *nominationRepo) Exists(candidateID string) (bool, error) {
	rows, err := readRecords(r.path, 2)
	if err != nil {
		return false, err
	}

	for _, row := range rows {
		if row[0] == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (r *nominationRepo) Clear() error {
	return writeRecords(r.path, nil)
}
