package filestore

import (
	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
)

type ballotRepo struct {
	path string
}

func newBallotRepo(path string) contract.BallotRepo {
	return &ballotRepo{path: path}
}

func (r *ballotRepo) Record(ballot entity.Ballot) error {
	rows, err := readRecords(r.path, 2)
	if err != nil {
		return err
	}

	// Drop the voter's previous ballot and keep everybody else's
	kept := make([][]string, 0, len(rows)+1)
	for _, row := range rows {
		if row[0] == ballot.VoterID {
			continue
		}
		kept = append(kept, row[:2])
	}
	kept = append(kept, []string{ballot.VoterID, ballot.NomineeID})

	return writeRecords(r.path, kept)
}

func (r *ballotRepo) Tally() (map[string]int, error) {
	rows, err := readRecords(r.path, 2)
	if err != nil {
		return nil, err
	}

	// A voter counts once even if a crash left duplicate rows behind; the last row wins
	choices := make(map[string]string, len(rows))
	for _, row := range rows {
		choices[row[0]] = row[1]
	}

	tally := make(map[string]int)
	for _, nomineeID := range choices {
		tally[nomineeID]++
	}
	return tally, nil
}

func (r *ballotRepo) Clear() error {
	return writeRecords(r.path, nil)
}
