package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain"
	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepo_SaveLoad(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newScheduleRepo(db.conn, time.UTC)

	t.Run("should load an empty schedule", func(t *testing.T) {
		schedule, err := repo.Load()
		require.NoError(t, err)
		assert.Empty(t, schedule)
	})

	t.Run("should round trip the schedule", func(t *testing.T) {
		original := entity.Schedule{
			domain.JobNominationStart: time.Date(2024, 5, 6, 9, 0, 0, 123456789, time.UTC),
			domain.JobNominationClose: time.Date(2024, 5, 9, 23, 59, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Save(original))

		loaded, err := repo.Load()
		require.NoError(t, err)
		require.Len(t, loaded, 2)
		for name, want := range original {
			assert.True(t, want.Equal(loaded[name]), "job %s", name)
		}
	})

	t.Run("should replace the previous schedule", func(t *testing.T) {
		next := entity.Schedule{
			domain.JobNextElection: time.Date(2024, 7, 22, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Save(next))

		loaded, err := repo.Load()
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.True(t, next[domain.JobNextElection].Equal(loaded[domain.JobNextElection]))
	})

	t.Run("should skip malformed rows", func(t *testing.T) {
		_, err := db.conn.Exec(`INSERT INTO schedule_jobs (name, run_at) VALUES ('voting_end', 'soon')`)
		require.NoError(t, err)

		loaded, err := repo.Load()
		require.NoError(t, err)
		_, ok := loaded.Get(domain.JobVotingEnd)
		assert.False(t, ok)
	})
}

func TestScheduleRepo_LastElection(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newScheduleRepo(db.conn, time.UTC)

	_, ok, err := repo.LastElection()
	require.NoError(t, err)
	assert.False(t, ok)

	first := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetLastElection(first))
	require.NoError(t, repo.SetLastElection(last))

	got, ok, err := repo.LastElection()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, last.Equal(got))
}

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db, time.UTC)

	t.Run("should commit all repositories together", func(t *testing.T) {
		err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
			if err := tx.Nomination().Add(entity.Nomination{CandidateID: "U1", DisplayName: "Alice"}); err != nil {
				return err
			}
			if err := tx.Ballot().Record(entity.Ballot{VoterID: "V1", NomineeID: "U1"}); err != nil {
				return err
			}
			return tx.Schedule().Save(entity.Schedule{
				domain.JobVotingEnd: time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC),
			})
		})
		require.NoError(t, err)

		exists, err := dm.Nomination().Exists("U1")
		require.NoError(t, err)
		assert.True(t, exists)

		schedule, err := dm.Schedule().Load()
		require.NoError(t, err)
		assert.Len(t, schedule, 1)
	})

	t.Run("should roll back on error", func(t *testing.T) {
		errBoom := errors.New("boom")
		err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
			if err := tx.Nomination().Clear(); err != nil {
				return err
			}
			return errBoom
		})
		require.ErrorIs(t, err, errBoom)

		exists, err := dm.Nomination().Exists("U1")
		require.NoError(t, err)
		assert.True(t, exists, "clear must have been rolled back")
	})
}
