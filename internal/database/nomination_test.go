package database

import (
	"testing"

	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominationRepo_Add(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newNominationRepo(db.conn)

	t.Run("should keep insertion order", func(t *testing.T) {
		for _, id := range []string{"U3", "U1", "U2"} {
			err := repo.Add(entity.Nomination{CandidateID: id, DisplayName: "name " + id})
			require.NoError(t, err)
		}

		nominations, err := repo.List()
		require.NoError(t, err)
		require.Len(t, nominations, 3)
		assert.Equal(t, "U3", nominations[0].CandidateID)
		assert.Equal(t, "U1", nominations[1].CandidateID)
		assert.Equal(t, "U2", nominations[2].CandidateID)
	})

	t.Run("should ignore a duplicate candidate", func(t *testing.T) {
		err := repo.Add(entity.Nomination{CandidateID: "U1", DisplayName: "other name"})
		require.NoError(t, err)

		nominations, err := repo.List()
		require.NoError(t, err)
		require.Len(t, nominations, 3)
		assert.Equal(t, "name U1", nominations[1].DisplayName)
	})
}

func TestNominationRepo_Exists(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newNominationRepo(db.conn)
	require.NoError(t, repo.Add(entity.Nomination{CandidateID: "U1", DisplayName: "Alice"}))

	exists, err := repo.Exists("U1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists("U2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNominationRepo_Clear(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newNominationRepo(db.conn)
	require.NoError(t, repo.Add(entity.Nomination{CandidateID: "U1", DisplayName: "Alice"}))
	require.NoError(t, repo.Clear())

	nominations, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, nominations)
}
