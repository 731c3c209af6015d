package contract

import (
	"context"

	"github.com/diegoclair/discord-election-bot/internal/domain"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
)

type ElectionService interface {
	Phase() domain.Phase
	Nominate(ctx context.Context, candidate entity.Member) error
	Nominations() ([]entity.Nomination, error)
	CastVote(ctx context.Context, voterID, nomineeID string) error
	ForceStartNominations(ctx context.Context) error
	ForceStartVoting(ctx context.Context) error
	ForceEndElection(ctx context.Context) (*entity.ElectionResult, error)
	ViewSchedule() (string, error)
}
