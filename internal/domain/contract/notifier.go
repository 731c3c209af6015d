package contract

import (
	"context"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
)

// MemberResolver looks up guild members
type MemberResolver interface {
	// ResolveMember returns nil without error when the member is not in the guild
	ResolveMember(ctx context.Context, memberID string) (*entity.Member, error)
}

// Notifier is the boundary for all outbound chat platform communication
type Notifier interface {
	MemberResolver

	Announce(ctx context.Context, text string, mentionEveryone bool) error

	// PresentBallot shows the nominees for voting. Selections come back through
	// ElectionService.CastVote.
	PresentBallot(ctx context.Context, nominees []entity.Nomination, closesAt time.Time) error

	// CloseBallot stops the presented ballot from accepting selections
	CloseBallot(ctx context.Context) error

	AssignRole(ctx context.Context, memberID string) error
	RevokeRole(ctx context.Context, memberID string) error
	RoleHolders(ctx context.Context) ([]string, error)
}
