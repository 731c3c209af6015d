package test

import (
	"testing"

	"github.com/diegoclair/discord-election-bot/internal/handlers"
	"github.com/diegoclair/discord-election-bot/mocks"
	"go.uber.org/mock/gomock"
)

type ServiceMocks struct {
	ElectionServiceMock *mocks.MockElectionService
	NotifierMock        *mocks.MockNotifier
	Ballot              *ActiveBallot
}

// ActiveBallot accepts the custom ids listed in IDs
type ActiveBallot struct {
	IDs []string
}

func (b *ActiveBallot) IsActiveBallot(customID string) bool {
	for _, id := range b.IDs {
		if id == customID {
			return true
		}
	}
	return false
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.DiscordHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		ElectionServiceMock: mocks.NewMockElectionService(ctrl),
		NotifierMock:        mocks.NewMockNotifier(ctrl),
		Ballot:              &ActiveBallot{IDs: []string{"ballot:current:0"}},
	}

	handler = handlers.New(m.ElectionServiceMock, m.NotifierMock, m.Ballot, ".")

	return
}
