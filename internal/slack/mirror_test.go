package slack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/diegoclair/discord-election-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type webhookRecorder struct {
	mu    sync.Mutex
	texts []string
}

func newWebhookServer(t *testing.T, status int) (*httptest.Server, *webhookRecorder) {
	t.Helper()

	rec := &webhookRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		rec.mu.Lock()
		rec.texts = append(rec.texts, body.Text)
		rec.mu.Unlock()

		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	return server, rec
}

func TestMirror_Announce(t *testing.T) {
	t.Run("Should forward and mirror announcements", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mocks.NewMockNotifier(ctrl)
		server, rec := newWebhookServer(t, http.StatusOK)
		ctx := context.Background()

		notifier.EXPECT().Announce(ctx, "Nominations are open", true).Return(nil).Times(1)

		mirror := NewMirror(notifier, server.URL)
		require.NoError(t, mirror.Announce(ctx, "Nominations are open", true))
		assert.Equal(t, []string{"Nominations are open"}, rec.texts)
	})

	t.Run("Should keep the Discord error and ignore Slack failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mocks.NewMockNotifier(ctrl)
		server, rec := newWebhookServer(t, http.StatusInternalServerError)
		ctx := context.Background()
		discordErr := errors.New("discord down")

		notifier.EXPECT().Announce(ctx, "results", false).Return(discordErr).Times(1)

		mirror := NewMirror(notifier, server.URL)
		err := mirror.Announce(ctx, "results", false)
		assert.ErrorIs(t, err, discordErr)
		assert.Len(t, rec.texts, 1)
	})
}

func TestMirror_PresentBallot(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	server, rec := newWebhookServer(t, http.StatusOK)
	ctx := context.Background()

	nominees := []entity.Nomination{
		{CandidateID: "A", DisplayName: "Alice"},
		{CandidateID: "B", DisplayName: "Bob"},
	}
	closesAt := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)

	notifier.EXPECT().PresentBallot(ctx, nominees, closesAt).Return(nil).Times(1)
	notifier.EXPECT().CloseBallot(ctx).Return(nil).Times(1)

	mirror := NewMirror(notifier, server.URL)
	require.NoError(t, mirror.PresentBallot(ctx, nominees, closesAt))
	require.NoError(t, mirror.CloseBallot(ctx))

	require.Len(t, rec.texts, 1)
	assert.Contains(t, rec.texts[0], "Sat, 11 May 2024 00:00 UTC")
	assert.Contains(t, rec.texts[0], "Nominees: Alice, Bob")
}
