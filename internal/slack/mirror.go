// Package slack mirrors election announcements to a Slack channel through an
// incoming webhook.
package slack

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// Mirror wraps a Notifier and copies announcements and ballots to Slack.
// Slack failures are logged and never returned.
type Mirror struct {
	contract.Notifier
	webhookURL string
}

func NewMirror(next contract.Notifier, webhookURL string) *Mirror {
	return &Mirror{
		Notifier:   next,
		webhookURL: webhookURL,
	}
}

func (m *Mirror) Announce(ctx context.Context, text string, mentionEveryone bool) error {
	err := m.Notifier.Announce(ctx, text, mentionEveryone)
	m.post(ctx, text)
	return err
}

func (m *Mirror) PresentBallot(ctx context.Context, nominees []entity.Nomination, closesAt time.Time) error {
	err := m.Notifier.PresentBallot(ctx, nominees, closesAt)

	names := make([]string, 0, len(nominees))
	for _, n := range nominees {
		names = append(names, n.DisplayName)
	}
	m.post(ctx, fmt.Sprintf(":ballot_box_with_ballot: Voting is open on Discord until %s.\nNominees: %s",
		closesAt.Format("Mon, 02 Jan 2006 15:04 MST"), strings.Join(names, ", ")))

	return err
}

func (m *Mirror) post(ctx context.Context, text string) {
	err := slack.PostWebhookContext(ctx, m.webhookURL, &slack.WebhookMessage{Text: text})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to mirror announcement to Slack")
	}
}
