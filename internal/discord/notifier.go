// Package discord implements the election notifier on a discordgo session.
package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const membersPageSize = 1000

// session is the part of *discordgo.Session the notifier needs
type session interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildMembers(guildID, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
}

type ballot struct {
	id         string
	messageIDs []string
}

// Notifier posts to the announcement channel and manages the winner role
type Notifier struct {
	session   session
	guildID   string
	channelID string
	roleID    string

	mu     sync.Mutex
	ballot *ballot
}

func NewNotifier(s session, guildID, channelID, roleID string) *Notifier {
	return &Notifier{
		session:   s,
		guildID:   guildID,
		channelID: channelID,
		roleID:    roleID,
	}
}

func (n *Notifier) Announce(ctx context.Context, text string, mentionEveryone bool) error {
	msg := &discordgo.MessageSend{
		Embeds:          []*discordgo.MessageEmbed{announcementEmbed(text)},
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}
	if mentionEveryone {
		msg.Content = "@everyone"
		msg.AllowedMentions.Parse = []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeEveryone}
	}

	if _, err := n.session.ChannelMessageSendComplex(n.channelID, msg, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send announcement: %w", err)
	}
	return nil
}

// PresentBallot posts the nominees as select menus. A previous ballot stops
// being accepted.
func (n *Notifier) PresentBallot(ctx context.Context, nominees []entity.Nomination, closesAt time.Time) error {
	current := &ballot{id: uuid.NewString()}
	menus := ballotMenus(current.id, nominees)

	n.mu.Lock()
	n.ballot = current
	n.mu.Unlock()

	pages := max(1, (len(menus)+maxRowsPerMessage-1)/maxRowsPerMessage)
	for page := 0; page < pages; page++ {
		start := page * maxRowsPerMessage
		end := min(start+maxRowsPerMessage, len(menus))
		first := page * maxRowsPerMessage * maxSelectOptions
		last := min(first+maxRowsPerMessage*maxSelectOptions, len(nominees))

		msg := &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{ballotEmbed(nominees[first:last], closesAt, page+1, pages)},
			Components: menus[start:end],
			AllowedMentions: &discordgo.MessageAllowedMentions{
				Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeEveryone},
			},
		}
		if page == 0 {
			msg.Content = "@everyone"
		}

		sent, err := n.session.ChannelMessageSendComplex(n.channelID, msg, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("failed to send ballot: %w", err)
		}

		n.mu.Lock()
		current.messageIDs = append(current.messageIDs, sent.ID)
		n.mu.Unlock()
	}

	zerolog.Ctx(ctx).Info().Str("ballot_id", current.id).Int("nominees", len(nominees)).Msg("Ballot presented")
	return nil
}

// CloseBallot removes the select menus from the ballot messages
func (n *Notifier) CloseBallot(ctx context.Context) error {
	n.mu.Lock()
	current := n.ballot
	n.ballot = nil
	n.mu.Unlock()

	if current == nil {
		return nil
	}

	var errs []error
	for _, messageID := range current.messageIDs {
		edit := discordgo.NewMessageEdit(n.channelID, messageID)
		edit.Components = &[]discordgo.MessageComponent{}
		if _, err := n.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
			errs = append(errs, fmt.Errorf("failed to close ballot message %s: %w", messageID, err))
		}
	}
	return errors.Join(errs...)
}

// IsActiveBallot reports whether a component custom id belongs to the open ballot
func (n *Notifier) IsActiveBallot(customID string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.ballot == nil {
		return false
	}
	return strings.HasPrefix(customID, BallotPrefix+n.ballot.id+":")
}

func (n *Notifier) ResolveMember(ctx context.Context, memberID string) (*entity.Member, error) {
	m, err := n.session.GuildMember(n.guildID, memberID, discordgo.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member %s: %w", memberID, err)
	}
	if m == nil || m.User == nil {
		return nil, nil
	}

	return &entity.Member{
		ID:          m.User.ID,
		DisplayName: displayName(m),
		Bot:         m.User.Bot,
	}, nil
}

func (n *Notifier) AssignRole(ctx context.Context, memberID string) error {
	if err := n.session.GuildMemberRoleAdd(n.guildID, memberID, n.roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to add role: %w", err)
	}
	return nil
}

func (n *Notifier) RevokeRole(ctx context.Context, memberID string) error {
	if err := n.session.GuildMemberRoleRemove(n.guildID, memberID, n.roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to remove role: %w", err)
	}
	return nil
}

// RoleHolders lists the members holding the winner role, paging through the guild
func (n *Notifier) RoleHolders(ctx context.Context) ([]string, error) {
	var holders []string
	after := ""

	for {
		members, err := n.session.GuildMembers(n.guildID, after, membersPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}

		for _, m := range members {
			if m.User == nil {
				continue
			}
			if slices.Contains(m.Roles, n.roleID) {
				holders = append(holders, m.User.ID)
			}
			after = m.User.ID
		}

		if len(members) < membersPageSize {
			return holders, nil
		}
	}
}

func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
		return true
	}
	return restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownMember
}
