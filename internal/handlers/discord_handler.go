package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Necroforger/dgrouter/exrouter"
	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/discord-election-bot/internal/discord"
	"github.com/diegoclair/discord-election-bot/internal/domain"
	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

// BallotChecker tells whether a select menu belongs to the open ballot
type BallotChecker interface {
	IsActiveBallot(customID string) bool
}

// permissionsFunc returns the permission bits of a user in a channel
type permissionsFunc func(s *discordgo.Session, userID, channelID string) (int64, error)

type DiscordHandler struct {
	election    contract.ElectionService
	members     contract.MemberResolver
	ballots     BallotChecker
	prefix      string
	router      *exrouter.Route
	permissions permissionsFunc
}

func New(election contract.ElectionService, members contract.MemberResolver, ballots BallotChecker, prefix string) *DiscordHandler {
	h := &DiscordHandler{
		election: election,
		members:  members,
		ballots:  ballots,
		prefix:   prefix,
		router:   exrouter.New(),
		permissions: func(s *discordgo.Session, userID, channelID string) (int64, error) {
			return s.UserChannelPermissions(userID, channelID)
		},
	}
	h.registerRoutes()
	return h
}

func (h *DiscordHandler) registerRoutes() {
	h.router.On(CmdNominate, func(ctx *exrouter.Context) {
		reply(ctx, h.HandleNominate(requestContext(), ctx.Msg.Mentions))
	}).Desc(describe(CmdNominate))

	h.router.On(CmdNominees, func(ctx *exrouter.Context) {
		reply(ctx, h.HandleNominees())
	}).Desc(describe(CmdNominees))

	h.router.Group(func(r *exrouter.Route) {
		r.Cat(adminCategory)
		r.Use(h.adminOnly)
		r.On(CmdStartNominations, func(ctx *exrouter.Context) {
			reply(ctx, h.HandleStartNominations(requestContext()))
		}).Desc(describe(CmdStartNominations))
		r.On(CmdStartVoting, func(ctx *exrouter.Context) {
			reply(ctx, h.HandleStartVoting(requestContext()))
		}).Desc(describe(CmdStartVoting))
		r.On(CmdEndElection, func(ctx *exrouter.Context) {
			reply(ctx, h.HandleEndElection(requestContext()))
		}).Desc(describe(CmdEndElection))
		r.On(CmdSchedule, func(ctx *exrouter.Context) {
			reply(ctx, h.HandleSchedule())
		}).Desc(describe(CmdSchedule))
	})

	h.router.Default = h.router.On(CmdHelp, func(ctx *exrouter.Context) {
		reply(ctx, h.HandleHelp(h.isAdmin(ctx)))
	}).Desc(describe(CmdHelp))
}

// HandleMessage routes prefixed chat messages to the commands
func (h *DiscordHandler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if !strings.HasPrefix(m.Content, h.prefix) {
		return
	}

	if err := h.router.FindAndExecute(s, h.prefix, s.State.User.ID, m.Message); err != nil {
		log.Debug().Err(err).Str("content", m.Content).Msg("no command matched")
	}
}

// HandleInteraction receives ballot selections
func (h *DiscordHandler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	data := i.MessageComponentData()
	if !strings.HasPrefix(data.CustomID, discord.BallotPrefix) {
		return
	}

	voterID := ""
	switch {
	case i.Member != nil && i.Member.User != nil:
		voterID = i.Member.User.ID
	case i.User != nil:
		voterID = i.User.ID
	}

	text := h.HandleVote(requestContext(), voterID, data.CustomID, data.Values)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error().Err(err).Str("voter_id", voterID).Msg("failed to respond to ballot selection")
	}
}

func (h *DiscordHandler) HandleNominate(ctx context.Context, mentions []*discordgo.User) string {
	if len(mentions) != 1 {
		return createErrorResponse(fmt.Sprintf("Mention exactly one member: `%snominate @member`", h.prefix))
	}
	mentioned := mentions[0]

	candidate, err := h.members.ResolveMember(ctx, mentioned.ID)
	if err != nil {
		log.Warn().Err(err).Str("member_id", mentioned.ID).Msg("failed to resolve nominee, using mention")
		candidate = &entity.Member{ID: mentioned.ID, DisplayName: mentioned.Username, Bot: mentioned.Bot}
	}
	if candidate == nil {
		return createErrorResponse("That member is not in this server.")
	}

	err = h.election.Nominate(ctx, *candidate)
	switch {
	case errors.Is(err, domain.ErrBotCandidate):
		return createErrorResponse("Bots can't be nominated.")
	case errors.Is(err, domain.ErrNominationsClosed):
		return createErrorResponse("Nominations are not open right now.")
	case errors.Is(err, domain.ErrAlreadyNominated):
		return createErrorResponse(fmt.Sprintf("**%s** is already nominated.", candidate.DisplayName))
	case err != nil:
		log.Error().Err(err).Str("member_id", candidate.ID).Msg("failed to nominate")
		return createErrorResponse("Something went wrong while saving the nomination.")
	}

	return fmt.Sprintf("✅ **%s** has been nominated!", candidate.DisplayName)
}

func (h *DiscordHandler) HandleNominees() string {
	nominations, err := h.election.Nominations()
	if err != nil {
		log.Error().Err(err).Msg("failed to list nominations")
		return createErrorResponse("Couldn't load the nominees.")
	}

	if len(nominations) == 0 {
		return "Nobody has been nominated yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Nominees** (%s)\n", h.election.Phase())
	for i, n := range nominations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, n.DisplayName)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (h *DiscordHandler) HandleHelp(admin bool) string {
	return helpText(h.prefix, admin)
}

func (h *DiscordHandler) HandleStartNominations(ctx context.Context) string {
	err := h.election.ForceStartNominations(ctx)
	if errors.Is(err, domain.ErrVotingInProgress) {
		return createErrorResponse("An election is being voted or counted. End it first.")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to force nominations")
		return createErrorResponse(fmt.Sprintf("Nominations opened with errors: %v", err))
	}
	return "✅ Nominations are open."
}

func (h *DiscordHandler) HandleStartVoting(ctx context.Context) string {
	err := h.election.ForceStartVoting(ctx)
	if errors.Is(err, domain.ErrVotingInProgress) {
		return createErrorResponse("Voting is already open.")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to force voting")
		return createErrorResponse(fmt.Sprintf("Voting started with errors: %v", err))
	}
	if h.election.Phase() != domain.PhaseVotingOpen {
		return "There were no nominees, so the election was cancelled."
	}
	return "✅ Voting is open."
}

func (h *DiscordHandler) HandleEndElection(ctx context.Context) string {
	result, err := h.election.ForceEndElection(ctx)
	if errors.Is(err, domain.ErrVotingNotOpen) {
		return createErrorResponse("There is no open vote to end.")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to force election end")
		return createErrorResponse(fmt.Sprintf("The election ended with errors: %v", err))
	}

	text := "✅ The election has ended and the results were announced."
	if result != nil && len(result.RoleErrors) > 0 {
		text += fmt.Sprintf(" %d role update(s) failed.", len(result.RoleErrors))
	}
	return text
}

func (h *DiscordHandler) HandleSchedule() string {
	text, err := h.election.ViewSchedule()
	if err != nil {
		log.Error().Err(err).Msg("failed to view schedule")
		return createErrorResponse("Couldn't load the schedule.")
	}
	return text
}

// HandleVote records a ballot selection and returns the reply for the voter
func (h *DiscordHandler) HandleVote(ctx context.Context, voterID, customID string, values []string) string {
	if voterID == "" || len(values) == 0 {
		return createErrorResponse("Your vote could not be read. Please pick again.")
	}
	if !h.ballots.IsActiveBallot(customID) {
		return createErrorResponse("This ballot is closed.")
	}

	err := h.election.CastVote(ctx, voterID, values[0])
	switch {
	case errors.Is(err, domain.ErrVotingClosed):
		return createErrorResponse("Voting is closed.")
	case errors.Is(err, domain.ErrNotNominated):
		return createErrorResponse("That member is not on the ballot.")
	case err != nil:
		log.Error().Err(err).Str("voter_id", voterID).Msg("failed to cast vote")
		return createErrorResponse("Something went wrong while saving your vote.")
	}

	return "✅ Your vote has been recorded. You can change it until voting closes."
}

// adminOnly lets only members with the Administrator permission through
func (h *DiscordHandler) adminOnly(fn exrouter.HandlerFunc) exrouter.HandlerFunc {
	return func(ctx *exrouter.Context) {
		if !h.isAdmin(ctx) {
			reply(ctx, createErrorResponse("Only administrators can use this command."))
			return
		}
		fn(ctx)
	}
}

func (h *DiscordHandler) isAdmin(ctx *exrouter.Context) bool {
	perms, err := h.permissions(ctx.Ses, ctx.Msg.Author.ID, ctx.Msg.ChannelID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", ctx.Msg.Author.ID).Msg("failed to read permissions")
		return false
	}
	return perms&discordgo.PermissionAdministrator != 0
}

func reply(ctx *exrouter.Context, text string) {
	if _, err := ctx.Reply(text); err != nil {
		log.Error().Err(err).Str("channel_id", ctx.Msg.ChannelID).Msg("failed to reply")
	}
}

func requestContext() context.Context {
	return log.Logger.WithContext(context.Background())
}

func createErrorResponse(message string) string {
	return fmt.Sprintf("❌ %s", message)
}
