package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/dustin/go-humanize"
)

const (
	embedColor = 0x008080

	maxDescription    = 4096
	maxSelectOptions  = 25
	maxRowsPerMessage = 5
	maxOptionLabel    = 100
)

// BallotPrefix starts the custom id of every ballot select menu
const BallotPrefix = "ballot:"

func announcementEmbed(text string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: truncate(text, maxDescription),
		Color:       embedColor,
	}
}

func ballotEmbed(nominees []entity.Nomination, closesAt time.Time, page, pages int) *discordgo.MessageEmbed {
	title := "🗳️ Voting is open!"
	if pages > 1 {
		title = fmt.Sprintf("%s (%d/%d)", title, page, pages)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Pick one nominee below. You can change your vote until %s (%s).\n\n",
		closesAt.Format("Mon, 02 Jan 2006 15:04 MST"), humanize.Time(closesAt))
	for _, n := range nominees {
		fmt.Fprintf(&b, "• %s\n", n.DisplayName)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: truncate(b.String(), maxDescription),
		Color:       embedColor,
	}
}

// ballotMenus splits the nominees into select menus of at most 25 options,
// one action row each
func ballotMenus(ballotID string, nominees []entity.Nomination) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	one := 1

	for start := 0; start < len(nominees); start += maxSelectOptions {
		end := min(start+maxSelectOptions, len(nominees))

		options := make([]discordgo.SelectMenuOption, 0, end-start)
		for _, n := range nominees[start:end] {
			options = append(options, discordgo.SelectMenuOption{
				Label: truncate(n.DisplayName, maxOptionLabel),
				Value: n.CandidateID,
			})
		}

		placeholder := "Choose a nominee"
		if len(nominees) > maxSelectOptions {
			placeholder = fmt.Sprintf("Choose a nominee (%d-%d)", start+1, end)
		}

		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    fmt.Sprintf("%s%s:%d", BallotPrefix, ballotID, start/maxSelectOptions),
					Placeholder: placeholder,
					MinValues:   &one,
					MaxValues:   1,
					Options:     options,
				},
			},
		})
	}
	return rows
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}

func displayName(m *discordgo.Member) string {
	switch {
	case m.Nick != "":
		return m.Nick
	case m.User != nil && m.User.GlobalName != "":
		return m.User.GlobalName
	case m.User != nil:
		return m.User.Username
	default:
		return ""
	}
}
