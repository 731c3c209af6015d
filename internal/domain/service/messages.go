package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/dustin/go-humanize"
)

const dateLayout = "Mon, 02 Jan 2006 15:04 MST"

const votingCancelledMessage = "🗳️ Nominations are closed but nobody was nominated, so there is no vote this time. " +
	"The next election has been scheduled."

var jobLabels = map[string]string{
	domain.JobNominationStart: "Nominations opened",
	domain.JobNominationClose: "Nominations close",
	domain.JobVotingStart:     "Voting opens",
	domain.JobVotingEnd:       "Voting ends",
	domain.JobNextElection:    "Next election",
}

func formatWhen(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Format(dateLayout), humanize.Time(t))
}

func nominationsOpenMessage(prefix string, closeAt time.Time) string {
	return fmt.Sprintf("📢 **Nominations are open!**\nNominate a member with `%snominate @member`.\nNominations close %s.",
		prefix, formatWhen(closeAt))
}

func nominationsClosedMessage(nominations []entity.Nomination, votingAt time.Time) string {
	var b strings.Builder
	b.WriteString("🔒 **Nominations are closed.**\n")

	if len(nominations) == 0 {
		b.WriteString("Nobody was nominated.")
		return b.String()
	}

	fmt.Fprintf(&b, "Nominees (%d):\n", len(nominations))
	for _, n := range nominations {
		fmt.Fprintf(&b, "• %s\n", n.DisplayName)
	}
	fmt.Fprintf(&b, "Voting opens %s.", formatWhen(votingAt))
	return b.String()
}

func resultMessage(result *entity.ElectionResult) string {
	var b strings.Builder

	switch result.Outcome {
	case entity.OutcomeSingleWinner:
		fmt.Fprintf(&b, "🏆 **%s** wins the election with %d %s!\n",
			result.Winners[0].Label, result.MaxVotes, plural(result.MaxVotes, "vote", "votes"))
	case entity.OutcomeDraw:
		names := make([]string, 0, len(result.Winners))
		for _, w := range result.Winners {
			names = append(names, "**"+w.Label+"**")
		}
		fmt.Fprintf(&b, "🤝 It's a draw between %s with %d %s each!\n",
			joinNames(names), result.MaxVotes, plural(result.MaxVotes, "vote", "votes"))
	default:
		b.WriteString("🗳️ The election ended with no valid winners.\n")
	}

	if len(result.Standings) == 0 {
		b.WriteString("No votes were cast.")
		return b.String()
	}

	fmt.Fprintf(&b, "\n**Results** (%d %s)\n", result.TotalVotes, plural(result.TotalVotes, "vote", "votes"))
	for i, s := range result.Standings {
		fmt.Fprintf(&b, "%d. %s: %d (%.1f%%)\n", i+1, s.Label, s.Votes, s.Percent)
	}
	return strings.TrimRight(b.String(), "\n")
}

func roleErrorsMessage(errs []error) string {
	var b strings.Builder
	b.WriteString("⚠️ I couldn't fully update the winner role:\n")
	for _, err := range errs {
		fmt.Fprintf(&b, "• %s\n", err)
	}
	b.WriteString("Check that my role is above the winner role and that I can manage roles.")
	return b.String()
}

func scheduleMessage(phase domain.Phase, schedule entity.Schedule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 **Election schedule**\nPhase: %s\n", phase)

	if len(schedule) == 0 {
		b.WriteString("No election is scheduled.")
		return b.String()
	}

	for _, name := range schedule.Names() {
		at, ok := schedule.Get(name)
		if !ok {
			continue
		}
		label, ok := jobLabels[name]
		if !ok {
			label = name
		}
		fmt.Fprintf(&b, "• %s: %s\n", label, formatWhen(at))
	}
	return strings.TrimRight(b.String(), "\n")
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
