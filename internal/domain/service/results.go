package service

import (
	"fmt"
	"sort"

	"github.com/diegoclair/discord-election-bot/internal/domain"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
)

// buildResult ranks the tally. Nominees missing from members are listed
// under a placeholder label and can't win.
func buildResult(tally map[string]int, members map[string]*entity.Member) *entity.ElectionResult {
	result := &entity.ElectionResult{}

	for _, votes := range tally {
		result.TotalVotes += votes
	}

	for id, votes := range tally {
		standing := entity.Standing{
			NomineeID: id,
			Label:     fmt.Sprintf(domain.UnknownMemberLabel, id),
			Votes:     votes,
		}
		if member, ok := members[id]; ok && member != nil {
			standing.Label = member.DisplayName
			standing.Resolved = true
		}
		if result.TotalVotes > 0 {
			standing.Percent = float64(votes) * 100 / float64(result.TotalVotes)
		}
		result.Standings = append(result.Standings, standing)
	}

	sort.Slice(result.Standings, func(i, j int) bool {
		a, b := result.Standings[i], result.Standings[j]
		if a.Votes != b.Votes {
			return a.Votes > b.Votes
		}
		return a.NomineeID < b.NomineeID
	})

	for _, standing := range result.Standings {
		if standing.Votes > result.MaxVotes {
			result.MaxVotes = standing.Votes
		}
	}

	if result.MaxVotes > 0 {
		for _, standing := range result.Standings {
			if standing.Votes == result.MaxVotes && standing.Resolved {
				result.Winners = append(result.Winners, standing)
			}
		}
	}

	switch len(result.Winners) {
	case 0:
		result.Outcome = entity.OutcomeNoWinner
	case 1:
		result.Outcome = entity.OutcomeSingleWinner
	default:
		result.Outcome = entity.OutcomeDraw
	}

	result.Announcement = resultMessage(result)
	return result
}
