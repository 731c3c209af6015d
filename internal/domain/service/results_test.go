package service

import (
	"strings"
	"testing"

	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildResult(t *testing.T) {
	members := map[string]*entity.Member{
		"A": {ID: "A", DisplayName: "Alice"},
		"B": {ID: "B", DisplayName: "Bob"},
		"C": {ID: "C", DisplayName: "Carol"},
	}

	tests := []struct {
		name        string
		tally       map[string]int
		members     map[string]*entity.Member
		wantOutcome entity.Outcome
		wantWinners []string
		wantMax     int
		check       func(t *testing.T, result *entity.ElectionResult)
	}{
		{
			name:        "Should pick the single top nominee",
			tally:       map[string]int{"A": 5, "B": 2},
			members:     members,
			wantOutcome: entity.OutcomeSingleWinner,
			wantWinners: []string{"A"},
			wantMax:     5,
			check: func(t *testing.T, result *entity.ElectionResult) {
				assert.True(t, strings.HasPrefix(result.Announcement, "🏆 **Alice** wins the election with 5 votes!"))
				assert.InDelta(t, 71.4, result.Standings[0].Percent, 0.1)
				assert.InDelta(t, 28.6, result.Standings[1].Percent, 0.1)
			},
		},
		{
			name:        "Should list every nominee tied at the top",
			tally:       map[string]int{"A": 3, "B": 3, "C": 1},
			members:     members,
			wantOutcome: entity.OutcomeDraw,
			wantWinners: []string{"A", "B"},
			wantMax:     3,
			check: func(t *testing.T, result *entity.ElectionResult) {
				headline := strings.SplitN(result.Announcement, "\n", 2)[0]
				assert.Contains(t, headline, "**Alice** and **Bob**")
				assert.NotContains(t, headline, "Carol")
				assert.Equal(t, 7, result.TotalVotes)
			},
		},
		{
			name:        "Should not let a departed member win",
			tally:       map[string]int{"A": 4, "B": 1},
			members:     map[string]*entity.Member{"B": members["B"]},
			wantOutcome: entity.OutcomeNoWinner,
			wantMax:     4,
			check: func(t *testing.T, result *entity.ElectionResult) {
				require.Len(t, result.Standings, 2)
				assert.Equal(t, "Unknown member (A)", result.Standings[0].Label)
				assert.False(t, result.Standings[0].Resolved)
				assert.Contains(t, result.Announcement, "Unknown member (A): 4 (80.0%)")
			},
		},
		{
			name:        "Should keep resolved winners of a tie with a departed member",
			tally:       map[string]int{"A": 2, "B": 2},
			members:     map[string]*entity.Member{"B": members["B"]},
			wantOutcome: entity.OutcomeSingleWinner,
			wantWinners: []string{"B"},
			wantMax:     2,
		},
		{
			name:        "Should report no winner without votes",
			tally:       map[string]int{},
			members:     members,
			wantOutcome: entity.OutcomeNoWinner,
			check: func(t *testing.T, result *entity.ElectionResult) {
				assert.Empty(t, result.Standings)
				assert.Contains(t, result.Announcement, "No votes were cast")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := buildResult(tt.tally, tt.members)

			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.Equal(t, tt.wantMax, result.MaxVotes)

			var winners []string
			for _, w := range result.Winners {
				winners = append(winners, w.NomineeID)
			}
			assert.Equal(t, tt.wantWinners, winners)

			for i := 1; i < len(result.Standings); i++ {
				assert.GreaterOrEqual(t, result.Standings[i-1].Votes, result.Standings[i].Votes)
			}

			if tt.check != nil {
				tt.check(t, result)
			}
		})
	}
}
