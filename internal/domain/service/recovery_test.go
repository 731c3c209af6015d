package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStart(t *testing.T) {
	nominations := []entity.Nomination{
		{CandidateID: "A", DisplayName: "Alice"},
		{CandidateID: "B", DisplayName: "Bob"},
	}
	ballots := []entity.Ballot{
		{VoterID: "v1", NomineeID: "A"},
		{VoterID: "v2", NomineeID: "A"},
		{VoterID: "v3", NomineeID: "B"},
	}

	type args struct {
		schedule     entity.Schedule
		lastElection time.Time
		nominations  []entity.Nomination
		ballots      []entity.Ballot
	}

	tests := []struct {
		name        string
		args        args
		buildMock   func(m allMocks)
		wantPhase   domain.Phase
		wantPending []string
		check       func(t *testing.T, m allMocks)
	}{
		{
			name: "Should tally once when voting ended while offline",
			args: args{
				schedule:    entity.Schedule{domain.JobVotingEnd: testNow.Add(-time.Hour)},
				nominations: nominations,
				ballots:     ballots,
			},
			buildMock: func(m allMocks) {
				m.mockNotifier.EXPECT().CloseBallot(gomock.Any()).Return(nil).Times(1)
				m.mockNotifier.EXPECT().ResolveMember(gomock.Any(), "A").Return(&entity.Member{ID: "A", DisplayName: "Alice"}, nil)
				m.mockNotifier.EXPECT().ResolveMember(gomock.Any(), "B").Return(&entity.Member{ID: "B", DisplayName: "Bob"}, nil)
				m.mockNotifier.EXPECT().RoleHolders(gomock.Any()).Return([]string{"old"}, nil)
				m.mockNotifier.EXPECT().RevokeRole(gomock.Any(), "old").Return(nil)
				m.mockNotifier.EXPECT().AssignRole(gomock.Any(), "A").Return(nil)
				m.mockNotifier.EXPECT().Announce(gomock.Any(), gomock.Any(), true).Return(nil).Times(1)
			},
			wantPhase:   domain.PhaseClosed,
			wantPending: []string{domain.JobNextElection},
			check: func(t *testing.T, m allMocks) {
				assertCleanedUp(t, m, testNow)
			},
		},
		{
			name: "Should present the ballot again while voting is still open",
			args: args{
				schedule:    entity.Schedule{domain.JobVotingEnd: testNow.Add(3 * time.Hour)},
				nominations: nominations,
				ballots:     ballots,
			},
			buildMock: func(m allMocks) {
				m.mockNotifier.EXPECT().PresentBallot(gomock.Any(), nominations, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ []entity.Nomination, closesAt time.Time) error {
						assert.True(t, closesAt.Equal(testNow.Add(3*time.Hour)))
						return nil
					})
			},
			wantPhase:   domain.PhaseVotingOpen,
			wantPending: []string{domain.JobVotingEnd},
			check: func(t *testing.T, m allMocks) {
				tally, err := m.dm.Ballot().Tally()
				require.NoError(t, err)
				assert.Equal(t, map[string]int{"A": 2, "B": 1}, tally)
			},
		},
		{
			name: "Should re-arm a future voting start",
			args: args{
				schedule:    entity.Schedule{domain.JobVotingStart: testNow.Add(time.Hour)},
				nominations: nominations,
			},
			wantPhase:   domain.PhaseClosed,
			wantPending: []string{domain.JobVotingStart},
		},
		{
			name: "Should re-arm a future nomination close",
			args: args{
				schedule: entity.Schedule{
					domain.JobNominationStart: testNow.Add(-time.Hour),
					domain.JobNominationClose: testNow.Add(time.Hour),
				},
			},
			wantPhase:   domain.PhaseNominationsOpen,
			wantPending: []string{domain.JobNominationClose},
		},
		{
			name: "Should close nominations missed while offline",
			args: args{
				schedule:    entity.Schedule{domain.JobNominationClose: time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC)},
				nominations: nominations,
			},
			buildMock: func(m allMocks) {
				m.mockNotifier.EXPECT().Announce(gomock.Any(), gomock.Any(), false).Return(nil)
			},
			wantPhase:   domain.PhaseClosed,
			wantPending: []string{domain.JobVotingStart},
			check: func(t *testing.T, m allMocks) {
				schedule, err := m.dm.Schedule().Load()
				require.NoError(t, err)
				votingAt, ok := schedule.Get(domain.JobVotingStart)
				require.True(t, ok)
				assert.True(t, votingAt.Equal(testNow))
			},
		},
		{
			name:        "Should keep a future next election",
			args:        args{schedule: entity.Schedule{domain.JobNextElection: testNow.Add(48 * time.Hour)}},
			wantPhase:   domain.PhaseClosed,
			wantPending: []string{domain.JobNextElection},
			check: func(t *testing.T, m allMocks) {
				assertNextElection(t, m, testNow.Add(48*time.Hour))
			},
		},
		{
			name: "Should open nominations for a start missed this week",
			args: args{schedule: entity.Schedule{domain.JobNextElection: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)}},
			buildMock: func(m allMocks) {
				m.mockNotifier.EXPECT().Announce(gomock.Any(), gomock.Any(), true).Return(nil)
			},
			wantPhase:   domain.PhaseNominationsOpen,
			wantPending: []string{domain.JobNominationClose},
		},
		{
			name:        "Should fall back to the default when the missed window already passed",
			args:        args{schedule: entity.Schedule{domain.JobNextElection: time.Date(2024, 4, 22, 0, 0, 0, 0, time.UTC)}},
			wantPhase:   domain.PhaseClosed,
			wantPending: []string{domain.JobNextElection},
			check: func(t *testing.T, m allMocks) {
				assertNextElection(t, m, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
			},
		},
		{
			name:        "Should derive the next election from the last one",
			args:        args{lastElection: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			wantPhase:   domain.PhaseClosed,
			wantPending: []string{domain.JobNextElection},
			check: func(t *testing.T, m allMocks) {
				assertNextElection(t, m, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC))
			},
		},
		{
			name:        "Should use the first Monday of next month without any history",
			wantPhase:   domain.PhaseClosed,
			wantPending: []string{domain.JobNextElection},
			check: func(t *testing.T, m allMocks) {
				assertNextElection(t, m, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc := newServiceTestMock(t)
			seedElection(t, m, tt.args.nominations, tt.args.ballots)
			if tt.args.schedule != nil {
				require.NoError(t, m.dm.Schedule().Save(tt.args.schedule))
			}
			if !tt.args.lastElection.IsZero() {
				require.NoError(t, m.dm.Schedule().SetLastElection(tt.args.lastElection))
			}
			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			require.NoError(t, svc.Start(context.Background()))
			defer svc.Stop()

			assert.Equal(t, tt.wantPhase, svc.Phase())
			assert.Equal(t, tt.wantPending, svc.scheduler.Pending())
			if tt.check != nil {
				tt.check(t, m)
			}
		})
	}
}

func assertNextElection(t *testing.T, m allMocks, want time.Time) {
	t.Helper()

	schedule, err := m.dm.Schedule().Load()
	require.NoError(t, err)
	next, ok := schedule.Get(domain.JobNextElection)
	require.True(t, ok)
	assert.True(t, next.Equal(want), "got %s, want %s", next, want)
}
