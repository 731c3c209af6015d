package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain"
	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// jobPhase is the phase an automatic transition expects to find
var jobPhase = map[string]domain.Phase{
	domain.JobNominationClose: domain.PhaseNominationsOpen,
	domain.JobVotingStart:     domain.PhaseClosed,
	domain.JobVotingEnd:       domain.PhaseVotingOpen,
	domain.JobNextElection:    domain.PhaseClosed,
}

type electionService struct {
	dm        contract.DataManager
	notifier  contract.Notifier
	scheduler *scheduler
	opts      Options

	// mu serializes transitions, nominations and votes
	mu    sync.Mutex
	phase atomic.Int32
}

func newElection(dm contract.DataManager, notifier contract.Notifier, sched *scheduler, opts Options) *electionService {
	return &electionService{
		dm:        dm,
		notifier:  notifier,
		scheduler: sched,
		opts:      opts,
	}
}

func (s *electionService) Phase() domain.Phase {
	return domain.Phase(s.phase.Load())
}

func (s *electionService) setPhase(p domain.Phase) {
	s.phase.Store(int32(p))
}

func (s *electionService) now() time.Time {
	return s.opts.now().In(s.opts.Location)
}

// Start restores the persisted schedule and resumes the cycle
func (s *electionService) Start(ctx context.Context) error {
	ctx, cancel := s.runContext(ctx, "startup")
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.recover(ctx)
}

func (s *electionService) Stop() {
	s.scheduler.Stop()
}

func (s *electionService) Nominate(ctx context.Context, candidate entity.Member) error {
	if candidate.Bot {
		return domain.ErrBotCandidate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Phase() != domain.PhaseNominationsOpen {
		return domain.ErrNominationsClosed
	}

	exists, err := s.dm.Nomination().Exists(candidate.ID)
	if err != nil {
		return fmt.Errorf("failed to check nomination: %w", err)
	}
	if exists {
		return domain.ErrAlreadyNominated
	}

	err = s.dm.Nomination().Add(entity.Nomination{
		CandidateID: candidate.ID,
		DisplayName: candidate.DisplayName,
	})
	if err != nil {
		return fmt.Errorf("failed to add nomination: %w", err)
	}

	log.Info().Str("candidate_id", candidate.ID).Str("name", candidate.DisplayName).Msg("Member nominated")
	return nil
}

func (s *electionService) Nominations() ([]entity.Nomination, error) {
	return s.dm.Nomination().List()
}

func (s *electionService) CastVote(ctx context.Context, voterID, nomineeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Phase() != domain.PhaseVotingOpen {
		return domain.ErrVotingClosed
	}

	exists, err := s.dm.Nomination().Exists(nomineeID)
	if err != nil {
		return fmt.Errorf("failed to check nomination: %w", err)
	}
	if !exists {
		return domain.ErrNotNominated
	}

	err = s.dm.Ballot().Record(entity.Ballot{VoterID: voterID, NomineeID: nomineeID})
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	log.Debug().Str("voter_id", voterID).Str("nominee_id", nomineeID).Msg("Vote recorded")
	return nil
}

func (s *electionService) ForceStartNominations(ctx context.Context) error {
	ctx, cancel := s.runContext(ctx, "force_start_nominations")
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.Phase() {
	case domain.PhaseVotingOpen, domain.PhaseTallying:
		return domain.ErrVotingInProgress
	}

	s.scheduler.Cancel(domain.JobNextElection, domain.JobVotingStart)
	return s.openNominations(ctx)
}

func (s *electionService) ForceStartVoting(ctx context.Context) error {
	ctx, cancel := s.runContext(ctx, "force_start_voting")
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.Phase() {
	case domain.PhaseVotingOpen, domain.PhaseTallying:
		return domain.ErrVotingInProgress
	case domain.PhaseNominationsOpen:
		if err := s.closeNominations(ctx); err != nil {
			return err
		}
	}

	return s.startVoting(ctx)
}

func (s *electionService) ForceEndElection(ctx context.Context) (*entity.ElectionResult, error) {
	ctx, cancel := s.runContext(ctx, "force_end_election")
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Phase() != domain.PhaseVotingOpen {
		return nil, domain.ErrVotingNotOpen
	}

	return s.endVoting(ctx)
}

// runContext derives the context of one transition run, bounded by the
// transition timeout and carrying a logger tagged with a fresh run id
func (s *electionService) runContext(parent context.Context, name string) (context.Context, context.CancelFunc) {
	logger := log.With().Str("transition", name).Str("run_id", uuid.NewString()).Logger()
	ctx, cancel := context.WithTimeout(parent, s.opts.TransitionTimeout)
	return logger.WithContext(ctx), cancel
}

// arm schedules an automatic transition. When it fires the phase is checked
// against the one the job expects and mismatches are skipped.
func (s *electionService) arm(name string, at time.Time, transition func(ctx context.Context) error) {
	s.scheduler.Schedule(name, at, func() {
		ctx, cancel := s.runContext(context.Background(), name)
		defer cancel()

		s.mu.Lock()
		defer s.mu.Unlock()

		logger := zerolog.Ctx(ctx)
		if want, ok := jobPhase[name]; ok && s.Phase() != want {
			logger.Warn().
				Stringer("phase", s.Phase()).
				Stringer("expected", want).
				Msg("Skipping transition, election is in another phase")
			return
		}

		if err := transition(ctx); err != nil {
			logger.Error().Err(err).Msg("Transition failed")
		}
	})
}

func (s *electionService) openNominations(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	now := s.now()
	closeAt := nominationCloseFor(now)

	s.setPhase(domain.PhaseNominationsOpen)

	_, err := s.scheduler.Update(func(schedule entity.Schedule) {
		delete(schedule, domain.JobNextElection)
		delete(schedule, domain.JobVotingStart)
		delete(schedule, domain.JobVotingEnd)
		schedule[domain.JobNominationStart] = now
		schedule[domain.JobNominationClose] = closeAt
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to persist nomination schedule")
	}

	s.arm(domain.JobNominationClose, closeAt, s.closeNominations)
	logger.Info().Time("closes_at", closeAt).Msg("Nominations opened")

	if err := s.notifier.Announce(ctx, nominationsOpenMessage(s.opts.CommandPrefix, closeAt), true); err != nil {
		return fmt.Errorf("failed to announce nominations: %w", err)
	}
	return nil
}

func (s *electionService) closeNominations(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	s.scheduler.Cancel(domain.JobNominationClose)

	now := s.now()
	closedAt := now
	if schedule, err := s.scheduler.Load(); err == nil {
		if due, ok := schedule.Get(domain.JobNominationClose); ok && !due.After(now) {
			closedAt = due
		}
	}
	votingAt := votingStartFor(closedAt)
	if votingAt.Before(now) {
		votingAt = now
	}

	s.setPhase(domain.PhaseClosed)

	_, err := s.scheduler.Update(func(schedule entity.Schedule) {
		delete(schedule, domain.JobNominationStart)
		delete(schedule, domain.JobNominationClose)
		schedule[domain.JobVotingStart] = votingAt
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to persist voting schedule")
	}

	s.arm(domain.JobVotingStart, votingAt, s.startVoting)

	nominations, err := s.dm.Nomination().List()
	if err != nil {
		logger.Error().Err(err).Msg("failed to list nominations")
	}
	logger.Info().Int("nominees", len(nominations)).Time("voting_at", votingAt).Msg("Nominations closed")

	if err := s.notifier.Announce(ctx, nominationsClosedMessage(nominations, votingAt), false); err != nil {
		return fmt.Errorf("failed to announce nominations closing: %w", err)
	}
	return nil
}

func (s *electionService) startVoting(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	s.scheduler.Cancel(domain.JobVotingStart)

	nominations, err := s.dm.Nomination().List()
	if err != nil {
		return fmt.Errorf("failed to list nominations: %w", err)
	}

	if len(nominations) == 0 {
		logger.Info().Msg("No nominees, election cancelled")
		s.setPhase(domain.PhaseClosed)
		announceErr := s.notifier.Announce(ctx, votingCancelledMessage, false)
		if err := s.scheduleNextCycle(ctx, s.now()); err != nil {
			return err
		}
		if announceErr != nil {
			return fmt.Errorf("failed to announce cancellation: %w", announceErr)
		}
		return nil
	}

	endAt := s.now().Add(s.opts.VotingDuration)
	s.setPhase(domain.PhaseVotingOpen)

	_, err = s.scheduler.Update(func(schedule entity.Schedule) {
		delete(schedule, domain.JobVotingStart)
		schedule[domain.JobVotingEnd] = endAt
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to persist voting end")
	}

	s.arm(domain.JobVotingEnd, endAt, s.endVotingJob)
	logger.Info().Int("nominees", len(nominations)).Time("ends_at", endAt).Msg("Voting opened")

	if err := s.notifier.PresentBallot(ctx, nominations, endAt); err != nil {
		return fmt.Errorf("failed to present ballot: %w", err)
	}
	return nil
}

func (s *electionService) endVotingJob(ctx context.Context) error {
	_, err := s.endVoting(ctx)
	return err
}

func (s *electionService) endVoting(ctx context.Context) (*entity.ElectionResult, error) {
	logger := zerolog.Ctx(ctx)
	s.scheduler.Cancel(domain.JobVotingEnd)
	s.setPhase(domain.PhaseTallying)

	if err := s.notifier.CloseBallot(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to close ballot")
	}

	return s.processResults(ctx)
}

// processResults tallies the ballots, reassigns the winner role and
// announces the outcome. The cycle is always cleaned up and the next one
// scheduled, whatever happens on the way.
func (s *electionService) processResults(ctx context.Context) (result *entity.ElectionResult, err error) {
	logger := zerolog.Ctx(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Result processing panicked")
			err = fmt.Errorf("result processing panicked: %v", r)
		}
		if cleanupErr := s.cleanup(ctx); cleanupErr != nil {
			logger.Error().Err(cleanupErr).Msg("failed to clean up election")
			err = errors.Join(err, cleanupErr)
		}
	}()

	tally, err := s.dm.Ballot().Tally()
	if err != nil {
		return nil, fmt.Errorf("failed to tally votes: %w", err)
	}

	members := s.resolveNominees(ctx, tally)
	result = buildResult(tally, members)
	logger.Info().
		Str("outcome", string(result.Outcome)).
		Int("total_votes", result.TotalVotes).
		Int("winners", len(result.Winners)).
		Msg("Votes tallied")

	result.RoleErrors = s.reassignRole(ctx, result.Winners)

	if err := s.notifier.Announce(ctx, result.Announcement, true); err != nil {
		logger.Error().Err(err).Msg("failed to announce results")
	}

	if len(result.RoleErrors) > 0 {
		if err := s.notifier.Announce(ctx, roleErrorsMessage(result.RoleErrors), false); err != nil {
			logger.Error().Err(err).Msg("failed to report role errors")
		}
	}

	return result, nil
}

func (s *electionService) resolveNominees(ctx context.Context, tally map[string]int) map[string]*entity.Member {
	logger := zerolog.Ctx(ctx)
	members := make(map[string]*entity.Member, len(tally))

	for id := range tally {
		member, err := s.notifier.ResolveMember(ctx, id)
		if err != nil {
			logger.Warn().Err(err).Str("member_id", id).Msg("failed to resolve nominee")
			continue
		}
		if member == nil {
			logger.Warn().Str("member_id", id).Msg("Nominee is no longer a guild member")
			continue
		}
		members[id] = member
	}
	return members
}

// reassignRole moves the winner role from its current holders to the winners
func (s *electionService) reassignRole(ctx context.Context, winners []entity.Standing) []error {
	logger := zerolog.Ctx(ctx)
	var roleErrors []error

	winnerIDs := make(map[string]bool, len(winners))
	for _, w := range winners {
		winnerIDs[w.NomineeID] = true
	}

	holders, err := s.notifier.RoleHolders(ctx)
	if err != nil {
		roleErrors = append(roleErrors, fmt.Errorf("failed to list role holders: %w", err))
	}

	holding := make(map[string]bool, len(holders))
	for _, id := range holders {
		holding[id] = true
		if winnerIDs[id] {
			continue
		}
		if err := s.notifier.RevokeRole(ctx, id); err != nil {
			roleErrors = append(roleErrors, fmt.Errorf("failed to revoke role from %s: %w", id, err))
		}
	}

	for _, w := range winners {
		if holding[w.NomineeID] {
			continue
		}
		if err := s.notifier.AssignRole(ctx, w.NomineeID); err != nil {
			roleErrors = append(roleErrors, fmt.Errorf("failed to assign role to %s: %w", w.Label, err))
		}
	}

	for _, err := range roleErrors {
		logger.Error().Err(err).Msg("Role update failed")
	}
	return roleErrors
}

// cleanup clears the cycle data, records the election and schedules the next one
func (s *electionService) cleanup(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)
	finishedAt := s.now()

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if err := dm.Nomination().Clear(); err != nil {
			return fmt.Errorf("failed to clear nominations: %w", err)
		}
		if err := dm.Ballot().Clear(); err != nil {
			return fmt.Errorf("failed to clear votes: %w", err)
		}
		return nil
	})

	if nextErr := s.scheduleNextCycle(ctx, finishedAt); nextErr != nil {
		err = errors.Join(err, nextErr)
	}
	return err
}

func (s *electionService) scheduleNextCycle(ctx context.Context, finishedAt time.Time) error {
	logger := zerolog.Ctx(ctx)
	next := nextElectionAfter(finishedAt, s.opts.CycleIntervalWeeks)

	s.setPhase(domain.PhaseClosed)
	s.arm(domain.JobNextElection, next, s.openNominations)

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if err := dm.Schedule().SetLastElection(finishedAt); err != nil {
			return fmt.Errorf("failed to record last election: %w", err)
		}
		if err := dm.Schedule().Save(entity.Schedule{domain.JobNextElection: next}); err != nil {
			return fmt.Errorf("failed to persist next election: %w", err)
		}
		return nil
	})

	logger.Info().Time("next_election", next).Msg("Next election scheduled")
	return err
}
