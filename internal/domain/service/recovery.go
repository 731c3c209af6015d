package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/rs/zerolog"
)

func (s *electionService) ViewSchedule() (string, error) {
	schedule, err := s.scheduler.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load schedule: %w", err)
	}
	return scheduleMessage(s.Phase(), schedule), nil
}

// recover resumes the cycle from the persisted schedule. The most advanced
// pending transition wins: due ones run now, future ones are re-armed.
func (s *electionService) recover(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	now := s.now()

	schedule, err := s.scheduler.Load()
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}

	if endAt, ok := schedule.Get(domain.JobVotingEnd); ok {
		s.setPhase(domain.PhaseVotingOpen)
		if !endAt.After(now) {
			logger.Info().Time("due", endAt).Msg("Missed voting end, tallying now")
			_, err := s.endVoting(ctx)
			return err
		}

		s.arm(domain.JobVotingEnd, endAt, s.endVotingJob)
		logger.Info().Time("ends_at", endAt).Msg("Voting resumed")

		nominations, err := s.dm.Nomination().List()
		if err != nil {
			return fmt.Errorf("failed to list nominations: %w", err)
		}
		if err := s.notifier.PresentBallot(ctx, nominations, endAt); err != nil {
			return fmt.Errorf("failed to present ballot: %w", err)
		}
		return nil
	}

	if startAt, ok := schedule.Get(domain.JobVotingStart); ok {
		s.setPhase(domain.PhaseClosed)
		if !startAt.After(now) {
			logger.Info().Time("due", startAt).Msg("Missed voting start, opening now")
			return s.startVoting(ctx)
		}
		s.arm(domain.JobVotingStart, startAt, s.startVoting)
		logger.Info().Time("starts_at", startAt).Msg("Voting start restored")
		return nil
	}

	if closeAt, ok := schedule.Get(domain.JobNominationClose); ok {
		s.setPhase(domain.PhaseNominationsOpen)
		if !closeAt.After(now) {
			logger.Info().Time("due", closeAt).Msg("Missed nomination close, closing now")
			return s.closeNominations(ctx)
		}
		s.arm(domain.JobNominationClose, closeAt, s.closeNominations)
		logger.Info().Time("closes_at", closeAt).Msg("Nominations resumed")
		return nil
	}

	s.setPhase(domain.PhaseClosed)

	next, catchUp := s.nextCycleStart(ctx, schedule, now)
	if catchUp {
		logger.Info().Time("due", next).Msg("Missed election start, opening nominations now")
		return s.openNominations(ctx)
	}

	_, err = s.scheduler.Update(func(schedule entity.Schedule) {
		schedule[domain.JobNextElection] = next
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to persist next election")
	}
	s.arm(domain.JobNextElection, next, s.openNominations)
	logger.Info().Time("next_election", next).Msg("Next election scheduled")
	return nil
}

// nextCycleStart picks when nominations open next. catchUp reports a start
// that already passed while its nomination window is still open.
func (s *electionService) nextCycleStart(ctx context.Context, schedule entity.Schedule, now time.Time) (next time.Time, catchUp bool) {
	logger := zerolog.Ctx(ctx)

	candidates := make([]time.Time, 0, 1)
	if at, ok := schedule.Get(domain.JobNextElection); ok {
		candidates = append(candidates, at)
	} else {
		last, ok, err := s.dm.Schedule().LastElection()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to read last election")
		}
		if ok {
			candidates = append(candidates, nextElectionAfter(last.In(s.opts.Location), s.opts.CycleIntervalWeeks))
		}
	}

	for _, at := range candidates {
		if at.After(now) {
			return at, false
		}
		if nominationCloseFor(at).After(now) {
			return at, true
		}
	}

	return defaultCycleStart(now), false
}
