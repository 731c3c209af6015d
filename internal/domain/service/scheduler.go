package service

import (
	"sort"
	"sync"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

type timer interface {
	Stop() bool
}

// afterFunc matches time.AfterFunc so tests can drive timers by hand
type afterFunc func(d time.Duration, f func()) timer

func realAfterFunc(d time.Duration, f func()) timer {
	return time.AfterFunc(d, f)
}

type job struct {
	at    time.Time
	timer timer
	gen   uint64
}

// scheduler keeps at most one pending timer per job name and persists the
// schedule through the data manager
type scheduler struct {
	dm        contract.DataManager
	now       func() time.Time
	afterFunc afterFunc

	mu      sync.Mutex
	jobs    map[string]job
	gen     uint64
	stopped bool
}

func newScheduler(dm contract.DataManager, now func() time.Time, af afterFunc) *scheduler {
	if af == nil {
		af = realAfterFunc
	}
	return &scheduler{
		dm:        dm,
		now:       now,
		afterFunc: af,
		jobs:      make(map[string]job),
	}
}

// Schedule arms fn to run at the given time, replacing any pending job with
// the same name. Times in the past fire immediately.
func (s *scheduler) Schedule(name string, at time.Time, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		log.Debug().Str("job", name).Msg("scheduler stopped, job ignored")
		return
	}

	if current, ok := s.jobs[name]; ok {
		current.timer.Stop()
	}

	s.gen++
	gen := s.gen

	wait := at.Sub(s.now())
	if wait < 0 {
		wait = 0
	}

	t := s.afterFunc(wait, func() {
		if !s.release(name, gen) {
			return
		}
		fn()
	})
	s.jobs[name] = job{at: at, timer: t, gen: gen}

	log.Debug().Str("job", name).Time("at", at).Dur("in", wait).Msg("job scheduled")
}

// release forgets a fired job and reports whether it is still the current one
func (s *scheduler) release(name string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.jobs[name]
	if !ok || current.gen != gen || s.stopped {
		return false
	}
	delete(s.jobs, name)
	return true
}

func (s *scheduler) Cancel(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range names {
		if current, ok := s.jobs[name]; ok {
			current.timer.Stop()
			delete(s.jobs, name)
		}
	}
}

// Pending returns the armed job names ordered by fire time
func (s *scheduler) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return s.jobs[names[i]].at.Before(s.jobs[names[j]].at)
	})
	return names
}

// Stop cancels every pending job. Jobs scheduled afterwards are ignored.
func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, current := range s.jobs {
		current.timer.Stop()
		delete(s.jobs, name)
	}
	s.stopped = true
	log.Info().Msg("Scheduler stopped")
}

func (s *scheduler) Load() (entity.Schedule, error) {
	return s.dm.Schedule().Load()
}

func (s *scheduler) Save(schedule entity.Schedule) error {
	return s.dm.Schedule().Save(schedule)
}

// Update loads the persisted schedule, applies mutate and saves the result
func (s *scheduler) Update(mutate func(schedule entity.Schedule)) (entity.Schedule, error) {
	schedule, err := s.Load()
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		schedule = entity.Schedule{}
	}
	mutate(schedule)
	if err := s.Save(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}
