package service

import (
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain"
	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
)

// Options tunes the election cadence. Zero values fall back to defaults.
type Options struct {
	Location           *time.Location
	VotingDuration     time.Duration
	CycleIntervalWeeks int
	TransitionTimeout  time.Duration
	CommandPrefix      string

	now       func() time.Time
	afterFunc afterFunc
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.VotingDuration <= 0 {
		o.VotingDuration = domain.DefaultVotingDuration
	}
	if o.CycleIntervalWeeks <= 0 {
		o.CycleIntervalWeeks = domain.DefaultCycleInterval
	}
	if o.TransitionTimeout <= 0 {
		o.TransitionTimeout = domain.DefaultTransitionLimit
	}
	if o.CommandPrefix == "" {
		o.CommandPrefix = "."
	}
	if o.now == nil {
		loc := o.Location
		o.now = func() time.Time { return time.Now().In(loc) }
	}
	if o.afterFunc == nil {
		o.afterFunc = realAfterFunc
	}
	return o
}

type Instance struct {
	Election *electionService
}

func NewInstance(dm contract.DataManager, notifier contract.Notifier, opts Options) *Instance {
	opts = opts.withDefaults()
	sched := newScheduler(dm, opts.now, opts.afterFunc)

	return &Instance{
		Election: newElection(dm, notifier, sched, opts),
	}
}
