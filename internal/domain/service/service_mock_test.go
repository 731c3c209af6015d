package service

import (
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/filestore"
	"github.com/diegoclair/discord-election-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Monday 6 May 2024, 09:00 UTC
var testNow = time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

type fakeTimer struct {
	wait    time.Duration
	fn      func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	wasActive := !f.stopped
	f.stopped = true
	return wasActive
}

// fakeClock replaces the wall clock and time.AfterFunc. Timers only fire
// through fire.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{wait: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

type allMocks struct {
	mockNotifier *mocks.MockNotifier
	clock        *fakeClock
	dm           contract.DataManager
}

func newServiceTestMock(t *testing.T) (m allMocks, svc *electionService) {
	t.Helper()

	ctrl := gomock.NewController(t)

	store, err := filestore.New(t.TempDir(), time.UTC)
	require.NoError(t, err)

	m = allMocks{
		mockNotifier: mocks.NewMockNotifier(ctrl),
		clock:        &fakeClock{now: testNow},
		dm:           store,
	}

	instance := NewInstance(store, m.mockNotifier, Options{
		Location:  time.UTC,
		now:       m.clock.Now,
		afterFunc: m.clock.AfterFunc,
	})
	require.NotNil(t, instance)

	return m, instance.Election
}

// fire runs the pending job synchronously, as its timer would
func fire(t *testing.T, svc *electionService, name string) {
	t.Helper()

	svc.scheduler.mu.Lock()
	current, ok := svc.scheduler.jobs[name]
	svc.scheduler.mu.Unlock()
	require.True(t, ok, "job %s is not pending", name)

	ft, ok := current.timer.(*fakeTimer)
	require.True(t, ok)
	ft.fn()
}
