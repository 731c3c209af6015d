package service

import (
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain"
)

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// firstMonday returns 00:00 of the first Monday of the month
func firstMonday(year int, month time.Month, loc *time.Location) time.Time {
	day := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	for domain.ISOWeekday(day.Weekday()) != domain.NominationOpenDay {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// defaultCycleStart is the first Monday of now's month when it is still ahead,
// otherwise the first Monday of the next month
func defaultCycleStart(now time.Time) time.Time {
	start := firstMonday(now.Year(), now.Month(), now.Location())
	if start.After(now) {
		return start
	}
	next := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
	return firstMonday(next.Year(), next.Month(), now.Location())
}

// nominationCloseFor is the first Thursday 23:59 after start
func nominationCloseFor(start time.Time) time.Time {
	delta := (domain.NominationCloseDay - domain.ISOWeekday(start.Weekday()) + 7) % 7
	day := midnight(start).AddDate(0, 0, delta)
	closeAt := time.Date(day.Year(), day.Month(), day.Day(),
		domain.NominationCloseHour, domain.NominationCloseMinute, 0, 0, start.Location())
	if !closeAt.After(start) {
		closeAt = closeAt.AddDate(0, 0, 7)
	}
	return closeAt
}

// votingStartFor is 00:00 of the day after nominations closed
func votingStartFor(closedAt time.Time) time.Time {
	return midnight(closedAt).AddDate(0, 0, 1)
}

// nextElectionAfter adds the cycle interval to the last election and moves
// forward to the following Monday 00:00
func nextElectionAfter(last time.Time, weeks int) time.Time {
	target := last.AddDate(0, 0, 7*weeks)
	day := midnight(target)
	for domain.ISOWeekday(day.Weekday()) != domain.NominationOpenDay || day.Before(target) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}
