package entity

import (
	"sort"
	"time"
)

// Schedule maps a job name to the time its transition is due
type Schedule map[string]time.Time

// Get returns the time for name and whether it is set
func (s Schedule) Get(name string) (time.Time, bool) {
	t, ok := s[name]
	if !ok || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// Names returns the job names sorted by due time
func (s Schedule) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if s[names[i]].Equal(s[names[j]]) {
			return names[i] < names[j]
		}
		return s[names[i]].Before(s[names[j]])
	})
	return names
}

// TimestampLayout is the persisted format of schedule times
const TimestampLayout = time.RFC3339Nano

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseTimestamp reads a schedule timestamp. Values without an offset are
// interpreted in loc.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(loc), nil
	}

	var lastErr error
	for _, layout := range naiveLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
