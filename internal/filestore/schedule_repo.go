package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

type scheduleRepo struct {
	path     string
	lastPath string
	loc      *time.Location
}

func newScheduleRepo(path, lastPath string, loc *time.Location) contract.ScheduleRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &scheduleRepo{path: path, lastPath: lastPath, loc: loc}
}

func (r *scheduleRepo) Load() (entity.Schedule, error) {
	schedule := entity.Schedule{}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return schedule, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn().Err(err).Str("file", r.path).Msg("Ignoring malformed schedule file")
		return schedule, nil
	}

	for name, value := range raw {
		t, err := entity.ParseTimestamp(value, r.loc)
		if err != nil {
			log.Warn().Err(err).Str("job", name).Str("value", value).Msg("Ignoring malformed schedule entry")
			continue
		}
		schedule[name] = t
	}

	return schedule, nil
}

func (r *scheduleRepo) Save(schedule entity.Schedule) error {
	raw := make(map[string]string, len(schedule))
	for name, t := range schedule {
		if t.IsZero() {
			continue
		}
		raw[name] = t.In(r.loc).Format(entity.TimestampLayout)
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}

	return writeFileAtomic(r.path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// LastElection reads the epoch seconds stored by previous cycles
func (r *scheduleRepo) LastElection() (time.Time, bool, error) {
	data, err := os.ReadFile(r.lastPath)
	if errors.Is(err, os.ErrNotExist) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read last election: %w", err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err == nil && (math.IsNaN(seconds) || math.IsInf(seconds, 0)) {
		err = fmt.Errorf("non-finite timestamp %v", seconds)
	}
	if err != nil {
		log.Warn().Err(err).Str("file", r.lastPath).Msg("Ignoring malformed last election file")
		return time.Time{}, false, nil
	}

	whole := int64(seconds)
	nanos := int64((seconds - float64(whole)) * float64(time.Second))
	return time.Unix(whole, nanos).In(r.loc), true, nil
}

func (r *scheduleRepo) SetLastElection(at time.Time) error {
	value := strconv.FormatInt(at.Unix(), 10)
	return writeFileAtomic(r.lastPath, func(w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}
