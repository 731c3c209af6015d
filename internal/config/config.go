package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/discord-election-bot/internal/domain"
)

const (
	StoreCSV    = "csv"
	StoreSQLite = "sqlite"
)

type Config struct {
	DiscordToken      string
	GuildID           string
	AnnounceChannelID string
	WinnerRoleID      string
	CommandPrefix     string

	StoreBackend string
	DataDir      string
	DatabasePath string

	Location           *time.Location
	VotingDuration     time.Duration
	CycleIntervalWeeks int
	TransitionTimeout  time.Duration

	LogLevel        string
	LogFormat       string
	SlackWebhookURL string
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		DiscordToken:      getEnv("DISCORD_TOKEN", ""),
		GuildID:           getEnv("GUILD_ID", ""),
		AnnounceChannelID: getEnv("ANNOUNCE_CHANNEL_ID", ""),
		WinnerRoleID:      getEnv("WINNER_ROLE_ID", ""),
		CommandPrefix:     getEnv("COMMAND_PREFIX", "."),
		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", StoreCSV)),
		DataDir:           getEnv("DATA_DIR", "./data"),
		DatabasePath:      getEnv("DATABASE_PATH", "./election.db"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "console"),
		SlackWebhookURL:   getEnv("SLACK_WEBHOOK_URL", ""),
	}

	var errs []error

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid TIMEZONE: %w", err))
	}
	cfg.Location = loc

	cfg.VotingDuration, err = getDuration("VOTING_DURATION", domain.DefaultVotingDuration)
	errs = append(errs, err)

	cfg.TransitionTimeout, err = getDuration("TRANSITION_TIMEOUT", domain.DefaultTransitionLimit)
	errs = append(errs, err)

	cfg.CycleIntervalWeeks, err = getInt("CYCLE_INTERVAL_WEEKS", domain.DefaultCycleInterval)
	errs = append(errs, err)

	errs = append(errs, cfg.validate())

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	required := []struct{ key, value string }{
		{"DISCORD_TOKEN", c.DiscordToken},
		{"GUILD_ID", c.GuildID},
		{"ANNOUNCE_CHANNEL_ID", c.AnnounceChannelID},
		{"WINNER_ROLE_ID", c.WinnerRoleID},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.key))
		}
	}

	if c.StoreBackend != StoreCSV && c.StoreBackend != StoreSQLite {
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreCSV, StoreSQLite, c.StoreBackend))
	}
	if c.VotingDuration <= 0 {
		errs = append(errs, errors.New("VOTING_DURATION must be positive"))
	}
	if c.TransitionTimeout <= 0 {
		errs = append(errs, errors.New("TRANSITION_TIMEOUT must be positive"))
	}
	if c.CycleIntervalWeeks <= 0 {
		errs = append(errs, errors.New("CYCLE_INTERVAL_WEEKS must be positive"))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
