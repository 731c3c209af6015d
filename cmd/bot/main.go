package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/discord-election-bot/internal/config"
	"github.com/diegoclair/discord-election-bot/internal/database"
	"github.com/diegoclair/discord-election-bot/internal/discord"
	"github.com/diegoclair/discord-election-bot/internal/domain/contract"
	"github.com/diegoclair/discord-election-bot/internal/domain/service"
	"github.com/diegoclair/discord-election-bot/internal/filestore"
	"github.com/diegoclair/discord-election-bot/internal/handlers"
	"github.com/diegoclair/discord-election-bot/internal/logger"
	"github.com/diegoclair/discord-election-bot/internal/slack"
	"github.com/diegoclair/discord-election-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Election bot stopped")
	}
}

func run() error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}
	if envErr != nil {
		log.Warn().Msg(".env file not found")
	}

	dm, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent

	discordNotifier := discord.NewNotifier(session, cfg.GuildID, cfg.AnnounceChannelID, cfg.WinnerRoleID)

	var notifier contract.Notifier = discordNotifier
	if cfg.SlackWebhookURL != "" {
		notifier = slack.NewMirror(discordNotifier, cfg.SlackWebhookURL)
		log.Info().Msg("Mirroring announcements to Slack")
	}

	services := service.NewInstance(dm, notifier, service.Options{
		Location:           cfg.Location,
		VotingDuration:     cfg.VotingDuration,
		CycleIntervalWeeks: cfg.CycleIntervalWeeks,
		TransitionTimeout:  cfg.TransitionTimeout,
		CommandPrefix:      cfg.CommandPrefix,
	})

	handler := handlers.New(services.Election, discordNotifier, discordNotifier, cfg.CommandPrefix)
	session.AddHandler(handler.HandleMessage)
	session.AddHandler(handler.HandleInteraction)
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("Connected to Discord")
	})

	if err := session.Open(); err != nil {
		return fmt.Errorf("failed to connect to Discord: %w", err)
	}
	defer session.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := services.Election.Start(log.Logger.WithContext(ctx)); err != nil {
		log.Error().Err(err).Msg("Schedule recovery finished with errors")
	}
	defer services.Election.Stop()

	log.Info().Str("prefix", cfg.CommandPrefix).Str("store", cfg.StoreBackend).Msg("Election bot running")
	<-ctx.Done()
	log.Info().Msg("Shutting down")
	return nil
}

func openStore(cfg *config.Config) (contract.DataManager, func(), error) {
	if cfg.StoreBackend == config.StoreSQLite {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		log.Info().Msg("Running migrations...")
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info().Msg("Migrations completed successfully")

		return database.NewInstance(db, cfg.Location), func() { db.Close() }, nil
	}

	store, err := filestore.New(cfg.DataDir, cfg.Location)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize data directory: %w", err)
	}
	return store, func() {}, nil
}
