// Package main contains the entrypoint for the savdo moderation bot.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/spf13/pflag"

	"github.com/edgard/savdobot/internal/bot"
	"github.com/edgard/savdobot/internal/bot/handlers"
	"github.com/edgard/savdobot/internal/bot/tasks"
	"github.com/edgard/savdobot/internal/config"
	"github.com/edgard/savdobot/internal/database"
	"github.com/edgard/savdobot/internal/logger"
	"github.com/edgard/savdobot/internal/moderation"
	"github.com/edgard/savdobot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run wires config, logger, database, moderation core, Telegram client and
// scheduler, then blocks until shutdown. It returns the process exit code.
func run(ctx context.Context) int {
	configPath := pflag.StringP("config", "c", "./config.yaml", "Path to configuration file")
	envFile := pflag.String("env", ".env", "Path to an optional .env file")
	pflag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log, logCloser := logger.NewLogger(cfg.Logger)
	defer func() {
		if err := logCloser.Close(); err != nil {
			slog.Error("Failed to close log file", "error", err)
		}
	}()
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON, "file", cfg.Logger.File)

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db)
	store := database.NewStore(db, log)
	if err := store.Ping(ctx); err != nil {
		log.Error("Database is not reachable", "error", err)
		return 1
	}

	var hours *moderation.WorkingHours
	if cfg.WorkingHours.Enabled {
		hours, err = moderation.ParseWorkingHours(cfg.WorkingHours.Open, cfg.WorkingHours.Close, cfg.WorkingHours.Timezone)
		if err != nil {
			log.Error("Invalid working hours", "error", err)
			return 1
		}
		log.Info("Working hours enabled", "hours", hours.String())
	}

	// The client is created before the handlers exist, so the default handler
	// reaches them through this variable.
	var hDeps handlers.HandlerDeps
	defaultHandler := func(ctx context.Context, b *tgbot.Bot, u *models.Update) {
		handlers.NewUpdateHandler(hDeps)(ctx, b, u)
	}

	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log,
		tgbot.WithMiddlewares(handlers.Recover(log), logger.Middleware(log)),
		tgbot.WithDefaultHandler(defaultHandler),
	)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	registry := moderation.NewRegistry()
	gateway := moderation.NewPermissionGateway(tg, log)
	roles := moderation.NewChatRoleAuthorizer(tg, log)

	gateOpts := []moderation.GateOption{moderation.WithRecorder(store)}
	if spamCfg := cfg.Moderation.Spam; spamCfg.Enabled {
		filter, err := moderation.NewSpamFilter(moderation.SpamOptions{
			BannedWords:      spamCfg.BannedWords,
			BlockLinks:       spamCfg.BlockLinks,
			AllowedLanguages: spamCfg.AllowedLanguages,
		})
		if err != nil {
			log.Error("Failed to build spam filter", "error", err)
			return 1
		}
		gateOpts = append(gateOpts, moderation.WithSpamFilter(filter))
	}

	allowlist := moderation.NewAllowlistAuthorizer(cfg.Telegram.AdminIDs)
	log.Info("Admin allowlist loaded", "admin_ids", allowlist.IDs())

	hDeps = handlers.HandlerDeps{
		Logger:    log,
		Config:    cfg,
		Client:    tg,
		Store:     store,
		Registry:  registry,
		Trades:    moderation.NewTradeController(roles, gateway, registry, log),
		Gate:      moderation.NewGate(roles, registry, tg, log, gateOpts...),
		ChatPerms: gateway,
		Allowlist: allowlist,
		Hours:     hours,
	}

	if err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllCommands(hDeps)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}

	tDeps := tasks.TaskDeps{
		Logger: log,
		Config: cfg,
		Store:  store,
		Client: tg,
		Muter:  gateway,
		Hours:  hours,
	}

	var loc *time.Location
	if hours != nil {
		loc = hours.Location()
	}
	sched, err := bot.NewScheduler(log, tasks.ResolveSchedules(cfg.Scheduler, hours), tasks.RegisterAllTasks(tDeps), loc)
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.NewBot(log, cfg, store, tg, sched, gateway)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)
	log.Info("Bot run loop finished. Initiating shutdown...")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		time.Sleep(time.Second)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	time.Sleep(time.Second)
	return 0
}
