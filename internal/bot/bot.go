// Package bot implements the core bot functionality, lifecycle management,
// and component orchestration for the savdo moderation bot.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/edgard/savdobot/internal/config"
	"github.com/edgard/savdobot/internal/database"
)

// Listener receives Telegram updates until ctx is cancelled.
type Listener interface {
	Start(ctx context.Context)
}

// TaskScheduler runs the periodic tasks.
type TaskScheduler interface {
	Start(ctx context.Context) error
	Stop() error
}

// ChatMuter applies the chat-wide mute to a chat.
type ChatMuter interface {
	ApplyChatWideMute(ctx context.Context, chatID int64) error
}

// Bot represents the main bot application and manages its components' lifecycle.
type Bot struct {
	logger    *slog.Logger
	cfg       *config.Config
	store     database.Store
	listener  Listener
	scheduler TaskScheduler
	muter     ChatMuter
}

// NewBot creates a new instance of the bot with all required dependencies.
func NewBot(
	logger *slog.Logger,
	cfg *config.Config,
	store database.Store,
	listener Listener,
	scheduler TaskScheduler,
	muter ChatMuter,
) *Bot {
	return &Bot{
		logger:    logger.With("component", "bot_orchestrator"),
		cfg:       cfg,
		store:     store,
		listener:  listener,
		scheduler: scheduler,
		muter:     muter,
	}
}

// Run starts the bot and all its components, handling graceful shutdown on context cancellation.
// It returns an error if any component fails during startup or execution.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting bot orchestrator...")

	if b.cfg.Moderation.MuteOnStart {
		b.muteKnownChats(ctx)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("Starting Telegram bot listener...")

		b.listener.Start(gCtx)
		b.logger.Info("Telegram bot listener stopped.")

		if gCtx.Err() == nil {
			b.logger.Warn("Telegram bot listener stopped unexpectedly without context cancellation.")
			return fmt.Errorf("telegram listener stopped unexpectedly")
		}
		return nil
	})

	g.Go(func() error {
		b.logger.Info("Starting scheduler...")
		if err := b.scheduler.Start(gCtx); err != nil {
			b.logger.Error("Failed to start scheduler", "error", err)
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, stopping scheduler...")

		if err := b.scheduler.Stop(); err != nil {
			b.logger.Error("Error stopping scheduler", "error", err)
		}

		return nil
	})

	b.logger.Info("Bot orchestrator running. Waiting for shutdown signal or error...")
	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully.")
	return nil
}

// muteKnownChats puts every remembered group into the muted state so that
// nobody can write before a trade is opened. Failures are logged only.
func (b *Bot) muteKnownChats(ctx context.Context) {
	chats, err := b.store.ListChats(ctx)
	if err != nil {
		b.logger.Error("Failed to list chats for mute on start", "error", err)
		return
	}

	muted := 0
	for _, chat := range chats {
		if err := b.muter.ApplyChatWideMute(ctx, chat.ID); err != nil {
			b.logger.Warn("Failed to mute chat on start", "chat_id", chat.ID, "error", err)
			continue
		}
		muted++
	}
	b.logger.Info("Muted known chats on start", "muted", muted, "total", len(chats))
}
