// Package tasks implements the scheduled tasks of the bot: database
// maintenance, spam report cleanup and the working-hours notices.
package tasks

import (
	"context"
	"log/slog"
	"time"

	"github.com/edgard/savdobot/internal/config"
	"github.com/edgard/savdobot/internal/database"
	"github.com/edgard/savdobot/internal/moderation"
	"github.com/edgard/savdobot/internal/telegram"
)

// ChatMuter applies the chat-wide mute.
type ChatMuter interface {
	ApplyChatWideMute(ctx context.Context, chatID int64) error
}

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Config *config.Config
	Store  database.Store
	Client telegram.Client
	Muter  ChatMuter
	// Hours is nil when working hours are disabled.
	Hours *moderation.WorkingHours
	// Now defaults to time.Now.
	Now func() time.Time
}

func (d TaskDeps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
