package handlers

import (
	"context"
	"log/slog"

	"github.com/edgard/savdobot/internal/config"
	"github.com/edgard/savdobot/internal/database"
	"github.com/edgard/savdobot/internal/moderation"
	"github.com/edgard/savdobot/internal/telegram"
)

// ChatPermissions switches the default member permissions of a chat.
type ChatPermissions interface {
	ApplyChatWideMute(ctx context.Context, chatID int64) error
	RestoreChatPermissions(ctx context.Context, chatID int64) error
}

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Client    telegram.Client
	Store     database.Store
	Registry  *moderation.Registry
	Trades    *moderation.TradeController
	Gate      *moderation.Gate
	ChatPerms ChatPermissions
	// Allowlist guards the variant commands (/mute, /unmute, /stats).
	Allowlist moderation.Authorizer
	// Hours is nil when working hours are disabled.
	Hours *moderation.WorkingHours
}
