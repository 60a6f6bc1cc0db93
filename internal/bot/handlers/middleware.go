// Package handlers contains Telegram bot command and message handlers,
// along with their registration logic and middleware.
package handlers

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/savdobot/internal/moderation"
	"github.com/edgard/savdobot/internal/telegram"
)

// AdminOnly creates a middleware that lets only allowlisted admins through.
// Everyone else gets the not-authorized reply and the handler is skipped.
func AdminOnly(deps HandlerDeps) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil || update.Message.From == nil {
				return
			}

			userID := update.Message.From.ID
			chatID := update.Message.Chat.ID

			if !deps.Allowlist.IsAdmin(ctx, chatID, userID) {
				log := deps.Logger.With("middleware", "AdminOnly")
				log.WarnContext(ctx, "Unauthorized access attempt", "user_id", userID, "chat_id", chatID)
				send(ctx, deps, log, chatID, deps.Config.Messages.NotAuthorized)
				return
			}

			next(ctx, b, update)
		}
	}
}

// Gated runs a group command through the message gate before the handler.
// A command the gate deletes is dropped without a reply. Allowlisted admins
// skip the gate.
func Gated(deps HandlerDeps) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			msg, ok := telegram.Classify(update).(telegram.TextMessage)
			if !ok || !msg.Chat.IsGroup() || deps.Gate == nil {
				next(ctx, b, update)
				return
			}
			if deps.Allowlist != nil && msg.SenderID != 0 && deps.Allowlist.IsAdmin(ctx, msg.Chat.ID, msg.SenderID) {
				next(ctx, b, update)
				return
			}

			if v := deps.Gate.Enforce(ctx, msg); v.Action == moderation.ActionDelete {
				deps.Logger.DebugContext(ctx, "Command dropped by gate",
					"chat_id", msg.Chat.ID, "user_id", msg.SenderID, "reason", v.Reason)
				return
			}
			next(ctx, b, update)
		}
	}
}

// Recover logs a panic raised by any handler so one bad update cannot take
// the process down.
func Recover(log *slog.Logger) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			defer func() {
				if r := recover(); r != nil {
					var updateID int64
					if update != nil {
						updateID = update.ID
					}
					log.ErrorContext(ctx, "Handler panicked", "update_id", updateID, "panic", r, "stack", string(debug.Stack()))
				}
			}()
			next(ctx, b, update)
		}
	}
}
