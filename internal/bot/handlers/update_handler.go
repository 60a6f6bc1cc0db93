package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/savdobot/internal/database"
	"github.com/edgard/savdobot/internal/telegram"
)

// NewUpdateHandler returns the default handler: every update that is not a
// registered command lands here. Group text goes through the message gate;
// new members get a welcome.
func NewUpdateHandler(deps HandlerDeps) bot.HandlerFunc {
	return updateHandler{deps}.Handle
}

type updateHandler struct {
	deps HandlerDeps
}

func (h updateHandler) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	switch ev := telegram.Classify(update).(type) {
	case telegram.TextMessage:
		if !ev.Chat.IsGroup() {
			return
		}
		h.rememberChat(ctx, ev.Chat)
		h.deps.Gate.Enforce(ctx, ev)
	case telegram.MembersJoined:
		if !ev.Chat.IsGroup() {
			return
		}
		h.rememberChat(ctx, ev.Chat)
		h.welcome(ctx, ev)
	default:
	}
}

func (h updateHandler) rememberChat(ctx context.Context, chat telegram.ChatRef) {
	err := h.deps.Store.UpsertChat(ctx, &database.Chat{ID: chat.ID, Title: chat.Title, Type: string(chat.Type)})
	if err != nil {
		h.deps.Logger.WarnContext(ctx, "Failed to remember chat", "chat_id", chat.ID, "error", err)
	}
}

func (h updateHandler) welcome(ctx context.Context, ev telegram.MembersJoined) {
	log := h.deps.Logger.With("handler", "welcome")

	for _, member := range ev.Members {
		if member.IsBot {
			continue
		}

		text := fill(h.deps.Config.Messages.WelcomeMember, "name", mentionName(member.ID, displayName(member)))
		_ = sendHTML(ctx, h.deps, log, ev.Chat.ID, text)

		if err := h.deps.Store.IncrementCounter(ctx, ev.Chat.ID, database.CounterMembersJoined); err != nil {
			log.WarnContext(ctx, "Failed to count new member", "chat_id", ev.Chat.ID, "error", err)
		}
	}
}
