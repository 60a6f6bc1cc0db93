package handlers

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewStartHandler returns a handler for the /start command.
func NewStartHandler(deps HandlerDeps) bot.HandlerFunc {
	return infoHandler{deps: deps, name: "start", text: func(c HandlerDeps) string { return c.Config.Messages.Start }}.Handle
}

// infoHandler answers with a static text followed by the market status.
type infoHandler struct {
	deps HandlerDeps
	name string
	text func(HandlerDeps) string
	now  func() time.Time
}

func (h infoHandler) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", h.name)

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling command", "chat_id", chatID, "user_id", update.Message.From.ID)

	text := withBotName(h.deps, h.text(h.deps))
	if status := h.status(); status != "" {
		text += "\n\n" + status
	}
	send(ctx, h.deps, log, chatID, text)
}

func (h infoHandler) status() string {
	if h.deps.Hours == nil {
		return ""
	}
	now := time.Now()
	if h.now != nil {
		now = h.now()
	}

	template := h.deps.Config.Messages.StatusClosed
	if h.deps.Hours.IsOpen(now) {
		template = h.deps.Config.Messages.StatusOpen
	}
	return fill(template, "hours", h.deps.Hours.String())
}
