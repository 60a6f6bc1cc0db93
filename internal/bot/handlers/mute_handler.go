package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/savdobot/internal/telegram"
)

// NewMuteHandler returns a handler for /mute.
func NewMuteHandler(deps HandlerDeps) bot.HandlerFunc {
	return muteHandler{deps: deps, mute: true}.Handle
}

// NewUnmuteHandler returns a handler for /unmute.
func NewUnmuteHandler(deps HandlerDeps) bot.HandlerFunc {
	return muteHandler{deps: deps, mute: false}.Handle
}

// muteHandler switches the chat-wide default permissions.
type muteHandler struct {
	deps HandlerDeps
	mute bool
}

func (h muteHandler) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	name := "unmute"
	if h.mute {
		name = "mute"
	}
	log := h.deps.Logger.With("handler", name)

	msg, ok := telegram.Classify(update).(telegram.TextMessage)
	if !ok {
		log.WarnContext(ctx, "Mute handler received update without text or sender", "update_id", update.ID)
		return
	}
	if !msg.Chat.IsGroup() {
		send(ctx, h.deps, log, msg.Chat.ID, h.deps.Config.Messages.GroupsOnly)
		return
	}

	log.InfoContext(ctx, "Changing chat-wide permissions", "chat_id", msg.Chat.ID, "user_id", msg.SenderID)

	var err error
	text := h.deps.Config.Messages.ChatUnmuted
	if h.mute {
		err = h.deps.ChatPerms.ApplyChatWideMute(ctx, msg.Chat.ID)
		text = h.deps.Config.Messages.ChatMuted
	} else {
		err = h.deps.ChatPerms.RestoreChatPermissions(ctx, msg.Chat.ID)
	}
	if err != nil {
		send(ctx, h.deps, log, msg.Chat.ID, h.deps.Config.Messages.GeneralError)
		return
	}

	send(ctx, h.deps, log, msg.Chat.ID, text)
}
