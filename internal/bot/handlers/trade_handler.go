package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	"github.com/edgard/savdobot/internal/database"
	apperrors "github.com/edgard/savdobot/internal/errors"
	"github.com/edgard/savdobot/internal/moderation"
	"github.com/edgard/savdobot/internal/telegram"
)

// NewStartTradeHandler returns a handler for /startSavdo.
func NewStartTradeHandler(deps HandlerDeps) bot.HandlerFunc {
	return tradeHandler{deps: deps, end: false}.Handle
}

// NewEndTradeHandler returns a handler for /endSavdo.
func NewEndTradeHandler(deps HandlerDeps) bot.HandlerFunc {
	return tradeHandler{deps: deps, end: true}.Handle
}

// tradeHandler opens or closes a buyer/seller trading window.
type tradeHandler struct {
	deps HandlerDeps
	end  bool
}

func (h tradeHandler) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	name := "start_trade"
	if h.end {
		name = "end_trade"
	}
	log := h.deps.Logger.With("handler", name)

	msg, ok := telegram.Classify(update).(telegram.TextMessage)
	if !ok {
		log.WarnContext(ctx, "Trade handler received update without text or sender", "update_id", update.ID)
		if update.Message != nil {
			send(ctx, h.deps, log, update.Message.Chat.ID, h.deps.Config.Messages.AdminsOnly)
		}
		return
	}

	log.InfoContext(ctx, "Handling trade command", "chat_id", msg.Chat.ID, "user_id", msg.SenderID)

	var (
		result moderation.TradeResult
		err    error
	)
	if h.end {
		result, err = h.deps.Trades.End(ctx, msg)
	} else {
		result, err = h.deps.Trades.Start(ctx, msg)
	}
	if err != nil {
		send(ctx, h.deps, log, msg.Chat.ID, h.errorText(err))
		return
	}

	template := h.deps.Config.Messages.TradeStarted
	counter := database.CounterTradesStarted
	if h.end {
		template = h.deps.Config.Messages.TradeEnded
		counter = database.CounterTradesEnded
	}

	text := fill(template, "buyer", mention(result.BuyerID), "seller", mention(result.SellerID))
	if !result.OK() {
		users := strings.Join(lo.Map(result.Failed, func(id int64, _ int) string { return mention(id) }), ", ")
		text += "\n\n" + fill(h.deps.Config.Messages.TradePartial, "users", users)
	}
	_ = sendHTML(ctx, h.deps, log, msg.Chat.ID, text)

	if err := h.deps.Store.IncrementCounter(ctx, msg.Chat.ID, counter); err != nil {
		log.WarnContext(ctx, "Failed to count trade command", "error", err, "chat_id", msg.Chat.ID)
	}
}

func (h tradeHandler) errorText(err error) string {
	msgs := h.deps.Config.Messages
	switch apperrors.Code(err) {
	case apperrors.CodePrecondition:
		return msgs.GroupsOnly
	case apperrors.CodeUnauthorized:
		return msgs.AdminsOnly
	case apperrors.CodeValidation:
		if h.end {
			return msgs.EndTradeUsage
		}
		return msgs.StartTradeUsage
	default:
		return msgs.GeneralError
	}
}
