package moderation

import (
	"context"
	"io"
	"log/slog"

	apperrors "github.com/edgard/savdobot/internal/errors"
	"github.com/edgard/savdobot/internal/telegram"
)

// MemberRestrictor mutes and unmutes single members.
type MemberRestrictor interface {
	SetUserRestricted(ctx context.Context, chatID, userID int64, restricted bool) error
}

// TradeResult describes the outcome of a start or end command.
type TradeResult struct {
	ChatID   int64
	BuyerID  int64
	SellerID int64
	// Failed lists the ids whose permission change was rejected by the platform.
	Failed []int64
}

// OK reports whether both permission changes went through.
func (r TradeResult) OK() bool {
	return len(r.Failed) == 0
}

// TradeController opens and closes the trading window of a buyer/seller pair.
type TradeController struct {
	auth     Authorizer
	perms    MemberRestrictor
	registry *Registry
	logger   *slog.Logger
}

// NewTradeController wires the controller.
func NewTradeController(auth Authorizer, perms MemberRestrictor, registry *Registry, logger *slog.Logger) *TradeController {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &TradeController{
		auth:     auth,
		perms:    perms,
		registry: registry,
		logger:   logger.With("component", "trade_controller"),
	}
}

// Start unmutes the buyer and then the seller. Each id whose unmute
// succeeded becomes exempt in the chat.
func (c *TradeController) Start(ctx context.Context, cmd telegram.TextMessage) (TradeResult, error) {
	return c.run(ctx, cmd, false)
}

// End mutes the buyer and then the seller and drops their exemption.
// Ending a trade that was never started is allowed.
func (c *TradeController) End(ctx context.Context, cmd telegram.TextMessage) (TradeResult, error) {
	return c.run(ctx, cmd, true)
}

func (c *TradeController) run(ctx context.Context, cmd telegram.TextMessage, restrict bool) (TradeResult, error) {
	chatID := cmd.Chat.ID

	if !cmd.Chat.IsGroup() {
		return TradeResult{}, apperrors.NewPreconditionError("trade commands only work in groups")
	}
	anonymousAdmin := cmd.SenderChatID != 0 && cmd.SenderChatID == chatID
	if !anonymousAdmin && !c.auth.IsAdmin(ctx, chatID, cmd.SenderID) {
		c.logger.WarnContext(ctx, "Non-admin tried a trade command", "chat_id", chatID, "user_id", cmd.SenderID)
		return TradeResult{}, apperrors.NewUnauthorizedError("only chat admins can run trade commands")
	}
	buyer, seller, ok := ParseTwoIDs(cmd.Text)
	if !ok {
		return TradeResult{}, apperrors.NewValidationError("expected two numeric user ids", nil)
	}

	result := TradeResult{ChatID: chatID, BuyerID: buyer, SellerID: seller}
	for _, userID := range []int64{buyer, seller} {
		if err := c.perms.SetUserRestricted(ctx, chatID, userID, restrict); err != nil {
			result.Failed = append(result.Failed, userID)
			continue
		}
		if restrict {
			c.registry.Revoke(chatID, userID)
		} else {
			c.registry.Grant(chatID, userID)
		}
	}

	c.logger.InfoContext(ctx, "Trade command applied",
		"chat_id", chatID,
		"buyer_id", buyer,
		"seller_id", seller,
		"restrict", restrict,
		"failed", len(result.Failed))
	return result, nil
}
