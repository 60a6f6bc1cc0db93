// Package moderation holds the trade-window permission model of the bot:
// the permission gateway, admin checks, the exempt-user registry, the trade
// controller and the per-message gate.
package moderation

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	apperrors "github.com/edgard/savdobot/internal/errors"
)

// PermissionsAPI is the part of the Bot API that changes member rights.
type PermissionsAPI interface {
	SetChatPermissions(ctx context.Context, params *bot.SetChatPermissionsParams) (bool, error)
	RestrictChatMember(ctx context.Context, params *bot.RestrictChatMemberParams) (bool, error)
}

// MutedPermissions denies posting and every governance right.
func MutedPermissions() models.ChatPermissions {
	return models.ChatPermissions{}
}

// TradingPermissions lets a member post but keeps info, invite and pin rights off.
func TradingPermissions() models.ChatPermissions {
	return models.ChatPermissions{
		CanSendMessages:       true,
		CanSendPolls:          true,
		CanSendOtherMessages:  true,
		CanAddWebPagePreviews: true,
	}
}

// PermissionGateway issues exactly one remote call per operation and reports
// the outcome as an error. It never retries.
type PermissionGateway struct {
	api    PermissionsAPI
	logger *slog.Logger
}

// NewPermissionGateway creates a gateway over api.
func NewPermissionGateway(api PermissionsAPI, logger *slog.Logger) *PermissionGateway {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &PermissionGateway{api: api, logger: logger.With("component", "permission_gateway")}
}

// ApplyChatWideMute sets the default member permissions of the chat to muted.
func (g *PermissionGateway) ApplyChatWideMute(ctx context.Context, chatID int64) error {
	return g.setChatPermissions(ctx, chatID, MutedPermissions(), "mute")
}

// RestoreChatPermissions sets the default member permissions back to trading rights.
func (g *PermissionGateway) RestoreChatPermissions(ctx context.Context, chatID int64) error {
	return g.setChatPermissions(ctx, chatID, TradingPermissions(), "unmute")
}

func (g *PermissionGateway) setChatPermissions(ctx context.Context, chatID int64, perms models.ChatPermissions, action string) error {
	ok, err := g.api.SetChatPermissions(ctx, &bot.SetChatPermissionsParams{
		ChatID:      chatID,
		Permissions: perms,
	})
	if err == nil && !ok {
		err = fmt.Errorf("setChatPermissions returned false")
	}
	if err != nil {
		g.logger.ErrorContext(ctx, "Failed to change chat permissions", "chat_id", chatID, "action", action, "error", err)
		return apperrors.NewAPIError(fmt.Sprintf("failed to %s chat %d", action, chatID), err)
	}

	g.logger.InfoContext(ctx, "Chat permissions changed", "chat_id", chatID, "action", action)
	return nil
}

// SetUserRestricted mutes (restricted == true) or unmutes a single member
// until changed again.
func (g *PermissionGateway) SetUserRestricted(ctx context.Context, chatID, userID int64, restricted bool) error {
	perms := TradingPermissions()
	action := "unmute"
	if restricted {
		perms = MutedPermissions()
		action = "mute"
	}

	ok, err := g.api.RestrictChatMember(ctx, &bot.RestrictChatMemberParams{
		ChatID:      chatID,
		UserID:      userID,
		Permissions: &perms,
		UntilDate:   0,
	})
	if err == nil && !ok {
		err = fmt.Errorf("restrictChatMember returned false")
	}
	if err != nil {
		g.logger.ErrorContext(ctx, "Failed to change member permissions", "chat_id", chatID, "user_id", userID, "action", action, "error", err)
		return apperrors.NewAPIError(fmt.Sprintf("failed to %s user %d in chat %d", action, userID, chatID), err)
	}

	g.logger.InfoContext(ctx, "Member permissions changed", "chat_id", chatID, "user_id", userID, "action", action)
	return nil
}
