package moderation

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"
)

// Authorizer decides whether a user may run privileged actions in a chat.
type Authorizer interface {
	IsAdmin(ctx context.Context, chatID, userID int64) bool
}

// MemberAPI is the role lookup of the Bot API.
type MemberAPI interface {
	GetChatMember(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error)
}

// ChatRoleAuthorizer asks the platform for the member's role on every call.
// Lookup failures count as "not admin".
type ChatRoleAuthorizer struct {
	api    MemberAPI
	logger *slog.Logger
}

// NewChatRoleAuthorizer creates an authorizer backed by live role lookups.
func NewChatRoleAuthorizer(api MemberAPI, logger *slog.Logger) *ChatRoleAuthorizer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ChatRoleAuthorizer{api: api, logger: logger.With("component", "chat_role_authorizer")}
}

// IsAdmin reports whether the user is the creator or an administrator of the chat.
func (a *ChatRoleAuthorizer) IsAdmin(ctx context.Context, chatID, userID int64) bool {
	if userID == 0 {
		return false
	}
	member, err := a.api.GetChatMember(ctx, &bot.GetChatMemberParams{ChatID: chatID, UserID: userID})
	if err != nil {
		a.logger.WarnContext(ctx, "Admin lookup failed, treating as non-admin", "chat_id", chatID, "user_id", userID, "error", err)
		return false
	}
	if member == nil {
		return false
	}
	return member.Type == models.ChatMemberTypeOwner || member.Type == models.ChatMemberTypeAdministrator
}

// AllowlistAuthorizer grants admin rights to a fixed set of user ids in every chat.
type AllowlistAuthorizer struct {
	ids map[int64]struct{}
}

// NewAllowlistAuthorizer creates an authorizer over the configured admin ids.
func NewAllowlistAuthorizer(ids []int64) *AllowlistAuthorizer {
	return &AllowlistAuthorizer{
		ids: lo.SliceToMap(ids, func(id int64) (int64, struct{}) { return id, struct{}{} }),
	}
}

// IsAdmin ignores the chat and checks the allowlist.
func (a *AllowlistAuthorizer) IsAdmin(_ context.Context, _ int64, userID int64) bool {
	_, ok := a.ids[userID]
	return ok
}

// IDs returns the allowlisted ids.
func (a *AllowlistAuthorizer) IDs() []int64 {
	return lo.Keys(a.ids)
}
