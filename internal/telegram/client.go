//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../../mocks/mock_client.go -package=mocks

package telegram

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Client is the subset of the Bot API the moderation bot calls. *bot.Bot
// satisfies it; tests substitute a generated mock.
type Client interface {
	GetMe(ctx context.Context) (*models.User, error)
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	DeleteMessage(ctx context.Context, params *bot.DeleteMessageParams) (bool, error)
	GetChatMember(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error)
	SetChatPermissions(ctx context.Context, params *bot.SetChatPermissionsParams) (bool, error)
	RestrictChatMember(ctx context.Context, params *bot.RestrictChatMemberParams) (bool, error)
}

var _ Client = (*bot.Bot)(nil)
