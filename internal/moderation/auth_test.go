package moderation

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edgard/savdobot/mocks"
)

func TestChatRoleAuthorizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		member *models.ChatMember
		err    error
		want   bool
	}{
		{name: "creator", member: &models.ChatMember{Type: models.ChatMemberTypeOwner}, want: true},
		{name: "administrator", member: &models.ChatMember{Type: models.ChatMemberTypeAdministrator}, want: true},
		{name: "member", member: &models.ChatMember{Type: models.ChatMemberTypeMember}},
		{name: "restricted", member: &models.ChatMember{Type: models.ChatMemberTypeRestricted}},
		{name: "lookup error", err: errors.New("timeout")},
		{name: "nil member"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			client.EXPECT().
				GetChatMember(gomock.Any(), &bot.GetChatMemberParams{ChatID: int64(-100), UserID: 7}).
				Return(tt.member, tt.err)

			auth := NewChatRoleAuthorizer(client, slog.New(slog.DiscardHandler))
			require.Equal(t, tt.want, auth.IsAdmin(context.Background(), -100, 7))
		})
	}
}

func TestChatRoleAuthorizerWithoutUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	auth := NewChatRoleAuthorizer(mocks.NewMockClient(ctrl), slog.New(slog.DiscardHandler))
	require.False(t, auth.IsAdmin(context.Background(), -100, 0))
}

func TestAllowlistAuthorizer(t *testing.T) {
	t.Parallel()

	auth := NewAllowlistAuthorizer([]int64{1, 2})
	require.True(t, auth.IsAdmin(context.Background(), -100, 1))
	require.True(t, auth.IsAdmin(context.Background(), -200, 2))
	require.False(t, auth.IsAdmin(context.Background(), -100, 3))
	require.ElementsMatch(t, []int64{1, 2}, auth.IDs())

	empty := NewAllowlistAuthorizer(nil)
	require.False(t, empty.IsAdmin(context.Background(), -100, 1))
}
