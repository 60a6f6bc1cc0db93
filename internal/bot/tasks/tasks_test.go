package tasks

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edgard/savdobot/internal/config"
	"github.com/edgard/savdobot/internal/database"
	"github.com/edgard/savdobot/internal/moderation"
	"github.com/edgard/savdobot/mocks"
)

type recordingMuter struct {
	chats []int64
	err   error
}

func (m *recordingMuter) ApplyChatWideMute(_ context.Context, chatID int64) error {
	m.chats = append(m.chats, chatID)
	return m.err
}

func testConfig() *config.Config {
	return &config.Config{
		Moderation: config.ModerationConfig{Spam: config.SpamConfig{ReportRetention: 24 * time.Hour}},
		Messages:   config.DefaultMessages,
	}
}

func testHours(t *testing.T) *moderation.WorkingHours {
	t.Helper()
	wh, err := moderation.ParseWorkingHours("09:00", "21:00", "UTC")
	require.NoError(t, err)
	return wh
}

func TestRegisterAllTasks(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	withoutHours := RegisterAllTasks(TaskDeps{Logger: log, Config: testConfig()})
	require.Len(t, withoutHours, 2)
	require.Contains(t, withoutHours, config.TaskSQLMaintenance)
	require.Contains(t, withoutHours, config.TaskSpamReportCleanup)

	withHours := RegisterAllTasks(TaskDeps{Logger: log, Config: testConfig(), Hours: testHours(t)})
	require.Len(t, withHours, 4)
	require.Contains(t, withHours, config.TaskHoursOpen)
	require.Contains(t, withHours, config.TaskHoursClose)
}

func TestResolveSchedules(t *testing.T) {
	t.Parallel()

	cfg := config.SchedulerConfig{Tasks: map[string]config.TaskConfig{
		config.TaskSQLMaintenance: {Enabled: true, Schedule: "0 4 * * 0"},
		config.TaskHoursOpen:      {Enabled: true},
		config.TaskHoursClose:     {Enabled: true},
	}}

	resolved := ResolveSchedules(cfg, testHours(t))
	require.Equal(t, "0 9 * * *", resolved.Tasks[config.TaskHoursOpen].Schedule)
	require.Equal(t, "0 21 * * *", resolved.Tasks[config.TaskHoursClose].Schedule)
	require.Equal(t, "0 4 * * 0", resolved.Tasks[config.TaskSQLMaintenance].Schedule)
	require.Empty(t, cfg.Tasks[config.TaskHoursOpen].Schedule)

	disabled := ResolveSchedules(cfg, nil)
	require.False(t, disabled.Tasks[config.TaskHoursOpen].Enabled)
	require.False(t, disabled.Tasks[config.TaskHoursClose].Enabled)
	require.True(t, disabled.Tasks[config.TaskSQLMaintenance].Enabled)
}

func TestSQLMaintenanceTask(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().RunSQLMaintenance(gomock.Any()).Return(nil)
	store.EXPECT().RunSQLMaintenance(gomock.Any()).Return(errors.New("locked"))

	task := newSQLMaintenanceTask(TaskDeps{Logger: slog.New(slog.DiscardHandler), Store: store})
	require.NoError(t, task(context.Background()))
	require.Error(t, task(context.Background()))
}

func TestSpamReportCleanupTask(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().DeleteSpamReportsBefore(gomock.Any(), now.Add(-24*time.Hour)).Return(int64(3), nil)

	task := newSpamReportCleanupTask(TaskDeps{
		Logger: slog.New(slog.DiscardHandler),
		Config: testConfig(),
		Store:  store,
		Now:    func() time.Time { return now },
	})
	require.NoError(t, task(context.Background()))
}

func TestHoursCloseTaskBroadcastsAndMutes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	client := mocks.NewMockClient(ctrl)

	store.EXPECT().ListChats(gomock.Any()).Return([]database.Chat{{ID: -1}, {ID: -2}}, nil)
	client.EXPECT().
		SendMessage(gomock.Any(), &bot.SendMessageParams{ChatID: int64(-1), Text: "🔴 Bozor yopildi. Ish vaqti: 09:00-21:00 UTC"}).
		Return(&models.Message{}, nil)
	client.EXPECT().
		SendMessage(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("bot was kicked"))

	cfg := testConfig()
	cfg.WorkingHours.MuteOnClose = true
	muter := &recordingMuter{}

	task := newHoursCloseTask(TaskDeps{
		Logger: slog.New(slog.DiscardHandler),
		Config: cfg,
		Store:  store,
		Client: client,
		Muter:  muter,
		Hours:  testHours(t),
	})
	require.NoError(t, task(context.Background()))
	require.Equal(t, []int64{-1, -2}, muter.chats)
}

func TestHoursOpenTaskListFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().ListChats(gomock.Any()).Return(nil, errors.New("db closed"))

	task := newHoursOpenTask(TaskDeps{
		Logger: slog.New(slog.DiscardHandler),
		Config: testConfig(),
		Store:  store,
		Client: mocks.NewMockClient(ctrl),
		Hours:  testHours(t),
	})
	require.Error(t, task(context.Background()))
}
