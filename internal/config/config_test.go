package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/edgard/savdobot/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsFromEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_IDS", "10, 20,,30")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.NoError(t, err)

	require.Equal(t, "123:abc", cfg.Telegram.Token)
	require.Equal(t, []int64{10, 20, 30}, cfg.Telegram.AdminIDs)
	require.Equal(t, DefaultLogLevel, cfg.Logger.Level)
	require.Equal(t, DefaultDBPath, cfg.Database.Path)
	require.Equal(t, DefaultSpamReportRetention, cfg.Moderation.Spam.ReportRetention)
	require.Equal(t, DefaultMessages, cfg.Messages)
	require.Equal(t, "0 4 * * 0", cfg.Scheduler.Tasks[TaskSQLMaintenance].Schedule)
	require.True(t, cfg.Scheduler.Tasks[TaskHoursOpen].Enabled)
	require.Empty(t, cfg.Catalog.Products)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
telegram:
  token: "from-yaml"
  admin_ids: [1, 2]
logger:
  level: debug
  json: true
moderation:
  mute_on_start: true
  spam:
    enabled: true
    banned_words: ["casino"]
    allowed_languages: ["uz", "ru"]
    report_retention: 72h
working_hours:
  enabled: true
  open: "08:30"
  close: "20:00"
  timezone: "Asia/Tashkent"
scheduler:
  tasks:
    sql_maintenance:
      schedule: "15 2 * * *"
catalog:
  products:
    - id: p1
      name: "Olma"
      price: "10 000 so'm"
messages:
  chat_muted: "closed"
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	require.Equal(t, "from-yaml", cfg.Telegram.Token)
	require.Equal(t, []int64{1, 2}, cfg.Telegram.AdminIDs)
	require.Equal(t, "debug", cfg.Logger.Level)
	require.True(t, cfg.Logger.JSON)
	require.True(t, cfg.Moderation.MuteOnStart)
	require.Equal(t, []string{"casino"}, cfg.Moderation.Spam.BannedWords)
	require.Equal(t, 72*time.Hour, cfg.Moderation.Spam.ReportRetention)
	require.Equal(t, "08:30", cfg.WorkingHours.Open)
	require.Equal(t, "15 2 * * *", cfg.Scheduler.Tasks[TaskSQLMaintenance].Schedule)
	require.True(t, cfg.Scheduler.Tasks[TaskSQLMaintenance].Enabled)
	require.Len(t, cfg.Catalog.Products, 1)
	require.Equal(t, "Olma", cfg.Catalog.Products[0].Name)
	require.Equal(t, "closed", cfg.Messages.ChatMuted)
	require.Equal(t, DefaultMessages.ChatUnmuted, cfg.Messages.ChatUnmuted)
}

func TestLoadEnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "BOT_TELEGRAM_TOKEN=from-dotenv\nBOT_TELEGRAM_ADMIN_IDS=7\n")
	t.Cleanup(func() {
		os.Unsetenv("BOT_TELEGRAM_TOKEN")
		os.Unsetenv("BOT_TELEGRAM_ADMIN_IDS")
	})

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	require.Equal(t, "from-dotenv", cfg.Telegram.Token)
	require.Equal(t, []int64{7}, cfg.Telegram.AdminIDs)
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "missing token", yaml: "logger:\n  level: info\n"},
		{name: "bad log level", yaml: "telegram:\n  token: x\nlogger:\n  level: loud\n"},
		{name: "bad clock", yaml: "telegram:\n  token: x\nworking_hours:\n  enabled: true\n  open: \"9am\"\n"},
		{name: "bad timezone", yaml: "telegram:\n  token: x\nworking_hours:\n  timezone: \"Mars/Olympus\"\n"},
		{name: "same open and close", yaml: "telegram:\n  token: x\nworking_hours:\n  enabled: true\n  open: \"10:00\"\n  close: \"10:00\"\n"},
		{name: "duplicate products", yaml: "telegram:\n  token: x\ncatalog:\n  products:\n    - {id: a1, name: A}\n    - {id: a1, name: B}\n"},
		{name: "task without schedule", yaml: "telegram:\n  token: x\nscheduler:\n  tasks:\n    spam_report_cleanup:\n      schedule: \"\"\n"},
		{name: "bad admin id", yaml: "telegram:\n  token: x\n  admin_ids: \"1,abc\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "config.yaml", tt.yaml)
			_, err := Load(path, "")
			require.Error(t, err)
			require.Equal(t, apperrors.CodeConfig, apperrors.Code(err))
		})
	}
}

func TestParseIDList(t *testing.T) {
	t.Parallel()

	ids, err := ParseIDList(" 1 ,2,, 3 ")
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, ids)

	ids, err = ParseIDList("")
	require.NoError(t, err)
	require.Empty(t, ids)

	_, err = ParseIDList("1,x")
	require.Error(t, err)
}
