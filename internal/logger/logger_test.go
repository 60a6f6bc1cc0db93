package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"

	"github.com/edgard/savdobot/internal/config"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("info"))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewWritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, "info", true)
	log.Debug("hidden")
	log.Info("shown", "chat_id", int64(-100))

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"msg":"shown"`)
	require.Contains(t, out, `"chat_id":-100`)
}

func TestNewLoggerWritesFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "bot.log")
	log, closer := NewLogger(config.LoggerConfig{Level: "info", File: path, MaxSizeMB: 1})
	log.Info("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "to file")
}

func TestMiddlewareLogsAndCallsNext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, "debug", false)

	called := false
	h := Middleware(log)(func(context.Context, *bot.Bot, *models.Update) { called = true })
	h(context.Background(), nil, &models.Update{ID: 5, Message: &models.Message{
		ID:   9,
		Chat: models.Chat{ID: -100, Type: models.ChatTypeSupergroup},
		From: &models.User{ID: 1},
		Text: "/startSavdo 1 2",
	}})

	require.True(t, called)
	require.Contains(t, buf.String(), "update_type=command")
	require.Contains(t, buf.String(), "chat_id=-100")
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", truncateString("short", 10))
	require.Equal(t, "abcd...", truncateString("abcdefghij", 7))
	require.Equal(t, "...", truncateString("abcdef", 2))
	require.Equal(t, "ўзб...", truncateString("ўзбекча", 6))
}
