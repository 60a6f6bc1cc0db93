// Package logger builds the slog logger used across the bot and the update
// logging middleware.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/edgard/savdobot/internal/config"
	"github.com/edgard/savdobot/internal/telegram"
)

// NewLogger creates a logger from cfg and makes it the slog default. When a
// log file is configured, output goes to stdout and to a rotating file; the
// returned closer closes that file.
func NewLogger(cfg config.LoggerConfig) (*slog.Logger, io.Closer) {
	var out io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotator)
		closer = rotator
	}

	logger := New(out, cfg.Level, cfg.JSON)
	slog.SetDefault(logger)
	return logger, closer
}

// New creates a logger writing to w.
func New(w io.Writer, levelStr string, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(levelStr),
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Middleware logs every incoming update with its classified kind and how
// long the handler took.
func Middleware(log *slog.Logger) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			startTime := time.Now()

			logEntry := log.With("update_id", update.ID)

			switch ev := telegram.Classify(update).(type) {
			case telegram.TextMessage:
				kind := "text"
				if ev.IsCommand() {
					kind = "command"
				}
				logEntry = logEntry.With(
					"update_type", kind,
					"chat_id", ev.Chat.ID,
					"chat_type", ev.Chat.Type,
					"message_id", ev.MessageID,
					"user_id", ev.SenderID,
					"text_preview", truncateString(ev.Text, 50),
				)
			case telegram.MembersJoined:
				logEntry = logEntry.With(
					"update_type", "members_joined",
					"chat_id", ev.Chat.ID,
					"members", len(ev.Members),
				)
			default:
				logEntry = logEntry.With("update_type", "other")
			}

			logEntry.DebugContext(ctx, "Processing update")

			next(ctx, b, update)

			logEntry.DebugContext(ctx, "Finished processing update", "duration", time.Since(startTime))
		}
	}
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(r[:maxLen-3]) + "..."
}
