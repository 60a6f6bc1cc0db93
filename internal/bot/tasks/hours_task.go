package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
)

func newHoursOpenTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "hours_open")

	return func(ctx context.Context) error {
		text := strings.ReplaceAll(deps.Config.Messages.MarketOpened, "{hours}", deps.Hours.String())
		return broadcast(ctx, deps, log, text, nil)
	}
}

// newHoursCloseTask announces the close and, with mute_on_close, mutes
// every known chat after the notice.
func newHoursCloseTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "hours_close")

	return func(ctx context.Context) error {
		text := strings.ReplaceAll(deps.Config.Messages.MarketClosed, "{hours}", deps.Hours.String())

		var after func(ctx context.Context, chatID int64)
		if deps.Config.WorkingHours.MuteOnClose && deps.Muter != nil {
			after = func(ctx context.Context, chatID int64) {
				if err := deps.Muter.ApplyChatWideMute(ctx, chatID); err != nil {
					log.WarnContext(ctx, "Failed to mute chat on close", "chat_id", chatID, "error", err)
				}
			}
		}
		return broadcast(ctx, deps, log, text, after)
	}
}

// broadcast sends text to every known chat. A failed send does not stop the
// loop; after, if set, runs for every chat regardless of the send result.
func broadcast(ctx context.Context, deps TaskDeps, log *slog.Logger, text string, after func(context.Context, int64)) error {
	chats, err := deps.Store.ListChats(ctx)
	if err != nil {
		return fmt.Errorf("failed to list chats: %w", err)
	}

	sent := 0
	for _, chat := range chats {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if _, err := deps.Client.SendMessage(ctx, &bot.SendMessageParams{ChatID: chat.ID, Text: text}); err != nil {
			log.WarnContext(ctx, "Failed to send notice", "chat_id", chat.ID, "error", err)
		} else {
			sent++
		}

		if after != nil {
			after(ctx, chat.ID)
		}
	}

	log.InfoContext(ctx, "Notice broadcast", "chats", len(chats), "sent", sent)
	return nil
}
