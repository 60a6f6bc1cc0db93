package handlers

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"
)

// send posts a plain text message and logs a failure.
func send(ctx context.Context, deps HandlerDeps, log *slog.Logger, chatID int64, text string) {
	if _, err := deps.Client.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text}); err != nil {
		log.ErrorContext(ctx, "Failed to send message", "error", err, "chat_id", chatID)
	}
}

// sendHTML posts an HTML formatted message and logs a failure.
func sendHTML(ctx context.Context, deps HandlerDeps, log *slog.Logger, chatID int64, text string) error {
	_, err := deps.Client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send message", "error", err, "chat_id", chatID)
	}
	return err
}

// mention renders a clickable link to a user id.
func mention(userID int64) string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%d</a>`, userID, userID)
}

// mentionName renders a clickable link labelled with the escaped name.
func mentionName(userID int64, name string) string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, userID, html.EscapeString(name))
}

func displayName(u models.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" && u.Username != "" {
		return "@" + u.Username
	}
	if name == "" {
		return fmt.Sprintf("%d", u.ID)
	}
	return name
}

// fill replaces {key} placeholders; pairs are key, value, key, value...
func fill(template string, pairs ...string) string {
	oldnew := lo.FlatMap(lo.Chunk(pairs, 2), func(kv []string, _ int) []string {
		if len(kv) != 2 {
			return nil
		}
		return []string{"{" + kv[0] + "}", kv[1]}
	})
	return strings.NewReplacer(oldnew...).Replace(template)
}

// withBotName swaps the @botname placeholder for the real username.
func withBotName(deps HandlerDeps, text string) string {
	if info := deps.Config.Telegram.BotInfo; info != nil && info.Username != "" {
		return strings.ReplaceAll(text, "@botname", "@"+info.Username)
	}
	return text
}
