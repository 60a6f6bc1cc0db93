package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/savdobot/internal/database"
	"github.com/edgard/savdobot/internal/telegram"
)

const recentSpamReports = 5

var counterLabels = map[database.Counter]string{
	database.CounterMessagesDeleted: "🗑 O'chirilgan xabarlar",
	database.CounterSpamBlocked:     "🚫 Spam",
	database.CounterTradesStarted:   "🔵 Boshlangan savdolar",
	database.CounterTradesEnded:     "🔴 Yakunlangan savdolar",
	database.CounterMembersJoined:   "👋 Yangi a'zolar",
}

// NewStatsHandler returns a handler for /stats.
func NewStatsHandler(deps HandlerDeps) bot.HandlerFunc {
	return statsHandler{deps}.Handle
}

type statsHandler struct {
	deps HandlerDeps
}

func (h statsHandler) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "stats")

	msg, ok := telegram.Classify(update).(telegram.TextMessage)
	if !ok {
		log.WarnContext(ctx, "Stats handler received update without text or sender", "update_id", update.ID)
		return
	}

	stats, err := h.deps.Store.GetChatStats(ctx, msg.Chat.ID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load stats", "error", err, "chat_id", msg.Chat.ID)
		send(ctx, h.deps, log, msg.Chat.ID, h.deps.Config.Messages.GeneralError)
		return
	}

	reports, err := h.deps.Store.RecentSpamReports(ctx, msg.Chat.ID, recentSpamReports)
	if err != nil {
		log.WarnContext(ctx, "Failed to load spam reports", "error", err, "chat_id", msg.Chat.ID)
	}

	send(ctx, h.deps, log, msg.Chat.ID, h.format(stats, h.deps.Registry.Members(msg.Chat.ID), reports))
}

func (h statsHandler) format(stats *database.ChatStats, exempt []int64, reports []database.SpamReport) string {
	var sb strings.Builder
	sb.WriteString(h.deps.Config.Messages.StatsHeader)
	sb.WriteString("\n\n")
	for _, c := range database.Counters {
		fmt.Fprintf(&sb, "%s: %d\n", counterLabels[c], stats.Get(c))
	}
	fmt.Fprintf(&sb, "🔓 Savdodagi foydalanuvchilar: %d", len(exempt))
	if len(exempt) > 0 {
		ids := make([]string, len(exempt))
		for i, id := range exempt {
			ids[i] = fmt.Sprintf("%d", id)
		}
		sb.WriteString(" (" + strings.Join(ids, ", ") + ")")
	}
	if len(reports) > 0 {
		sb.WriteString("\n\n🧾 Oxirgi spam:")
		for _, r := range reports {
			fmt.Fprintf(&sb, "\n%s %d: %s", r.ReportedAt.UTC().Format("2006-01-02 15:04"), r.UserID, r.Rule)
		}
	}
	return sb.String()
}
