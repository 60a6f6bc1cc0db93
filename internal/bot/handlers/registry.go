package handlers

import (
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/savdobot/internal/telegram"
)

func command(deps HandlerDeps, pattern string, h bot.HandlerFunc, mw ...bot.Middleware) telegram.RegisteredHandler {
	return telegram.RegisteredHandler{
		HandlerType: bot.HandlerTypeMessageText,
		Pattern:     pattern,
		Handler:     h,
		MatchType:   bot.MatchTypeCommandStartOnly,
		MatchFunc:   commandMatch(deps, pattern),
		Middleware:  mw,
	}
}

// commandMatch matches "/name" and "/name@<our username>". Commands
// addressed to another bot are left alone.
func commandMatch(deps HandlerDeps, name string) bot.MatchFunc {
	return func(update *models.Update) bool {
		msg, ok := telegram.Classify(update).(telegram.TextMessage)
		if !ok {
			return false
		}
		got, target := msg.Command()
		if got != name {
			return false
		}
		if target == "" {
			return true
		}
		if deps.Config == nil || deps.Config.Telegram.BotInfo == nil {
			return false
		}
		return strings.EqualFold(target, deps.Config.Telegram.BotInfo.Username)
	}
}

// RegisterAllCommands initializes and returns a map of all available bot commands.
// Trade commands check the chat role themselves and answer every caller.
// The rest pass the message gate first; the variant admin commands then use
// the allowlist middleware.
func RegisterAllCommands(deps HandlerDeps) map[string]telegram.RegisteredHandler {
	handlers := make(map[string]telegram.RegisteredHandler)

	handlers["/startSavdo"] = command(deps, "startSavdo", NewStartTradeHandler(deps))
	handlers["/endSavdo"] = command(deps, "endSavdo", NewEndTradeHandler(deps))

	gated := Gated(deps)
	handlers["/start"] = command(deps, "start", NewStartHandler(deps), gated)
	handlers["/help"] = command(deps, "help", NewHelpHandler(deps), gated)
	handlers["/products"] = command(deps, "products", NewProductsHandler(deps), gated)
	handlers["/order"] = command(deps, "order", NewOrderHandler(deps), gated)

	adminOnly := AdminOnly(deps)
	handlers["/mute"] = command(deps, "mute", NewMuteHandler(deps), gated, adminOnly)
	handlers["/unmute"] = command(deps, "unmute", NewUnmuteHandler(deps), gated, adminOnly)
	handlers["/stats"] = command(deps, "stats", NewStatsHandler(deps), gated, adminOnly)

	return handlers
}
