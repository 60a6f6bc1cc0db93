package handlers

import (
	"github.com/go-telegram/bot"
)

// NewHelpHandler returns a handler for the /help command.
func NewHelpHandler(deps HandlerDeps) bot.HandlerFunc {
	return infoHandler{deps: deps, name: "help", text: func(c HandlerDeps) string { return c.Config.Messages.Help }}.Handle
}
