package handlers

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	"github.com/edgard/savdobot/internal/config"
	"github.com/edgard/savdobot/internal/telegram"
)

// NewProductsHandler returns a handler for /products.
func NewProductsHandler(deps HandlerDeps) bot.HandlerFunc {
	return productsHandler{deps}.Handle
}

type productsHandler struct {
	deps HandlerDeps
}

func (h productsHandler) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "products")

	msg, ok := telegram.Classify(update).(telegram.TextMessage)
	if !ok {
		return
	}

	products := h.deps.Config.Catalog.Products
	if len(products) == 0 {
		send(ctx, h.deps, log, msg.Chat.ID, h.deps.Config.Messages.ProductsEmpty)
		return
	}

	var sb strings.Builder
	sb.WriteString(h.deps.Config.Messages.ProductsHeader)
	for _, p := range products {
		sb.WriteString("\n\n")
		sb.WriteString(formatProduct(p))
	}
	send(ctx, h.deps, log, msg.Chat.ID, sb.String())
}

func formatProduct(p config.Product) string {
	line := fmt.Sprintf("%s. %s", p.ID, p.Name)
	if p.Price != "" {
		line += " - " + p.Price
	}
	if p.Description != "" {
		line += "\n" + p.Description
	}
	return line
}

// NewOrderHandler returns a handler for /order <productId>.
func NewOrderHandler(deps HandlerDeps) bot.HandlerFunc {
	return orderHandler{deps}.Handle
}

type orderHandler struct {
	deps HandlerDeps
}

func (h orderHandler) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "order")

	msg, ok := telegram.Classify(update).(telegram.TextMessage)
	if !ok {
		return
	}
	msgs := h.deps.Config.Messages

	args := strings.Fields(msg.Text)
	if len(args) != 2 {
		send(ctx, h.deps, log, msg.Chat.ID, msgs.OrderUsage)
		return
	}

	product, found := lo.Find(h.deps.Config.Catalog.Products, func(p config.Product) bool {
		return strings.EqualFold(p.ID, args[1])
	})
	if !found {
		send(ctx, h.deps, log, msg.Chat.ID, fill(msgs.OrderUnknown, "product", args[1]))
		return
	}

	user := mentionName(msg.SenderID, displayName(*update.Message.From))
	productName := html.EscapeString(product.Name)
	log.InfoContext(ctx, "Order placed", "chat_id", msg.Chat.ID, "user_id", msg.SenderID, "product_id", product.ID)

	_ = sendHTML(ctx, h.deps, log, msg.Chat.ID, fill(msgs.OrderPlaced, "user", user, "product", productName))

	chatTitle := msg.Chat.Title
	if chatTitle == "" {
		chatTitle = fmt.Sprintf("%d", msg.Chat.ID)
	}
	notice := fill(msgs.OrderNotify, "chat", html.EscapeString(chatTitle), "user", user, "product", productName)
	for _, adminID := range h.deps.Config.Telegram.AdminIDs {
		// Admins that never opened a private chat with the bot cannot be reached.
		_ = sendHTML(ctx, h.deps, log, adminID, notice)
	}
}
