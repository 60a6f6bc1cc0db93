package moderation

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-telegram/bot"

	"github.com/edgard/savdobot/internal/database"
	"github.com/edgard/savdobot/internal/telegram"
)

// Action is what the gate does with a message.
type Action int

const (
	ActionAllow Action = iota
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionAllow:
		return "allow"
	case ActionDelete:
		return "delete"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Verdict reasons.
const (
	ReasonNotGroup       = "not_group"
	ReasonAnonymousAdmin = "anonymous_admin"
	ReasonAdmin          = "admin"
	ReasonExempt         = "exempt"
	ReasonSpam           = "spam"
	ReasonNotExempt      = "not_exempt"
	ReasonError          = "error"
)

// Verdict is the gate decision for one message.
type Verdict struct {
	Action Action
	Reason string
	Spam   SpamVerdict
}

// MessageAPI deletes chat messages.
type MessageAPI interface {
	DeleteMessage(ctx context.Context, params *bot.DeleteMessageParams) (bool, error)
}

// Recorder persists moderation aggregates. Failures never change a verdict.
type Recorder interface {
	IncrementCounter(ctx context.Context, chatID int64, counter database.Counter) error
	SaveSpamReport(ctx context.Context, report *database.SpamReport) error
}

// GateOption customises a Gate.
type GateOption func(*Gate)

// WithSpamFilter checks messages of exempt users against f.
func WithSpamFilter(f *SpamFilter) GateOption {
	return func(g *Gate) { g.spam = f }
}

// WithRecorder stores counters and spam reports through r.
func WithRecorder(r Recorder) GateOption {
	return func(g *Gate) { g.recorder = r }
}

// Gate decides for every group text message whether it may stay.
type Gate struct {
	auth     Authorizer
	registry *Registry
	messages MessageAPI
	spam     *SpamFilter
	recorder Recorder
	logger   *slog.Logger
}

// NewGate creates a gate. Spam filtering and recording are off unless set
// through options.
func NewGate(auth Authorizer, registry *Registry, messages MessageAPI, logger *slog.Logger, opts ...GateOption) *Gate {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g := &Gate{
		auth:     auth,
		registry: registry,
		messages: messages,
		logger:   logger.With("component", "message_gate"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate decides without side effects beyond the role lookup. A panic
// while deciding yields a delete verdict.
func (g *Gate) Evaluate(ctx context.Context, msg telegram.TextMessage) (v Verdict) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.ErrorContext(ctx, "Gate decision panicked, deleting message",
				"chat_id", msg.Chat.ID, "message_id", msg.MessageID, "panic", r)
			v = Verdict{Action: ActionDelete, Reason: ReasonError}
		}
	}()

	chatID := msg.Chat.ID
	switch {
	case !msg.Chat.IsGroup():
		return Verdict{Action: ActionAllow, Reason: ReasonNotGroup}
	case msg.SenderChatID != 0 && msg.SenderChatID == chatID:
		return Verdict{Action: ActionAllow, Reason: ReasonAnonymousAdmin}
	case g.auth.IsAdmin(ctx, chatID, msg.SenderID):
		return Verdict{Action: ActionAllow, Reason: ReasonAdmin}
	case g.registry.IsExempt(chatID, msg.SenderID):
		if sv := g.spam.Check(msg.Text); sv.Spam {
			return Verdict{Action: ActionDelete, Reason: ReasonSpam, Spam: sv}
		}
		return Verdict{Action: ActionAllow, Reason: ReasonExempt}
	default:
		return Verdict{Action: ActionDelete, Reason: ReasonNotExempt}
	}
}

// Enforce evaluates the message and deletes it when the verdict says so.
// Deletion failures are logged and otherwise ignored.
func (g *Gate) Enforce(ctx context.Context, msg telegram.TextMessage) Verdict {
	v := g.Evaluate(ctx, msg)
	if v.Action != ActionDelete {
		return v
	}

	log := g.logger.With("chat_id", msg.Chat.ID, "message_id", msg.MessageID, "user_id", msg.SenderID, "reason", v.Reason)

	ok, err := g.messages.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: msg.Chat.ID, MessageID: msg.MessageID})
	if err != nil || !ok {
		log.WarnContext(ctx, "Failed to delete message", "error", err)
		return v
	}
	log.DebugContext(ctx, "Message deleted")

	g.record(ctx, msg, v)
	return v
}

func (g *Gate) record(ctx context.Context, msg telegram.TextMessage, v Verdict) {
	if g.recorder == nil {
		return
	}

	if err := g.recorder.IncrementCounter(ctx, msg.Chat.ID, database.CounterMessagesDeleted); err != nil {
		g.logger.WarnContext(ctx, "Failed to count deleted message", "chat_id", msg.Chat.ID, "error", err)
	}
	if v.Reason != ReasonSpam {
		return
	}

	if err := g.recorder.IncrementCounter(ctx, msg.Chat.ID, database.CounterSpamBlocked); err != nil {
		g.logger.WarnContext(ctx, "Failed to count spam message", "chat_id", msg.Chat.ID, "error", err)
	}
	report := &database.SpamReport{
		ChatID:    msg.Chat.ID,
		UserID:    msg.SenderID,
		MessageID: msg.MessageID,
		Rule:      v.Spam.Rule,
	}
	if err := g.recorder.SaveSpamReport(ctx, report); err != nil {
		g.logger.WarnContext(ctx, "Failed to save spam report", "chat_id", msg.Chat.ID, "error", err)
	}
}
