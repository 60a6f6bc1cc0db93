package telegram

import (
	"strings"

	"github.com/go-telegram/bot/models"
)

// Event is an incoming update decided once at the boundary. The concrete
// types are TextMessage, MembersJoined and Unsupported.
type Event interface {
	isEvent()
}

// ChatRef identifies the chat an event happened in.
type ChatRef struct {
	ID    int64
	Type  models.ChatType
	Title string
}

// IsGroup reports whether the chat is a group or a supergroup.
func (c ChatRef) IsGroup() bool {
	return c.Type == models.ChatTypeGroup || c.Type == models.ChatTypeSupergroup
}

// TextMessage is a message carrying text, including commands.
type TextMessage struct {
	UpdateID  int64
	Chat      ChatRef
	MessageID int
	SenderID  int64
	// SenderChatID is set when the message was sent on behalf of a chat,
	// e.g. by an anonymous group admin.
	SenderChatID int64
	Text         string
}

// IsCommand reports whether the text starts with a bot command.
func (m TextMessage) IsCommand() bool {
	return strings.HasPrefix(m.Text, "/")
}

// Command splits a leading "/name@bot" token into the command name and the
// addressed bot username. Both are empty when the text is not a command.
func (m TextMessage) Command() (name, target string) {
	if !m.IsCommand() {
		return "", ""
	}
	token := strings.Fields(m.Text)[0][1:]
	name, target, _ = strings.Cut(token, "@")
	return name, target
}

// MembersJoined is a service message announcing new chat members.
type MembersJoined struct {
	UpdateID int64
	Chat     ChatRef
	Members  []models.User
}

// Unsupported is any update the bot does not act on.
type Unsupported struct {
	UpdateID int64
}

func (TextMessage) isEvent()   {}
func (MembersJoined) isEvent() {}
func (Unsupported) isEvent()   {}

// Classify converts a raw update into an Event.
func Classify(update *models.Update) Event {
	if update == nil {
		return Unsupported{}
	}

	msg := update.Message
	if msg == nil {
		return Unsupported{UpdateID: update.ID}
	}

	chat := ChatRef{ID: msg.Chat.ID, Type: msg.Chat.Type, Title: msg.Chat.Title}

	if len(msg.NewChatMembers) > 0 {
		return MembersJoined{UpdateID: update.ID, Chat: chat, Members: msg.NewChatMembers}
	}

	// A message without a sender user still counts when it was sent on
	// behalf of a chat; SenderID stays zero then.
	if msg.Text == "" || (msg.From == nil && msg.SenderChat == nil) {
		return Unsupported{UpdateID: update.ID}
	}

	text := TextMessage{
		UpdateID:  update.ID,
		Chat:      chat,
		MessageID: msg.ID,
		Text:      msg.Text,
	}
	if msg.From != nil {
		text.SenderID = msg.From.ID
	}
	if msg.SenderChat != nil {
		text.SenderChatID = msg.SenderChat.ID
	}
	return text
}
