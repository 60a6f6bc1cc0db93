package database

import "time"

// Chat is a group chat the bot has seen. Known chats receive working-hours
// notices and the optional mute on start.
type Chat struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Type        string    `db:"type"`
	FirstSeenAt time.Time `db:"first_seen_at"`
	LastSeenAt  time.Time `db:"last_seen_at"`
}

// Counter names a per-chat moderation counter.
type Counter string

const (
	CounterMessagesDeleted Counter = "messages_deleted"
	CounterSpamBlocked     Counter = "spam_blocked"
	CounterTradesStarted   Counter = "trades_started"
	CounterTradesEnded     Counter = "trades_ended"
	CounterMembersJoined   Counter = "members_joined"
)

// Counters lists every counter in display order.
var Counters = []Counter{
	CounterMessagesDeleted,
	CounterSpamBlocked,
	CounterTradesStarted,
	CounterTradesEnded,
	CounterMembersJoined,
}

// ChatStats holds the counter values of one chat. Missing counters read as zero.
type ChatStats struct {
	ChatID int64
	Values map[Counter]int64
}

// Get returns the value of a counter.
func (s *ChatStats) Get(c Counter) int64 {
	if s == nil {
		return 0
	}
	return s.Values[c]
}

type counterRow struct {
	Counter Counter `db:"counter"`
	Value   int64   `db:"value"`
}

// SpamReport records a message removed by the spam filter.
type SpamReport struct {
	ID         int64     `db:"id"`
	ChatID     int64     `db:"chat_id"`
	UserID     int64     `db:"user_id"`
	MessageID  int       `db:"message_id"`
	Rule       string    `db:"rule"`
	ReportedAt time.Time `db:"reported_at"`
}
