//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../../mocks/mock_store.go -package=mocks

package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	apperrors "github.com/edgard/savdobot/internal/errors"
)

// Store defines the interface for database operations.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// UpsertChat records a group chat, refreshing its title, type and last-seen time.
	UpsertChat(ctx context.Context, chat *Chat) error

	// ListChats returns every known chat ordered by id.
	ListChats(ctx context.Context) ([]Chat, error)

	// IncrementCounter adds one to a per-chat counter, creating it if needed.
	IncrementCounter(ctx context.Context, chatID int64, counter Counter) error

	// GetChatStats returns all counters of a chat. Unknown chats yield empty stats.
	GetChatStats(ctx context.Context, chatID int64) (*ChatStats, error)

	// SaveSpamReport inserts a spam report.
	SaveSpamReport(ctx context.Context, report *SpamReport) error

	// RecentSpamReports returns the latest reports of a chat, newest first.
	RecentSpamReports(ctx context.Context, chatID int64, limit int) ([]SpamReport, error)

	// DeleteSpamReportsBefore removes reports older than cutoff and returns how many were removed.
	DeleteSpamReportsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewStore creates a new Store implementation backed by sqlx.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// UpsertChat inserts the chat or refreshes its mutable fields.
func (s *sqlxStore) UpsertChat(ctx context.Context, chat *Chat) error {
	if chat == nil {
		return fmt.Errorf("cannot save nil chat")
	}
	if chat.ID == 0 {
		return fmt.Errorf("chat must have a non-zero id")
	}

	now := s.now()
	if chat.FirstSeenAt.IsZero() {
		chat.FirstSeenAt = now
	}
	chat.LastSeenAt = now

	query := `
		INSERT INTO chats (id, title, type, first_seen_at, last_seen_at)
		VALUES (:id, :title, :type, :first_seen_at, :last_seen_at)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			type = excluded.type,
			last_seen_at = excluded.last_seen_at
	`
	if _, err := s.db.NamedExecContext(ctx, query, chat); err != nil {
		if isContextErr(err) {
			return err
		}
		s.logger.ErrorContext(ctx, "Error saving chat", "chat_id", chat.ID, "error", err)
		return apperrors.NewDatabaseError(fmt.Sprintf("failed to save chat %d", chat.ID), err)
	}

	s.logger.DebugContext(ctx, "Chat saved", "chat_id", chat.ID)
	return nil
}

// ListChats returns all known chats.
func (s *sqlxStore) ListChats(ctx context.Context) ([]Chat, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var chats []Chat
	query := `SELECT id, title, type, first_seen_at, last_seen_at FROM chats ORDER BY id`
	if err := s.db.SelectContext(ctx, &chats, query); err != nil {
		if isContextErr(err) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Error listing chats", "error", err)
		return nil, apperrors.NewDatabaseError("failed to list chats", err)
	}

	return chats, nil
}

// IncrementCounter bumps a counter atomically.
func (s *sqlxStore) IncrementCounter(ctx context.Context, chatID int64, counter Counter) error {
	if chatID == 0 {
		return fmt.Errorf("chat_id cannot be zero")
	}
	if counter == "" {
		return fmt.Errorf("counter name cannot be empty")
	}

	query := `
		INSERT INTO moderation_counters (chat_id, counter, value, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(chat_id, counter) DO UPDATE SET
			value = value + 1,
			updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, chatID, counter, s.now()); err != nil {
		if isContextErr(err) {
			return err
		}
		s.logger.ErrorContext(ctx, "Error incrementing counter", "chat_id", chatID, "counter", counter, "error", err)
		return apperrors.NewDatabaseError(fmt.Sprintf("failed to increment %s for chat %d", counter, chatID), err)
	}
	return nil
}

// GetChatStats loads every counter of the chat.
func (s *sqlxStore) GetChatStats(ctx context.Context, chatID int64) (*ChatStats, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("chat_id cannot be zero")
	}

	var rows []counterRow
	query := `SELECT counter, value FROM moderation_counters WHERE chat_id = ?`
	if err := s.db.SelectContext(ctx, &rows, query, chatID); err != nil {
		if isContextErr(err) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Error loading chat stats", "chat_id", chatID, "error", err)
		return nil, apperrors.NewDatabaseError(fmt.Sprintf("failed to load stats for chat %d", chatID), err)
	}

	stats := &ChatStats{ChatID: chatID, Values: make(map[Counter]int64, len(rows))}
	for _, row := range rows {
		stats.Values[row.Counter] = row.Value
	}
	return stats, nil
}

// SaveSpamReport inserts a report and sets its generated id.
func (s *sqlxStore) SaveSpamReport(ctx context.Context, report *SpamReport) error {
	if report == nil {
		return fmt.Errorf("cannot save nil spam report")
	}
	if report.ChatID == 0 || report.UserID == 0 {
		return fmt.Errorf("spam report must have non-zero chat_id and user_id")
	}
	if report.ReportedAt.IsZero() {
		report.ReportedAt = s.now()
	}

	query := `
		INSERT INTO spam_reports (chat_id, user_id, message_id, rule, reported_at)
		VALUES (:chat_id, :user_id, :message_id, :rule, :reported_at)
	`
	result, err := s.db.NamedExecContext(ctx, query, report)
	if err != nil {
		if isContextErr(err) {
			return err
		}
		s.logger.ErrorContext(ctx, "Error saving spam report", "chat_id", report.ChatID, "user_id", report.UserID, "error", err)
		return apperrors.NewDatabaseError("failed to save spam report", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		report.ID = id
	} else {
		s.logger.WarnContext(ctx, "Could not retrieve last insert ID after saving spam report", "error", err)
	}
	return nil
}

// RecentSpamReports returns up to limit reports, newest first.
func (s *sqlxStore) RecentSpamReports(ctx context.Context, chatID int64, limit int) ([]SpamReport, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("chat_id cannot be zero")
	}
	if limit <= 0 {
		limit = 5
	} else if limit > 50 {
		limit = 50
	}

	var reports []SpamReport
	query := `
		SELECT id, chat_id, user_id, message_id, rule, reported_at
		FROM spam_reports
		WHERE chat_id = ?
		ORDER BY reported_at DESC, id DESC
		LIMIT ?
	`
	if err := s.db.SelectContext(ctx, &reports, query, chatID, limit); err != nil {
		if isContextErr(err) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Error loading spam reports", "chat_id", chatID, "error", err)
		return nil, apperrors.NewDatabaseError(fmt.Sprintf("failed to load spam reports for chat %d", chatID), err)
	}
	return reports, nil
}

// DeleteSpamReportsBefore prunes old reports.
func (s *sqlxStore) DeleteSpamReportsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM spam_reports WHERE reported_at < ?`, cutoff.UTC())
	if err != nil {
		if isContextErr(err) {
			return 0, err
		}
		s.logger.ErrorContext(ctx, "Error pruning spam reports", "cutoff", cutoff, "error", err)
		return 0, apperrors.NewDatabaseError("failed to prune spam reports", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		s.logger.WarnContext(ctx, "Could not read affected rows after pruning spam reports", "error", err)
		return 0, nil
	}
	s.logger.InfoContext(ctx, "Pruned spam reports", "deleted", deleted, "cutoff", cutoff)
	return deleted, nil
}

// RunSQLMaintenance executes a VACUUM command on the SQLite database.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled or timed out before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	if _, err := s.db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		s.logger.WarnContext(ctx, "Failed to set busy timeout", "error", err)
	}

	// VACUUM must run outside a transaction in SQLite.
	_, err := s.db.ExecContext(ctx, "VACUUM;")

	switch {
	case isContextErr(err):
		s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)

	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return apperrors.NewDatabaseError("failed to execute VACUUM", err)

	default:
		s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed successfully")
	}

	return nil
}
