// Package config loads the bot configuration from config.yaml, a .env file
// and BOT_* environment variables, applies defaults and validates the result.
package config

import (
	"time"

	"github.com/go-telegram/bot/models"
)

// Config holds every setting of the bot.
type Config struct {
	Telegram     TelegramConfig     `mapstructure:"telegram"`
	Logger       LoggerConfig       `mapstructure:"logger"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Moderation   ModerationConfig   `mapstructure:"moderation"`
	WorkingHours WorkingHoursConfig `mapstructure:"working_hours"`
	Scheduler    SchedulerConfig    `mapstructure:"scheduler"`
	Catalog      CatalogConfig      `mapstructure:"catalog"`
	Messages     MessagesConfig     `mapstructure:"messages"`
}

// TelegramConfig holds the bot token and the admin allowlist.
type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`
	// AdminIDs may be given as a YAML list or as "1,2,3".
	AdminIDs []int64 `mapstructure:"admin_ids" validate:"dive,ne=0"`
	// BotInfo is filled at startup from getMe.
	BotInfo *models.User `mapstructure:"-"`
}

// LoggerConfig controls the slog handler and the optional rotating file.
type LoggerConfig struct {
	Level      string `mapstructure:"level"        validate:"oneof=debug info warn error"`
	JSON       bool   `mapstructure:"json"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"  validate:"gte=1"`
	MaxBackups int    `mapstructure:"max_backups"  validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"gte=0"`
}

// DatabaseConfig points at the SQLite file.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// ModerationConfig tunes the message gate.
type ModerationConfig struct {
	// MuteOnStart applies the chat-wide mute to every known chat at startup.
	MuteOnStart bool       `mapstructure:"mute_on_start"`
	Spam        SpamConfig `mapstructure:"spam"`
}

// SpamConfig configures the spam filter applied to exempt users.
type SpamConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	BannedWords      []string `mapstructure:"banned_words"`
	BlockLinks       bool     `mapstructure:"block_links"`
	AllowedLanguages []string `mapstructure:"allowed_languages" validate:"dive,len=2"`
	// ReportRetention is how long spam reports are kept.
	ReportRetention time.Duration `mapstructure:"report_retention" validate:"gte=1h"`
}

// WorkingHoursConfig describes the daily market window.
type WorkingHoursConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Open        string `mapstructure:"open"         validate:"required_if=Enabled true,omitempty,clock"`
	Close       string `mapstructure:"close"        validate:"required_if=Enabled true,omitempty,clock"`
	Timezone    string `mapstructure:"timezone"     validate:"omitempty,timezone"`
	MuteOnClose bool   `mapstructure:"mute_on_close"`
}

// SchedulerConfig lists the scheduled tasks by name.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a task and sets its five-field cron schedule. Working
// hours tasks take their schedule from WorkingHoursConfig.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// CatalogConfig is the product list shown by /products.
type CatalogConfig struct {
	Products []Product `mapstructure:"products" validate:"unique=ID,dive"`
}

// Product is one catalog entry.
type Product struct {
	ID          string `mapstructure:"id"          validate:"required,alphanum"`
	Name        string `mapstructure:"name"        validate:"required"`
	Price       string `mapstructure:"price"`
	Description string `mapstructure:"description"`
}

// MessagesConfig holds every user-facing text. Placeholders in braces are
// replaced at send time.
type MessagesConfig struct {
	GroupsOnly    string `mapstructure:"groups_only"    validate:"required"`
	AdminsOnly    string `mapstructure:"admins_only"    validate:"required"`
	NotAuthorized string `mapstructure:"not_authorized" validate:"required"`
	GeneralError  string `mapstructure:"general_error"  validate:"required"`

	StartTradeUsage string `mapstructure:"start_trade_usage" validate:"required"`
	EndTradeUsage   string `mapstructure:"end_trade_usage"   validate:"required"`
	TradeStarted    string `mapstructure:"trade_started"     validate:"required"`
	TradeEnded      string `mapstructure:"trade_ended"       validate:"required"`
	TradePartial    string `mapstructure:"trade_partial"     validate:"required"`

	ChatMuted   string `mapstructure:"chat_muted"   validate:"required"`
	ChatUnmuted string `mapstructure:"chat_unmuted" validate:"required"`

	Start          string `mapstructure:"start"           validate:"required"`
	Help           string `mapstructure:"help"            validate:"required"`
	WelcomeMember  string `mapstructure:"welcome_member"  validate:"required"`
	StatsHeader    string `mapstructure:"stats_header"    validate:"required"`
	ProductsHeader string `mapstructure:"products_header" validate:"required"`
	ProductsEmpty  string `mapstructure:"products_empty"  validate:"required"`
	OrderUsage     string `mapstructure:"order_usage"     validate:"required"`
	OrderUnknown   string `mapstructure:"order_unknown"   validate:"required"`
	OrderPlaced    string `mapstructure:"order_placed"    validate:"required"`
	OrderNotify    string `mapstructure:"order_notify"    validate:"required"`

	MarketOpened string `mapstructure:"market_opened" validate:"required"`
	MarketClosed string `mapstructure:"market_closed" validate:"required"`
	StatusOpen   string `mapstructure:"status_open"   validate:"required"`
	StatusClosed string `mapstructure:"status_closed" validate:"required"`
}
