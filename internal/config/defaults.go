package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values for configuration.
const (
	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28

	DefaultDBPath = "savdobot.db"

	DefaultSpamReportRetention = 30 * 24 * time.Hour

	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "21:00"
	DefaultTimezone  = "Asia/Tashkent"
)

// Scheduled task names.
const (
	TaskSQLMaintenance    = "sql_maintenance"
	TaskSpamReportCleanup = "spam_report_cleanup"
	TaskHoursOpen         = "hours_open"
	TaskHoursClose        = "hours_close"
)

// DefaultMessages are the Uzbek texts used when config.yaml sets none.
var DefaultMessages = MessagesConfig{
	GroupsOnly:    "❌ Bu buyruq faqat guruhlarda ishlaydi!",
	AdminsOnly:    "❌ Faqat adminlar bu buyruqni ishlatishi mumkin!",
	NotAuthorized: "🚫 Sizda bu buyruq uchun ruxsat yo'q.",
	GeneralError:  "❌ Xatolik yuz berdi. Keyinroq qayta urinib ko'ring.",

	StartTradeUsage: "❌ To'g'ri format:\n/startSavdo oluvchiID sotuvchiID\n\nMisol: /startSavdo 123456789 987654321",
	EndTradeUsage:   "❌ To'g'ri format:\n/endSavdo oluvchiID sotuvchiID\n\nMisol: /endSavdo 123456789 987654321",
	TradeStarted:    "🔵 Savdo boshlandi!\n\n🤵‍♂️ Oluvchi ID: {buyer}\n🧑‍💼 Sotuvchi ID: {seller}\n\nSAVDODA OMAD TILAYMAN",
	TradeEnded:      "🔴 Savdo tugadi!\n\n🤵‍♂️ Oluvchi ID: {buyer}\n🧑‍💼 Sotuvchi ID: {seller}\n\nSAVDO YAKUNLANDI 🎉\nSAVDOINGIZ UCHUN RAHMAT 🤝",
	TradePartial:    "⚠️ Quyidagi foydalanuvchilar uchun ruxsatlarni o'zgartirib bo'lmadi: {users}",

	ChatMuted:   "🔇 Guruh yopildi. Endi faqat adminlar yoza oladi.",
	ChatUnmuted: "🔊 Guruh ochildi. A'zolar yana yoza oladi.",

	Start: "🤖 SAVDO-BOT\n\nGuruhda faqat adminlar va savdo qilayotgan foydalanuvchilar yoza oladi.\nBuyruqlar ro'yxati uchun /help yuboring.",
	Help: "📋 Buyruqlar:\n" +
		"/startSavdo oluvchiID sotuvchiID - savdoni boshlash (adminlar)\n" +
		"/endSavdo oluvchiID sotuvchiID - savdoni yakunlash (adminlar)\n" +
		"/mute - guruhni yopish (adminlar)\n" +
		"/unmute - guruhni ochish (adminlar)\n" +
		"/stats - statistika (adminlar)\n" +
		"/products - mahsulotlar ro'yxati\n" +
		"/order mahsulotID - buyurtma berish\n" +
		"/help - yordam",
	WelcomeMember:  "👋 Xush kelibsiz, {name}!\nGuruhda yozish uchun admin bilan bog'laning.",
	StatsHeader:    "📊 Guruh statistikasi",
	ProductsHeader: "🛍 Mahsulotlar:",
	ProductsEmpty:  "Hozircha mahsulotlar yo'q.",
	OrderUsage:     "❌ To'g'ri format:\n/order mahsulotID\n\nMahsulotlar ro'yxati: /products",
	OrderUnknown:   "❌ Bunday mahsulot topilmadi: {product}",
	OrderPlaced:    "✅ {user} buyurtma berdi: {product}\nAdmin tez orada bog'lanadi.",
	OrderNotify:    "🛒 Yangi buyurtma\nGuruh: {chat}\nFoydalanuvchi: {user}\nMahsulot: {product}",

	MarketOpened: "🟢 Bozor ochildi! Ish vaqti: {hours}",
	MarketClosed: "🔴 Bozor yopildi. Ish vaqti: {hours}",
	StatusOpen:   "🟢 Hozir bozor ochiq ({hours}).",
	StatusClosed: "🔴 Hozir bozor yopiq ({hours}).",
}

// setDefaults registers the default value of every optional key on v.
func setDefaults(v *viper.Viper) {
	v.SetDefault("telegram.admin_ids", []int64{})

	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.json", false)
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size_mb", DefaultLogMaxSizeMB)
	v.SetDefault("logger.max_backups", DefaultLogMaxBackups)
	v.SetDefault("logger.max_age_days", DefaultLogMaxAgeDays)

	v.SetDefault("database.path", DefaultDBPath)

	v.SetDefault("moderation.mute_on_start", false)
	v.SetDefault("moderation.spam.enabled", false)
	v.SetDefault("moderation.spam.banned_words", []string{})
	v.SetDefault("moderation.spam.block_links", true)
	v.SetDefault("moderation.spam.allowed_languages", []string{})
	v.SetDefault("moderation.spam.report_retention", DefaultSpamReportRetention)

	v.SetDefault("working_hours.enabled", false)
	v.SetDefault("working_hours.open", DefaultOpenTime)
	v.SetDefault("working_hours.close", DefaultCloseTime)
	v.SetDefault("working_hours.timezone", DefaultTimezone)
	v.SetDefault("working_hours.mute_on_close", false)

	v.SetDefault("scheduler.tasks", map[string]any{
		TaskSQLMaintenance:    map[string]any{"enabled": true, "schedule": "0 4 * * 0"},
		TaskSpamReportCleanup: map[string]any{"enabled": true, "schedule": "30 3 * * *"},
		TaskHoursOpen:         map[string]any{"enabled": true},
		TaskHoursClose:        map[string]any{"enabled": true},
	})

	v.SetDefault("catalog.products", []any{})

	m := DefaultMessages
	v.SetDefault("messages.groups_only", m.GroupsOnly)
	v.SetDefault("messages.admins_only", m.AdminsOnly)
	v.SetDefault("messages.not_authorized", m.NotAuthorized)
	v.SetDefault("messages.general_error", m.GeneralError)
	v.SetDefault("messages.start_trade_usage", m.StartTradeUsage)
	v.SetDefault("messages.end_trade_usage", m.EndTradeUsage)
	v.SetDefault("messages.trade_started", m.TradeStarted)
	v.SetDefault("messages.trade_ended", m.TradeEnded)
	v.SetDefault("messages.trade_partial", m.TradePartial)
	v.SetDefault("messages.chat_muted", m.ChatMuted)
	v.SetDefault("messages.chat_unmuted", m.ChatUnmuted)
	v.SetDefault("messages.start", m.Start)
	v.SetDefault("messages.help", m.Help)
	v.SetDefault("messages.welcome_member", m.WelcomeMember)
	v.SetDefault("messages.stats_header", m.StatsHeader)
	v.SetDefault("messages.products_header", m.ProductsHeader)
	v.SetDefault("messages.products_empty", m.ProductsEmpty)
	v.SetDefault("messages.order_usage", m.OrderUsage)
	v.SetDefault("messages.order_unknown", m.OrderUnknown)
	v.SetDefault("messages.order_placed", m.OrderPlaced)
	v.SetDefault("messages.order_notify", m.OrderNotify)
	v.SetDefault("messages.market_opened", m.MarketOpened)
	v.SetDefault("messages.market_closed", m.MarketClosed)
	v.SetDefault("messages.status_open", m.StatusOpen)
	v.SetDefault("messages.status_closed", m.StatusClosed)
}
