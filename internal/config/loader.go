package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	_ "time/tzdata" // timezone validation must not depend on the host zoneinfo

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	apperrors "github.com/edgard/savdobot/internal/errors"
)

const envPrefix = "BOT"

// Load reads configuration in this order, later sources winning:
//  1. defaults
//  2. the YAML file at configPath (optional)
//  3. environment variables, after loading envFile into the environment (optional)
//
// Besides BOT_TELEGRAM_TOKEN and BOT_TELEGRAM_ADMIN_IDS, the short forms
// BOT_TOKEN and ADMIN_IDS are accepted.
func Load(configPath, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to load env file %s", envFile), err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("telegram.token", "BOT_TELEGRAM_TOKEN", "BOT_TOKEN"); err != nil {
		return nil, apperrors.NewConfigError("failed to bind token env", err)
	}
	if err := v.BindEnv("telegram.admin_ids", "BOT_TELEGRAM_ADMIN_IDS", "ADMIN_IDS"); err != nil {
		return nil, apperrors.NewConfigError("failed to bind admin ids env", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, apperrors.NewConfigError(fmt.Sprintf("failed to read config file %s", configPath), err)
			}
			slog.Info("Config file not found, using defaults and environment", "path", configPath)
		} else {
			slog.Debug("Config file loaded", "path", v.ConfigFileUsed())
		}
	}

	cfg := &Config{}
	hook := mapstructure.ComposeDecodeHookFunc(
		stringToIDListHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(cfg, viper.DecodeHook(hook)); err != nil {
		return nil, apperrors.NewConfigError("failed to parse configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("Configuration loaded",
		"admins", len(cfg.Telegram.AdminIDs),
		"db_path", cfg.Database.Path,
		"working_hours", cfg.WorkingHours.Enabled,
		"spam_filter", cfg.Moderation.Spam.Enabled)
	return cfg, nil
}

// ParseIDList parses a comma-separated list of user ids. Blank entries are skipped.
func ParseIDList(s string) ([]int64, error) {
	parts := lo.Compact(lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))

	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func stringToIDListHook() mapstructure.DecodeHookFuncType {
	idList := reflect.TypeOf([]int64{})
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != idList {
			return data, nil
		}
		return ParseIDList(data.(string))
	}
}
