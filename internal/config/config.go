package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string   `mapstructure:"PORT"`
	Env              string   `mapstructure:"ENV"`
	DatabaseURL      string   `mapstructure:"DATABASE_URL"`
	DBMaxConns       int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns       int32    `mapstructure:"DB_MIN_CONNS"`
	AuthSecret       string   `mapstructure:"AUTH_SECRET"`
	CORSOrigins      []string `mapstructure:"CORS_ORIGINS"`
	SendGridAPIKey   string   `mapstructure:"SENDGRID_API_KEY"`
	NotifyFromEmail  string   `mapstructure:"NOTIFY_FROM_EMAIL"`
	NotifyFromName   string   `mapstructure:"NOTIFY_FROM_NAME"`
	NotifyToEmail    string   `mapstructure:"NOTIFY_TO_EMAIL"`
	NotifyHour       int      `mapstructure:"NOTIFY_HOUR"`
	Timezone         string   `mapstructure:"TIMEZONE"`
	ExpiryWindowDays int      `mapstructure:"EXPIRY_WINDOW_DAYS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("NOTIFY_FROM_NAME", "Διαχείριση Γνωματεύσεων")
	v.SetDefault("NOTIFY_HOUR", 13)
	v.SetDefault("TIMEZONE", "Europe/Athens")
	v.SetDefault("EXPIRY_WINDOW_DAYS", 10)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("AUTH_SECRET")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("SENDGRID_API_KEY")
	v.BindEnv("NOTIFY_FROM_EMAIL")
	v.BindEnv("NOTIFY_FROM_NAME")
	v.BindEnv("NOTIFY_TO_EMAIL")
	v.BindEnv("NOTIFY_HOUR")
	v.BindEnv("TIMEZONE")
	v.BindEnv("EXPIRY_WINDOW_DAYS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Location resolves the configured timezone. Notification scheduling runs on
// center-local wall-clock time, not server time.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// NotificationsEnabled reports whether the email notifier has enough
// configuration to run. Missing email config skips the notifier rather than
// failing startup, matching how the operator tool this replaces behaved.
func (c *Config) NotificationsEnabled() bool {
	return c.SendGridAPIKey != "" && c.NotifyFromEmail != "" && c.NotifyToEmail != ""
}

// Validate checks that the configuration is safe to run. Outside development
// AUTH_SECRET must be set so the API is not left open.
func (c *Config) Validate() error {
	if !c.IsDev() && c.AuthSecret == "" {
		return fmt.Errorf("AUTH_SECRET is required when ENV is not development")
	}
	if c.NotifyHour < 0 || c.NotifyHour > 23 {
		return fmt.Errorf("NOTIFY_HOUR must be 0-23, got %d", c.NotifyHour)
	}
	if c.ExpiryWindowDays < 0 {
		return fmt.Errorf("EXPIRY_WINDOW_DAYS must not be negative, got %d", c.ExpiryWindowDays)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
