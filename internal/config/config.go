package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAddr             = ":8080"
	defaultDBPath           = "techfolio.db"
	defaultVisitorRetention = 365 * 24 * time.Hour
	defaultCleanupInterval  = 24 * time.Hour
	defaultShutdownTimeout  = 5 * time.Second
	defaultToastDuration    = 3 * time.Second
)

type Config struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`

	LogLevel  string `mapstructure:"log-level"`  // debug | info | warn | error
	PrettyLog bool   `mapstructure:"pretty-log"` // colored dev output instead of JSON

	AnalyticsEnabled bool          `mapstructure:"analytics-enabled"`
	DBPath           string        `mapstructure:"db-path"`
	VisitorRetention time.Duration `mapstructure:"visitor-retention"`
	CleanupInterval  time.Duration `mapstructure:"cleanup-interval"`
	AdminToken       string        `mapstructure:"admin-token"` // generated at startup when empty
	AdminUsername    string        `mapstructure:"admin-username"`
	AdminPassword    string        `mapstructure:"admin-password"` // empty: the admin token is the password

	ToastDuration time.Duration `mapstructure:"toast-duration"`

	GithubURL    string `mapstructure:"github-url"`
	ContactEmail string `mapstructure:"contact-email"`
	Website      string `mapstructure:"website"`

	ConfigPath string `mapstructure:"-"`
}

// Load reads .env (if present), then an optional YAML config file, then
// TECHFOLIO_* environment variables. Later sources win.
func Load(configPath string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("TECHFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", defaultAddr)
	v.SetDefault("shutdown-timeout", defaultShutdownTimeout)
	v.SetDefault("log-level", "info")
	v.SetDefault("pretty-log", true)
	v.SetDefault("analytics-enabled", true)
	v.SetDefault("db-path", defaultDBPath)
	v.SetDefault("visitor-retention", defaultVisitorRetention)
	v.SetDefault("cleanup-interval", defaultCleanupInterval)
	v.SetDefault("admin-token", "")
	v.SetDefault("admin-username", "admin")
	v.SetDefault("admin-password", "")
	v.SetDefault("toast-duration", defaultToastDuration)
	v.SetDefault("github-url", "https://github.com/")
	v.SetDefault("contact-email", "dev@example.com")
	v.SetDefault("website", "myportfolio.dev")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				return cfg, fmt.Errorf("config file %s not found: %w", configPath, err)
			}
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	// Hosting platforms hand out the port via PORT.
	if os.Getenv("TECHFOLIO_ADDR") == "" && !v.InConfig("addr") {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Addr = ":" + port
		}
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q", c.LogLevel)
	}
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.AnalyticsEnabled && c.DBPath == "" {
		return errors.New("db-path is required when analytics is enabled")
	}
	if c.ToastDuration <= 0 {
		return fmt.Errorf("toast-duration must be positive, got %s", c.ToastDuration)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup-interval must be positive, got %s", c.CleanupInterval)
	}
	return nil
}
