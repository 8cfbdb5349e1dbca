package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the geocode tool configuration loaded from the environment.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	LogLevel string `mapstructure:"log_level"`

	// BaseURL overrides the public Nominatim instance when set.
	BaseURL string `mapstructure:"nominatim_base_url"`

	// Identification: the tool attaches exactly one credential per
	// request. referer and api_key are mutually exclusive and take
	// precedence over the default user agent; email rides along with
	// api_key only.
	UserAgent string `mapstructure:"nominatim_user_agent"`
	Referer   string `mapstructure:"nominatim_referer"`
	APIKey    string `mapstructure:"nominatim_api_key"`
	Email     string `mapstructure:"nominatim_email"`

	TimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`

	// LookupIDsFile optionally points at a YAML file of OSM ids for the
	// lookup subcommand.
	LookupIDsFile string `mapstructure:"lookup_ids_file"`
}

// Load reads configuration from environment variables and configs/.env.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "geocode")
	v.SetDefault("log_level", "info")
	v.SetDefault("nominatim_base_url", "")
	v.SetDefault("nominatim_user_agent", "nominatim-go/geocode")
	v.SetDefault("nominatim_referer", "")
	v.SetDefault("nominatim_api_key", "")
	v.SetDefault("nominatim_email", "")
	v.SetDefault("request_timeout_seconds", 10) // seconds, 0 disables
	v.SetDefault("lookup_ids_file", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be zero or positive)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	if cfg.Referer != "" && cfg.APIKey != "" {
		return nil, fmt.Errorf("nominatim_referer and nominatim_api_key are mutually exclusive")
	}
	if cfg.Email != "" && cfg.APIKey == "" {
		return nil, fmt.Errorf("nominatim_email requires nominatim_api_key")
	}

	return &cfg, nil
}
