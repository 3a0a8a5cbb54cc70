// Package config loads server configuration from defaults, an optional YAML
// file and PORTFOLIO_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PORTFOLIO_"

type Config struct {
	Addr     string `koanf:"addr" validate:"required,hostname_port"`
	Mode     string `koanf:"mode" validate:"oneof=debug release test"`
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`

	ImagesDir    string `koanf:"images_dir" validate:"required"`
	ProfileImage string `koanf:"profile_image" validate:"required"`
	CVURL        string `koanf:"cv_url" validate:"required"`

	// AdminToken guards the /admin API. Empty disables it.
	AdminToken string `koanf:"admin_token"`

	Analytics Analytics `koanf:"analytics"`
}

// Analytics configures the page-view counter. An empty DBPath disables it.
type Analytics struct {
	DBPath        string `koanf:"db_path"`
	RetentionDays int    `koanf:"retention_days" validate:"min=1"`
}

// Enabled reports whether page views are recorded.
func (a Analytics) Enabled() bool { return a.DBPath != "" }

// Retention is how long recorded visits are kept.
func (a Analytics) Retention() time.Duration {
	return time.Duration(a.RetentionDays) * 24 * time.Hour
}

func DefaultConfig() *Config {
	return &Config{
		Addr:         ":8080",
		Mode:         "release",
		LogLevel:     "info",
		ImagesDir:    "./images",
		ProfileImage: "/images/profile.jpg",
		CVURL:        "/images/cv.pdf",
		Analytics: Analytics{
			RetentionDays: 365,
		},
	}
}

// Load reads path if it exists, then overlays PORTFOLIO_* environment
// variables (PORTFOLIO_ANALYTICS__DB_PATH -> analytics.db_path). A bare PORT
// variable sets the listen port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
