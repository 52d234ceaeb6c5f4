// Package config provides process configuration for the resume screener.
// Values come from the environment (optionally seeded from a .env file by
// the caller) with sensible defaults for local development.
package config

import (
	"github.com/spf13/viper"

	"github.com/zhassan-dev/resume-screener/internal/errors"
)

// DefaultThreshold is the similarity score at or above which a candidate is
// matched, unless reconfigured at runtime.
const DefaultThreshold = 0.3

// SMTP holds the relay settings for notification email.
type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Config is the full process configuration. It is created once at startup
// and passed to the components that need it; nothing reads global state.
type Config struct {
	Port           string
	UploadDir      string
	Threshold      float64
	OpenAIAPIKey   string
	EmbeddingModel string
	LogJSON        bool
	Debug          bool
	SMTP           SMTP
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("MATCH_THRESHOLD", DefaultThreshold)
	v.SetDefault("EMBEDDING_MODEL", "")
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("DEBUG", false)
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)

	cfg := &Config{
		Port:           v.GetString("PORT"),
		UploadDir:      v.GetString("UPLOAD_DIR"),
		Threshold:      v.GetFloat64("MATCH_THRESHOLD"),
		OpenAIAPIKey:   v.GetString("OPENAI_API_KEY"),
		EmbeddingModel: v.GetString("EMBEDDING_MODEL"),
		LogJSON:        v.GetBool("LOG_JSON"),
		Debug:          v.GetBool("DEBUG"),
		SMTP: SMTP{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
	}

	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}

	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		return nil, errors.NewValidationError("MATCH_THRESHOLD", "must be between 0 and 1")
	}

	return cfg, nil
}
