package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`
	Port       int  `env:"PORT" envDefault:"5000"`

	// DataDir holds reminders.json, chathistory.json, doc.txt and img.txt.
	DataDir string `env:"DATA_DIR" envDefault:"."`

	GoogleAPIKey string   `env:"GOOGLE_API_KEY"`
	GeminiModels []string `env:"GEMINI_MODELS" envSeparator:","`

	SerpAPIKey    string        `env:"SERPAPI_KEY"`
	SerpAPIURL    url.URL       `env:"SERPAPI_URL" envDefault:"https://serpapi.com/search.json"`
	SearchTimeout time.Duration `env:"SEARCH_TIMEOUT" envDefault:"10s"`

	TTSDir                   string `env:"TTS_DIR" envDefault:"static/tts"`
	TTSURLPrefix             string `env:"TTS_URL_PREFIX" envDefault:"/static/tts"`
	GoogleTTSCredentialsFile string `env:"GOOGLE_TTS_CREDENTIALS_FILE"`

	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"ai_chatbot"`

	RedisURL string `env:"REDIS_URL"`

	ChatRateLimitPerMinute uint32 `env:"CHAT_RATE_LIMIT_PER_MINUTE" envDefault:"30"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	SentryDsn      *url.URL `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT value: %d", cfg.Port)
	}
	if cfg.ChatRateLimitPerMinute == 0 {
		return nil, fmt.Errorf("CHAT_RATE_LIMIT_PER_MINUTE must be positive")
	}
	return cfg, nil
}

func (c *Config) RemindersPath() string {
	return filepath.Join(c.DataDir, "reminders.json")
}

func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "chathistory.json")
}
