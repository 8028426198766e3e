package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const NOTIFIER_ENV_PREFIX = "NOTIFIER"

type NotifierConfig struct {
	BackendURL  url.URL
	Interval    time.Duration
	Timeout     time.Duration
	Acknowledge bool
	Verbose     bool
}

// BindNotifierFlags registers the notifier flags on flags.
func BindNotifierFlags(flags *pflag.FlagSet) {
	flags.String("backend-url", "http://localhost:5000", "base URL of the BrainBox backend")
	flags.Duration("interval", 10*time.Second, "how often due reminders are polled")
	flags.Duration("timeout", 10*time.Second, "timeout of a single backend request")
	flags.Bool("ack", false, "acknowledge every notified reminder")
	flags.Bool("verbose", false, "log debug messages")
}

// LoadNotifier reads the notifier settings from flags, falling back to
// NOTIFIER_* environment variables for flags that were not set.
func LoadNotifier(flags *pflag.FlagSet) (*NotifierConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(NOTIFIER_ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("could not bind flags: %w", err)
	}

	rawURL := v.GetString("backend-url")
	backendURL, err := url.Parse(rawURL)
	if err != nil || backendURL.Scheme == "" || backendURL.Host == "" {
		return nil, fmt.Errorf("invalid backend URL: %q", rawURL)
	}

	cfg := &NotifierConfig{
		BackendURL:  *backendURL,
		Interval:    v.GetDuration("interval"),
		Timeout:     v.GetDuration("timeout"),
		Acknowledge: v.GetBool("ack"),
		Verbose:     v.GetBool("verbose"),
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %v", cfg.Interval)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %v", cfg.Timeout)
	}
	return cfg, nil
}
