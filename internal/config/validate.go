package config

import (
	"net/url"
	"strings"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
)

// Validate checks cfg and returns E_INVALID_CONFIG on the first problem.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Listen) == "" {
		return invalid("listen", "listen must be a non-empty address")
	}
	if err := validateBaseURL("remote.base_url", cfg.Remote.BaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("leads.base_url", cfg.Leads.BaseURL); err != nil {
		return err
	}
	if cfg.Assets.BaseURL != "" && !strings.HasPrefix(cfg.Assets.BaseURL, "/") {
		if err := validateBaseURL("assets.base_url", cfg.Assets.BaseURL); err != nil {
			return err
		}
	}

	if cfg.Remote.Timeout < 0 {
		return invalid("remote.timeout", "remote.timeout must not be negative")
	}
	if cfg.Remote.Await < 0 {
		return invalid("remote.await", "remote.await must not be negative")
	}
	if cfg.Remote.IdleBudget <= 0 {
		return invalid("remote.idle_budget", "remote.idle_budget must be positive")
	}
	if cfg.Remote.FallbackDelay <= 0 {
		return invalid("remote.fallback_delay", "remote.fallback_delay must be positive")
	}

	if cfg.Leads.Timeout < 0 {
		return invalid("leads.timeout", "leads.timeout must not be negative")
	}
	if cfg.Leads.RatePerMinute < 0 {
		return invalid("leads.rate_per_minute", "leads.rate_per_minute must not be negative")
	}
	if cfg.Leads.RatePerMinute > 0 && cfg.Leads.Burst < 1 {
		return invalid("leads.burst", "leads.burst must be at least 1 when rate limiting is enabled")
	}

	switch cfg.Popup.Backend {
	case PopupBackendFile:
		if cfg.Popup.Path == "" && cfg.DataDir == "" {
			return invalid("popup.path", "popup.path or data_dir is required for the file backend")
		}
	case PopupBackendRedis:
		if cfg.Popup.RedisAddr == "" {
			return invalid("popup.redis_addr", "popup.redis_addr is required for the redis backend")
		}
		if cfg.Popup.RedisDB < 0 {
			return invalid("popup.redis_db", "popup.redis_db must not be negative")
		}
	case PopupBackendMemory:
	default:
		return invalid("popup.backend", "popup.backend must be one of file, redis, memory")
	}
	return nil
}

func validateBaseURL(field, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid(field, field+" must be an absolute http(s) url")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return invalid(field, field+" must not carry a query or fragment")
	}
	return nil
}

func invalid(field, msg string) error {
	return errors.NewWithDetails(errors.EInvalidConfig, msg, map[string]string{"field": field})
}
