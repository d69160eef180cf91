// Package config handles loading and validation of the filemyrti service
// configuration (filemyrti.yaml).
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/fs"
)

// DefaultPath is used when neither --config nor FILEMYRTI_CONFIG is set.
const DefaultPath = "filemyrti.yaml"

// Environment variables read by ApplyEnv and ResolvePath.
const (
	EnvConfig    = "FILEMYRTI_CONFIG"
	EnvListen    = "FILEMYRTI_LISTEN"
	EnvRemoteURL = "FILEMYRTI_REMOTE_URL"
	EnvLeadsURL  = "FILEMYRTI_LEADS_URL"
	EnvRedisAddr = "FILEMYRTI_REDIS_ADDR"
	EnvDataDir   = "FILEMYRTI_DATA_DIR"
)

// Popup store backends.
const (
	PopupBackendFile   = "file"
	PopupBackendRedis  = "redis"
	PopupBackendMemory = "memory"
)

// Config is the parsed and validated service configuration.
type Config struct {
	Listen  string       `yaml:"listen"`
	DataDir string       `yaml:"data_dir"`
	Remote  RemoteConfig `yaml:"remote"`
	Leads   LeadsConfig  `yaml:"leads"`
	Assets  AssetsConfig `yaml:"assets"`
	Popup   PopupConfig  `yaml:"popup"`
}

// RemoteConfig configures the Remote Config Source.
type RemoteConfig struct {
	// BaseURL is the backend API root. Empty disables remote enhancement.
	BaseURL string `yaml:"base_url"`
	// Timeout is the HTTP client timeout; zero means none.
	Timeout time.Duration `yaml:"timeout"`
	// Await bounds how long an HTTP request waits for the merged view.
	Await time.Duration `yaml:"await"`
	// IdleBudget caps the idle deferral before the fetch starts.
	IdleBudget time.Duration `yaml:"idle_budget"`
	// FallbackDelay is the timer delay used without an idle scheduler.
	FallbackDelay time.Duration `yaml:"fallback_delay"`
}

// LeadsConfig configures the lead relay.
type LeadsConfig struct {
	// BaseURL is the Public Submission API root. Empty disables the relay.
	BaseURL string `yaml:"base_url"`
	// Timeout is the per-submission HTTP timeout; zero means none.
	Timeout       time.Duration `yaml:"timeout"`
	EventsPath    string        `yaml:"events_path"`
	RatePerMinute float64       `yaml:"rate_per_minute"`
	Burst         int           `yaml:"burst"`
	DefaultSource string        `yaml:"default_source"`
}

// AssetsConfig configures public asset URLs.
type AssetsConfig struct {
	BaseURL string `yaml:"base_url"`
}

// PopupConfig configures the promotional popup seen-flag store.
type PopupConfig struct {
	Backend   string `yaml:"backend"`
	Path      string `yaml:"path"`
	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// Default returns built-in defaults used when filemyrti.yaml is missing.
func Default() Config {
	return Config{
		Listen:  ":8080",
		DataDir: ".filemyrti",
		Remote: RemoteConfig{
			Await:         1500 * time.Millisecond,
			IdleBudget:    1000 * time.Millisecond,
			FallbackDelay: 200 * time.Millisecond,
		},
		Leads: LeadsConfig{
			RatePerMinute: 6,
			Burst:         3,
		},
		Popup: PopupConfig{
			Backend:   PopupBackendFile,
			KeyPrefix: "filemyrti:popup:",
		},
	}
}

// EventsPath returns the lead audit log path, defaulting under DataDir.
func (c Config) EventsPath() string {
	if c.Leads.EventsPath != "" {
		return c.Leads.EventsPath
	}
	return filepath.Join(c.DataDir, "events.jsonl")
}

// PopupPath returns the popup flag file path, defaulting under DataDir.
func (c Config) PopupPath() string {
	if c.Popup.Path != "" {
		return c.Popup.Path
	}
	return filepath.Join(c.DataDir, "popup.json")
}

// ResolvePath picks the config file path: the flag value, then
// FILEMYRTI_CONFIG, then DefaultPath.
func ResolvePath(flagValue string, getenv func(string) string) string {
	if flagValue != "" {
		return flagValue
	}
	if getenv != nil {
		if v := getenv(EnvConfig); v != "" {
			return v
		}
	}
	return DefaultPath
}

// Load loads and validates the config at path.
// If the file is missing, returns defaults with found=false.
// If the file exists but is invalid, returns E_INVALID_CONFIG.
func Load(filesystem fs.FS, path string) (Config, bool, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), false, nil
		}
		return Config{}, false, errors.WrapWithDetails(errors.EInvalidConfig, "failed to read config", err, map[string]string{
			"config": path,
		})
	}

	cfg, err := Parse(data)
	if err != nil {
		if ae, ok := errors.AsAppError(err); ok {
			details := map[string]string{"config": path}
			for k, v := range ae.Details {
				details[k] = v
			}
			return Config{}, true, errors.WrapWithDetails(ae.Code, ae.Msg, ae.Cause, details)
		}
		return Config{}, true, err
	}
	return cfg, true, nil
}

// Parse decodes data over the defaults and validates the result.
// Unknown keys are rejected. An empty document yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(errors.EInvalidConfig, "invalid yaml: "+err.Error(), err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overlays environment overrides onto cfg and revalidates.
func ApplyEnv(cfg Config, getenv func(string) string) (Config, error) {
	if getenv == nil {
		return cfg, nil
	}
	if v := getenv(EnvListen); v != "" {
		cfg.Listen = v
	}
	if v := getenv(EnvRemoteURL); v != "" {
		cfg.Remote.BaseURL = v
	}
	if v := getenv(EnvLeadsURL); v != "" {
		cfg.Leads.BaseURL = v
	}
	if v := getenv(EnvRedisAddr); v != "" {
		cfg.Popup.RedisAddr = v
		cfg.Popup.Backend = PopupBackendRedis
	}
	if v := getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadWithEnv resolves the path, loads the file and applies env overrides.
// This is the entry point used by the CLI. An explicitly named file that
// does not exist is E_CONFIG_MISSING; a missing default file is not.
func LoadWithEnv(filesystem fs.FS, flagValue string, getenv func(string) string) (Config, bool, error) {
	path := ResolvePath(flagValue, getenv)
	cfg, found, err := Load(filesystem, path)
	if err != nil {
		return Config{}, found, err
	}
	if !found && path != DefaultPath {
		return Config{}, false, errors.NewWithDetails(errors.EConfigMissing, "config file not found", map[string]string{
			"config": path,
		})
	}
	cfg, err = ApplyEnv(cfg, getenv)
	return cfg, found, err
}
