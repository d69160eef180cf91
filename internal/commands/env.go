// Package commands implements filemyrti CLI commands.
package commands

import (
	"log/slog"
	"os"

	"github.com/NielsdaWheelz/filemyrti/internal/config"
	"github.com/NielsdaWheelz/filemyrti/internal/fs"
	"github.com/NielsdaWheelz/filemyrti/internal/provider"
	"github.com/NielsdaWheelz/filemyrti/internal/remote"
	"github.com/NielsdaWheelz/filemyrti/internal/version"
)

// Env carries the process-level collaborators every command needs.
type Env struct {
	FS fs.FS
	// Getenv reads environment variables; nil means os.Getenv.
	Getenv func(string) string
	// ConfigPath is the --config flag value; empty falls back to
	// FILEMYRTI_CONFIG and then filemyrti.yaml.
	ConfigPath string
	Logger     *slog.Logger
}

func (e Env) fs() fs.FS {
	if e.FS == nil {
		return fs.NewRealFS()
	}
	return e.FS
}

func (e Env) getenv() func(string) string {
	if e.Getenv == nil {
		return os.Getenv
	}
	return e.Getenv
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// loadConfig loads the config file and applies environment overrides.
func (e Env) loadConfig() (config.Config, error) {
	cfg, found, err := config.LoadWithEnv(e.fs(), e.ConfigPath, e.getenv())
	if err != nil {
		return cfg, err
	}
	e.logger().Debug("config loaded", "path", config.ResolvePath(e.ConfigPath, e.getenv()), "found", found)
	return cfg, nil
}

// fetcher returns the remote source for cfg, or nil when none is
// configured. The nil is untyped so the provider sees no fetcher.
func fetcher(cfg config.Config) provider.Fetcher {
	if cfg.Remote.BaseURL == "" {
		return nil
	}
	return remote.New(remote.Config{
		BaseURL:   cfg.Remote.BaseURL,
		Timeout:   cfg.Remote.Timeout,
		UserAgent: "filemyrti/" + version.Version,
	})
}
