package popup

import (
	"github.com/NielsdaWheelz/filemyrti/internal/config"
	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/fs"
)

// Open builds the store selected by cfg.Popup.Backend.
func Open(cfg config.Config, filesystem fs.FS) (Store, error) {
	switch cfg.Popup.Backend {
	case "", config.PopupBackendFile:
		return NewFileStore(filesystem, cfg.PopupPath(), nil), nil
	case config.PopupBackendRedis:
		return NewRedisStore(cfg.Popup.RedisAddr, "", cfg.Popup.RedisDB, cfg.Popup.KeyPrefix), nil
	case config.PopupBackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.NewWithDetails(errors.EInvalidConfig, "unknown popup backend", map[string]string{
			"field":   "popup.backend",
			"backend": cfg.Popup.Backend,
		})
	}
}
