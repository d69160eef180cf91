package commands

import (
	"context"
	"io"

	"github.com/NielsdaWheelz/filemyrti/internal/events"
	"github.com/NielsdaWheelz/filemyrti/internal/popup"
	"github.com/NielsdaWheelz/filemyrti/internal/render"
)

// PopupOpts holds options for the popup commands.
type PopupOpts struct {
	Visitor string
	JSON    bool
}

type popupResult struct {
	Visitor string `json:"visitor"`
	Flag    string `json:"flag"`
	Seen    bool   `json:"seen"`
	Backend string `json:"backend"`
}

func openPopup(env Env) (popup.Store, func(), string, error) {
	cfg, err := env.loadConfig()
	if err != nil {
		return nil, nil, "", err
	}
	store, err := popup.Open(cfg, env.fs())
	if err != nil {
		return nil, nil, "", err
	}
	closeFn := func() {}
	if rs, ok := store.(*popup.RedisStore); ok {
		closeFn = func() { _ = rs.Close() }
	}
	return store, closeFn, cfg.EventsPath(), nil
}

func writePopup(stdout io.Writer, opts PopupOpts, res popupResult) error {
	if opts.JSON {
		return render.WriteJSON(stdout, res)
	}
	return render.WriteKV(stdout, []render.KV{
		{Key: "visitor", Value: res.Visitor},
		{Key: "flag", Value: res.Flag},
		{Key: "seen", Value: render.YesNo(res.Seen)},
		{Key: "backend", Value: res.Backend},
	})
}

// PopupStatus prints whether visitor has dismissed the popup.
func PopupStatus(ctx context.Context, env Env, opts PopupOpts, stdout io.Writer) error {
	store, closeFn, _, err := openPopup(env)
	if err != nil {
		return err
	}
	defer closeFn()

	seen, err := store.Seen(ctx, opts.Visitor)
	if err != nil {
		return err
	}
	return writePopup(stdout, opts, popupResult{Visitor: opts.Visitor, Flag: popup.FlagName, Seen: seen, Backend: store.Backend()})
}

// PopupDismiss marks the popup seen for visitor.
func PopupDismiss(ctx context.Context, env Env, opts PopupOpts, stdout io.Writer) error {
	store, closeFn, eventsPath, err := openPopup(env)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := store.MarkSeen(ctx, opts.Visitor); err != nil {
		return err
	}
	if err := events.NewLog(eventsPath).Append(events.Event{
		Event: events.EventPopupDismissed,
		Data:  events.PopupDismissedData(opts.Visitor, store.Backend()),
	}); err != nil {
		env.logger().Warn("failed to append popup event", "path", eventsPath, "err", err)
	}
	return writePopup(stdout, opts, popupResult{Visitor: opts.Visitor, Flag: popup.FlagName, Seen: true, Backend: store.Backend()})
}
