// Package provider serves jurisdiction configs static-first and upgrades
// them with a single deferred fetch from the backend.
//
// Each Use call returns an Instance whose first snapshot is the static
// config. The instance schedules at most one remote fetch; on success the
// config becomes Merge(static, remote), on failure it stays static and the
// snapshot carries E_REMOTE_FETCH_FAILED. Unknown slugs never fetch.
package provider

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/remote"
	"github.com/NielsdaWheelz/filemyrti/internal/states"
)

// Fetcher is a Remote Config Source.
type Fetcher interface {
	FetchState(ctx context.Context, slug string) (*remote.StateRecord, error)
}

// Phase is the lifecycle position of an Instance.
type Phase string

const (
	PhaseStaticOnly Phase = "STATIC_ONLY"
	PhaseMerged     Phase = "MERGED"
)

// Snapshot is the observable state of an Instance.
// IsLoading is always false: static data is available synchronously.
type Snapshot struct {
	Config    *states.JurisdictionConfig
	IsLoading bool
	Err       error
}

// Provider hands out Instances over a static table and an optional fetcher.
type Provider struct {
	table         *states.Table
	fetcher       Fetcher
	scheduler     Scheduler
	fallbackDelay time.Duration
	logger        *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithScheduler sets the scheduler used for background fetches. A nil
// scheduler selects the timer fallback.
func WithScheduler(s Scheduler) Option {
	return func(p *Provider) { p.scheduler = s }
}

// WithLogger sets the logger for fetch warnings.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithFallbackDelay sets the timer fallback delay used when no scheduler
// is configured.
func WithFallbackDelay(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.fallbackDelay = d
		}
	}
}

// New creates a Provider. A nil table uses the compiled-in table; a nil
// fetcher disables remote enhancement.
func New(table *states.Table, fetcher Fetcher, opts ...Option) *Provider {
	if table == nil {
		table = states.Default()
	}
	p := &Provider{
		table:         table,
		fetcher:       fetcher,
		fallbackDelay: DefaultFallbackDelay,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Table returns the static table.
func (p *Provider) Table() *states.Table {
	return p.table
}

// GetStateConfig returns the static config for slug (case-insensitive).
func (p *Provider) GetStateConfig(slug string) (*states.JurisdictionConfig, bool) {
	return p.table.Get(slug)
}

// GetStateConfig looks slug up in the compiled-in table.
func GetStateConfig(slug string) (*states.JurisdictionConfig, bool) {
	return states.GetStateBySlug(slug)
}

func (p *Provider) schedulerOrFallback() Scheduler {
	if p.scheduler != nil {
		return p.scheduler
	}
	return TimerScheduler{Delay: p.fallbackDelay}
}

// UseOption configures a single Instance.
type UseOption func(*useOptions)

type useOptions struct {
	ctx       context.Context
	observers []func(Snapshot)
}

// WithContext sets the parent context of the instance's fetch. Cancelling
// it behaves like Close for the in-flight request.
func WithContext(ctx context.Context) UseOption {
	return func(o *useOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithObserver registers fn before the fetch is scheduled, so it sees
// every state write.
func WithObserver(fn func(Snapshot)) UseOption {
	return func(o *useOptions) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}

// Use returns the observable config for slug. The first snapshot is
// available before Use returns.
func (p *Provider) Use(slug string, opts ...UseOption) *Instance {
	o := useOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(o.ctx)
	inst := &Instance{
		slug:      slug,
		phase:     PhaseStaticOnly,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
		observers: o.observers,
		logger:    p.logger,
	}

	static, ok := p.table.Get(slug)
	if !ok {
		inst.settle()
		return inst
	}
	inst.static = static
	inst.snap = Snapshot{Config: static.Clone()}

	if p.fetcher == nil {
		inst.settle()
		return inst
	}

	inst.mu.Lock()
	inst.cancelTask = p.schedulerOrFallback().Schedule(func() {
		inst.fetch(p.fetcher)
	})
	inst.mu.Unlock()
	return inst
}

// Instance is one observer's view of a jurisdiction config.
type Instance struct {
	slug   string
	static *states.JurisdictionConfig
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	// writeMu serializes state writes with their notifications and with
	// Close, so no observer runs after Close returns.
	writeMu sync.Mutex

	mu         sync.Mutex
	snap       Snapshot
	phase      Phase
	closed     bool
	observers  []func(Snapshot)
	cancelTask func()

	doneOnce sync.Once
	done     chan struct{}
}

// Slug returns the slug the instance was created for.
func (i *Instance) Slug() string {
	return i.slug
}

// Snapshot returns the current state. The config is a copy.
func (i *Instance) Snapshot() Snapshot {
	i.mu.Lock()
	defer i.mu.Unlock()
	s := i.snap
	s.Config = s.Config.Clone()
	return s
}

// Phase returns STATIC_ONLY until a successful merge, then MERGED.
func (i *Instance) Phase() Phase {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.phase
}

// Done is closed once the instance will write no more state: the fetch
// settled, was never scheduled, or the instance was closed.
func (i *Instance) Done() <-chan struct{} {
	return i.done
}

// Wait blocks until Done or ctx expires and returns the snapshot at that
// point.
func (i *Instance) Wait(ctx context.Context) Snapshot {
	select {
	case <-i.done:
	case <-ctx.Done():
	}
	return i.Snapshot()
}

// Subscribe registers fn to be called after every state write. It does not
// replay the current state. Observers must not call Close.
// The returned func unsubscribes.
func (i *Instance) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return func() {}
	}
	idx := len(i.observers)
	i.observers = append(i.observers, fn)
	return func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		if idx < len(i.observers) {
			i.observers[idx] = nil
		}
	}
}

// Close cancels the scheduled fetch and any request in flight. Results
// that arrive afterwards are dropped. Close is idempotent.
func (i *Instance) Close() {
	i.writeMu.Lock()
	i.mu.Lock()
	already := i.closed
	i.closed = true
	cancelTask := i.cancelTask
	i.observers = nil
	i.mu.Unlock()
	i.writeMu.Unlock()

	if already {
		return
	}
	if cancelTask != nil {
		cancelTask()
	}
	i.cancel()
	i.settle()
}

// Closed reports whether Close was called.
func (i *Instance) Closed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.closed
}

func (i *Instance) settle() {
	i.doneOnce.Do(func() { close(i.done) })
}

func (i *Instance) fetch(f Fetcher) {
	defer i.settle()
	if i.Closed() {
		return
	}

	rec, err := f.FetchState(i.ctx, i.slug)
	if err != nil {
		if errors.GetCode(err) != errors.ERemoteFetchFailed {
			err = errors.WrapWithDetails(errors.ERemoteFetchFailed, "remote state fetch failed", err, map[string]string{
				"slug": i.slug,
			})
		}
		i.write(func(s *Snapshot) bool {
			s.Err = err
			return false
		}, func() {
			i.logger.Warn("remote state fetch failed; keeping static config", "slug", i.slug, "err", err)
		})
		return
	}

	merged := Merge(i.static, rec)
	i.write(func(s *Snapshot) bool {
		s.Config = merged
		s.Err = nil
		return true
	}, nil)
}

// write applies fn to the snapshot unless the instance is closed, then
// notifies observers. onWrite runs only when the write happened.
func (i *Instance) write(fn func(*Snapshot) (merged bool), onWrite func()) {
	i.writeMu.Lock()
	defer i.writeMu.Unlock()

	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return
	}
	if fn(&i.snap) {
		i.phase = PhaseMerged
	}
	snap := i.snap
	observers := append([]func(Snapshot){}, i.observers...)
	i.mu.Unlock()

	if onWrite != nil {
		onWrite()
	}
	for _, fn := range observers {
		if fn != nil {
			s := snap
			s.Config = snap.Config.Clone()
			fn(s)
		}
	}
}
