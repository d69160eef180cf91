package provider

import (
	"sync"
	"time"
)

// Default deferral bounds for the background fetch.
const (
	DefaultIdleBudget    = 1000 * time.Millisecond
	DefaultFallbackDelay = 200 * time.Millisecond
)

// Scheduler defers a task. The returned cancel func prevents the task from
// starting if it has not started yet; it is safe to call more than once.
type Scheduler interface {
	Schedule(task func()) (cancel func())
}

// TimerScheduler runs each task on its own goroutine after Delay.
type TimerScheduler struct {
	Delay time.Duration
}

// Schedule implements Scheduler.
func (s TimerScheduler) Schedule(task func()) func() {
	t := time.AfterFunc(s.Delay, task)
	return func() { t.Stop() }
}

// IdleScheduler runs tasks once the process has no foreground work in
// flight, and never later than Budget after they were queued.
//
// Foreground work is bracketed with Busy: the server marks every request
// so background fetches yield to request handling.
type IdleScheduler struct {
	budget time.Duration

	mu      sync.Mutex
	active  int
	pending map[*idleTask]struct{}
}

type idleTask struct {
	run   func()
	timer *time.Timer
	done  bool
}

// NewIdleScheduler creates an IdleScheduler. A non-positive budget uses
// DefaultIdleBudget.
func NewIdleScheduler(budget time.Duration) *IdleScheduler {
	if budget <= 0 {
		budget = DefaultIdleBudget
	}
	return &IdleScheduler{
		budget:  budget,
		pending: make(map[*idleTask]struct{}),
	}
}

// Budget returns the maximum deferral.
func (s *IdleScheduler) Budget() time.Duration {
	return s.budget
}

// Busy marks the start of foreground work. The returned func marks its end;
// calls after the first are no-ops.
func (s *IdleScheduler) Busy() (done func()) {
	s.mu.Lock()
	s.active++
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(s.release)
	}
}

func (s *IdleScheduler) release() {
	s.mu.Lock()
	s.active--
	if s.active > 0 {
		s.mu.Unlock()
		return
	}
	var ready []*idleTask
	for t := range s.pending {
		ready = append(ready, t)
	}
	s.mu.Unlock()

	for _, t := range ready {
		go s.fire(t)
	}
}

// Schedule implements Scheduler.
func (s *IdleScheduler) Schedule(task func()) func() {
	t := &idleTask{run: task}

	s.mu.Lock()
	s.pending[t] = struct{}{}
	idle := s.active == 0
	if !idle {
		t.timer = time.AfterFunc(s.budget, func() { s.fire(t) })
	}
	s.mu.Unlock()

	if idle {
		go s.fire(t)
	}
	return func() { s.cancel(t) }
}

// Pending returns the number of queued tasks that have not started.
func (s *IdleScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *IdleScheduler) fire(t *idleTask) {
	if !s.take(t) {
		return
	}
	t.run()
}

func (s *IdleScheduler) cancel(t *idleTask) {
	s.take(t)
}

// take marks t as consumed. Only the first caller gets true.
func (s *IdleScheduler) take(t *idleTask) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	delete(s.pending, t)
	if t.timer != nil {
		t.timer.Stop()
	}
	return true
}

// ManualScheduler queues tasks until the caller runs them. Tasks run on
// the caller's goroutine.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	run       func()
	cancelled bool
	ran       bool
}

// Schedule implements Scheduler.
func (s *ManualScheduler) Schedule(task func()) func() {
	t := &manualTask{run: task}
	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		t.cancelled = true
		s.mu.Unlock()
	}
}

// Scheduled returns how many tasks were ever scheduled.
func (s *ManualScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Pending returns how many tasks are waiting to run.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.ran && !t.cancelled {
			n++
		}
	}
	return n
}

// RunAll runs every pending task, including cancelled ones when force is
// set. It returns the number of tasks run.
func (s *ManualScheduler) RunAll(force bool) int {
	s.mu.Lock()
	var ready []*manualTask
	for _, t := range s.tasks {
		if t.ran || (t.cancelled && !force) {
			continue
		}
		t.ran = true
		ready = append(ready, t)
	}
	s.mu.Unlock()

	for _, t := range ready {
		t.run()
	}
	return len(ready)
}
