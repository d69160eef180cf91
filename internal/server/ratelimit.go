package server

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

// IPRateLimiter keeps one token bucket per client IP.
// A zero rate disables limiting.
type IPRateLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter allows perMinute requests per IP with the given burst.
func NewIPRateLimiter(perMinute float64, burst int) *IPRateLimiter {
	rl := &IPRateLimiter{
		burst:    burst,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
	if perMinute > 0 {
		rl.limit = rate.Limit(perMinute / 60)
	}
	return rl
}

// Enabled reports whether requests are limited at all.
func (rl *IPRateLimiter) Enabled() bool {
	return rl != nil && rl.limit > 0
}

func (rl *IPRateLimiter) getVisitor(ip string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// Allow consumes a token for ip. When denied it returns how long until a
// token is available.
func (rl *IPRateLimiter) Allow(ip string) (bool, time.Duration) {
	if !rl.Enabled() {
		return true, 0
	}
	now := rl.now()
	res := rl.getVisitor(ip, now).ReserveN(now, 1)
	if !res.OK() {
		return false, time.Minute
	}
	delay := res.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}
	res.CancelAt(now)
	return false, delay
}

// Visitors returns the number of tracked IPs.
func (rl *IPRateLimiter) Visitors() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// Sweep drops IPs idle for longer than the visitor TTL.
func (rl *IPRateLimiter) Sweep() {
	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(rl.visitors, ip)
		}
	}
}

// Run sweeps stale visitors until ctx is done.
func (rl *IPRateLimiter) Run(ctx context.Context) {
	if !rl.Enabled() {
		return
	}
	t := time.NewTicker(cleanupInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			rl.Sweep()
		}
	}
}

// Middleware rejects over-limit requests with 429 and Retry-After.
func (rl *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, wait := rl.Allow(clientIP(r))
		if !ok {
			secs := int(math.Ceil(wait.Seconds()))
			if secs < 1 {
				secs = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			writeProblem(w, r, http.StatusTooManyRequests, errors.ERateLimited, "Rate limit exceeded. Retry after the specified interval.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
