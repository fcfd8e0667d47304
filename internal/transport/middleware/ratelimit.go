package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientIdleTTL is how long an unused client limiter is kept.
const clientIdleTTL = 10 * time.Minute

// RateLimiter hands out per-client token buckets. Clients are keyed by remote
// host, so connections from one address share a bucket. Every Limit call
// keeps its own buckets.
type RateLimiter struct {
	now func() time.Time

	mu     sync.Mutex
	groups []*limiterGroup

	stop     chan struct{}
	stopOnce sync.Once
}

type limiterGroup struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

type clientLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter that evicts idle clients every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{now: time.Now, stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns middleware allowing maxPerMinute requests per minute per
// client. burst caps how many may arrive at once; zero means a full minute's
// worth. A non-positive maxPerMinute disables limiting.
func (rl *RateLimiter) Limit(maxPerMinute, burst int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		if burst <= 0 {
			burst = maxPerMinute
		}
		g := rl.newGroup(rate.Limit(float64(maxPerMinute)/60), burst)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wait, ok := g.take(clientKey(r), rl.now()); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) newGroup(limit rate.Limit, burst int) *limiterGroup {
	g := &limiterGroup{limit: limit, burst: burst, clients: make(map[string]*clientLimiter)}
	rl.mu.Lock()
	rl.groups = append(rl.groups, g)
	rl.mu.Unlock()
	return g
}

// take consumes one token for key at now. When none is available it reports
// how long until one will be.
func (g *limiterGroup) take(key string, now time.Time) (time.Duration, bool) {
	g.mu.Lock()
	c, ok := g.clients[key]
	if !ok {
		c = &clientLimiter{lim: rate.NewLimiter(g.limit, g.burst)}
		g.clients[key] = c
	}
	c.lastSeen = now
	g.mu.Unlock()

	res := c.lim.ReserveN(now, 1)
	if !res.OK() {
		return time.Minute, false
	}
	if wait := res.DelayFrom(now); wait > 0 {
		res.CancelAt(now)
		return wait, false
	}
	return 0, true
}

func (g *limiterGroup) evictIdle(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for key, c := range g.clients {
		if now.Sub(c.lastSeen) > clientIdleTTL {
			delete(g.clients, key)
		}
	}
}

func (g *limiterGroup) size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.clients)
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	now := rl.now()
	rl.mu.Lock()
	groups := append([]*limiterGroup(nil), rl.groups...)
	rl.mu.Unlock()
	for _, g := range groups {
		g.evictIdle(now)
	}
}
