// internal/httpserver/ratelimit.go
//
// Per-IP token-bucket rate limiting for the game endpoints. One limiter is
// kept per client address; entries are evicted lazily once they go stale.

package httpserver

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterIdleEvict = 10 * time.Minute

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

type ipLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     int
	burst   int
}

// rateLimitFromEnv builds the middleware from RATE_LIMIT_RPS and
// RATE_LIMIT_BURST (defaults 10/20).
func rateLimitFromEnv() func(http.Handler) http.Handler {
	l := &ipLimiter{
		entries: make(map[string]*limiterEntry),
		rps:     envInt("RATE_LIMIT_RPS", 10),
		burst:   envInt("RATE_LIMIT_BURST", 20),
	}
	return l.middleware
}

func (l *ipLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if !l.get(key).Allow() {
			http.Error(w, `{"error":"rate_limited"}`, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// get returns the limiter for key, creating it if needed. Stale entries are
// swept opportunistically while the lock is held.
func (l *ipLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if e, ok := l.entries[key]; ok {
		e.lastAccess = now
		return e.limiter
	}

	for k, e := range l.entries {
		if now.Sub(e.lastAccess) > limiterIdleEvict {
			delete(l.entries, k)
		}
	}

	rps := l.rps
	if rps <= 0 {
		rps = 1
	}
	e := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), l.burst),
		lastAccess: now,
	}
	l.entries[key] = e
	return e.limiter
}

// clientKey extracts the client IP; chi's RealIP middleware has already
// resolved forwarding headers into RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// envInt returns the integer value of k or def if unset/invalid.
func envInt(k string, def int) int {
	if v := getEnv(k, ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
