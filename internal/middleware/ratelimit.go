package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

type limiter struct {
	mu      sync.Mutex
	limit   int
	per     time.Duration
	windows map[string]*window
	sweepAt time.Time
}

// RateLimit allows at most limit requests per client IP in each rolling
// window of length per. Rejected requests get a 429 with a Retry-After
// header pointing at the window boundary.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	lim := &limiter{
		limit:   limit,
		per:     per,
		windows: make(map[string]*window),
		sweepAt: time.Now().Add(per),
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if retryAfter, ok := lim.take(clientIP(r), time.Now()); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take records one request for ip. When the limit is exhausted it returns
// the whole seconds until the window resets and ok=false.
func (l *limiter) take(ip string, now time.Time) (retryAfter int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.After(l.sweepAt) {
		for key, win := range l.windows {
			if now.After(win.resetAt) {
				delete(l.windows, key)
			}
		}
		l.sweepAt = now.Add(l.per)
	}

	win, found := l.windows[ip]
	if !found || now.After(win.resetAt) {
		win = &window{resetAt: now.Add(l.per)}
		l.windows[ip] = win
	}
	if win.count >= l.limit {
		secs := int(time.Until(win.resetAt).Seconds()) + 1
		if secs < 1 {
			secs = 1
		}
		return secs, false
	}
	win.count++
	return 0, true
}

// clientIP prefers the first parseable address in X-Forwarded-For and falls
// back to the connection's remote address.
func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && net.ParseIP(host) != nil {
		return host
	}
	return r.RemoteAddr
}
