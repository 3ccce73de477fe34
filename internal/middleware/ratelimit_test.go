package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func TestRateLimitBlocksAfterLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := RateLimit(2, time.Minute)(next)

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/donation/add", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		limited.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: unexpected status %d", i, rr.Code)
		}
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/donation/add", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	limited.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rr.Code)
	}
}

func TestRateLimitSetsRetryAfter(t *testing.T) {
	limited := RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/donation/add", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		limited.ServeHTTP(rr, req)
		if i == 0 {
			continue
		}
		if rr.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", rr.Code)
		}
		secs, err := strconv.Atoi(rr.Header().Get("Retry-After"))
		if err != nil || secs < 1 || secs > 60 {
			t.Fatalf("Retry-After out of range: %q", rr.Header().Get("Retry-After"))
		}
	}
}

func TestRateLimitWindowResets(t *testing.T) {
	lim := &limiter{limit: 1, per: time.Minute, windows: make(map[string]*window)}
	now := time.Now()

	if _, ok := lim.take("10.0.0.1", now); !ok {
		t.Fatal("first request should pass")
	}
	if _, ok := lim.take("10.0.0.1", now); ok {
		t.Fatal("second request in the same window should be rejected")
	}
	if _, ok := lim.take("10.0.0.1", now.Add(61*time.Second)); !ok {
		t.Fatal("request after the window lapsed should pass")
	}
}

func TestRateLimitSweepsStaleWindows(t *testing.T) {
	lim := &limiter{limit: 1, per: time.Minute, windows: make(map[string]*window)}
	now := time.Now()
	lim.sweepAt = now.Add(time.Minute)

	for i := 0; i < 100; i++ {
		lim.take("10.0.0."+strconv.Itoa(i), now)
	}
	lim.take("10.0.1.1", now.Add(2*time.Minute))

	if len(lim.windows) > 1 {
		t.Fatalf("stale windows not evicted, %d remain", len(lim.windows))
	}
}

func TestRateLimitIsPerIP(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := RateLimit(1, time.Minute)(next)

	first := httptest.NewRequest("POST", "/donation/add", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	rr := httptest.NewRecorder()
	limited.ServeHTTP(rr, first)
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rr.Code)
	}

	second := httptest.NewRequest("POST", "/donation/add", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	rr = httptest.NewRecorder()
	limited.ServeHTTP(rr, second)
	if rr.Code != http.StatusOK {
		t.Fatalf("other IP should not be limited, got %d", rr.Code)
	}
}
