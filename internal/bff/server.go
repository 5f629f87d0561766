package bff

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/AyzeysDev/budgetflo-platform-sub002/internal/cache"
)

// Config holds the server configuration
type Config struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// BackendURL is the upstream BudgetFlo API base URL
	BackendURL string

	// RedisAddr enables the Redis result cache when set. Empty falls
	// back to the in-process cache.
	RedisAddr string

	// RateLimit is requests per minute per client IP
	RateLimit int
}

// NewServer builds the BFF HTTP server: calculation endpoints served
// locally, everything under /api proxied to the backend.
func NewServer(cfg Config) (*http.Server, *RateLimiter, error) {
	backend, err := url.Parse(cfg.BackendURL)
	if err != nil {
		return nil, nil, err
	}

	var store cache.Cache
	if cfg.RedisAddr != "" {
		store = cache.NewRedisCache(cfg.RedisAddr)
	} else {
		store = cache.NewMemoryCache()
	}

	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 60
	}
	limiter := NewRateLimiter(cfg.RateLimit, time.Minute)

	calc := NewCalcHandler(store)
	proxy := httputil.NewSingleHostReverseProxy(backend)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", calc.Healthz)
	mux.Handle("/calc/emi", RateLimitMiddleware(limiter, http.HandlerFunc(calc.ComputeEMI)))
	mux.Handle("/calc/contribution", RateLimitMiddleware(limiter, http.HandlerFunc(calc.SuggestContribution)))
	mux.Handle("/api/", RateLimitMiddleware(limiter, proxy))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server, limiter, nil
}
