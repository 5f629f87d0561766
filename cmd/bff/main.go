package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AyzeysDev/budgetflo-platform-sub002/internal/bff"
)

func main() {
	addr := flag.String("addr", envOr("BFF_ADDR", ":8080"), "listen address")
	backendURL := flag.String("backend", envOr("BUDGETFLO_API_URL", "https://api.budgetflo.app"), "backend API base URL")
	redisAddr := flag.String("redis", os.Getenv("REDIS_ADDR"), "redis address for the calc cache (optional)")
	rateLimit := flag.Int("rate-limit", 60, "requests per minute per client IP")
	flag.Parse()

	server, limiter, err := bff.NewServer(bff.Config{
		Addr:       *addr,
		BackendURL: *backendURL,
		RedisAddr:  *redisAddr,
		RateLimit:  *rateLimit,
	})
	if err != nil {
		log.Fatalf("failed to configure server: %v", err)
	}
	defer limiter.Stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("bff listening on %s (backend %s)", *addr, *backendURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatalf("server error: %v", err)
	case <-quit:
		log.Println("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
