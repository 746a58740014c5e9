// Package main is the entry point for the ByteBasket console server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"bytebasket/internal/config"
	appctx "bytebasket/internal/core/context"
	"bytebasket/internal/infrastructure/apiclient"
	"bytebasket/internal/infrastructure/http/web"
	"bytebasket/internal/infrastructure/session"
	"bytebasket/pkg/logger"
)

func main() {
	cfg, err := config.Load(getEnv("CONFIG_FILE", "bytebasket.toml"))
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.DevMode,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.Infow("starting bytebasket console",
		"api_base_url", cfg.APIBaseURL,
		"health_url", cfg.HealthURL,
	)

	// --- Session store ---
	var sessions session.Store
	if cfg.RedisAddr != "" {
		sessions = session.NewRedisStore(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}, cfg.SessionTTL)
		log.Infow("session store: redis", "addr", cfg.RedisAddr)
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
		log.Info("session store: in-memory")
	}
	defer sessions.Close()

	// --- Platform API client ---
	// The bearer token is resolved per request from the browsing session.
	client := apiclient.New(cfg.APIBaseURL, func(ctx context.Context) string {
		id := appctx.GetSessionID(ctx)
		if id == "" {
			return ""
		}
		sess, err := sessions.Get(ctx, id)
		if err != nil {
			logger.Warn(ctx, "token lookup failed", "error", err)
			return ""
		}
		return sess.Token
	})
	health := apiclient.NewHealthProbe(cfg.HealthURL)

	// --- Router ---
	router, err := web.NewRouter(web.RouterConfig{
		Logger:         log,
		Client:         client,
		Health:         health,
		Sessions:       sessions,
		AllowedOrigins: cfg.AllowedOrigins,
		SecureCookies:  !cfg.DevMode,
		SessionTTL:     cfg.SessionTTL,
		DevMode:        cfg.DevMode,
	})
	if err != nil {
		log.Fatalw("failed to build router", "error", err)
	}

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
