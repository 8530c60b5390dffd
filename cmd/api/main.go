package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"libraryapi/internal/account"
	"libraryapi/internal/borrow"
	"libraryapi/internal/catalog"
	apphttp "libraryapi/internal/http"
	"libraryapi/internal/httpx"
	"libraryapi/internal/seed"
	"libraryapi/internal/session"
	"libraryapi/internal/stats"
	"libraryapi/internal/store"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	corsOrigins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",")
	sessionTTL := time.Duration(getEnvInt("SESSION_TTL_MINUTES", 12*60)) * time.Minute
	rateLimitRPS := float64(getEnvInt("RATE_LIMIT_RPS", 20))
	rateLimitBurst := getEnvInt("RATE_LIMIT_BURST", 40)
	maxBodyBytes := int64(getEnvInt("MAX_BODY_BYTES", 1<<20))

	memory := store.NewMemory()
	accountRepo := store.NewAccountRepo(memory)
	bookRepo := store.NewBookRepo(memory)
	borrowRepo := store.NewBorrowRepo(memory)
	statsRepo := store.NewStatsRepo(memory)

	if getEnv("SEED_SAMPLE_DATA", "true") == "true" {
		if err := seed.Load(context.Background(), accountRepo, bookRepo); err != nil {
			log.Fatalf("cannot seed sample data: %v", err)
		}
		log.Println("sample data loaded")
	}

	sessions := session.NewStore(sessionTTL)

	authHandler := apphttp.NewAuthHandler(account.NewService(accountRepo), sessions)
	bookHandler := apphttp.NewBookHandler(catalog.NewService(bookRepo))
	borrowingHandler := apphttp.NewBorrowingHandler(borrow.NewService(borrowRepo))
	statsHandler := apphttp.NewStatsHandler(stats.NewService(statsRepo))

	router := apphttp.NewRouter(apphttp.RouterDeps{
		Auth:       authHandler,
		Books:      bookHandler,
		Borrowings: borrowingHandler,
		Stats:      statsHandler,
		Sessions:   sessions,
	})

	rateLimiter := httpx.NewRateLimitMiddleware(rateLimitRPS, rateLimitBurst)
	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware,
		httpx.AccessLogMiddleware,
		rateLimiter.Middleware,
		httpx.CORSMiddleware(corsOrigins),
		httpx.SecurityHeadersMiddleware,
		httpx.RequestSizeLimitMiddleware(maxBodyBytes),
	)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("ignoring non-numeric %s=%q", key, v)
	}
	return def
}
