// Package main is the entry point for the EazyVenue API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/eazyvenue/backend/internal/config"
	"github.com/pkordes/eazyvenue/backend/internal/handler"
	"github.com/pkordes/eazyvenue/backend/internal/middleware"
	"github.com/pkordes/eazyvenue/backend/internal/repo"
	"github.com/pkordes/eazyvenue/backend/internal/service"
	"github.com/pkordes/eazyvenue/backend/migrations"
)

// stores bundles the three repos every service is built from.
type stores struct {
	venues   repo.VenueRepo
	bookings repo.BookingRepo
	blocks   repo.BlockedDateRepo
	close    func()
}

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// The default logger writes plain text to stderr until ours is set.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Store ------------------------------------------------------------
	st, err := openStores(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer st.close()

	// --- Services ---------------------------------------------------------
	venueSvc := service.NewVenueService(st.venues, st.bookings, st.blocks, nil)
	bookingSvc := service.NewBookingService(st.venues, st.bookings, st.blocks)
	analyticsSvc := service.NewAnalyticsService(st.venues, st.bookings)

	// --- Router -----------------------------------------------------------
	// Middleware runs in order: RequestID, RealIP, SlogLogger, Recoverer,
	// CORS, MaxBodySize. The logger sits outside Recoverer so recovered
	// panics are still logged with their 500.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", handler.NewServer(venueSvc, bookingSvc, analyticsSvc).Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "backend", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStores builds the repos for the configured backend. For Postgres it
// verifies the database is reachable and, when enabled, applies migrations.
func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	if cfg.StoreBackend == config.StoreMemory {
		mem := repo.NewMemoryStore()
		slog.Warn("using in-memory store; data is lost on restart")
		return stores{
			venues:   mem.Venues(),
			bookings: mem.Bookings(),
			blocks:   mem.BlockedDates(),
			close:    func() {},
		}, nil
	}

	// pgxpool.New does not open connections; the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return stores{}, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return stores{}, fmt.Errorf("connect to database: %w", err)
	}
	slog.Info("database connection established")

	if cfg.AutoMigrate {
		// goose needs a *sql.DB; this one shares the pool's connections.
		sqlDB := stdlib.OpenDBFromPool(pool)
		applied, err := migrations.Up(ctx, sqlDB)
		sqlDB.Close()
		if err != nil {
			pool.Close()
			return stores{}, err
		}
		slog.Info("migrations applied", "count", applied)
	}

	return stores{
		venues:   repo.NewVenueRepo(pool),
		bookings: repo.NewBookingRepo(pool),
		blocks:   repo.NewBlockedDateRepo(pool),
		close:    pool.Close,
	}, nil
}
