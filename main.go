package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pathakanu/myStreak/internal/config"
	"github.com/pathakanu/myStreak/internal/database"
	"github.com/pathakanu/myStreak/internal/handlers"
	"github.com/pathakanu/myStreak/internal/metrics"
	"github.com/pathakanu/myStreak/internal/preferences"
	"github.com/pathakanu/myStreak/internal/reminder"
	"github.com/pathakanu/myStreak/internal/scheduler"
	"github.com/pathakanu/myStreak/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logger := log.New(os.Stdout, "[myStreak] ", log.LstdFlags|log.Lshortfile)
	cfg := config.Load()

	db, err := database.New(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logger.Fatalf("database init failed: %v", err)
	}

	appMetrics, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatalf("metrics init failed: %v", err)
	}

	ctx := context.Background()
	kv := storage.NewGormKV(db)
	store := reminder.Open(ctx, storage.NewStateRepository(kv), logger,
		reminder.WithLocation(cfg.LocalTimezone),
		reminder.WithDefaultCheckInterval(cfg.CheckIntervalMinutes),
		reminder.WithMetrics(appMetrics),
	)
	prefs := preferences.Load(ctx, kv, logger)

	dueChecker := scheduler.New(store, logger,
		scheduler.WithEvery(cfg.TickInterval),
		scheduler.WithLocation(cfg.LocalTimezone),
		scheduler.WithMetrics(appMetrics),
	)
	if err := dueChecker.Start(); err != nil {
		logger.Fatalf("scheduler start: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handlers.New(store, prefs, logger, prometheus.DefaultGatherer).Routes(),
	}

	go func() {
		logger.Printf("server starting on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			dueChecker.Stop()
			logger.Fatalf("server error: %v", err)
		}
	}()

	waitForShutdown(server, dueChecker, logger)
}

func waitForShutdown(server *http.Server, dueChecker *scheduler.Scheduler, logger *log.Logger) {
	stopCtx := make(chan os.Signal, 1)
	signal.Notify(stopCtx, syscall.SIGINT, syscall.SIGTERM)
	<-stopCtx
	logger.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Printf("server shutdown error: %v", err)
	}
	dueChecker.Stop()
}
