package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"filing_watcher/internal/config"
	"filing_watcher/internal/domain"
	"filing_watcher/internal/publisher"
	"filing_watcher/internal/scheduler"
	"filing_watcher/internal/service"
	"filing_watcher/internal/source/feed"
	"filing_watcher/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if len(cfg.Sources) == 0 {
		logger.Error("no sources configured")
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	filingStore := postgres.NewFilingStore(db)
	alertStore := postgres.NewAlertStore(db)

	// Initialize feed client
	feedClient := feed.NewClient(feed.Config{
		Timeout: cfg.Ingest.FetchTimeout,
	}, logger)

	sources := make([]domain.FeedSource, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		sources = append(sources, domain.FeedSource{
			Name:    src.Name,
			URL:     src.URL,
			CourtID: src.CourtID,
			Region:  src.Region,
		})
	}

	ingestService := service.NewIngestService(
		sources,
		feedClient,
		filingStore,
		alertStore,
		rabbitMQ,
		logger,
		cfg.Ingest,
	)

	sched := scheduler.NewScheduler(ingestService, cfg.Ingest.Interval, cfg.Ingest.PassTimeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting filing watcher",
		"sources", len(sources),
		"interval", cfg.Ingest.Interval,
		"max_candidates", cfg.Ingest.MaxCandidatesPerPass,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
