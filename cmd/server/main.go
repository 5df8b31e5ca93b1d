package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/weekend-getaway-ranker/internal/adapter/dataset"
	"github.com/couchcryptid/weekend-getaway-ranker/internal/adapter/httpapi"
	kafkaadapter "github.com/couchcryptid/weekend-getaway-ranker/internal/adapter/kafka"
	"github.com/couchcryptid/weekend-getaway-ranker/internal/config"
	"github.com/couchcryptid/weekend-getaway-ranker/internal/observability"
	"github.com/couchcryptid/weekend-getaway-ranker/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	records, err := dataset.Load(cfg.DatasetPath, logger)
	if err != nil {
		logger.Error("failed to load dataset", "path", cfg.DatasetPath, "error", err)
		os.Exit(1)
	}
	logger.Info("dataset loaded", "path", cfg.DatasetPath, "destinations", len(records))

	opts := []service.Option{service.WithCache(cfg.ReportCacheSize)}

	// Report publishing is feature-flagged via KAFKA_ENABLED.
	var publisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		publisher = kafkaadapter.NewPublisher(cfg, logger)
		opts = append(opts, service.WithPublisher(publisher))
		logger.Info("report publishing enabled", "topic", cfg.KafkaReportTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("report publishing disabled")
	}

	svc, err := service.New(records, cfg.ScoringConfig(), logger, metrics, opts...)
	if err != nil {
		logger.Error("failed to initialize service", "error", err)
		os.Exit(1)
	}

	srv := httpapi.NewServer(cfg.HTTPAddr, svc, svc, cfg.TopN, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
