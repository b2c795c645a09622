package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/seismic-site-response/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/seismic-site-response/internal/adapter/kafka"
	"github.com/couchcryptid/seismic-site-response/internal/calculator"
	"github.com/couchcryptid/seismic-site-response/internal/config"
	"github.com/couchcryptid/seismic-site-response/internal/observability"
	"github.com/couchcryptid/seismic-site-response/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	calc := calculator.New(cfg, logger, metrics)
	if err := calc.CheckReadiness(context.Background()); err != nil {
		logger.Error("reference tables invalid", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var ready sharedobs.ReadinessChecker = calc
	var closers []func() error
	if cfg.PipelineEnabled {
		reader := kafkaadapter.NewReader(cfg, logger)
		writer := kafkaadapter.NewWriter(cfg, logger)
		closers = append(closers, reader.Close, writer.Close)

		p := pipeline.New(reader, pipeline.NewTransformer(calc, logger), writer, logger, metrics, cfg.BatchSize)
		ready = p

		// Start classification pipeline.
		go func() {
			if err := p.Run(ctx); err != nil {
				logger.Error("pipeline error", "error", err)
			}
		}()
	} else {
		logger.Info("kafka pipeline disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, ready, calc, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			logger.Error("kafka client close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
