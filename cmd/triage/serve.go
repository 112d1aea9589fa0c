package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	triagehttp "github.com/supportloop/triage/internal/adapters/http"
	"github.com/supportloop/triage/internal/adapters/id"
	"github.com/supportloop/triage/internal/application/usecases"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the triage HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

			if cfg.Telemetry.TraceStdout {
				shutdown, err := initTracing()
				if err != nil {
					slog.Warn("failed to initialize tracing", "error", err)
				} else {
					defer func() {
						shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
						defer cancel()
						_ = shutdown(shutdownCtx)
					}()
				}
			}

			pipeline, kb, err := buildPipeline()
			if err != nil {
				return err
			}
			slog.Info("knowledge base loaded", "entries", kb.Size())
			if cfg.Prompt.InstructionsPath != "" {
				slog.Info("instruction artifact configured", "path", cfg.Prompt.InstructionsPath)
			}

			batch := usecases.NewProcessBatch(pipeline, cfg.Pipeline.MaxConcurrency, cfg.Pipeline.MaxBatchSize)
			idGen := id.NewSequential("API")

			srv := triagehttp.NewServer(cfg, pipeline, batch, kb, idGen, version)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return fmt.Errorf("server error: %w", err)
			case sig := <-sigCh:
				slog.Info("received signal, shutting down", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := srv.Stop(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown error: %w", err)
				}
				slog.Info("server stopped")
				return nil
			}
		},
	}
}

func initTracing() (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
