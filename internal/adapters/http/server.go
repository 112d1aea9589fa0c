// Package http wires the triage use cases into a chi router.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/supportloop/triage/internal/adapters/http/handlers"
	"github.com/supportloop/triage/internal/adapters/http/middleware"
	"github.com/supportloop/triage/internal/config"
	"github.com/supportloop/triage/internal/ports"
)

type Server struct {
	config     *config.Config
	router     *chi.Mux
	httpServer *http.Server
	processor  ports.TicketProcessor
	batch      ports.BatchProcessor
	kb         ports.KnowledgeBase
	idGen      ports.IDGenerator
	version    string
}

func NewServer(
	cfg *config.Config,
	processor ports.TicketProcessor,
	batch ports.BatchProcessor,
	kb ports.KnowledgeBase,
	idGen ports.IDGenerator,
	version string,
) *Server {
	s := &Server{
		config:    cfg,
		processor: processor,
		batch:     batch,
		kb:        kb,
		idGen:     idGen,
		version:   version,
	}

	s.setupRouter()
	return s
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	healthHandler := handlers.NewHealthHandler(s.kb, s.idGen, s.version)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	infoHandler := handlers.NewInfoHandler(s.version)
	r.Get("/", infoHandler.Handle)

	ticketsHandler := handlers.NewTicketsHandler(s.processor, s.batch, s.idGen)
	r.Post("/process-ticket", ticketsHandler.ProcessTicket)
	r.Post("/process-batch", ticketsHandler.ProcessBatch)

	feedbackHandler := handlers.NewFeedbackHandler()
	r.Post("/feedback", feedbackHandler.SubmitFeedback)

	s.router = r
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // batches of slow LLM calls take a while
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("starting http server", "addr", addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	slog.Info("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Router() *chi.Mux {
	return s.router
}
