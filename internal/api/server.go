// Package api exposes the ledger operations and read-only state surface
// over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/config"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/services"
)

const serverIdleTimeout = 30 * time.Second

type Server struct {
	cfg        *config.ServerConfig
	service    *services.Service
	httpServer *http.Server
}

func New(cfg *config.ServerConfig, service *services.Service) *Server {
	s := &Server{
		cfg:     cfg,
		service: service,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/deposit", s.handleDeposit)
		r.Post("/withdraw", s.handleWithdraw)
		r.Post("/claim", s.handleClaim)
		r.With(s.requireAdminKey).Post("/distribute", s.handleDistribute)

		r.Get("/ledger", s.handleGetLedger)
		r.Get("/staker/{address}", s.handleGetStaker)
		r.Get("/staker/{address}/settlements", s.handleGetSettlements)
	})

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  serverIdleTimeout,
	}

	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shut down api server")
		}
	}()

	log.Info().Msgf("Starting api server on %s", s.cfg.Addr())
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msgf("Error starting api server on %s", s.cfg.Addr())
	}
}
