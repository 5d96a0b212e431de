package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/stakegov/governance-engine/internal/config"
	"github.com/stakegov/governance-engine/internal/services"
)

// Server exposes the governance operations over HTTP. Mutating endpoints
// derive the caller identity from the X-Staker-Address header, which the
// upstream auth proxy is trusted to set.
type Server struct {
	cfg     *config.Config
	service *services.Service
}

func New(cfg *config.Config, service *services.Service) *Server {
	return &Server{
		cfg:     cfg,
		service: service,
	}
}

func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(tracingMiddleware)
	r.Use(requestDurationMiddleware)

	r.Get("/healthcheck", s.handleHealthcheck)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/stake", s.handleCommitStake)
		r.Get("/staked", s.handleGetTotalStaked)
		r.Get("/stakes/{address}", s.handleGetStake)

		r.Route("/proposals", func(r chi.Router) {
			r.Post("/", s.handleCreateProposal)
			r.Get("/{id}", s.handleGetProposal)
			r.Post("/{id}/votes", s.handleCastVote)
			r.Get("/{id}/votes", s.handleGetVotes)
			r.Get("/{id}/votes/{address}", s.handleGetVote)
			r.Post("/{id}/execute", s.handleExecuteProposal)
		})
	})

	return r
}

// Start blocks serving the API until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting governance API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down governance API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.WriteTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if eErr := s.service.Ping(r.Context()); eErr != nil {
		writeError(w, eErr)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
