package http

import (
	"context"
	stdhttp "net/http"
	"time"

	"spamwatch/internal/platform/config"
	"spamwatch/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server pairs a chi mux with a stdlib http.Server
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// NewServer builds a server listening on PORT from cfg; opts may pre-wire
// routes and middleware on the mux
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("PORT", ":4000")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr: addr,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router exposes the mux behind the Router seam
func (s *Server) Router() Router {
	return AdaptChi(s.mux)
}

// Addr reports the listen address
func (s *Server) Addr() string { return s.addr }

// Run serves until the listener fails or the server is shut down
func (s *Server) Run(ctx context.Context) error {
	logger.Named("http").Info().Str("addr", s.addr).Msg("http listening")
	if err := s.srv.ListenAndServe(); err != stdhttp.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
