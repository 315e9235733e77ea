package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/wallethunt/pkg/observability"
)

// ProgressSource reports the progress of the running hunt.
type ProgressSource interface {
	Progress() observability.Progress
}

// Info is the payload of GET /info.
type Info struct {
	Version  string                 `json:"version"`
	Address  string                 `json:"address"`
	Progress observability.Progress `json:"progress"`
}

// Server serves the read-only monitoring endpoints of a hunt.
type Server struct {
	Version  string
	Address  string
	Source   ProgressSource
	Gatherer prometheus.Gatherer
}

// NewHandler creates the HTTP handler: /health, /info and /metrics.
func NewHandler(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	info := Info{Version: s.Version, Address: s.Address}
	if s.Source != nil {
		info.Progress = s.Source.Progress()
	}
	writeJSON(w, info)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Serve listens on addr and serves handler until ctx is done.
// The returned channel yields the listener error (nil after a clean shutdown).
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) (<-chan error, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	done := make(chan error, 1)

	go func() {
		logger.Info("Metrics server listening", "addr", ln.Addr().String())
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return done, nil
}
