package metric

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360/linestream/errors"
)

// Server exposes a Registry over HTTP for Prometheus scraping
type Server struct {
	port     int
	path     string
	server   *http.Server
	registry *Registry
	mu       sync.Mutex // protects server field
}

// NewServer creates a metrics server for the provided registry
func NewServer(port int, path string, registry *Registry) *Server {
	if path == "" {
		path = "/metrics"
	}
	if port == 0 {
		port = 9091
	}
	return &Server{
		port:     port,
		path:     path,
		registry: registry,
	}
}

// Handler returns the exposition handler without starting a server
func (s *Server) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry.PrometheusRegistry(), promhttp.HandlerOpts{})
}

// Start begins serving metrics in a background goroutine
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return errors.WrapConfiguration(
			fmt.Errorf("metrics server already started on port %d", s.port),
			"metric.Server", "Start", "duplicate start")
	}

	mux := http.NewServeMux()
	mux.Handle(s.path, s.Handler())

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			// The server owns no critical state; scrape failures surface
			// through Prometheus itself.
			_ = err
		}
	}()

	return nil
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return nil
	}

	err := s.server.Shutdown(ctx)
	s.server = nil
	if err != nil {
		return errors.WrapStream(err, "metric.Server", "Stop", "graceful shutdown")
	}
	return nil
}
