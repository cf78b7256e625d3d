// Package health serves the bot's health check and Prometheus metrics.
package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/connorkuehl/valrank/internal/metrics"
)

var log = logrus.StandardLogger().WithFields(logrus.Fields{
	"component": "health",
})

// Degraded is the gateway heartbeat latency at which the bot reports
// itself unhealthy.
const Degraded = 10 * time.Second

type Addr string

type Heartbeat interface {
	HeartbeatLatency() time.Duration
}

type Server struct {
	srv *http.Server
}

func NewServer(addr Addr, heartbeat Heartbeat, m *metrics.Metrics) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              string(addr),
			Handler:           NewRouter(heartbeat, m),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func NewRouter(heartbeat Heartbeat, m *metrics.Metrics) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthy", func(w http.ResponseWriter, r *http.Request) {
		latency := heartbeat.HeartbeatLatency()

		if latency >= Degraded {
			http.Error(w, fmt.Sprintf("discord latency=%d ms, expecting < %d ms", latency.Milliseconds(), Degraded.Milliseconds()), http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "OK\n")
	})

	if m != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	}

	return r
}

// Run serves until ctx is done and then shuts the server down.
func (s *Server) Run(ctx context.Context) error {
	errs := make(chan error, 1)
	go func() {
		log.WithField("addr", s.srv.Addr).Info("serving health checks")
		errs <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
