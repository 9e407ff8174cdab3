package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/topraklif/deals-api/pkg/log"
)

const readHeaderTimeout = 5 * time.Second

// Server exposes the prometheus registry on its own listener.
type Server struct {
	listenAddress string
}

func NewServer(listenAddress string) Server {
	return Server{listenAddress: listenAddress}
}

// Handler returns the /metrics mux, exported so tests can drive it without
// binding a port.
func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.listenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.L.WithError(err).Error("metrics: shutdown failed")
		}
	}()

	log.L.WithField("address", s.listenAddress).Info("metrics: server started")

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	log.L.Info("metrics: server stopped")
	return nil
}
