package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/topraklif/deals-api/infrastructure/preferences"
	"github.com/topraklif/deals-api/infrastructure/repository"
	"github.com/topraklif/deals-api/internal/api/handler"
	"github.com/topraklif/deals-api/internal/api/handler/router"
	"github.com/topraklif/deals-api/internal/config"
	"github.com/topraklif/deals-api/internal/usecases/authenticating"
	"github.com/topraklif/deals-api/internal/usecases/filtering"
	"github.com/topraklif/deals-api/internal/usecases/locating"
	"github.com/topraklif/deals-api/internal/usecases/notifying"
	"github.com/topraklif/deals-api/internal/usecases/statistics"
	"github.com/topraklif/deals-api/internal/usecases/submitting"
	"github.com/topraklif/deals-api/internal/usecases/suggesting"
	"github.com/topraklif/deals-api/internal/usecases/viewstate"
	"github.com/topraklif/deals-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	filterer filtering.Filterer,
	summarizer statistics.Summarizer,
	suggester suggesting.Suggester,
	submitter submitting.Submitter,
	notifier notifying.Notifier,
	authService authenticating.Authenticator,
	locator locating.Locator,
	prefsStore preferences.Store,
	viewSessions *viewstate.Service,
	dealRepo repository.DealRepository,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Deals(filterer, summarizer, suggester, submitter, authService)...),
		router.WithRoutes(handler.Notifications(notifier)...),
		router.WithRoutes(handler.Session(authService)...),
		router.WithRoutes(handler.Preferences(prefsStore)...),
		router.WithRoutes(handler.Location(locator)...),
		router.WithRoutes(handler.ViewSessions(viewSessions, dealRepo)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
