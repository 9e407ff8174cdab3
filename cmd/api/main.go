package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/topraklif/deals-api/infrastructure/preferences"
	"github.com/topraklif/deals-api/infrastructure/repository"
	"github.com/topraklif/deals-api/internal/api"
	"github.com/topraklif/deals-api/internal/config"
	"github.com/topraklif/deals-api/internal/scheduler"
	"github.com/topraklif/deals-api/internal/usecases/authenticating"
	"github.com/topraklif/deals-api/internal/usecases/filtering"
	"github.com/topraklif/deals-api/internal/usecases/locating"
	"github.com/topraklif/deals-api/internal/usecases/notifying"
	"github.com/topraklif/deals-api/internal/usecases/statistics"
	"github.com/topraklif/deals-api/internal/usecases/submitting"
	"github.com/topraklif/deals-api/internal/usecases/suggesting"
	"github.com/topraklif/deals-api/internal/usecases/viewstate"
	"github.com/topraklif/deals-api/pkg/metrics"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dealRepo := repository.NewDealRepository(repository.SeedDeals())
	userRepo := repository.NewUserRepository()

	prefsStore := preferences.NewFileStore(cfg.Preferences.FilePath)

	filterer := filtering.NewService(dealRepo)
	summarizer := statistics.NewService()
	suggester := suggesting.NewService(dealRepo)
	submitter := submitting.NewService(dealRepo)
	notifier := notifying.NewService()
	authService := authenticating.NewService(userRepo, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	locator := locating.NewService(locating.UnavailableProvider{}, cfg.Location.Timeout)
	viewSessions := viewstate.NewService()

	syntheticFeed := scheduler.NewSyntheticFeedService(
		scheduler.NewRandomDealPicker(dealRepo),
		notifier,
		cfg,
	)
	if err := syntheticFeed.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start synthetic feed")
	}

	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewServer(":" + cfg.Metrics.Port)
		go func() {
			if err := metricsServer.Run(ctx); err != nil {
				logrus.WithError(err).Error("metrics server stopped unexpectedly")
			}
		}()
	}

	server, err := api.New(
		cfg,
		filterer,
		summarizer,
		suggester,
		submitter,
		notifier,
		authService,
		locator,
		prefsStore,
		viewSessions,
		dealRepo,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
