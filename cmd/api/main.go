package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap"
	"github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/snapclient"
	"github.com/vfg2006/snap-ads-api/infrastructure/sink"
	"github.com/vfg2006/snap-ads-api/internal/api"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/internal/scheduler"
	"github.com/vfg2006/snap-ads-api/internal/usecases/authenticating"
	"github.com/vfg2006/snap-ads-api/internal/usecases/reporting"
	"github.com/vfg2006/snap-ads-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.WithField("log_level", logrus.GetLevel().String()).Info("api: log level configured")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authenticator := authenticating.NewService(cfg)

	snapClient := snapclient.NewClient(cfg)
	tokenManager := snapclient.NewTokenManager(cfg, snapClient)
	snapIntegrator := snap.New(cfg, snapClient)

	reporter := reporting.NewService(cfg, snapIntegrator, tokenManager)

	statsSyncService := scheduler.NewStatsSyncService(
		reporter,
		tokenManager,
		sink.NewJSONLinesWriter(nil), // stdout
		cfg,
	)

	if err := statsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("api: failed to start stats sync scheduler")
	}

	server, err := api.New(
		cfg,
		reporter,
		authenticator,
		snapClient,
		tokenManager,
		statsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
