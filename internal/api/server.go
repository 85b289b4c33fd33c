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
	"github.com/vfg2006/snap-ads-api/internal/api/handler"
	"github.com/vfg2006/snap-ads-api/internal/api/handler/router"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/internal/usecases/authenticating"
	"github.com/vfg2006/snap-ads-api/internal/usecases/reporting"
	"github.com/vfg2006/snap-ads-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	authenticator authenticating.Authenticator,
	oauthClient handler.OAuthClient,
	credentials handler.CredentialStore,
	statsSync handler.StatsSync,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, reporter, authenticator, oauthClient, credentials, statsSync),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares da API
func NewHandler(
	config *config.Config,
	reporter reporting.Reporter,
	authenticator authenticating.Authenticator,
	oauthClient handler.OAuthClient,
	credentials handler.CredentialStore,
	statsSync handler.StatsSync,
) http.Handler {
	states := handler.NewStateStore(config.Snap.State)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.OAuth(oauthClient, credentials, states)...),
		router.WithRoutes(handler.AdAccounts(reporter, config)...),
		router.WithRoutes(handler.CronJobs(statsSync)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("api: server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("api: server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("api: interrupt signal received")
	case <-ctx.Done():
		logrus.Info("api: application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("api: graceful shutdown started")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("api: shutdown failed")
		return err
	}

	logrus.Info("api: server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
