package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/rvaldez-mx/auto-market-api/internal/api/handler"
	"github.com/rvaldez-mx/auto-market-api/internal/api/handler/router"
	"github.com/rvaldez-mx/auto-market-api/internal/config"
	"github.com/rvaldez-mx/auto-market-api/internal/scheduler"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/analyzing"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/authenticating"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/cataloging"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/reporting"
	"github.com/rvaldez-mx/auto-market-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reporterService reporting.Reporter,
	analyzerService analyzing.Analyzer,
	catalogerService cataloging.Cataloger,
	authenticator authenticating.Authenticator,
	bulletinSyncService *scheduler.BulletinSyncService,
	catalogSyncService *scheduler.CatalogSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		BulletinSyncService: bulletinSyncService,
		CatalogSyncService:  catalogSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Reports(reporterService, analyzerService)...),
		router.WithRoutes(handler.Catalog(catalogerService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error durante la ejecución del servidor")
		}
	}()

	// Canal para esperar señales de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Señal de interrupción recibida")
	case <-ctx.Done():
		logrus.Info("Contexto de la aplicación cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando apagado controlado del servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error durante el apagado del servidor")
		return err
	}

	logrus.Info("Servidor apagado con éxito")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP apagado con éxito")
	return nil
}
