package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rvaldez-mx/auto-market-api/infrastructure/database/postgres"
	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/autocosmos"
	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/autocosmos/autocosmosclient"
	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/inegi"
	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/inegi/inegiclient"
	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/inegi/textsource"
	"github.com/rvaldez-mx/auto-market-api/infrastructure/repository"
	"github.com/rvaldez-mx/auto-market-api/internal/api"
	"github.com/rvaldez-mx/auto-market-api/internal/config"
	"github.com/rvaldez-mx/auto-market-api/internal/scheduler"
	"github.com/rvaldez-mx/auto-market-api/internal/standardize"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/analyzing"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/authenticating"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/cataloging"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, se usa 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	reportRepo := repository.NewMonthlyReportRepository(pgConn)
	catalogRepo := repository.NewCatalogRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	standardizer := standardize.New()

	inegiClient := inegiclient.NewClient(cfg)
	pdfExtractor := textsource.NewPdftotextExtractor(cfg.INEGI.PdftotextPath)
	inegiIntegrator := inegi.New(cfg, inegiClient, pdfExtractor)

	autocosmosClient := autocosmosclient.NewClient(cfg)
	autocosmosIntegrator := autocosmos.New(cfg, autocosmosClient)

	reporterService := reporting.NewService(cfg, inegiIntegrator, reportRepo)
	catalogerService := cataloging.NewService(cfg, autocosmosIntegrator, catalogRepo, standardizer)
	analyzerService := analyzing.NewService(cfg, reporterService, catalogRepo, standardizer)

	bulletinSyncService := scheduler.NewBulletinSyncService(reporterService, cfg)
	catalogSyncService := scheduler.NewCatalogSyncService(catalogerService, cfg)

	if err := bulletinSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de sincronización de boletines")
	} else {
		logrus.Info("Agendador de sincronización de boletines iniciado con éxito")
	}

	if err := catalogSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de sincronización del catálogo")
	} else {
		logrus.Info("Agendador de sincronización del catálogo iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		reporterService,
		analyzerService,
		catalogerService,
		authenticator,
		bulletinSyncService,
		catalogSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
