package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/rvaldez-mx/auto-market-api/internal/config"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/cataloging"
	"github.com/rvaldez-mx/auto-market-api/pkg/utils"
)

// CatalogSyncConfig representa la configuración del agendador del catálogo
type CatalogSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CatalogSyncService gestiona el agendamiento de la sincronización del
// catálogo de autos nuevos
type CatalogSyncService struct {
	scheduler           *gocron.Scheduler
	config              CatalogSyncConfig
	cataloger           cataloging.Cataloger
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *cataloging.SyncResult
}

// NewCatalogSyncService crea una nueva instancia del servicio de
// sincronización del catálogo
func NewCatalogSyncService(cataloger cataloging.Cataloger, appConfig *config.Config) *CatalogSyncService {
	syncConfig := CatalogSyncConfig{
		CronSchedule: appConfig.CatalogSync.CronSchedule,
		SyncEnabled:  appConfig.CatalogSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuración del agendador del catálogo cargada")

	return &CatalogSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		cataloger: cataloger,
	}
}

// Start inicia el agendador
func (s *CatalogSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronización del catálogo deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronización del catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCatalog(ctx)
	})
	if err != nil {
		return fmt.Errorf("error al agendar la sincronización del catálogo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Deteniendo agendador de sincronización del catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CatalogSyncService) syncCatalog(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización del catálogo ya en curso, se ignora")
		return
	}
	s.syncRunning = true
	runID, err := utils.GenerateID()
	if err != nil {
		runID = time.Now().Format("20060102150405")
	}
	s.lastRunID = runID
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando sincronización del catálogo de autos nuevos")

	result, err := s.cataloger.SyncCatalog(ctx)
	if err != nil {
		logger.WithError(err).Error("Error en la sincronización del catálogo")
	}

	duration := time.Since(startTime)
	if result != nil {
		logger.WithFields(logrus.Fields{
			"duration": duration.String(),
			"brands":   result.BrandsVisited,
			"saved":    result.ModelsSaved,
			"failed":   result.ModelsFailed,
		}).Info("Sincronización del catálogo finalizada")
	}

	s.lastSyncCompletedAt = time.Now()
	s.lastResult = result
}

// TriggerManualSync inicia manualmente una sincronización del catálogo
func (s *CatalogSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización del catálogo ya en curso, se ignora la solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronización manual del catálogo")
	go s.syncCatalog(context.Background())
}

// GetStatus devuelve el estado actual de la sincronización
func (s *CatalogSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastResult != nil {
		status["last_result"] = s.lastResult
	}

	return status
}
