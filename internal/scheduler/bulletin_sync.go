package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/inegi/inegiclient"
	"github.com/rvaldez-mx/auto-market-api/internal/config"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/reporting"
	"github.com/rvaldez-mx/auto-market-api/pkg/utils"
)

// BulletinSyncConfig representa la configuración del agendador de boletines
type BulletinSyncConfig struct {
	CronSchedule  string
	MonthLookBack int
	SyncEnabled   bool
}

// BulletinSyncService gestiona el agendamiento y la ejecución de la
// sincronización de boletines RAIAVL
type BulletinSyncService struct {
	scheduler           *gocron.Scheduler
	config              BulletinSyncConfig
	reporter            reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncedPeriods   []string
}

// NewBulletinSyncService crea una nueva instancia del servicio de
// sincronización de boletines
func NewBulletinSyncService(reporter reporting.Reporter, appConfig *config.Config) *BulletinSyncService {
	syncConfig := BulletinSyncConfig{
		CronSchedule:  appConfig.BulletinSync.CronSchedule,
		MonthLookBack: appConfig.BulletinSync.MonthLookBack,
		SyncEnabled:   appConfig.BulletinSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"month_lookback": syncConfig.MonthLookBack,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuración del agendador de boletines cargada")

	return &BulletinSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		reporter:  reporter,
	}
}

// Start inicia el agendador
func (s *BulletinSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronización de boletines deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronización de boletines")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncBulletins(ctx)
	})
	if err != nil {
		return fmt.Errorf("error al agendar la sincronización de boletines: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Deteniendo agendador de sincronización de boletines")
		s.scheduler.Stop()
	}()

	return nil
}

// syncBulletins intenta descargar los boletines de los últimos meses. INEGI
// publica cada boletín cerca del día 10 del mes siguiente, así que el mes
// más reciente puede no existir todavía; eso no es un error de la corrida.
func (s *BulletinSyncService) syncBulletins(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de boletines ya en curso, se ignora")
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
	logger.Info("Iniciando sincronización de boletines RAIAVL")

	synced := []string{}
	now := time.Now()
	pubYear, pubMonth := now.Year(), int(now.Month())

	for i := 0; i < s.config.MonthLookBack; i++ {
		if ctx.Err() != nil {
			logger.Warn("Sincronización de boletines interrumpida por cancelación")
			break
		}

		entry, err := s.reporter.SyncPeriod(ctx, pubYear, pubMonth)
		if err != nil {
			var notPublished *inegiclient.BulletinNotPublishedError
			if errors.As(err, &notPublished) {
				logger.WithFields(logrus.Fields{
					"pub_year":  pubYear,
					"pub_month": pubMonth,
				}).Info("Boletín aún no publicado, se intentará en la próxima corrida")
			} else {
				logger.WithError(err).WithFields(logrus.Fields{
					"pub_year":  pubYear,
					"pub_month": pubMonth,
				}).Error("Error al sincronizar el boletín")
			}
		} else {
			synced = append(synced, entry.Period)
		}

		pubYear, pubMonth = utils.PreviousMonth(pubYear, pubMonth)
	}

	duration := time.Since(startTime)
	logger.WithFields(logrus.Fields{
		"duration": duration.String(),
		"synced":   synced,
	}).Info("Sincronización de boletines finalizada")

	s.lastSyncCompletedAt = time.Now()
	s.lastSyncedPeriods = synced
}

// TriggerManualSync inicia manualmente una sincronización de boletines
func (s *BulletinSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de boletines ya en curso, se ignora la solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronización manual de boletines")
	go s.syncBulletins(context.Background())
}

// GetStatus devuelve el estado actual de la sincronización
func (s *BulletinSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_synced_periods":    s.lastSyncedPeriods,
	}
}
