package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/rvaldez-mx/auto-market-api/internal/scheduler"
	"github.com/rvaldez-mx/auto-market-api/pkg/apiErrors"
)

// Tipos de cron job que pueden ejecutarse manualmente
const (
	CronJobTypeBulletins = "bulletins"
	CronJobTypeCatalog   = "catalog"
	CronJobTypeAll       = "all"
)

// CronJobServices contiene los servicios de cron disponibles para ejecución manual
type CronJobServices struct {
	BulletinSyncService *scheduler.BulletinSyncService
	CatalogSyncService  *scheduler.CatalogSyncService
}

// RunCronJob ejecuta manualmente una cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeBulletins:
			if services.BulletinSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de sincronización de boletines no disponible", nil)
				return
			}
			services.BulletinSyncService.TriggerManualSync()

		case CronJobTypeCatalog:
			if services.CatalogSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de sincronización del catálogo no disponible", nil)
				return
			}
			services.CatalogSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.BulletinSyncService != nil {
				services.BulletinSyncService.TriggerManualSync()
			}
			if services.CatalogSyncService != nil {
				services.CatalogSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: bulletins, catalog, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada con éxito",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus devuelve el estado de las cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.BulletinSyncService != nil {
			status["bulletins"] = services.BulletinSyncService.GetStatus()
		}
		if services.CatalogSyncService != nil {
			status["catalog"] = services.CatalogSyncService.GetStatus()
		}

		json.NewEncoder(w).Encode(status)
	}
}
