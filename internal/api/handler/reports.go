package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/inegi/bulletin"
	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/inegi/inegiclient"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/analyzing"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/reporting"
	"github.com/rvaldez-mx/auto-market-api/pkg/apiErrors"
	"github.com/rvaldez-mx/auto-market-api/pkg/utils"
)

type ImportReportRequest struct {
	Text       string `json:"text"`
	SourceName string `json:"source_name"`
}

// GetReport devuelve el reporte almacenado de un período YYYY-MM
func GetReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		entry, err := service.GetReportByPeriod(period)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entry)
	}
}

// GetReportsRange devuelve los reportes entre ?start= y ?end= inclusive
func GetReportsRange(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := r.URL.Query().Get("start")
		end := r.URL.Query().Get("end")
		if start == "" || end == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Los parámetros start y end son obligatorios", nil)
			return
		}

		entries, err := service.GetReportsByRange(start, end)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}

// GetAvailablePeriods devuelve los períodos con reporte almacenado
func GetAvailablePeriods(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		available, err := service.GetAvailablePeriods()
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(available)
	}
}

// ExportReport sirve el reporte de un período como archivo XLSX o CSV
func ExportReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		format := reporting.ExportFormat(r.URL.Query().Get("format"))
		if format == "" {
			format = reporting.FormatXLSX
		}

		result, err := service.ExportReport(period, format)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", result.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
		if _, err := w.Write(result.Content); err != nil {
			logrus.WithError(err).Warn("Error al enviar el archivo exportado")
		}
	}
}

// GetMarketOverview devuelve la vista agregada del mercado de un período
func GetMarketOverview(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		overview, err := service.GetMarketOverview(period)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overview)
	}
}

// ImportReport procesa texto plano de un boletín ya convertido y lo persiste.
// Pensado para reprocesos y cargas manuales de boletines antiguos.
func ImportReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisición inválido", nil)
			return
		}

		if req.Text == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "El campo text es obligatorio", nil)
			return
		}

		entry, err := service.ImportFromText(req.Text, req.SourceName)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entry)
	}
}

// handleReportError mapea los errores de reportes a respuestas de la API
func handleReportError(w http.ResponseWriter, err error) {
	var periodErr *bulletin.PeriodUndeterminedError
	var extractionErr *bulletin.ExtractionError
	var notPublishedErr *inegiclient.BulletinNotPublishedError

	switch {
	case errors.Is(err, utils.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)

	case errors.Is(err, reporting.ErrReportNotFound):
		apiErrors.WriteError(w, apiErrors.ErrReportNotFound, err.Error(), nil)

	case errors.As(err, &notPublishedErr):
		apiErrors.WriteError(w, apiErrors.ErrBulletinNotPublished, err.Error(), nil)

	case errors.As(err, &periodErr):
		apiErrors.WriteError(w, apiErrors.ErrPeriodUndetermined, err.Error(), nil)

	case errors.As(err, &extractionErr):
		apiErrors.WriteError(w, apiErrors.ErrExtractionFailed, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Error al atender la operación de reportes")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error interno al procesar la solicitud", nil)
	}
}
