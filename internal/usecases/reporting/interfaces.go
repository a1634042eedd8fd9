package reporting

import (
	"context"

	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

// Reporter define las operaciones sobre los reportes mensuales RAIAVL
type Reporter interface {
	// SyncPeriod descarga el boletín publicado en (pubYear, pubMonth),
	// lo extrae y persiste el reporte resultante
	SyncPeriod(ctx context.Context, pubYear, pubMonth int) (*domain.MonthlyReportEntry, error)
	// ImportFromText procesa texto plano ya extraído y persiste el reporte
	ImportFromText(text, sourceName string) (*domain.MonthlyReportEntry, error)
	GetReportByPeriod(period string) (*domain.MonthlyReportEntry, error)
	GetReportsByRange(startPeriod, endPeriod string) ([]*domain.MonthlyReportEntry, error)
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
	// ExportReport serializa el reporte de un período en el formato pedido
	ExportReport(period string, format ExportFormat) (*ExportResult, error)
}
