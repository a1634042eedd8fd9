package reporting

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/inegi"
	"github.com/rvaldez-mx/auto-market-api/infrastructure/repository"
	"github.com/rvaldez-mx/auto-market-api/internal/config"
	"github.com/rvaldez-mx/auto-market-api/pkg/utils"

	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

// ErrReportNotFound indica que no hay reporte almacenado para el período pedido
var ErrReportNotFound = errors.New("no hay reporte almacenado para el período")

// Service implementa la interfaz Reporter
type Service struct {
	cfg              *config.Config
	inegiService     inegi.INEGIIntegrator
	reportRepository repository.MonthlyReportRepository
}

// NewService crea una nueva instancia del servicio de reportes
func NewService(
	cfg *config.Config,
	inegiService inegi.INEGIIntegrator,
	reportRepo repository.MonthlyReportRepository,
) Reporter {
	return &Service{
		cfg:              cfg,
		inegiService:     inegiService,
		reportRepository: reportRepo,
	}
}

// SyncPeriod descarga el boletín publicado en (pubYear, pubMonth), extrae el
// reporte del mes de datos y lo guarda. El período almacenado es el que el
// propio boletín declara, no el mes de publicación.
func (s *Service) SyncPeriod(ctx context.Context, pubYear, pubMonth int) (*domain.MonthlyReportEntry, error) {
	report, err := s.inegiService.FetchMonthlyReport(ctx, pubYear, pubMonth)
	if err != nil {
		return nil, err
	}

	return s.persist(report)
}

// ImportFromText procesa texto plano ya convertido (reprocesos, cargas manuales)
func (s *Service) ImportFromText(text, sourceName string) (*domain.MonthlyReportEntry, error) {
	report, err := s.inegiService.ExtractFromText(text, sourceName)
	if err != nil {
		return nil, err
	}

	return s.persist(report)
}

func (s *Service) persist(report *domain.MonthlyReport) (*domain.MonthlyReportEntry, error) {
	entry := &domain.MonthlyReportEntry{
		Period: report.Period.String(),
		Report: report,
	}

	if err := s.reportRepository.SaveOrUpdate(entry); err != nil {
		return nil, fmt.Errorf("error al guardar el reporte del período %s: %w", entry.Period, err)
	}

	if len(report.Warnings) > 0 {
		logrus.WithFields(logrus.Fields{
			"period":   entry.Period,
			"warnings": report.Warnings,
		}).Warn("Reporte guardado con advertencias de extracción")
	}

	logrus.WithFields(logrus.Fields{
		"period":     entry.Period,
		"brand_rows": len(report.BrandRows),
		"source":     report.SourceName,
	}).Info("Reporte mensual sincronizado")

	return entry, nil
}

func (s *Service) GetReportByPeriod(period string) (*domain.MonthlyReportEntry, error) {
	if _, _, err := utils.ParsePeriod(period); err != nil {
		return nil, err
	}

	entry, err := s.reportRepository.GetByPeriod(period)
	if err != nil {
		return nil, fmt.Errorf("error al buscar el reporte del período %s: %w", period, err)
	}

	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, period)
	}

	return entry, nil
}

func (s *Service) GetReportsByRange(startPeriod, endPeriod string) ([]*domain.MonthlyReportEntry, error) {
	if _, _, err := utils.ParsePeriod(startPeriod); err != nil {
		return nil, err
	}
	if _, _, err := utils.ParsePeriod(endPeriod); err != nil {
		return nil, err
	}
	if startPeriod > endPeriod {
		return nil, fmt.Errorf("rango inválido: %s es posterior a %s", startPeriod, endPeriod)
	}

	entries, err := s.reportRepository.GetByPeriodRange(startPeriod, endPeriod)
	if err != nil {
		return nil, fmt.Errorf("error al buscar reportes entre %s y %s: %w", startPeriod, endPeriod, err)
	}

	return entries, nil
}

// GetAvailablePeriods devuelve los períodos almacenados junto con los años y
// meses únicos, para alimentar filtros del frontend
func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	periods, err := s.reportRepository.GetAllPeriods()
	if err != nil {
		return nil, fmt.Errorf("error al listar los períodos disponibles: %w", err)
	}

	available := &domain.AvailablePeriods{
		Periods: periods,
		Years:   []string{},
		Months:  []string{},
	}

	yearsSeen := map[string]bool{}
	monthsSeen := map[string]bool{}
	for _, period := range periods {
		if len(period) != 7 {
			continue
		}

		year, month := period[:4], period[5:]
		if !yearsSeen[year] {
			yearsSeen[year] = true
			available.Years = append(available.Years, year)
		}
		if !monthsSeen[month] {
			monthsSeen[month] = true
			available.Months = append(available.Months, month)
		}
	}

	sort.Strings(available.Years)
	sort.Strings(available.Months)

	return available, nil
}
