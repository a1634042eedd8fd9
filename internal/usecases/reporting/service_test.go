package reporting

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	inegimocks "github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/inegi/mocks"
	repomocks "github.com/rvaldez-mx/auto-market-api/infrastructure/repository/mocks"
	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

func sampleReport() *domain.MonthlyReport {
	return &domain.MonthlyReport{
		Period:     domain.Period{Year: 2025, Month: 6},
		Monthly:    domain.MetricTriple{Sales: 119343, Production: 338194, Exports: 287894},
		YearToDate: domain.MetricTriple{Sales: 689457, Production: 1995535, Exports: 1658848},
		YearOverYear: domain.VariationTriple{
			Sales: 2.2, Production: -4.9, Exports: -2.9,
		},
		BrandRows: []domain.BrandRow{
			{
				Brand:               "Nissan",
				MonthlyPrevious:     19789,
				MonthlyCurrent:      21110,
				MonthlyVariationPct: 6.7,
				YTDPrevious:         115634,
				YTDCurrent:          120903,
				YTDVariationPct:     4.6,
			},
			{
				Brand:               "General Motors",
				MonthlyPrevious:     15002,
				MonthlyCurrent:      14320,
				MonthlyVariationPct: -4.5,
				YTDPrevious:         90122,
				YTDCurrent:          87456,
				YTDVariationPct:     -3.0,
			},
		},
		SourceName: "rm_raiavl2025_07.pdf",
	}
}

func TestService_SyncPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockINEGI := inegimocks.NewMockINEGIIntegrator(ctrl)
	mockRepo := repomocks.NewMockMonthlyReportRepository(ctrl)

	service := &Service{
		inegiService:     mockINEGI,
		reportRepository: mockRepo,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, entry *domain.MonthlyReportEntry, err error)
	}{
		{
			name: "Sincronización exitosa - guarda el reporte bajo el período de datos",
			setup: func() {
				mockINEGI.EXPECT().
					FetchMonthlyReport(gomock.Any(), 2025, 7).
					Return(sampleReport(), nil)

				mockRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(entry *domain.MonthlyReportEntry) error {
						assert.Equal(t, "2025-06", entry.Period)
						return nil
					})
			},
			validate: func(t *testing.T, entry *domain.MonthlyReportEntry, err error) {
				require.NoError(t, err)
				// El boletín publicado en julio trae los datos de junio
				assert.Equal(t, "2025-06", entry.Period)
				assert.Len(t, entry.Report.BrandRows, 2)
			},
		},
		{
			name: "Error del integrador - se propaga sin guardar",
			setup: func() {
				mockINEGI.EXPECT().
					FetchMonthlyReport(gomock.Any(), 2025, 7).
					Return(nil, errors.New("boletín no disponible"))
			},
			validate: func(t *testing.T, entry *domain.MonthlyReportEntry, err error) {
				require.Error(t, err)
				assert.Nil(t, entry)
			},
		},
		{
			name: "Error al guardar - se envuelve con el período",
			setup: func() {
				mockINEGI.EXPECT().
					FetchMonthlyReport(gomock.Any(), 2025, 7).
					Return(sampleReport(), nil)

				mockRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(errors.New("conexión perdida"))
			},
			validate: func(t *testing.T, entry *domain.MonthlyReportEntry, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "2025-06")
				assert.Nil(t, entry)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			entry, err := service.SyncPeriod(context.Background(), 2025, 7)
			tt.validate(t, entry, err)
		})
	}
}

func TestService_GetReportByPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockMonthlyReportRepository(ctrl)
	service := &Service{reportRepository: mockRepo}

	t.Run("Período con formato inválido", func(t *testing.T) {
		_, err := service.GetReportByPeriod("junio-2025")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "YYYY-MM")
	})

	t.Run("Mes fuera de rango", func(t *testing.T) {
		_, err := service.GetReportByPeriod("2025-13")
		require.Error(t, err)
	})

	t.Run("Reporte inexistente", func(t *testing.T) {
		mockRepo.EXPECT().GetByPeriod("2025-06").Return(nil, nil)

		_, err := service.GetReportByPeriod("2025-06")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrReportNotFound)
	})

	t.Run("Reporte encontrado", func(t *testing.T) {
		mockRepo.EXPECT().GetByPeriod("2025-06").Return(&domain.MonthlyReportEntry{
			ID:     1,
			Period: "2025-06",
			Report: sampleReport(),
		}, nil)

		entry, err := service.GetReportByPeriod("2025-06")
		require.NoError(t, err)
		assert.Equal(t, int64(1), entry.ID)
	})
}

func TestService_GetReportsByRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockMonthlyReportRepository(ctrl)
	service := &Service{reportRepository: mockRepo}

	t.Run("Rango invertido", func(t *testing.T) {
		_, err := service.GetReportsByRange("2025-06", "2025-01")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rango inválido")
	})

	t.Run("Rango válido", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByPeriodRange("2025-01", "2025-06").
			Return([]*domain.MonthlyReportEntry{
				{Period: "2025-03"},
				{Period: "2025-06"},
			}, nil)

		entries, err := service.GetReportsByRange("2025-01", "2025-06")
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestService_GetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockMonthlyReportRepository(ctrl)
	service := &Service{reportRepository: mockRepo}

	mockRepo.EXPECT().
		GetAllPeriods().
		Return([]string{"2024-11", "2024-12", "2025-01", "2025-06"}, nil)

	available, err := service.GetAvailablePeriods()
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-11", "2024-12", "2025-01", "2025-06"}, available.Periods)
	assert.Equal(t, []string{"2024", "2025"}, available.Years)
	assert.Equal(t, []string{"01", "06", "11", "12"}, available.Months)
}

func TestService_ExportReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockMonthlyReportRepository(ctrl)
	service := &Service{reportRepository: mockRepo}

	storedEntry := func() *domain.MonthlyReportEntry {
		return &domain.MonthlyReportEntry{
			ID:     1,
			Period: "2025-06",
			Report: sampleReport(),
		}
	}

	t.Run("Exportación CSV con una fila por marca", func(t *testing.T) {
		mockRepo.EXPECT().GetByPeriod("2025-06").Return(storedEntry(), nil)

		result, err := service.ExportReport("2025-06", FormatCSV)
		require.NoError(t, err)

		assert.Equal(t, "reporte_raiavl_2025-06.csv", result.FileName)
		assert.Equal(t, "text/csv", result.ContentType)

		lines := strings.Split(strings.TrimSpace(string(result.Content)), "\n")
		require.Len(t, lines, 3) // encabezado + 2 marcas
		assert.Contains(t, lines[0], "marca")
		assert.Contains(t, lines[1], "Nissan")
		assert.Contains(t, lines[2], "General Motors")
	})

	t.Run("Exportación XLSX genera un archivo no vacío", func(t *testing.T) {
		mockRepo.EXPECT().GetByPeriod("2025-06").Return(storedEntry(), nil)

		result, err := service.ExportReport("2025-06", FormatXLSX)
		require.NoError(t, err)

		assert.Equal(t, "reporte_raiavl_2025-06.xlsx", result.FileName)
		assert.NotEmpty(t, result.Content)
	})

	t.Run("Formato no soportado", func(t *testing.T) {
		mockRepo.EXPECT().GetByPeriod("2025-06").Return(storedEntry(), nil)

		_, err := service.ExportReport("2025-06", ExportFormat("pdf"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no soportado")
	})

	t.Run("Período sin reporte no genera archivo", func(t *testing.T) {
		mockRepo.EXPECT().GetByPeriod("2025-06").Return(nil, nil)

		_, err := service.ExportReport("2025-06", FormatCSV)
		assert.ErrorIs(t, err, ErrReportNotFound)
	})
}
