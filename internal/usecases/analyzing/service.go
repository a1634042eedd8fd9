package analyzing

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rvaldez-mx/auto-market-api/infrastructure/repository"
	"github.com/rvaldez-mx/auto-market-api/internal/config"
	"github.com/rvaldez-mx/auto-market-api/internal/domain"
	"github.com/rvaldez-mx/auto-market-api/internal/standardize"
	"github.com/rvaldez-mx/auto-market-api/internal/usecases/reporting"
	"github.com/rvaldez-mx/auto-market-api/pkg/utils"
)

// Analyzer define las operaciones de análisis cruzado entre los reportes
// mensuales y el catálogo de precios
type Analyzer interface {
	// GetMarketOverview arma la vista agregada del mercado para un período
	GetMarketOverview(period string) (*domain.MarketOverview, error)
}

// Service implementa la interfaz Analyzer
type Service struct {
	cfg               *config.Config
	reporter          reporting.Reporter
	catalogRepository repository.CatalogRepository
	standardizer      *standardize.Standardizer
}

// NewService crea una nueva instancia del servicio de análisis
func NewService(
	cfg *config.Config,
	reporter reporting.Reporter,
	catalogRepo repository.CatalogRepository,
	standardizer *standardize.Standardizer,
) Analyzer {
	return &Service{
		cfg:               cfg,
		reporter:          reporter,
		catalogRepository: catalogRepo,
		standardizer:      standardizer,
	}
}

// GetMarketOverview cruza las filas por marca del reporte con el catálogo:
// participación de mercado, posicionamiento por marca y distribución de
// precios de lista
func (s *Service) GetMarketOverview(period string) (*domain.MarketOverview, error) {
	entry, err := s.reporter.GetReportByPeriod(period)
	if err != nil {
		return nil, err
	}

	report := entry.Report

	catalog, err := s.catalogRepository.ListAll()
	if err != nil {
		// El catálogo es complementario: sin él la vista degrada a solo ventas
		logrus.WithError(err).Warn("No fue posible cargar el catálogo para el análisis")
		catalog = nil
	}

	overview := &domain.MarketOverview{
		Period:           report.Period,
		TotalSales:       report.Monthly.Sales,
		BrandShares:      s.buildBrandShares(report, catalog),
		CatalogModels:    len(catalog),
		SalesYoYPct:      report.YearOverYear.Sales,
		ProductionYoYPct: report.YearOverYear.Production,
		ExportsYoYPct:    report.YearOverYear.Exports,
	}

	if len(catalog) > 0 {
		overview.BucketCounts = bucketCounts(catalog)
	}

	return overview, nil
}

// buildBrandShares consolida las filas por marca bajo nombres normalizados y
// calcula la participación de cada una sobre el total del mes
func (s *Service) buildBrandShares(report *domain.MonthlyReport, catalog []*domain.CatalogModelEntry) []domain.BrandShare {
	type aggregate struct {
		monthlyUnits int
		ytdUnits     int
	}

	totals := map[string]*aggregate{}
	order := []string{}
	for _, row := range report.BrandRows {
		brand := s.standardizer.NormalizeBrand(row.Brand)
		agg, exists := totals[brand]
		if !exists {
			agg = &aggregate{}
			totals[brand] = agg
			order = append(order, brand)
		}

		agg.monthlyUnits += row.MonthlyCurrent
		agg.ytdUnits += row.YTDCurrent
	}

	// El total nacional puede faltar en boletines degradados; en ese caso la
	// participación se calcula sobre la suma de las marcas encontradas
	denominator := report.Monthly.Sales
	if denominator == 0 {
		for _, agg := range totals {
			denominator += agg.monthlyUnits
		}
	}

	avgPrices := avgPriceByBrand(catalog)

	shares := make([]domain.BrandShare, 0, len(order))
	for _, brand := range order {
		agg := totals[brand]

		share := domain.BrandShare{
			Brand:           brand,
			Tier:            domain.BrandTierFor(brand),
			MonthlyUnits:    agg.monthlyUnits,
			YTDUnits:        agg.ytdUnits,
			AvgCatalogPrice: avgPrices[strings.ToUpper(brand)],
		}
		if denominator > 0 {
			share.SharePct = utils.RoundWithTwoDecimalPlace(float64(agg.monthlyUnits) * 100 / float64(denominator))
		}

		shares = append(shares, share)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].MonthlyUnits > shares[j].MonthlyUnits
	})

	return shares
}

// avgPriceByBrand promedia los precios base del catálogo agrupados por marca
// en mayúsculas, para un join insensible a capitalización
func avgPriceByBrand(catalog []*domain.CatalogModelEntry) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, entry := range catalog {
		if entry.Model == nil || entry.Model.BasePriceMXN <= 0 {
			continue
		}

		key := strings.ToUpper(entry.Model.Brand)
		sums[key] += entry.Model.BasePriceMXN
		counts[key]++
	}

	averages := make(map[string]float64, len(sums))
	for key, sum := range sums {
		averages[key] = utils.RoundWithTwoDecimalPlace(sum / float64(counts[key]))
	}

	return averages
}

func bucketCounts(catalog []*domain.CatalogModelEntry) map[domain.PriceBucket]int {
	counts := map[domain.PriceBucket]int{}
	for _, entry := range catalog {
		if entry.Model == nil || entry.Model.BasePriceMXN <= 0 {
			continue
		}

		counts[domain.PriceBucketFor(entry.Model.BasePriceMXN)]++
	}

	return counts
}
