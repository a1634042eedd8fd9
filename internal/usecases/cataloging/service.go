package cataloging

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/autocosmos"
	"github.com/rvaldez-mx/auto-market-api/infrastructure/repository"
	"github.com/rvaldez-mx/auto-market-api/internal/config"
	"github.com/rvaldez-mx/auto-market-api/internal/domain"
	"github.com/rvaldez-mx/auto-market-api/internal/standardize"
)

// SyncResult resume una corrida de sincronización del catálogo
type SyncResult struct {
	BrandsVisited int      `json:"brands_visited"`
	ModelsSaved   int      `json:"models_saved"`
	ModelsFailed  int      `json:"models_failed"`
	Errors        []string `json:"errors,omitempty"`
}

// Cataloger define las operaciones sobre el catálogo de autos nuevos
type Cataloger interface {
	// SyncCatalog recorre Autocosmos completo y persiste cada modelo encontrado
	SyncCatalog(ctx context.Context) (*SyncResult, error)
	ListCatalog(brand string) ([]*domain.CatalogModelEntry, error)
	GetModel(brand, model string, year int) (*domain.CatalogModelEntry, error)
}

// Service implementa la interfaz Cataloger
type Service struct {
	cfg               *config.Config
	autocosmosService autocosmos.AutocosmosIntegrator
	catalogRepository repository.CatalogRepository
	standardizer      *standardize.Standardizer
}

// NewService crea una nueva instancia del servicio de catálogo
func NewService(
	cfg *config.Config,
	autocosmosService autocosmos.AutocosmosIntegrator,
	catalogRepo repository.CatalogRepository,
	standardizer *standardize.Standardizer,
) Cataloger {
	return &Service{
		cfg:               cfg,
		autocosmosService: autocosmosService,
		catalogRepository: catalogRepo,
		standardizer:      standardizer,
	}
}

// SyncCatalog lista las marcas vigentes, recorre los modelos de cada una y
// guarda las fichas con marca normalizada y carrocería clasificada. Los
// errores por modelo se acumulan sin abortar la corrida.
func (s *Service) SyncCatalog(ctx context.Context) (*SyncResult, error) {
	brands, err := s.autocosmosService.ListBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al listar las marcas del catálogo: %w", err)
	}

	result := &SyncResult{}
	var mu sync.Mutex

	maxJobs := s.cfg.CatalogSync.MaxConcurrentJobs
	if maxJobs < 1 {
		maxJobs = 1
	}
	// Las marcas se procesan en paralelo; el cliente ya regula el ritmo de
	// las peticiones individuales
	semaphore := make(chan struct{}, maxJobs)

	var wg sync.WaitGroup
	for _, brand := range brands {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(brand string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			saved, failed, errs := s.syncBrand(ctx, brand)

			mu.Lock()
			result.BrandsVisited++
			result.ModelsSaved += saved
			result.ModelsFailed += failed
			result.Errors = append(result.Errors, errs...)
			mu.Unlock()
		}(brand.Slug)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"brands": result.BrandsVisited,
		"saved":  result.ModelsSaved,
		"failed": result.ModelsFailed,
	}).Info("Sincronización del catálogo finalizada")

	return result, ctx.Err()
}

func (s *Service) syncBrand(ctx context.Context, brandSlug string) (saved, failed int, errs []string) {
	models, err := s.autocosmosService.ListBrandModels(ctx, brandSlug)
	if err != nil {
		return 0, 0, []string{fmt.Sprintf("marca %s: %v", brandSlug, err)}
	}

	for _, link := range models {
		if ctx.Err() != nil {
			return saved, failed, errs
		}

		model, err := s.autocosmosService.GetModel(ctx, brandSlug, link.Slug)
		if err != nil {
			failed++
			errs = append(errs, fmt.Sprintf("modelo %s/%s: %v", brandSlug, link.Slug, err))
			continue
		}

		s.normalize(model)

		if err := s.catalogRepository.SaveOrUpdate(model); err != nil {
			failed++
			errs = append(errs, fmt.Sprintf("guardar %s %s: %v", model.Brand, model.Model, err))
			continue
		}

		saved++
	}

	return saved, failed, errs
}

// normalize alinea la ficha con los nombres que usan los boletines, para que
// el join del análisis de mercado encuentre la marca
func (s *Service) normalize(model *domain.NewCarModel) {
	model.Brand = s.standardizer.NormalizeBrand(model.Brand)
	if model.BodyType == "" {
		model.BodyType = s.standardizer.ClassifyVehicleType(model.Model, "")
	}
}

func (s *Service) ListCatalog(brand string) ([]*domain.CatalogModelEntry, error) {
	if brand == "" {
		return s.catalogRepository.ListAll()
	}

	return s.catalogRepository.ListByBrand(s.standardizer.NormalizeBrand(brand))
}

func (s *Service) GetModel(brand, model string, year int) (*domain.CatalogModelEntry, error) {
	entry, err := s.catalogRepository.GetByBrandAndModel(s.standardizer.NormalizeBrand(brand), model, year)
	if err != nil {
		return nil, err
	}

	if entry == nil {
		return nil, fmt.Errorf("modelo no encontrado en el catálogo: %s %s %d", brand, model, year)
	}

	return entry, nil
}
